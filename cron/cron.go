package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/zeecare/hospital-backend/db"
	"github.com/zeecare/hospital-backend/models"
	"github.com/zeecare/hospital-backend/utils"
)

// StartCronJobs initializes and starts the cron scheduler for appointment reminders
func StartCronJobs() {
	c := cron.New()
	// Run hourly; reminders go out the day before the visit
	_, err := c.AddFunc("0 * * * *", sendAppointmentReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for appointment reminders")
}

// sendAppointmentReminders emails every accepted appointment dated tomorrow
func sendAppointmentReminders() {
	tomorrow := utils.ToIST(time.Now()).AddDate(0, 0, 1).Format(utils.AppointmentDateLayout)

	var appointments []models.Appointment
	err := db.DB.
		Where("status = ? AND appointment_date = ?", models.StatusAccepted, tomorrow).
		Find(&appointments).Error
	if err != nil {
		log.Printf("Error fetching appointments for reminders: %v", err)
		return
	}

	for _, appointment := range appointments {
		if _, err := utils.ParseAppointmentDate(appointment.AppointmentDate); err != nil {
			// Dates are stored as submitted; skip anything unparseable.
			continue
		}
		if err := sendReminderEmail(&appointment); err != nil {
			log.Printf("Failed to send reminder for appointment %d: %v", appointment.ID, err)
			continue
		}
		log.Printf("Sent reminder for appointment %d to %s", appointment.ID, appointment.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(appointment *models.Appointment) error {
	subject := fmt.Sprintf("Reminder: Appointment On %s", appointment.AppointmentDate)
	body := fmt.Sprintf(`
		<p>Dear %s %s,</p>
		<p>This is a reminder for your appointment scheduled tomorrow.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Doctor:</strong> Dr. %s %s</li>
			<li><strong>Department:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
		</ul>
		<p>Please arrive on time. If you need to cancel, contact us as soon as possible.</p>
		<p>Best regards,</p>
		<p>ZeeCare Medical Institute</p>
	`, appointment.FirstName, appointment.LastName,
		appointment.Doctor.FirstName, appointment.Doctor.LastName,
		appointment.Department, appointment.AppointmentDate)

	return utils.SendEmail(appointment.Email, subject, body)
}
