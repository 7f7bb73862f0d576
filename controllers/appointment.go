package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zeecare/hospital-backend/db"
	"github.com/zeecare/hospital-backend/middleware"
	"github.com/zeecare/hospital-backend/models"
	"github.com/zeecare/hospital-backend/utils"
)

type appointmentInput struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	AadharNumber    string `json:"aadharNumber"`
	DOB             string `json:"dob"`
	Gender          string `json:"gender"`
	AppointmentDate string `json:"appointment_date"`
	Department      string `json:"department"`
	DoctorFirstName string `json:"doctor_firstName"`
	DoctorLastName  string `json:"doctor_lastName"`
	HasVisited      bool   `json:"hasVisited"`
	Address         string `json:"address"`
}

// hasMissingFields reports whether any required booking field is empty.
// HasVisited is the only optional field.
func (in *appointmentInput) hasMissingFields() bool {
	return in.FirstName == "" || in.LastName == "" || in.Email == "" || in.Phone == "" ||
		in.AadharNumber == "" || in.DOB == "" || in.Gender == "" || in.AppointmentDate == "" ||
		in.Department == "" || in.DoctorFirstName == "" || in.DoctorLastName == "" ||
		in.Address == ""
}

// resolveDoctor applies the ambiguity-refusal policy: a booking binds to
// exactly one doctor or not at all. The system never guesses among several
// same-named doctors in one department.
func resolveDoctor(matches []models.User) (*models.User, error) {
	if len(matches) == 0 {
		return nil, utils.NotFound("Doctor Not Found!")
	}
	if len(matches) > 1 {
		return nil, utils.Conflict("Doctors Conflict! Please Contact Through Email Or Phone!")
	}
	return &matches[0], nil
}

// PostAppointment books an appointment for the authenticated patient
func PostAppointment(c *fiber.Ctx) error {
	input := new(appointmentInput)
	if err := c.BodyParser(input); err != nil {
		return utils.ValidationError("Cannot parse JSON")
	}

	if input.hasMissingFields() {
		return utils.ValidationError("Please Fill Full Form!")
	}

	var matches []models.User
	if err := db.DB.
		Where("first_name = ? AND last_name = ? AND role = ? AND doctor_department = ?",
			input.DoctorFirstName, input.DoctorLastName, models.RoleDoctor, input.Department).
		Order("id").
		Find(&matches).Error; err != nil {
		return utils.Internal(err)
	}

	doctor, err := resolveDoctor(matches)
	if err != nil {
		return err
	}

	patient, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Unauthenticated("Patient Not Authenticated!")
	}

	appointment := models.Appointment{
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Email:           input.Email,
		Phone:           input.Phone,
		AadharNumber:    input.AadharNumber,
		DOB:             input.DOB,
		Gender:          input.Gender,
		AppointmentDate: input.AppointmentDate,
		Department:      input.Department,
		Doctor: models.DoctorName{
			FirstName: doctor.FirstName,
			LastName:  doctor.LastName,
		},
		HasVisited: input.HasVisited,
		Address:    input.Address,
		DoctorID:   doctor.ID,
		PatientID:  patient.ID,
	}

	if err := db.DB.Create(&appointment).Error; err != nil {
		return utils.Internal(err)
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"message":     "Appointment Sent Successfully!",
		"appointment": appointment,
	})
}

// GetAllAppointments returns every appointment for the admin dashboard
func GetAllAppointments(c *fiber.Ctx) error {
	var appointments []models.Appointment
	if err := db.DB.Find(&appointments).Error; err != nil {
		return utils.Internal(err)
	}
	return c.JSON(fiber.Map{
		"success":      true,
		"appointments": appointments,
	})
}

// UpdateAppointmentStatus patches an appointment, re-validating the status
func UpdateAppointmentStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	var appointment models.Appointment
	if err := db.DB.First(&appointment, id).Error; err != nil {
		return utils.WrapDBError(err, "Appointment Not Found!")
	}

	patch := new(struct {
		Status     models.AppointmentStatus `json:"status"`
		HasVisited *bool                    `json:"hasVisited"`
	})
	if err := c.BodyParser(patch); err != nil {
		return utils.ValidationError("Cannot parse JSON")
	}

	if patch.Status != "" {
		if err := models.ValidateStatus(patch.Status); err != nil {
			return utils.ValidationError("Invalid Appointment Status!")
		}
		appointment.Status = patch.Status
	}
	if patch.HasVisited != nil {
		appointment.HasVisited = *patch.HasVisited
	}

	if err := db.DB.Save(&appointment).Error; err != nil {
		return utils.Internal(err)
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"message":     "Appointment Status Updated!",
		"appointment": appointment,
	})
}

// DeleteAppointment removes an appointment permanently; no cascade
func DeleteAppointment(c *fiber.Ctx) error {
	id := c.Params("id")

	var appointment models.Appointment
	if err := db.DB.First(&appointment, id).Error; err != nil {
		return utils.WrapDBError(err, "Appointment Not Found!")
	}

	if err := db.DB.Delete(&appointment).Error; err != nil {
		return utils.Internal(err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Appointment Deleted Successfully!",
	})
}
