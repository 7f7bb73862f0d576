package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusPending  AppointmentStatus = "Pending"
	StatusAccepted AppointmentStatus = "Accepted"
	StatusRejected AppointmentStatus = "Rejected"
)

// DoctorName is the denormalized doctor snapshot captured at booking time.
// Later edits to the doctor's User record do not rewrite it.
type DoctorName struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type Appointment struct {
	ID              uint              `json:"id" gorm:"primaryKey"`
	FirstName       string            `json:"firstName"`
	LastName        string            `json:"lastName"`
	Email           string            `json:"email"`
	Phone           string            `json:"phone"`
	AadharNumber    string            `json:"aadharNumber"`
	DOB             string            `json:"dob"`
	Gender          string            `json:"gender"`
	AppointmentDate string            `json:"appointment_date"`
	Department      string            `json:"department"`
	Doctor          DoctorName        `json:"doctor" gorm:"embedded;embeddedPrefix:doctor_"`
	HasVisited      bool              `json:"hasVisited"`
	Address         string            `json:"address"`
	DoctorID        uint              `json:"doctorId"`
	PatientID       uint              `json:"patientId"`
	Status          AppointmentStatus `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusPending
	}
	return nil
}

// ValidateStatus rejects anything outside the three known states.
func ValidateStatus(s AppointmentStatus) error {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return nil
	}
	return fmt.Errorf("invalid appointment status: %s", s)
}
