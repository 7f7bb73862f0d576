package models

import (
	"net/mail"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	RoleAdmin   = "Admin"
	RolePatient = "Patient"
	RoleDoctor  = "Doctor"
)

// DocAvatar holds the Cloudinary reference for a doctor's profile image.
type DocAvatar struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

type User struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	Email            string    `json:"email" gorm:"unique"`
	Phone            string    `json:"phone"`
	AadharNumber     string    `json:"aadharNumber"`
	DOB              string    `json:"dob"`
	Gender           string    `json:"gender"`
	Password         string    `json:"-"`
	Role             string    `json:"role"`
	DoctorDepartment string    `json:"doctorDepartment,omitempty"`
	DocAvatar        DocAvatar `json:"docAvatar" gorm:"embedded;embeddedPrefix:doc_avatar_"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ComparePassword checks a plaintext password against the stored bcrypt hash.
func (u *User) ComparePassword(plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain))
}

// Validate enforces the schema rules shared by every registration path. The
// password argument is the plaintext submitted by the caller, checked before
// hashing. Returns an empty string when the user is valid.
func (u *User) Validate(password string) string {
	switch {
	case u.FirstName == "" || u.LastName == "" || u.Email == "" || u.Phone == "" ||
		u.AadharNumber == "" || u.DOB == "" || u.Gender == "" || password == "":
		return "Please Fill Full Form!"
	case len(u.FirstName) < 3:
		return "First Name Must Contain At Least 3 Characters!"
	case len(u.LastName) < 3:
		return "Last Name Must Contain At Least 3 Characters!"
	case !isEmail(u.Email):
		return "Please Provide A Valid Email!"
	case len(u.Phone) != 10:
		return "Phone Number Must Contain Exact 10 Digits!"
	case len(u.AadharNumber) != 12:
		return "Aadhar Number Must Contain Exact 12 Digits!"
	case len(password) < 8:
		return "Password Must Contain At Least 8 Characters!"
	}
	return ""
}

func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
