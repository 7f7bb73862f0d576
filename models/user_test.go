package models

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func validUser() User {
	return User{
		FirstName:    "Ravi",
		LastName:     "Kumar",
		Email:        "ravi@example.com",
		Phone:        "9876543210",
		AadharNumber: "123412341234",
		DOB:          "1990-04-12",
		Gender:       "Male",
		Role:         RolePatient,
	}
}

func TestUserValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*User)
		password string
		wantMsg  string
	}{
		{"valid", func(u *User) {}, "password123", ""},
		{"missing field", func(u *User) { u.Email = "" }, "password123", "Please Fill Full Form!"},
		{"missing password", func(u *User) {}, "", "Please Fill Full Form!"},
		{"short first name", func(u *User) { u.FirstName = "Al" }, "password123", "First Name Must Contain At Least 3 Characters!"},
		{"short last name", func(u *User) { u.LastName = "Vu" }, "password123", "Last Name Must Contain At Least 3 Characters!"},
		{"bad email", func(u *User) { u.Email = "not-an-email" }, "password123", "Please Provide A Valid Email!"},
		{"short phone", func(u *User) { u.Phone = "12345" }, "password123", "Phone Number Must Contain Exact 10 Digits!"},
		{"short aadhar", func(u *User) { u.AadharNumber = "1234" }, "password123", "Aadhar Number Must Contain Exact 12 Digits!"},
		{"short password", func(u *User) {}, "short", "Password Must Contain At Least 8 Characters!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			tt.mutate(&u)
			if got := u.Validate(tt.password); got != tt.wantMsg {
				t.Errorf("Validate() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestComparePassword(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	u := User{Password: string(hashed)}

	if err := u.ComparePassword("password123"); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}
	if err := u.ComparePassword("wrong-password"); err == nil {
		t.Error("wrong password accepted")
	}
}
