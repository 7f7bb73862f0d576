package models

import "time"

// Message is a contact-form submission from the public site.
type Message struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate returns an empty string when the message passes the schema rules.
func (m *Message) Validate() string {
	switch {
	case m.FirstName == "" || m.LastName == "" || m.Email == "" || m.Phone == "" || m.Message == "":
		return "Please Fill Full Form!"
	case len(m.FirstName) < 3:
		return "First Name Must Contain At Least 3 Characters!"
	case len(m.LastName) < 3:
		return "Last Name Must Contain At Least 3 Characters!"
	case !isEmail(m.Email):
		return "Please Provide A Valid Email!"
	case len(m.Phone) != 10:
		return "Phone Number Must Contain Exact 10 Digits!"
	case len(m.Message) < 10:
		return "Message Must Contain At Least 10 Characters!"
	}
	return ""
}
