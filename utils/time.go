package utils

import "time"

// AppointmentDateLayout is the wire format bookings use for appointment_date.
const AppointmentDateLayout = "2006-01-02"

// ToIST converts UTC time to Indian Standard Time (IST)
func ToIST(t time.Time) time.Time {
	ist, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return t // Fallback to UTC if IST is not available
	}
	return t.In(ist)
}

// ParseAppointmentDate parses a booking's requested date. Dates are stored as
// the caller supplied them; parsing happens only where a real date is needed
// (e.g. the reminder job).
func ParseAppointmentDate(s string) (time.Time, error) {
	return time.Parse(AppointmentDateLayout, s)
}
