package model

// Appointment is a fetched appointment record for one schedule date.
type Appointment struct {
	ID       ID     `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	DoctorID ID     `json:"doctorId,omitempty"`
	Date     string `json:"date,omitempty"`
}

// AppointmentRow is the narrowed view the schedule table renders. Derived
// per render cycle, never stored.
type AppointmentRow struct {
	ID    ID
	Name  string
	Phone string
	Email string
}

func (a Appointment) Row() AppointmentRow {
	return AppointmentRow{
		ID:    a.ID,
		Name:  a.Name,
		Phone: a.Phone,
		Email: a.Email,
	}
}
