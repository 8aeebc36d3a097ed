package model

// Patient is the profile fetched with the session token when an
// authenticated patient starts a booking.
type Patient struct {
	ID      ID     `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
}
