package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is an opaque entity identifier. The clinic backend serializes ids as
// JSON numbers while fixtures and query params carry them as strings, so
// both decode into the same value.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string {
	return string(id)
}

// Doctor is the read-side projection of a directory record. The backend
// writes the specialty under a different key (see CreateDoctorPayload);
// both names are kept for byte-compatibility with the deployed API.
type Doctor struct {
	ID             ID       `json:"id"`
	Name           string   `json:"name"`
	Specialty      string   `json:"specialty"`
	Email          string   `json:"email"`
	AvailableTimes []string `json:"availableTimes"`
}
