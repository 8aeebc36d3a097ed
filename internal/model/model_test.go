package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole("admin"))
	assert.Equal(t, RoleAnonymousPatient, ParseRole("patient"))
	assert.Equal(t, RoleAuthenticatedPatient, ParseRole("loggedPatient"))

	// Anything outside the closed set maps to RoleUnknown
	assert.Equal(t, RoleUnknown, ParseRole(""))
	assert.Equal(t, RoleUnknown, ParseRole("doctor"))
	assert.Equal(t, RoleUnknown, ParseRole("Admin"))
}

func TestRoleRoundTrip(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleAnonymousPatient, RoleAuthenticatedPatient} {
		assert.Equal(t, r, ParseRole(r.String()))
	}
}

func TestNormalize(t *testing.T) {
	assert.Nil(t, Normalize(""))
	assert.Nil(t, Normalize("   "))
	assert.Nil(t, Normalize("\t\n"))

	v := Normalize("  Dr. A  ")
	require.NotNil(t, v)
	assert.Equal(t, "Dr. A", *v)
}

func TestIDUnmarshal(t *testing.T) {
	var d Doctor
	require.NoError(t, json.Unmarshal([]byte(`{"id": 7, "name": "Dr. A"}`), &d))
	assert.Equal(t, ID("7"), d.ID)

	require.NoError(t, json.Unmarshal([]byte(`{"id": "7", "name": "Dr. A"}`), &d))
	assert.Equal(t, ID("7"), d.ID)

	require.NoError(t, json.Unmarshal([]byte(`{"id": null}`), &d))
	assert.Equal(t, ID(""), d.ID)
}

func TestAppointmentRowProjection(t *testing.T) {
	appt := Appointment{
		ID:       "12",
		Name:     "Jane Roe",
		Phone:    "555-0101",
		Email:    "jane@x.com",
		DoctorID: "7",
		Date:     "2024-01-01",
	}
	row := appt.Row()
	assert.Equal(t, AppointmentRow{ID: "12", Name: "Jane Roe", Phone: "555-0101", Email: "jane@x.com"}, row)
}

func TestToday(t *testing.T) {
	fixed := func() time.Time {
		return time.Date(2024, 1, 1, 23, 30, 0, 0, time.Local)
	}
	assert.Equal(t, "2024-01-01", Today(fixed))
	assert.NotEmpty(t, Today(nil))
}
