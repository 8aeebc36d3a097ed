package view

import (
	"fmt"

	"github.com/jwalitptl/clinic-portal/internal/model"
)

// Trigger identifies the element whose activation opened the overlay.
type Trigger struct {
	Source string
}

// BookingOverlay renders the appointment-booking dialog for a doctor and
// the patient profile fetched at click time. Fire-and-forget from the
// controllers' perspective; it owns nothing after the render.
type BookingOverlay struct{}

func (BookingOverlay) Open(trigger Trigger, doctor model.Doctor, patient *model.Patient) *Node {
	overlay := Elem("div").
		AddClass("booking-overlay", "active").
		SetAttr("id", "bookingOverlay").
		SetAttr("hx-swap-oob", "true").
		SetAttr("data-trigger", trigger.Source).
		SetAttr(DoctorIDAttr, doctor.ID.String())

	heading := Elem("h2").SetText(fmt.Sprintf("Book an appointment with Dr. %s", doctor.Name))
	overlay.Append(heading)

	details := Elem("div").AddClass("booking-details")
	details.Append(
		Elem("p").SetText("Specialization: "+doctor.Specialty),
		Elem("p").SetText("Patient: "+patient.Name),
		Elem("p").SetText("Contact: "+patient.Email),
	)
	overlay.Append(details)

	slots := Elem("div").AddClass("slot-options")
	for _, t := range doctor.AvailableTimes {
		slots.Append(Elem("button").AddClass("slot-btn").SetText(t))
	}
	overlay.Append(slots)

	return overlay
}
