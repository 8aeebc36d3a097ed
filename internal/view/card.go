package view

import (
	"fmt"
	"strings"

	"github.com/jwalitptl/clinic-portal/internal/model"
)

// Fragment endpoints the rendered actions point back at. The attributes are
// htmx vocabulary; the click-time behavior lives in the handlers.
const (
	doctorDeletePath = "/fragments/doctors/%s"
	doctorBookPath   = "/fragments/doctors/%s/book"
)

// DoctorIDAttr marks a card with the entity it renders.
const DoctorIDAttr = "data-doctor-id"

// LoginPromptAttr carries the client-side prompt for visitors who are not
// logged in; the button never reaches the network.
const LoginPromptAttr = "data-prompt"

// RenderCard builds the card fragment for one doctor as seen by the given
// role. Pure: same inputs, same card. The info block is identical for every
// role; the action set is role dispatch over the closed Role set, and an
// unrecognized role silently gets an info-only card.
func RenderCard(d model.Doctor, role model.Role) *Node {
	card := Elem("div").
		AddClass("doctor-card").
		SetAttr(DoctorIDAttr, d.ID.String())

	info := Elem("div").AddClass("doctor-info")
	info.Append(
		Elem("h3").SetText(d.Name),
		Elem("p").SetText("Specialization: "+d.Specialty),
		Elem("p").SetText("Email: "+d.Email),
		Elem("p").SetText("Available Times: "+strings.Join(d.AvailableTimes, ", ")),
	)

	actions := Elem("div").AddClass("card-actions")

	switch role {
	case model.RoleAdmin:
		del := Elem("button").
			AddClass("adminBtn").
			SetText("Delete").
			SetAttr("hx-delete", fmt.Sprintf(doctorDeletePath, d.ID)).
			SetAttr("hx-confirm", fmt.Sprintf("Are you sure you want to delete Dr. %s?", d.Name)).
			SetAttr("hx-target", "closest .doctor-card").
			SetAttr("hx-swap", "delete")
		actions.Append(del)

	case model.RoleAnonymousPatient:
		book := Elem("button").
			AddClass("book-btn").
			SetText("Book Now").
			SetAttr(LoginPromptAttr, "Please log in to book an appointment.")
		actions.Append(book)

	case model.RoleAuthenticatedPatient:
		book := Elem("button").
			AddClass("book-btn").
			SetText("Book Now").
			SetAttr("hx-post", fmt.Sprintf(doctorBookPath, d.ID)).
			SetAttr("hx-target", "#flash").
			SetAttr("hx-swap", "outerHTML")
		actions.Append(book)
	}

	card.Append(info, actions)
	return card
}

// CardActions returns the action buttons a rendered card exposes.
func CardActions(card *Node) []*Node {
	return card.FindTag("button")
}
