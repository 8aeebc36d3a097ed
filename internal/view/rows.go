package view

import "github.com/jwalitptl/clinic-portal/internal/model"

// scheduleColumns is the appointment table width; placeholder rows span it.
const scheduleColumns = "4"

// PatientRow renders one appointment projection as a table row.
func PatientRow(row model.AppointmentRow) *Node {
	tr := Elem("tr").
		AddClass("patient-row").
		SetAttr("data-appointment-id", row.ID.String())
	tr.Append(
		Elem("td").SetText(row.ID.String()),
		Elem("td").SetText(row.Name),
		Elem("td").SetText(row.Phone),
		Elem("td").SetText(row.Email),
	)
	return tr
}

func spanningRow(class, text string) *Node {
	td := Elem("td").
		SetAttr("colspan", scheduleColumns).
		SetText(text)
	return Elem("tr").AddClass(class).Append(td)
}

// EmptyScheduleRow is the informational row shown when a date has no
// appointments. Not an error state.
func EmptyScheduleRow() *Node {
	return spanningRow("noPatientRecord", "No Appointments found for today.")
}

// ScheduleErrorRow is the terminal row for a failed appointment fetch.
func ScheduleErrorRow() *Node {
	return spanningRow("loadError", "Error loading appointments. Try again later.")
}

// NoDoctorsPlaceholder replaces the card list when a filter matches nothing.
func NoDoctorsPlaceholder() *Node {
	return Elem("p").
		AddClass("noPatientRecord").
		SetText("No doctors found with the given filters.")
}
