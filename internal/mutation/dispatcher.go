package mutation

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jwalitptl/clinic-portal/internal/backend"
	"github.com/jwalitptl/clinic-portal/internal/model"
	"github.com/jwalitptl/clinic-portal/internal/view"
)

// AddDoctorModal is the dialog the creation form lives in.
const AddDoctorModal = "addDoctor"

// DoctorForm carries the creation form fields. AvailableTimes preserves
// the order the checkboxes were checked in.
type DoctorForm struct {
	Name           string   `form:"doctorName"`
	Email          string   `form:"doctorEmail"`
	Phone          string   `form:"doctorPhone"`
	Password       string   `form:"doctorPassword"`
	Specialty      string   `form:"doctorSpecialty"`
	AvailableTimes []string `form:"availability"`
}

// ModalControl is the external dialog collaborator.
type ModalControl interface {
	Open(name string)
	Close(name string)
}

// Reloader refreshes the directory after a successful creation. A full
// reload, not a local insert.
type Reloader interface {
	LoadAll(ctx context.Context, role model.Role)
}

// Dispatcher performs doctor creation and reconciles the directory view
// afterwards.
type Dispatcher struct {
	transport backend.Transport
	modal     ModalControl
	directory Reloader
	logger    zerolog.Logger
}

func New(transport backend.Transport, modal ModalControl, directory Reloader, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		transport: transport,
		modal:     modal,
		directory: directory,
		logger:    logger.With().Str("component", "mutation").Logger(),
	}
}

// AddDoctor trims the textual fields, builds the creation payload, and
// forwards it with the session token. A missing token aborts before the
// payload is built or the network is touched. The returned flash is what
// the user sees.
func (d *Dispatcher) AddDoctor(ctx context.Context, form DoctorForm, token string, role model.Role) *view.Node {
	if token == "" {
		return view.Flash(view.FlashError, "Session expired. Please log in again.")
	}

	payload := backend.CreateDoctorPayload{
		Name:           strings.TrimSpace(form.Name),
		Email:          strings.TrimSpace(form.Email),
		Phone:          strings.TrimSpace(form.Phone),
		Password:       form.Password,
		Specialization: strings.TrimSpace(form.Specialty),
		AvailableTimes: form.AvailableTimes,
	}

	result := d.transport.CreateDoctor(ctx, payload, token)
	switch {
	case result.OK:
		d.modal.Close(AddDoctorModal)
		d.directory.LoadAll(ctx, role)
		return view.Flash(view.FlashSuccess, "Doctor added successfully!")

	case result.IsTransportFailure():
		d.logger.Error().Err(result.Err).Msg("doctor creation failed")
		return view.Flash(view.FlashError, "An unexpected error occurred.")

	default:
		message := result.Message
		if message == "" {
			message = "Failed to add doctor."
		}
		return view.Flash(view.FlashError, message)
	}
}
