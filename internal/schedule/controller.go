package schedule

import (
	"context"
	"html/template"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/jwalitptl/clinic-portal/internal/backend"
	"github.com/jwalitptl/clinic-portal/internal/model"
	"github.com/jwalitptl/clinic-portal/internal/view"
)

// Controller owns the appointment-table view for one browser session:
// the selected date, the optional patient-name filter, and the table body
// the rows render into.
type Controller struct {
	transport backend.Transport
	logger    zerolog.Logger
	now       func() time.Time

	mu          sync.Mutex
	table       *view.Container
	date        string
	patientName *string

	gen atomic.Uint64
}

func New(transport backend.Transport, logger zerolog.Logger) *Controller {
	c := &Controller{
		transport: transport,
		logger:    logger.With().Str("component", "schedule").Logger(),
		now:       time.Now,
		table:     view.NewContainer(),
	}
	c.date = model.Today(c.now)
	return c
}

// SetClock fixes the controller's notion of "today". Test hook.
func (c *Controller) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

func (c *Controller) SelectedDate() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.date
}

// SetDate takes the date-picker value. Anything that is not a well-formed
// YYYY-MM-DD date is ignored and the current selection stays.
func (c *Controller) SetDate(date string) {
	if _, err := time.Parse(model.DateFormat, date); err != nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.date = date
}

// SetPatientName updates the name filter from the search box, mapping a
// blank value back to nil.
func (c *Controller) SetPatientName(raw string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.patientName = model.Normalize(raw)
}

// ResetToToday moves the selection back to the current date and returns it
// so the caller can reflect it into the date-picker element.
func (c *Controller) ResetToToday() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.date = model.Today(c.now)
	return c.date
}

// Load fetches the appointments for the current (date, name) state and
// rebuilds the table body. The previous row set is discarded before the
// outcome is acted on, so a failed cycle never shows merged rows. The
// token is read by the caller fresh per operation.
func (c *Controller) Load(ctx context.Context, token string) {
	c.mu.Lock()
	filter := model.ScheduleFilter{Date: c.date, PatientName: c.patientName}
	c.mu.Unlock()

	gen := c.gen.Add(1)
	appointments, err := c.transport.FetchAppointments(ctx, filter, token)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen.Load() {
		return
	}

	c.table.Clear()
	if err != nil {
		c.logger.Error().Err(err).Str("date", filter.Date).Msg("failed to load appointments")
		c.table.Append(view.ScheduleErrorRow())
		return
	}
	if len(appointments) == 0 {
		c.table.Append(view.EmptyScheduleRow())
		return
	}
	for _, appt := range appointments {
		c.table.Append(view.PatientRow(appt.Row()))
	}
}

// Rows exposes the table body content for rendering and tests.
func (c *Controller) Rows() []*view.Node {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.table.Nodes()
}

// HTML renders the current table body.
func (c *Controller) HTML() template.HTML {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.table.HTML()
}
