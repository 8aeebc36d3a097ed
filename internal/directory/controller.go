package directory

import (
	"context"
	"html/template"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/jwalitptl/clinic-portal/internal/backend"
	"github.com/jwalitptl/clinic-portal/internal/model"
	"github.com/jwalitptl/clinic-portal/internal/view"
	"github.com/jwalitptl/clinic-portal/pkg/apperror"
)

// Controller owns the doctor catalog view for one browser session: the
// filter triple, the last fetch result, and the container the cards render
// into. Re-render is always total; the container is cleared and rebuilt,
// never patched.
type Controller struct {
	transport backend.Transport
	logger    zerolog.Logger

	mu        sync.Mutex
	container *view.Container
	filters   model.DoctorFilter
	doctors   []model.Doctor

	// gen orders overlapping fetches; a response that lost the race is
	// discarded before it touches the container.
	gen atomic.Uint64
}

func New(transport backend.Transport, logger zerolog.Logger) *Controller {
	return &Controller{
		transport: transport,
		logger:    logger.With().Str("component", "directory").Logger(),
		container: view.NewContainer(),
	}
}

// LoadAll fetches the full catalog and rebuilds the card list for the
// given role. A failed load is logged and leaves the container exactly as
// it was; the user sees nothing.
func (c *Controller) LoadAll(ctx context.Context, role model.Role) {
	gen := c.gen.Add(1)

	doctors, err := c.transport.FetchCatalog(ctx)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to load doctor cards")
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen.Load() {
		return
	}
	c.doctors = doctors
	c.renderLocked(role)
}

// FilterChange normalizes the three filter inputs, fetches the matching
// set, and rebuilds the container. It returns a flash node when the user
// must be told something, nil otherwise.
//
// A transport failure leaves the container untouched and alerts; a backend
// rejection carries no doctors and renders like an empty match. The
// asymmetry with LoadAll is deliberate.
func (c *Controller) FilterChange(ctx context.Context, role model.Role, name, timeSlot, specialty string) *view.Node {
	filter := model.DoctorFilter{
		Name:      model.Normalize(name),
		Time:      model.Normalize(timeSlot),
		Specialty: model.Normalize(specialty),
	}
	gen := c.gen.Add(1)

	doctors, err := c.transport.FetchFiltered(ctx, filter)
	if err != nil && apperror.IsTransport(err) {
		c.logger.Error().Err(err).Msg("doctor filtering failed")
		return view.Flash(view.FlashError, "Something went wrong while filtering doctors.")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen.Load() {
		return nil
	}
	c.filters = filter
	c.doctors = doctors
	if len(doctors) == 0 {
		c.container.Replace(view.NoDoctorsPlaceholder())
		return nil
	}
	c.renderLocked(role)
	return nil
}

func (c *Controller) renderLocked(role model.Role) {
	cards := make([]*view.Node, 0, len(c.doctors))
	for _, d := range c.doctors {
		cards = append(cards, view.RenderCard(d, role))
	}
	c.container.Replace(cards...)
}

// Doctor looks up an entity from the last fetch result. Cards are 1:1 with
// that result; an id that misses was rendered by an earlier cycle.
func (c *Controller) Doctor(id model.ID) (model.Doctor, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, d := range c.doctors {
		if d.ID == id {
			return d, true
		}
	}
	return model.Doctor{}, false
}

// RemoveDoctor drops exactly the given doctor's card from the container,
// without a re-fetch. Used after a confirmed admin delete.
func (c *Controller) RemoveDoctor(id model.ID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := c.container.RemoveWhere(func(n *view.Node) bool {
		v, ok := n.Attr(view.DoctorIDAttr)
		return ok && v == id.String()
	})
	if removed == 0 {
		return false
	}
	kept := c.doctors[:0]
	for _, d := range c.doctors {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	c.doctors = kept
	return true
}

// Filters returns the filter triple from the last completed filter cycle.
func (c *Controller) Filters() model.DoctorFilter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters
}

// Nodes exposes the container content for rendering and tests.
func (c *Controller) Nodes() []*view.Node {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.container.Nodes()
}

// HTML renders the current container content.
func (c *Controller) HTML() template.HTML {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.container.HTML()
}
