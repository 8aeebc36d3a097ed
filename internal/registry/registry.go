package registry

import (
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/jwalitptl/clinic-portal/internal/backend"
	"github.com/jwalitptl/clinic-portal/internal/directory"
	"github.com/jwalitptl/clinic-portal/internal/mutation"
	"github.com/jwalitptl/clinic-portal/internal/schedule"
	"github.com/jwalitptl/clinic-portal/internal/view"
)

// Session bundles the controllers that together own one browser session's
// view state. Each controller owns its container exclusively.
type Session struct {
	Directory  *directory.Controller
	Schedule   *schedule.Controller
	Dispatcher *mutation.Dispatcher
	Modal      *view.Modal
}

// Registry keeps one Session per session id with idle expiry, so state
// survives across fragment requests without living forever.
type Registry struct {
	mu       sync.Mutex
	sessions *cache.Cache
	build    func() *Session
}

func New(ttl time.Duration, build func() *Session) *Registry {
	return &Registry{
		sessions: cache.New(ttl, 2*ttl),
		build:    build,
	}
}

// NewDefault wires the standard per-session controller set.
func NewDefault(ttl time.Duration, transport backend.Transport, logger zerolog.Logger) *Registry {
	return New(ttl, func() *Session {
		dir := directory.New(transport, logger)
		modal := view.NewModal()
		return &Session{
			Directory:  dir,
			Schedule:   schedule.New(transport, logger),
			Dispatcher: mutation.New(transport, modal, dir, logger),
			Modal:      modal,
		}
	})
}

// Get returns the session's controller set, creating it on first use and
// refreshing its expiry on every access.
func (r *Registry) Get(sid string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.sessions.Get(sid); ok {
		s := v.(*Session)
		r.sessions.SetDefault(sid, s)
		return s
	}
	s := r.build()
	r.sessions.SetDefault(sid, s)
	return s
}
