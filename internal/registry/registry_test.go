package registry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jwalitptl/clinic-portal/internal/directory"
)

func TestGetReturnsSameSessionForSameID(t *testing.T) {
	built := 0
	r := New(time.Minute, func() *Session {
		built++
		return &Session{Directory: &directory.Controller{}}
	})

	a := r.Get("sid-1")
	b := r.Get("sid-1")
	assert.Same(t, a, b)
	assert.Equal(t, 1, built)
}

func TestGetBuildsPerSession(t *testing.T) {
	built := 0
	r := New(time.Minute, func() *Session {
		built++
		return &Session{}
	})

	a := r.Get("sid-1")
	b := r.Get("sid-2")
	assert.NotSame(t, a, b)
	assert.Equal(t, 2, built)
}
