package wizard

import (
	"math/rand"
	"strconv"
	"sync"
	"time"

	"wearecars/internal/domain"
)

// Registry tracks open wizard sessions. One staff member drives one wizard at
// a time, but the registry still serializes access so a second window cannot
// corrupt a draft.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Wizard
}

func NewRegistry() *Registry {
	return &Registry{sessions: map[string]*Wizard{}}
}

// Open starts a fresh wizard and returns its session id.
func (r *Registry) Open() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := strconv.FormatInt(time.Now().UnixNano(), 10) + "-" + strconv.Itoa(rand.Intn(1000000))
	r.sessions[id] = New()
	return id
}

// With runs fn against the named session while holding the registry lock.
// Terminal sessions are dropped after fn returns.
func (r *Registry) With(id string, fn func(w *Wizard) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.sessions[id]
	if !ok {
		return domain.NotFoundError{Resource: "wizard session"}
	}
	err := fn(w)
	if w.State() != StateInProgress {
		delete(r.sessions, id)
	}
	return err
}

// Len reports the number of open sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
