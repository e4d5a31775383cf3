package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/omarshaarawi/spottergrid/internal/models"
)

// Repository keeps submitted rosters keyed by chat or session ID. Boards
// are never stored; they are rebuilt from the roster on every render.
type Repository struct {
	sessions map[string]models.Session
	mu       sync.RWMutex
	now      func() time.Time
}

func NewRepository() *Repository {
	return &Repository{
		sessions: make(map[string]models.Session),
		now:      time.Now,
	}
}

func (r *Repository) NewKey() string {
	return uuid.NewString()
}

func (r *Repository) Save(key string, session models.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session.UpdatedAt = r.now()
	r.sessions[key] = session
}

func (r *Repository) Get(key string) (models.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[key]
	return session, ok
}

func (r *Repository) Delete(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, key)
}

func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Prune drops sessions not updated within olderThan and returns how many
// were removed.
func (r *Repository) Prune(olderThan time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-olderThan)
	removed := 0
	for key, session := range r.sessions {
		if session.UpdatedAt.Before(cutoff) {
			delete(r.sessions, key)
			removed++
		}
	}
	return removed
}
