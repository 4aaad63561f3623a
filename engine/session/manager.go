package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"freightdesk/engine/quote"
	"freightdesk/models"
)

var ErrSessionNotFound = errors.New("session not found")

type managed struct {
	sess    *Session
	touched time.Time
}

// Manager holds the live editing sessions. Sessions expire after the TTL
// without being touched; Sweep is run periodically from main.
type Manager struct {
	src quote.Source
	clk Clock
	ttl time.Duration

	mu       sync.Mutex
	sessions map[uuid.UUID]*managed
}

func NewManager(src quote.Source, clk Clock, ttl time.Duration) *Manager {
	return &Manager{
		src:      src,
		clk:      clk,
		ttl:      ttl,
		sessions: make(map[uuid.UUID]*managed),
	}
}

// Open creates a session for a new draft or, when existing is non-nil, for
// editing a loaded booking.
func (m *Manager) Open(user *models.AppUser, existing *models.Booking) *Session {
	s := New(user, existing, m.src, m.clk)
	m.mu.Lock()
	m.sessions[s.ID] = &managed{sess: s, touched: m.clk.Now()}
	m.mu.Unlock()
	return s
}

func (m *Manager) Get(id uuid.UUID) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	entry.touched = m.clk.Now()
	return entry.sess, nil
}

func (m *Manager) Close(id uuid.UUID) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Sweep drops sessions idle past the TTL and reports how many were removed.
func (m *Manager) Sweep() int {
	cutoff := m.clk.Now().Add(-m.ttl)
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, entry := range m.sessions {
		if entry.touched.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}
