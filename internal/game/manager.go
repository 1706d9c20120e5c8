package game

import (
	"sync"
	"time"
)

type session struct {
	mu       sync.Mutex
	engine   *Engine
	lastUsed time.Time
}

// Manager keeps one engine per chat and runs actions on the same chat one
// at a time.
type Manager struct {
	sessions map[int64]*session
	mu       sync.RWMutex
	factory  func() *Engine
}

func NewManager(factory func() *Engine) *Manager {
	return &Manager{
		sessions: make(map[int64]*session),
		factory:  factory,
	}
}

func (m *Manager) session(id int64) *session {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		return s
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		return s
	}
	s = &session{engine: m.factory(), lastUsed: time.Now()}
	m.sessions[id] = s
	return s
}

// Do runs fn with the chat's engine, creating the engine on first use.
func (m *Manager) Do(id int64, fn func(*Engine) error) error {
	s := m.session(id)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastUsed = time.Now()
	return fn(s.engine)
}

// Prune drops sessions untouched for at least idle and returns how many went.
// A pruned chat starts over with a fresh deck on its next action.
func (m *Manager) Prune(idle time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	pruned := 0
	for id, s := range m.sessions {
		if !s.mu.TryLock() {
			continue
		}
		if time.Since(s.lastUsed) >= idle {
			delete(m.sessions, id)
			pruned++
		}
		s.mu.Unlock()
	}
	return pruned
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
