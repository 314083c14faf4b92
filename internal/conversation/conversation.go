// Package conversation tracks which users are mid-way through a /report
// submission. State lives only in memory: a restart resets everyone to idle
// and the user re-issues /report.
package conversation

import (
	"sync"

	"telegram-mission-bot/internal/models"
)

type Manager struct {
	mu     sync.RWMutex
	states map[int64]models.State
}

func NewManager() *Manager {
	return &Manager{states: make(map[int64]models.State)}
}

func (m *Manager) Get(userID int64) models.State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.states[userID] // missing entry reads as StateIdle
}

func (m *Manager) Set(userID int64, st models.State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if st == models.StateIdle {
		delete(m.states, userID)
		return
	}
	m.states[userID] = st
}
