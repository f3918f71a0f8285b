package storage

import (
	"sync"

	"github.com/aliskhannn/sunhwa-master/internal/service"
)

// SessionStorage keeps the session controller of every chat in memory.
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[int64]*service.Controller
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[int64]*service.Controller),
	}
}

// Store saves the controller for a chat, replacing any previous one.
func (s *SessionStorage) Store(chatID int64, c *service.Controller) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[chatID] = c
}

// Get retrieves the controller of a chat, or nil if the chat is on the home screen.
func (s *SessionStorage) Get(chatID int64) *service.Controller {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[chatID]
}

// Delete discards the controller of a chat.
func (s *SessionStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}

// Len returns the number of chats with an active session.
func (s *SessionStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
