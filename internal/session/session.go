// Package session holds in-memory conversation state. Sessions live and
// die with the process; nothing is persisted to disk.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/inkwhale/inkwhale/internal/schema"
)

// Session holds one conversation's transcript and metadata. Methods are
// safe for concurrent use, though the orchestrator drives exactly one turn
// at a time.
type Session struct {
	mu        sync.Mutex
	id        string
	messages  schema.Messages
	createdAt time.Time
	updatedAt time.Time
}

// New returns an empty session with a fresh id.
func New() *Session {
	now := time.Now()
	return &Session{
		id:        uuid.NewString(),
		messages:  schema.NewMessages(),
		createdAt: now,
		updatedAt: now,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

// CreatedAt returns when the session was created.
func (s *Session) CreatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createdAt
}

// UpdatedAt returns when the transcript last changed.
func (s *Session) UpdatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}

// AddSystem installs the system message at transcript position 0,
// replacing any previous one.
func (s *Session) AddSystem(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages.AddSystem(content)
	s.updatedAt = time.Now()
}

// AddUser appends a user message to the transcript.
func (s *Session) AddUser(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages.AddUser(content)
	s.updatedAt = time.Now()
}

// AddAssistant appends an assistant message to the transcript.
func (s *Session) AddAssistant(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages.AddAssistant(content)
	s.updatedAt = time.Now()
}

// RemoveAt deletes the message at index i. Out-of-range indexes are a no-op.
func (s *Session) RemoveAt(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages.RemoveAt(i)
	s.updatedAt = time.Now()
}

// Len returns the number of messages in the transcript.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.messages.Len()
}

// History returns a copy of the transcript limited to the system message
// plus the last window conversation messages. window <= 0 returns everything.
func (s *Session) History(window int) schema.Messages {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.messages.Window(window)
}

// Snapshot returns a full copy of the transcript.
func (s *Session) Snapshot() schema.Messages {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.messages.Clone()
}

// Reset wipes the transcript and assigns a fresh id.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = uuid.NewString()
	s.messages = schema.NewMessages()
	now := time.Now()
	s.createdAt = now
	s.updatedAt = now
}
