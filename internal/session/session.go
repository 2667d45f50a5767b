// Package session holds per-conversation state: the declared role and the
// ordered transcript of exchanged turns.
//
// A Session is an explicit, passable aggregate with no ambient global
// instance; independent conversations get independent aggregates. Callers
// must serialize calls per session — the aggregate itself takes no locks.
package session

import (
	"github.com/google/uuid"

	"github.com/sahla-io/dukkan/internal/policy"
)

// Transcript speakers.
const (
	SpeakerUser      = "user"
	SpeakerAssistant = "assistant"
)

// Turn is one transcript entry.
type Turn struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// Session is the aggregate of one logical conversation.
type Session struct {
	id    string
	role  policy.Role
	turns []Turn
}

// New creates a session with a fresh identifier and an empty transcript.
func New(role policy.Role) *Session {
	return &Session{id: uuid.NewString(), role: role}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Role returns the currently declared role.
func (s *Session) Role() policy.Role { return s.role }

// SetRole updates the declared role. The transcript is untouched.
func (s *Session) SetRole(r policy.Role) { s.role = r }

// Append adds one turn to the transcript.
func (s *Session) Append(speaker, text string) {
	s.turns = append(s.turns, Turn{Speaker: speaker, Text: text})
}

// Turns returns a copy of the transcript in order.
func (s *Session) Turns() []Turn {
	cp := make([]Turn, len(s.turns))
	copy(cp, s.turns)
	return cp
}

// Len returns the number of transcript entries.
func (s *Session) Len() int { return len(s.turns) }

// Reset clears the transcript. The role and identifier persist.
func (s *Session) Reset() { s.turns = nil }

// Info is the operator-facing session summary.
type Info struct {
	ID       string `json:"id"`
	Role     string `json:"role"`
	Messages int    `json:"messages_count"`
}

// Info returns a snapshot summary of the session.
func (s *Session) Info() Info {
	return Info{ID: s.id, Role: s.role.String(), Messages: len(s.turns)}
}
