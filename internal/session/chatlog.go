// Package session holds per-user interactive state that lives only as long as
// the user's session: the chat sidebar history.
package session

import (
	"sync"

	"github.com/pkordes/travel-planner/backend/internal/domain"
)

// ChatLog is an append-only, in-memory list of chat turns for one session.
// Appends are serialized so turns appear in the order their requests finished.
type ChatLog struct {
	mu    sync.Mutex
	turns []domain.ChatTurn
}

// NewChatLog returns an empty log.
func NewChatLog() *ChatLog {
	return &ChatLog{}
}

// Append adds one turn to the end of the log.
func (l *ChatLog) Append(query, response string) domain.ChatTurn {
	turn := domain.ChatTurn{Query: query, Response: response}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.turns = append(l.turns, turn)
	return turn
}

// Turns returns a copy of the full history in insertion order.
// A new log returns an empty, non-nil slice.
func (l *ChatLog) Turns() []domain.ChatTurn {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.ChatTurn, len(l.turns))
	copy(out, l.turns)
	return out
}

// Len returns the number of turns recorded so far.
func (l *ChatLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.turns)
}
