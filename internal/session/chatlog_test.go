package session_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-planner/backend/internal/domain"
	"github.com/pkordes/travel-planner/backend/internal/session"
)

func TestChatLog_StartsEmpty(t *testing.T) {
	l := session.NewChatLog()

	turns := l.Turns()

	assert.NotNil(t, turns)
	assert.Empty(t, turns)
	assert.Zero(t, l.Len())
}

func TestChatLog_AppendKeepsCallOrder(t *testing.T) {
	l := session.NewChatLog()

	const n = 5
	for i := range n {
		l.Append(fmt.Sprintf("q%d", i), fmt.Sprintf("a%d", i))
	}

	turns := l.Turns()
	require.Len(t, turns, n)
	for i, turn := range turns {
		assert.Equal(t, domain.ChatTurn{Query: fmt.Sprintf("q%d", i), Response: fmt.Sprintf("a%d", i)}, turn)
	}
}

func TestChatLog_TurnsIsACopy(t *testing.T) {
	l := session.NewChatLog()
	l.Append("q", "a")

	turns := l.Turns()
	turns[0].Query = "changed"

	assert.Equal(t, "q", l.Turns()[0].Query)
}

func TestChatLog_ConcurrentAppends(t *testing.T) {
	l := session.NewChatLog()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Append(fmt.Sprintf("q%d", i), "a")
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, l.Len())
}
