package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-planner/backend/internal/domain"
	"github.com/pkordes/travel-planner/backend/internal/service"
	"github.com/pkordes/travel-planner/backend/internal/session"
)

func answeringGenerator() *mockGenerator {
	return &mockGenerator{
		chat: func(_ context.Context, query string) (string, error) {
			return "answer to " + query, nil
		},
	}
}

func TestChatService_Ask_AppendsInOrder(t *testing.T) {
	svc := service.NewChatService(answeringGenerator())
	log := session.NewChatLog()

	for i := range 3 {
		turn, err := svc.Ask(context.Background(), log, fmt.Sprintf("q%d", i))
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("answer to q%d", i), turn.Response)
	}

	assert.Equal(t, []domain.ChatTurn{
		{Query: "q0", Response: "answer to q0"},
		{Query: "q1", Response: "answer to q1"},
		{Query: "q2", Response: "answer to q2"},
	}, log.Turns())
}

func TestChatService_Ask_BlankQuery(t *testing.T) {
	svc := service.NewChatService(answeringGenerator())
	log := session.NewChatLog()

	_, err := svc.Ask(context.Background(), log, "   ")

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, log.Len())
}

func TestChatService_Ask_GeneratorFails_LogUntouched(t *testing.T) {
	gen := &mockGenerator{
		chat: func(_ context.Context, _ string) (string, error) {
			return "", fmt.Errorf("%w: timeout", domain.ErrGeneration)
		},
	}
	svc := service.NewChatService(gen)
	log := session.NewChatLog()
	log.Append("earlier", "reply")

	_, err := svc.Ask(context.Background(), log, "Is it rainy?")

	assert.ErrorIs(t, err, domain.ErrGeneration)
	assert.Equal(t, 1, log.Len())
}
