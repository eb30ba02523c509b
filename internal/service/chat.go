package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkordes/travel-planner/backend/internal/domain"
	"github.com/pkordes/travel-planner/backend/internal/session"
)

// ChatService answers sidebar questions and records them in the caller's
// session log.
type ChatService struct {
	gen Generator
}

// NewChatService constructs a ChatService.
func NewChatService(gen Generator) *ChatService {
	return &ChatService{gen: gen}
}

// Ask sends query to the generator in chat mode and appends the exchange to
// log. The log is only touched when an answer came back.
// Returns domain.ErrValidation if query is blank.
func (s *ChatService) Ask(ctx context.Context, log *session.ChatLog, query string) (domain.ChatTurn, error) {
	if strings.TrimSpace(query) == "" {
		return domain.ChatTurn{}, fmt.Errorf("%w: query is required", domain.ErrValidation)
	}

	answer, err := s.gen.Chat(ctx, query)
	if err != nil {
		return domain.ChatTurn{}, fmt.Errorf("service.ChatService.Ask: %w", err)
	}
	return log.Append(query, answer), nil
}
