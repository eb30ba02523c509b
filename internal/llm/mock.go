package llm

import (
	"context"
	"fmt"
	"strings"
)

// MockGenerator returns canned replies without calling any service.
// It backs LLM_MOCK=true for local runs without an API key.
type MockGenerator struct{}

// NewMockGenerator returns a MockGenerator.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// Generate echoes the request line of a plan prompt back as a sample itinerary.
func (m *MockGenerator) Generate(_ context.Context, prompt string) (string, error) {
	request := prompt
	if _, after, ok := strings.Cut(prompt, "The user's request is:\n"); ok {
		request = strings.TrimSpace(after)
	}
	return fmt.Sprintf("Sample itinerary (offline mode).\n\nBased on: %s", request), nil
}

// Chat replies with a fixed offline notice that quotes query.
func (m *MockGenerator) Chat(_ context.Context, query string) (string, error) {
	return fmt.Sprintf("Offline mode: I can't look that up right now, but you asked %q.", query), nil
}
