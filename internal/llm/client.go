package llm

import (
	"context"
)

// LLMClient is the single surface the intent router needs from a provider.
type LLMClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
