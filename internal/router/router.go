// Package router classifies free-form chat text into one of the supported
// intents using an LLM. The classifier is untrusted: its params are
// re-normalized here and anything unparseable degrades to unknown.
package router

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/edudb/normagraph/internal/core"
	"github.com/edudb/normagraph/internal/llm"
	"github.com/edudb/normagraph/internal/normtext"
)

type Params struct {
	Schema string `json:"schema"`
	Form   string `json:"form"`
}

type Route struct {
	Intent string `json:"intent"`
	Params Params `json:"params"`
}

type Router struct {
	LLM    llm.LLMClient
	Prompt string
}

func New(client llm.LLMClient, prompt string) *Router {
	if prompt == "" {
		prompt = DefaultPrompt
	}
	return &Router{LLM: client, Prompt: prompt}
}

// Route classifies text into state_query, requirements_query or unknown.
// Classifier failures are not surfaced as errors; they route to unknown so
// the caller can render a neutral message.
func (r *Router) Route(ctx context.Context, text string) Route {
	response, err := r.LLM.Generate(ctx, fmt.Sprintf(r.Prompt, text))
	if err != nil {
		log.Printf("intent classification failed: %v", err)
		return Route{Intent: core.IntentUnknown}
	}

	routed, err := parseJSON[Route](response)
	if err != nil {
		log.Printf("intent response unparseable: %v", err)
		return Route{Intent: core.IntentUnknown}
	}

	switch routed.Intent {
	case core.IntentState, core.IntentRequirements:
	default:
		return Route{Intent: core.IntentUnknown}
	}

	routed.Params.Schema = normtext.NormalizeText(routed.Params.Schema)
	routed.Params.Form = normtext.NormalizeFormLabel(routed.Params.Form)
	return routed
}

// parseJSON extracts and unmarshals the first JSON object in a completion,
// tolerating surrounding markdown or prose.
func parseJSON[T any](response string) (T, error) {
	var zero T

	start := -1
	end := -1
	for i, c := range response {
		if c == '{' {
			start = i
			break
		}
	}
	for i := len(response) - 1; i >= 0; i-- {
		if response[i] == '}' {
			end = i + 1
			break
		}
	}
	if start == -1 || end == -1 || start >= end {
		return zero, fmt.Errorf("no JSON object found in response")
	}

	var result T
	if err := json.Unmarshal([]byte(response[start:end]), &result); err != nil {
		return zero, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	return result, nil
}
