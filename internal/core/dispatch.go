package core

import (
	"context"
	"errors"
	"log"

	"github.com/edudb/normagraph/internal/normtext"
)

// Intent names produced by the classifier. Anything else dispatches as
// unknown.
const (
	IntentState        = "state_query"
	IntentRequirements = "requirements_query"
	IntentUnknown      = "unknown"
)

// Dispatch routes a classified intent to the matching read operation and
// shapes the answer as a uniform {ok, ...} document for the chat surface.
// Expected domain conditions (missing schema, unevaluated form, unknown
// intent) come back as data, never as transport errors.
func (e *Engine) Dispatch(ctx context.Context, intent, schema, form string) map[string]interface{} {
	switch intent {
	case IntentState:
		if normtext.NormalizeText(schema) == "" {
			return failure(intent, "a schema name is required to query normal-form state")
		}
		if normtext.NormalizeFormLabel(form) != "" {
			state, err := e.FormStateFor(ctx, schema, form)
			if err != nil {
				return failureFromErr(intent, err)
			}
			return map[string]interface{}{
				"ok":       true,
				"intent":   intent,
				"schema":   state.Schema,
				"form":     state.Form,
				"status":   state.Status,
				"evidence": state.Evidence,
			}
		}
		state, err := e.SchemaStateFor(ctx, schema)
		if err != nil {
			return failureFromErr(intent, err)
		}
		return map[string]interface{}{
			"ok":     true,
			"intent": intent,
			"schema": state.Schema,
			"forms":  state.Forms,
		}

	case IntentRequirements:
		if normtext.NormalizeFormLabel(form) == "" {
			return failure(intent, "a normal form (1FN, 2FN or 3FN) is required to list requirements")
		}
		exp, err := e.Explain(ctx, form, schema)
		if err != nil {
			return failureFromErr(intent, err)
		}
		out := map[string]interface{}{
			"ok":           true,
			"intent":       intent,
			"form":         exp.Form,
			"requirements": exp.Requirements,
		}
		if exp.Schema != "" {
			out["schema"] = exp.Schema
			out["state"] = exp.State
		}
		if len(exp.Problems) > 0 {
			out["problems"] = exp.Problems
		}
		return out

	default:
		return map[string]interface{}{
			"ok":          false,
			"intent":      IntentUnknown,
			"unsupported": true,
			"message":     "I could not match the query to a supported question. Ask about a schema's normal-form state or about a form's requirements.",
		}
	}
}

func failure(intent, msg string) map[string]interface{} {
	return map[string]interface{}{"ok": false, "intent": intent, "error": msg}
}

func failureFromErr(intent string, err error) map[string]interface{} {
	var se *StoreError
	if errors.As(err, &se) {
		log.Printf("dispatch %s: %v", intent, err)
		return failure(intent, "the fact store is unavailable")
	}
	return failure(intent, err.Error())
}
