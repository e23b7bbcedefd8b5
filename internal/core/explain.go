package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/edudb/normagraph/internal/normtext"
	"github.com/edudb/normagraph/internal/rules"
)

// Explanation merges the static rule text for a form with the current
// diagnosis for a schema, when one is given.
type Explanation struct {
	OK           bool       `json:"ok"`
	Form         string     `json:"form"`
	Requirements string     `json:"requirements"`
	Schema       string     `json:"schema,omitempty"`
	State        *FormState `json:"state,omitempty"`
	Problems     []string   `json:"problems,omitempty"`
}

// Explain returns the requirement text for a normal form and, if a schema
// is given, the schema's current verdict plus a problem list synthesized
// from the violation evidence. Unknown forms fail soft with a placeholder.
func (e *Engine) Explain(ctx context.Context, form, schema string) (*Explanation, error) {
	fn := normtext.NormalizeFormLabel(form)
	if fn == "" {
		return nil, &ValidationError{Msg: "missing normal form"}
	}

	text, known := rules.Requirements(fn)
	if !known {
		text = rules.Placeholder(fn)
	}
	exp := &Explanation{OK: true, Form: fn, Requirements: text}

	name := normtext.NormalizeText(schema)
	if name == "" {
		return exp, nil
	}

	state, err := e.FormStateFor(ctx, name, fn)
	if err != nil {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			// The rule text is still useful when the schema is unknown.
			return exp, nil
		}
		return nil, err
	}

	exp.Schema = name
	exp.State = state
	if state.Status == StatusViolated {
		exp.Problems = problemsFromEvidence(state.Evidence)
	}
	return exp, nil
}

// problemsFromEvidence rebuilds the problem list from whatever evidence
// properties are present. Several optional shapes can coexist on one edge;
// every present one is surfaced.
func problemsFromEvidence(evidence map[string]interface{}) []string {
	if len(evidence) == 0 {
		return nil
	}

	var problems []string
	if r, ok := evidence["reason"].(string); ok && r != "" {
		problems = append(problems, r)
	}
	for _, r := range stringList(evidence["reasons"]) {
		problems = append(problems, r)
	}
	if n, ok := asInt(evidence["partials"]); ok {
		problems = append(problems, fmt.Sprintf("Partial dependency count: %d", n))
	}
	if n, ok := asInt(evidence["transitives"]); ok {
		problems = append(problems, fmt.Sprintf("Transitive dependency count: %d", n))
	}
	if attrs := stringList(evidence["attributes"]); len(attrs) > 0 {
		problems = append(problems, "Offending attributes: "+strings.Join(attrs, ", "))
	}
	return problems
}

// stringList accepts the slice shapes a map can arrive in, depending on
// whether it came from the bolt protocol or from JSON.
func stringList(v interface{}) []string {
	var out []string
	switch list := v.(type) {
	case []string:
		for _, s := range list {
			if s != "" {
				out = append(out, s)
			}
		}
	case []interface{}:
		for _, item := range list {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func asInt(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}
