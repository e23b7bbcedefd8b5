package core

import (
	"context"

	"github.com/edudb/normagraph/internal/driver"
	"github.com/edudb/normagraph/internal/normtext"
)

// FormState is the current verdict for one (schema, form) pair. Evidence
// carries whatever optional diagnostic properties the compliance edge has.
type FormState struct {
	Schema   string                 `json:"schema"`
	Form     string                 `json:"form"`
	Status   string                 `json:"status"`
	Evidence map[string]interface{} `json:"evidence,omitempty"`
}

type SchemaState struct {
	OK     bool        `json:"ok"`
	Schema string      `json:"schema"`
	Forms  []FormState `json:"forms"`
}

// FormStateFor reports the verdict for one schema and one normal form.
// An unevaluated pair reports SIN_EVALUAR; only a schema missing from the
// store entirely is a NotFoundError.
func (e *Engine) FormStateFor(ctx context.Context, schema, form string) (*FormState, error) {
	name := normtext.NormalizeText(schema)
	if name == "" {
		return nil, &ValidationError{Msg: "missing schema name"}
	}
	fn := normtext.NormalizeFormLabel(form)
	if fn == "" {
		return nil, &ValidationError{Msg: "missing normal form"}
	}

	res, err := e.Driver.ExecuteQuery(ctx, driver.FormStateQuery, map[string]interface{}{
		"schema": name,
		"form":   fn,
	})
	if err != nil {
		return nil, &StoreError{Op: "form state read", Err: err}
	}
	if len(res.Records) == 0 {
		return nil, &NotFoundError{Schema: name}
	}

	rec := res.Records[0]
	state := &FormState{Schema: name, Form: fn, Status: StatusUnevaluated}
	if v, ok := rec.Get("status"); ok {
		if s, ok := v.(string); ok && s != "" {
			state.Status = s
		}
	}
	for _, key := range []string{"satisfied_evidence", "violated_evidence"} {
		if v, ok := rec.Get(key); ok {
			if m, ok := v.(map[string]interface{}); ok && len(m) > 0 {
				state.Evidence = m
			}
		}
	}
	return state, nil
}

// SchemaStateFor reports one row per normal form, 1FN through 3FN.
func (e *Engine) SchemaStateFor(ctx context.Context, schema string) (*SchemaState, error) {
	name := normtext.NormalizeText(schema)
	if name == "" {
		return nil, &ValidationError{Msg: "missing schema name"}
	}

	res, err := e.Driver.ExecuteQuery(ctx, driver.SchemaStateQuery, map[string]interface{}{
		"schema": name,
	})
	if err != nil {
		return nil, &StoreError{Op: "schema state read", Err: err}
	}
	if len(res.Records) == 0 {
		return nil, &NotFoundError{Schema: name}
	}

	state := &SchemaState{OK: true, Schema: name}
	for _, rec := range res.Records {
		fs := FormState{Schema: name, Status: StatusUnevaluated}
		if v, ok := rec.Get("form"); ok {
			fs.Form, _ = v.(string)
		}
		if v, ok := rec.Get("status"); ok {
			if s, ok := v.(string); ok && s != "" {
				fs.Status = s
			}
		}
		if v, ok := rec.Get("evidence"); ok {
			if m, ok := v.(map[string]interface{}); ok && len(m) > 0 {
				fs.Evidence = m
			}
		}
		state.Forms = append(state.Forms, fs)
	}
	return state, nil
}
