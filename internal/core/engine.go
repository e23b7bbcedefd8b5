// Package core implements the normal-form evaluation and fact
// reconciliation engine: it derives 1FN/2FN/3FN verdicts from structural
// signals, persists them as compliance edges in the fact store, and answers
// state and requirements queries from those facts.
package core

import (
	"sync"

	"github.com/edudb/normagraph/internal/driver"
)

// Canonical form labels, ascending.
var Forms = []string{Form1FN, Form2FN, Form3FN}

const (
	Form1FN = "1FN"
	Form2FN = "2FN"
	Form3FN = "3FN"
)

// Compliance statuses as persisted and reported. SIN_EVALUAR is a
// legitimate state, not an error.
const (
	StatusSatisfied   = "CUMPLE"
	StatusViolated    = "NO_CUMPLE"
	StatusUnevaluated = "SIN_EVALUAR"
)

// Engine is stateless between invocations: all facts live in the store.
type Engine struct {
	Driver driver.GraphDriver

	// Guided evaluations of one schema must not interleave: the
	// delete-then-write reconciliation spans several store round-trips,
	// so concurrent runs for the same name take a per-schema mutex.
	// Cross-process writers still need a store-side transaction boundary.
	locks sync.Map // normalized schema name -> *sync.Mutex
}

func NewEngine(d driver.GraphDriver) *Engine {
	return &Engine{Driver: d}
}

func (e *Engine) lockSchema(name string) func() {
	v, _ := e.locks.LoadOrStore(name, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
