package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplainFormOnly(t *testing.T) {
	e := NewEngine(newFakeStore())

	exp, err := e.Explain(context.Background(), "segunda forma normal", "")
	require.NoError(t, err)

	assert.True(t, exp.OK)
	assert.Equal(t, "2FN", exp.Form)
	assert.Contains(t, exp.Requirements, "partial")
	assert.Empty(t, exp.Schema)
	assert.Nil(t, exp.State)
}

func TestExplainUnknownFormFailsSoft(t *testing.T) {
	e := NewEngine(newFakeStore())

	exp, err := e.Explain(context.Background(), "bcnf", "")
	require.NoError(t, err)

	assert.True(t, exp.OK)
	assert.Equal(t, "BCNF", exp.Form)
	assert.Contains(t, exp.Requirements, "no stored requirements")
}

func TestExplainWithViolatingSchema(t *testing.T) {
	store := newFakeStore()
	e := NewEngine(store)

	_, err := e.Evaluate(context.Background(), pedidoRequest(true, false))
	require.NoError(t, err)

	exp, err := e.Explain(context.Background(), "2FN", "Pedido")
	require.NoError(t, err)

	require.NotNil(t, exp.State)
	assert.Equal(t, StatusViolated, exp.State.Status)
	assert.Contains(t, exp.Problems, ReasonPartialDeps)
	assert.Contains(t, exp.Problems, "Partial dependency count: 1")
}

func TestExplainUnknownSchemaKeepsRequirements(t *testing.T) {
	e := NewEngine(newFakeStore())

	exp, err := e.Explain(context.Background(), "3FN", "Ghost")
	require.NoError(t, err)

	assert.True(t, exp.OK)
	assert.NotEmpty(t, exp.Requirements)
	assert.Nil(t, exp.State)
	assert.Empty(t, exp.Problems)
}

func TestExplainSatisfiedSchemaHasNoProblems(t *testing.T) {
	store := newFakeStore()
	e := NewEngine(store)

	_, err := e.Evaluate(context.Background(), pedidoRequest(false, false))
	require.NoError(t, err)

	exp, err := e.Explain(context.Background(), "3FN", "Pedido")
	require.NoError(t, err)

	assert.Equal(t, StatusSatisfied, exp.State.Status)
	assert.Empty(t, exp.Problems)
}

func TestProblemsFromEvidenceMergesAllShapes(t *testing.T) {
	// All optional evidence shapes can coexist; every present one must be
	// surfaced, not just the first match.
	store := newFakeStore()
	store.setEdge("Pedido", "2FN", StatusViolated, map[string]interface{}{
		"reason":      "custom reason",
		"reasons":     []interface{}{ReasonNo1FN, ReasonPartialDeps},
		"partials":    int64(2),
		"transitives": int64(3),
		"attributes":  []interface{}{"Cantidad", "Precio"},
	})
	e := NewEngine(store)

	exp, err := e.Explain(context.Background(), "2FN", "Pedido")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"custom reason",
		ReasonNo1FN,
		ReasonPartialDeps,
		"Partial dependency count: 2",
		"Transitive dependency count: 3",
		"Offending attributes: Cantidad, Precio",
	}, exp.Problems)
}

func TestProblemsFromEvidenceEmpty(t *testing.T) {
	assert.Nil(t, problemsFromEvidence(nil))
	assert.Nil(t, problemsFromEvidence(map[string]interface{}{}))
}
