package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchStateQuerySingleForm(t *testing.T) {
	store := newFakeStore()
	e := NewEngine(store)
	_, err := e.Evaluate(context.Background(), pedidoRequest(true, false))
	require.NoError(t, err)

	out := e.Dispatch(context.Background(), IntentState, "Pedido", "2FN")

	assert.Equal(t, true, out["ok"])
	assert.Equal(t, StatusViolated, out["status"])
	assert.Equal(t, "2FN", out["form"])
}

func TestDispatchStateQueryAllForms(t *testing.T) {
	store := newFakeStore()
	e := NewEngine(store)
	_, err := e.Evaluate(context.Background(), pedidoRequest(false, false))
	require.NoError(t, err)

	out := e.Dispatch(context.Background(), IntentState, "Pedido", "")

	assert.Equal(t, true, out["ok"])
	forms, ok := out["forms"].([]FormState)
	require.True(t, ok)
	assert.Len(t, forms, 3)
}

func TestDispatchStateQueryMissingSchema(t *testing.T) {
	e := NewEngine(newFakeStore())

	out := e.Dispatch(context.Background(), IntentState, "", "2FN")

	assert.Equal(t, false, out["ok"])
	assert.Contains(t, out["error"], "schema name")
}

func TestDispatchStateQueryNotFound(t *testing.T) {
	e := NewEngine(newFakeStore())

	out := e.Dispatch(context.Background(), IntentState, "Ghost", "2FN")

	assert.Equal(t, false, out["ok"])
	assert.Contains(t, out["error"], "Ghost")
}

func TestDispatchRequirements(t *testing.T) {
	e := NewEngine(newFakeStore())

	out := e.Dispatch(context.Background(), IntentRequirements, "", "3fn")

	assert.Equal(t, true, out["ok"])
	assert.Equal(t, "3FN", out["form"])
	assert.NotEmpty(t, out["requirements"])
}

func TestDispatchRequirementsMissingForm(t *testing.T) {
	e := NewEngine(newFakeStore())

	out := e.Dispatch(context.Background(), IntentRequirements, "Pedido", " ")

	assert.Equal(t, false, out["ok"])
}

func TestDispatchUnknownIntent(t *testing.T) {
	e := NewEngine(newFakeStore())

	out := e.Dispatch(context.Background(), "drop_table", "Pedido", "1FN")

	assert.Equal(t, false, out["ok"])
	assert.Equal(t, IntentUnknown, out["intent"])
	assert.Equal(t, true, out["unsupported"])
}
