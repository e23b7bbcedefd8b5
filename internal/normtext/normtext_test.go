package normtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "Pedido", NormalizeText("  Pedido "))
	assert.Equal(t, "Evaluacion", NormalizeText("Evaluación"))
	assert.Equal(t, "Cliente_Direccion", NormalizeText("Cliente_Dirección"))
	assert.Equal(t, "", NormalizeText(""))
	assert.Equal(t, "", NormalizeText("   "))
}

func TestNormalizeFormLabel(t *testing.T) {
	cases := map[string]string{
		"1nf":                  "1FN",
		"1FN":                  "1FN",
		"primera forma normal": "1FN",
		"2 NF":                 "2FN",
		"segunda forma":        "2FN",
		"3nf":                  "3FN",
		"tercera forma normal": "3FN",
		" third normal form ":  "3FN",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeFormLabel(in), "input %q", in)
	}
}

func TestNormalizeFormLabelPassthrough(t *testing.T) {
	// Unrecognized labels are preserved, not dropped.
	assert.Equal(t, "BCNF", NormalizeFormLabel("bcnf"))
	assert.Equal(t, "5FN", NormalizeFormLabel("5FN"))
	assert.Equal(t, "", NormalizeFormLabel("  "))
}
