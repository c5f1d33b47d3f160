package sku_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mueblesandina/erp-api/pkg/sku"
)

func TestPrefix_EliminaTildesYStopWords(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Sofá Línea Nórdica", "SOF-LIN-NOR"},
		{"Mesa de Centro", "MES-CEN"},
		{"Silla para Comedor Roble", "SIL-COM-ROB"},
		{"Sofa", "SOF"},
		{"TV", "TV"},
	}
	for _, tc := range cases {
		got, err := sku.Prefix(tc.name)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, got, tc.name)
	}
}

func TestPrefix_NombreVacio_RetornaError(t *testing.T) {
	_, err := sku.Prefix("")
	assert.Error(t, err)

	_, err = sku.Prefix("   ")
	assert.Error(t, err)
}

func TestGenerate_AgregaSufijoAleatorio(t *testing.T) {
	got, err := sku.Generate("Sofá Línea Nórdica")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "SOF-LIN-NOR-"), got)
	assert.Len(t, got, len("SOF-LIN-NOR-")+4)

	// Dos llamadas no deben producir el mismo SKU (sufijo aleatorio).
	otro, err := sku.Generate("Sofá Línea Nórdica")
	require.NoError(t, err)
	assert.NotEqual(t, got, otro)
}
