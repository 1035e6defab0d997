package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/proveedores-api/pkg/token"
)

func TestNewSecret_GeneraSecretoYHashConsistentes(t *testing.T) {
	secret, hash, err := token.NewSecret()
	require.NoError(t, err)
	require.NotEmpty(t, secret)

	assert.Equal(t, token.Hash(secret), hash)
	assert.True(t, token.Matches(secret, hash))
	assert.False(t, token.Matches("otro-secreto", hash))
}

func TestNewSecret_NoRepiteSecretos(t *testing.T) {
	a, _, err := token.NewSecret()
	require.NoError(t, err)
	b, _, err := token.NewSecret()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestPlainYSplit_RoundTrip(t *testing.T) {
	plain := token.Plain(42, "abcdef")
	assert.Equal(t, "42|abcdef", plain)

	id, secret, ok := token.Split(plain)
	require.True(t, ok)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, "abcdef", secret)
}

func TestSplit_FormatosInvalidos(t *testing.T) {
	cases := []string{
		"",
		"sin-separador",
		"|secreto",      // id vacío
		"12|",           // secreto vacío
		"abc|secreto",   // id no numérico
		"-5|secreto",    // id negativo
		"0|secreto",     // id cero
	}
	for _, c := range cases {
		_, _, ok := token.Split(c)
		assert.False(t, ok, "debe rechazar %q", c)
	}
}
