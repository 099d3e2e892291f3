package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/gst-invoice/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestGenerateYParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "draft-1", "gst-invoice-test", 60)
	require.NoError(t, err)

	id, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "draft-1", id)
}

func TestParse_SecretoIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "draft-1", "gst-invoice-test", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secreto", tok)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)
}

func TestParse_Expirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "draft-1", "gst-invoice-test", -5)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)
}

func TestGenerate_ParametrosVacios(t *testing.T) {
	_, err := pkgjwt.Generate("", "draft-1", "x", 60)
	assert.Error(t, err)
	_, err = pkgjwt.Generate(testSecret, "", "x", 60)
	assert.Error(t, err)
}
