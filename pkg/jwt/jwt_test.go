package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/Armazem-api/pkg/jwt"
)

const testSecret = "segredo-de-teste"

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "user-1", "armazem-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "user-1", "armazem-test", -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err)
}

func TestParse_SecretErrado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "user-1", "armazem-test", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("outro-segredo", tok)
	assert.Error(t, err)
}

func TestGenerate_SemSecret(t *testing.T) {
	_, err := pkgjwt.Generate("", "user-1", "armazem-test", 60)
	assert.Error(t, err)
}
