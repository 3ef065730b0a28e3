package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/pedidos-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "pedidos-api-test"
)

var testUser = pkgjwt.UserClaims{
	ID:       "00000000-0000-0000-0000-000000000001",
	Email:    "vendedor@example.com",
	Nombre:   "Ana",
	Apellido: "Pérez",
	Creado:   time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
}

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIssuer, testUser, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	got, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUser.ID, got.ID)
	assert.Equal(t, testUser.Email, got.Email)
	assert.Equal(t, testUser.Nombre, got.Nombre)
	assert.Equal(t, testUser.Apellido, got.Apellido)
	assert.True(t, testUser.Creado.Equal(got.Creado))
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIssuer, testUser, -time.Minute)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIssuer, testUser, time.Hour)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testIssuer, testUser, time.Hour)
	assert.Error(t, err)
}
