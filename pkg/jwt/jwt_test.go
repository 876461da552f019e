package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Metas-api/pkg/jwt"
)

func TestGenerateParse_RoundTrip(t *testing.T) {
	token, err := jwt.Generate("secreto", "u-1", "c-1", "supervisor", "metas-api", 5)
	require.NoError(t, err)

	claims, err := jwt.Parse("secreto", token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "c-1", claims.CompanyID)
	assert.Equal(t, "supervisor", claims.Role)
	assert.Equal(t, "u-1", claims.Subject)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate("secreto", "u-1", "c-1", "admin", "metas-api", 5)
	require.NoError(t, err)

	_, err = jwt.Parse("otro", token)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := jwt.Generate("secreto", "u-1", "c-1", "admin", "metas-api", -1)
	require.NoError(t, err)

	_, err = jwt.Parse("secreto", token)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "u-1", "c-1", "admin", "metas-api", 5)
	assert.Error(t, err)
}

func TestParse_SinEmpresaEsRechazado(t *testing.T) {
	token, err := jwt.Generate("secreto", "u-1", "", "admin", "metas-api", 5)
	require.NoError(t, err)

	_, err = jwt.Parse("secreto", token)
	assert.ErrorIs(t, err, jwt.ErrUnscoped)
}
