package session

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-portal/internal/model"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return token
}

func TestRoleFromToken(t *testing.T) {
	// The portal never holds the signing secret; only the claim is read.
	assert.Equal(t, model.RoleAdmin,
		RoleFromToken(signedToken(t, jwt.MapClaims{"role": "admin"})))
	assert.Equal(t, model.RoleAuthenticatedPatient,
		RoleFromToken(signedToken(t, jwt.MapClaims{"role": "loggedPatient"})))
	assert.Equal(t, model.RoleAnonymousPatient,
		RoleFromToken(signedToken(t, jwt.MapClaims{"role": "patient"})))
}

func TestRoleFromTokenUnknownClaim(t *testing.T) {
	assert.Equal(t, model.RoleUnknown,
		RoleFromToken(signedToken(t, jwt.MapClaims{"role": "superuser"})))
	assert.Equal(t, model.RoleUnknown,
		RoleFromToken(signedToken(t, jwt.MapClaims{"sub": "x"})))
}

func TestRoleFromTokenMalformed(t *testing.T) {
	assert.Equal(t, model.RoleUnknown, RoleFromToken("not-a-jwt"))
	assert.Equal(t, model.RoleUnknown, RoleFromToken(""))
}
