package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarly_backend/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", "scholarly", time.Hour)

	raw, err := tm.Generate(Identity{Email: "a@x.com", Name: "Alice"})
	require.NoError(t, err)

	claims, err := tm.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, "scholarly", claims.Issuer)
}

func TestGenerateRequiresEmail(t *testing.T) {
	tm := NewTokenManager("secret", "scholarly", time.Hour)
	_, err := tm.Generate(Identity{Email: "  "})
	assert.ErrorIs(t, err, ErrEmptyEmail)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	tm := NewTokenManager("secret", "scholarly", time.Hour)
	tm.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	raw, err := tm.Generate(Identity{Email: "a@x.com"})
	require.NoError(t, err)

	tm.now = time.Now
	_, err = tm.Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsForeignSignature(t *testing.T) {
	other := NewTokenManager("other-secret", "scholarly", time.Hour)
	raw, err := other.Generate(Identity{Email: "a@x.com"})
	require.NoError(t, err)

	tm := NewTokenManager("secret", "scholarly", time.Hour)
	_, err = tm.Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tm.Parse("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsOtherAlgorithms(t *testing.T) {
	tm := NewTokenManager("secret", "scholarly", time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		Email: "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "scholarly",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	raw, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = tm.Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRoleOrdering(t *testing.T) {
	assert.True(t, AtLeast(models.UserRoleAdmin, models.UserRoleModerator))
	assert.True(t, AtLeast(models.UserRoleModerator, models.UserRoleModerator))
	assert.False(t, AtLeast(models.UserRoleStudent, models.UserRoleModerator))
	assert.False(t, AtLeast(models.UserRole("ghost"), models.UserRoleStudent))
}

func TestCapabilities(t *testing.T) {
	assert.True(t, HasPermission(models.UserRoleAdmin, PermScholarshipsWrite))
	assert.True(t, HasPermission(models.UserRoleModerator, PermReviewsReadAll))
	assert.False(t, HasPermission(models.UserRoleModerator, PermReviewsDelete))
	assert.False(t, HasPermission(models.UserRoleStudent, PermUsersRead))
}
