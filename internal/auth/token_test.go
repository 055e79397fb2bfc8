package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobportal/internal/model"
)

func TestTokenIssuer_IssueAndVerify(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	userID := uuid.New()

	token, err := issuer.Issue(userID, model.RoleRecruiter)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	id, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, id.UserID)
	assert.Equal(t, model.RoleRecruiter, id.Role)
}

func TestNewTokenIssuer_DefaultExpiry(t *testing.T) {
	assert.Equal(t, DefaultTokenExpiry, NewTokenIssuer("s", 0).TTL())
	assert.Equal(t, time.Minute, NewTokenIssuer("s", time.Minute).TTL())
}

func TestTokenIssuer_VerifyErrors(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	userID := uuid.New()

	expired := NewTokenIssuer("test-secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, err := expired.Issue(userID, model.RoleUser)
	require.NoError(t, err)

	otherSecret, err := NewTokenIssuer("other-secret", time.Hour).Issue(userID, model.RoleUser)
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: "not-a-uuid",
		Role:   "user",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: userID.String()}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name        string
		token       string
		expectedErr error
	}{
		{name: "missing", token: "", expectedErr: ErrTokenMissing},
		{name: "blank", token: "   ", expectedErr: ErrTokenMissing},
		{name: "garbage", token: "not.a.token", expectedErr: ErrTokenMalformed},
		{name: "expired", token: expiredToken, expectedErr: ErrTokenExpired},
		{name: "wrong secret", token: otherSecret, expectedErr: ErrTokenSignature},
		{name: "unsigned", token: noneToken, expectedErr: ErrTokenSignature},
		{name: "bad user id", token: badSubject, expectedErr: ErrTokenMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := issuer.Verify(tt.token)
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Equal(t, Identity{}, id)
		})
	}
}

func TestPassword_HashAndCheck(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, CheckPassword(hash, "secret123"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("not-a-hash", "secret123"))
}
