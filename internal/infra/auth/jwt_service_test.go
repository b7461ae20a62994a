package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func newTestJWTService(t *testing.T, clock *fakeClock) *jwtService {
	t.Helper()

	svc, err := NewJWTServiceWithClock(testSecret, 7*24*time.Hour, clock.Now)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestJWTService(t, clock)

	userID := uuid.New()
	token, err := svc.IssueToken(userID, entity.RoleShopOwner)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, entity.RoleShopOwner, claims.Role)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, clock.now.Add(7*24*time.Hour), claims.ExpiresAt.Time)
}

func TestJWTService_Expiry(t *testing.T) {
	issuedAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{now: issuedAt}
	svc := newTestJWTService(t, clock)

	token, err := svc.IssueToken(uuid.New(), entity.RoleCustomer)
	require.NoError(t, err)

	clock.now = issuedAt.Add(7*24*time.Hour - time.Minute)
	_, err = svc.ValidateToken(token)
	assert.NoError(t, err)

	clock.now = issuedAt.Add(7*24*time.Hour + time.Minute)
	_, err = svc.ValidateToken(token)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestJWTService_InvalidTokens(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	svc := newTestJWTService(t, clock)

	other, err := NewJWTServiceWithClock("another-secret", time.Hour, clock.Now)
	require.NoError(t, err)
	foreign, err := other.IssueToken(uuid.New(), entity.RoleCustomer)
	require.NoError(t, err)

	unknownRole := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": uuid.New().String(),
		"role":    "admin",
		"exp":     clock.now.Add(time.Hour).Unix(),
	})
	unknownRoleToken, err := unknownRole.SignedString([]byte(testSecret))
	require.NoError(t, err)

	noExpiry := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": uuid.New().String(),
		"role":    "customer",
	})
	noExpiryToken, err := noExpiry.SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "malformed", token: "clearly-not-a-jwt-token-format"},
		{name: "wrong signature", token: foreign},
		{name: "unknown role", token: unknownRoleToken},
		{name: "missing expiry", token: noExpiryToken},
		{name: "empty", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token)
			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid), "got %v", err)
		})
	}
}

func TestNewJWTService(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)

	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: time.Hour}}
	cfg.SecretKey.Access = testSecret
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, svc.(*jwtService).ttl)
}
