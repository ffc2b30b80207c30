package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-delivery-admin/models"
)

var testSecret = []byte("test-secret")

func signedToken(t *testing.T, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": 1,
		"role":    "ADMIN",
		"exp":     jwt.NewNumericDate(time.Now().Add(expiresIn)),
		"iat":     jwt.NewNumericDate(time.Now()),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)
	return token
}

func adminUser() models.User {
	return models.User{ID: 1, FullName: "Admin", Email: "admin@example.com", Role: models.RoleAdmin}
}

func TestEmptyGateIsUnauthenticated(t *testing.T) {
	g := New()
	assert.False(t, g.IsAuthenticated())
	assert.Nil(t, g.CurrentUser())
	assert.Empty(t, g.AccessToken())
}

func TestSetSessionAuthenticates(t *testing.T) {
	g := New()
	g.SetSession(signedToken(t, time.Hour), "refresh", adminUser())

	assert.True(t, g.IsAuthenticated())
	user := g.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestExpiredTokenIsUnauthenticated(t *testing.T) {
	g := New()
	g.SetSession(signedToken(t, -time.Minute), "refresh", adminUser())
	assert.False(t, g.IsAuthenticated())
}

func TestMalformedTokenIsUnauthenticated(t *testing.T) {
	g := New()
	g.SetSession("not-a-jwt", "refresh", adminUser())
	assert.False(t, g.IsAuthenticated())
}

func TestInvalidateTearsDownSession(t *testing.T) {
	g := New()
	g.SetSession(signedToken(t, time.Hour), "refresh", adminUser())
	g.Invalidate()

	assert.False(t, g.IsAuthenticated())
	assert.Nil(t, g.CurrentUser())
	assert.Empty(t, g.AccessToken())
}

func TestAuthenticatedEventFiresOnTransition(t *testing.T) {
	g := New()
	ch, cancel := g.Authenticated()
	defer cancel()

	g.SetSession(signedToken(t, time.Hour), "refresh", adminUser())

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("expected authenticated event")
	}

	// Re-installing a session while already authenticated is not a
	// transition and must not signal again.
	g.SetSession(signedToken(t, 2*time.Hour), "refresh", adminUser())
	select {
	case <-ch:
		t.Fatal("unexpected event for already-authenticated gate")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestCancelledSubscriptionReceivesNothing(t *testing.T) {
	g := New()
	ch, cancel := g.Authenticated()
	cancel()

	g.SetSession(signedToken(t, time.Hour), "refresh", adminUser())
	select {
	case <-ch:
		t.Fatal("cancelled subscription should not receive events")
	case <-time.After(50 * time.Millisecond):
	}
}
