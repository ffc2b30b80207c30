// Package session holds the authenticated admin session and exposes it
// read-only to the sync core. The OTP handshake that produces the tokens
// lives outside this module; callers feed its result in via SetSession.
package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"food-delivery-admin/models"
)

// Gate is the session state provider consumed by the API client and the
// polling scheduler. The core only reads it; teardown happens here, never in
// the stores.
type Gate struct {
	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	user         *models.User
	subs         map[int]chan struct{}
	nextSubID    int

	now func() time.Time
}

func New() *Gate {
	return &Gate{
		subs: make(map[int]chan struct{}),
		now:  time.Now,
	}
}

// SetSession installs a freshly issued session. Subscribers are notified when
// this flips the gate from unauthenticated to authenticated.
func (g *Gate) SetSession(accessToken, refreshToken string, user models.User) {
	g.mu.Lock()
	wasAuthed := g.authenticatedLocked()
	g.accessToken = accessToken
	g.refreshToken = refreshToken
	g.user = &user
	isAuthed := g.authenticatedLocked()
	var notify []chan struct{}
	if !wasAuthed && isAuthed {
		for _, ch := range g.subs {
			notify = append(notify, ch)
		}
	}
	g.mu.Unlock()

	for _, ch := range notify {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Invalidate tears the session down. The API client calls this when the
// server answers 401; the UI layer calls it on explicit logout.
func (g *Gate) Invalidate() {
	g.mu.Lock()
	g.accessToken = ""
	g.refreshToken = ""
	g.user = nil
	g.mu.Unlock()
}

// IsAuthenticated reports whether a non-expired access token is present. The
// expiry claim is read without signature verification; the server remains the
// actual verifier on every request.
func (g *Gate) IsAuthenticated() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.authenticatedLocked()
}

func (g *Gate) authenticatedLocked() bool {
	if g.accessToken == "" {
		return false
	}
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(g.accessToken, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.After(g.now())
}

// CurrentUser returns the authenticated admin profile, or nil.
func (g *Gate) CurrentUser() *models.User {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.user == nil {
		return nil
	}
	u := *g.user
	return &u
}

// AccessToken returns the raw bearer token for the API client.
func (g *Gate) AccessToken() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.accessToken
}

// Authenticated returns a channel that receives one signal each time the
// session becomes authenticated, plus a cancel func releasing the
// subscription.
func (g *Gate) Authenticated() (<-chan struct{}, func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := g.nextSubID
	g.nextSubID++
	ch := make(chan struct{}, 1)
	g.subs[id] = ch
	return ch, func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		delete(g.subs, id)
	}
}
