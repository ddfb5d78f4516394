// Package session tracks the single admin login as a signed browser
// cookie. Authentication is a pure function of the signing secret and
// the cookie the request carries; there is no server-side session
// state to share or clean up.
package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	cookieName      = "admin_session"
	minSecretLength = 32
)

var ErrSecretTooShort = errors.New("session: secret key too short")

type Manager struct {
	secret []byte
	secure bool
}

// New builds a session manager signing with the given secret key.
// Short keys are rejected outright rather than weakening every cookie
// the process will ever issue.
func New(secret string, secure bool) (*Manager, error) {
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("%w: got %d chars, need at least %d",
			ErrSecretTooShort, len(secret), minSecretLength)
	}
	return &Manager{secret: []byte(secret), secure: secure}, nil
}

// Start marks the browser session authenticated by issuing a fresh
// signed token cookie.
func (m *Manager) Start(w http.ResponseWriter) {
	token := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    token + "." + m.sign(token),
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear drops the session cookie. Clearing an already-anonymous
// session is not an error.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Authenticated reports whether the request carries a validly signed
// session cookie.
func (m *Manager) Authenticated(r *http.Request) bool {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return false
	}

	token, sig, ok := strings.Cut(cookie.Value, ".")
	if !ok || token == "" {
		return false
	}

	expected := m.sign(token)
	return hmac.Equal([]byte(sig), []byte(expected))
}

func (m *Manager) sign(token string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(token))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
