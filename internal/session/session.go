// Package session implements server-side cookie sessions: an opaque uuid
// token, HMAC-signed in the cookie, resolving to a session record in the
// store. There is no process-wide session state.
package session

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nestlist/nestlist/internal/models"
	"github.com/nestlist/nestlist/internal/repo"
)

// CookieName is the session cookie delivered to browsers.
const CookieName = "nestlist_session"

// Store is the persistence surface the manager needs.
type Store interface {
	Create(ctx context.Context, s *models.Session) error
	GetByToken(ctx context.Context, token string) (*models.Session, error)
	Delete(ctx context.Context, token string) error
}

type Manager struct {
	store  Store
	secret []byte
	ttl    time.Duration
	secure bool
}

// NewManager builds a manager. secure controls the cookie Secure attribute
// and should be true only behind HTTPS (prod).
func NewManager(store Store, secret string, ttl time.Duration, secure bool) *Manager {
	return &Manager{
		store:  store,
		secret: []byte(secret),
		ttl:    ttl,
		secure: secure,
	}
}

// Start creates a session bound to user and sets the signed cookie.
func (m *Manager) Start(ctx context.Context, w http.ResponseWriter, user *models.User) error {
	now := time.Now().UTC()
	s := &models.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		Email:     user.Email,
		ExpiresAt: now.Add(m.ttl),
		CreatedAt: now,
	}

	if err := m.store.Create(ctx, s); err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    m.sign(s.Token),
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   m.secure,
	})
	return nil
}

// Principal resolves the request's session, if any. It returns (nil, nil)
// for anonymous requests: missing cookie, bad signature, unknown token, or
// an expired session. A non-nil error means the store failed.
func (m *Manager) Principal(r *http.Request) (*models.Session, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil, nil
	}

	token, ok := m.verify(cookie.Value)
	if !ok {
		return nil, nil
	}

	s, err := m.store.GetByToken(r.Context(), token)
	if err != nil {
		if err == repo.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}

	if time.Now().UTC().After(s.ExpiresAt) {
		// Expired sessions count as anonymous; the cron purge removes the record.
		return nil, nil
	}

	return s, nil
}

// Clear destroys the request's session record (if any) and expires the cookie.
func (m *Manager) Clear(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var storeErr error
	if cookie, err := r.Cookie(CookieName); err == nil {
		if token, ok := m.verify(cookie.Value); ok {
			storeErr = m.store.Delete(ctx, token)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   m.secure,
	})
	return storeErr
}

// sign returns "token.hexmac". The token itself is random; the signature only
// makes cookie tampering detectable before a store lookup.
func (m *Manager) sign(token string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(token))
	return token + "." + hex.EncodeToString(mac.Sum(nil))
}

// verify splits a cookie value and checks its signature, returning the token.
func (m *Manager) verify(value string) (string, bool) {
	i := strings.LastIndex(value, ".")
	if i <= 0 {
		return "", false
	}
	token, sig := value[:i], value[i+1:]

	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(token))
	want := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(sig), []byte(want)) {
		return "", false
	}
	return token, true
}
