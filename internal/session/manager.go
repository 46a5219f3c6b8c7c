package session

import (
	"errors"
	"net/http"
	"time"

	"trainease/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const CookieName = "trainease.sid"

// Manager ties the signed session cookie to a Store.
type Manager struct {
	store  Store
	secret []byte
	ttl    time.Duration
	newID  func() string
}

func NewManager(s Store, secret []byte, ttl time.Duration) *Manager {
	return &Manager{
		store:  s,
		secret: secret,
		ttl:    ttl,
		newID:  uuid.NewString,
	}
}

// Start opens a fresh session for userID and sets the cookie. A session
// already carried by the request is discarded.
func (m *Manager) Start(c echo.Context, userID int) error {
	ctx := c.Request().Context()
	if sid, ok := m.sessionID(c); ok {
		_ = m.store.Delete(ctx, sid)
	}

	sid := m.newID()
	if err := m.store.Save(ctx, sid, Data{UserID: userID}, m.ttl); err != nil {
		return err
	}
	token, err := service.IssueSessionToken(m.secret, sid, m.ttl)
	if err != nil {
		return err
	}
	c.SetCookie(m.cookie(token, int(m.ttl.Seconds())))
	return nil
}

// UserID resolves the request's session. ok is false when the request has no
// usable session.
func (m *Manager) UserID(c echo.Context) (userID int, ok bool, err error) {
	sid, ok := m.sessionID(c)
	if !ok {
		return 0, false, nil
	}
	d, err := m.store.Load(c.Request().Context(), sid)
	if errors.Is(err, ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return d.UserID, true, nil
}

// Destroy deletes the session and expires the cookie.
func (m *Manager) Destroy(c echo.Context) error {
	if sid, ok := m.sessionID(c); ok {
		if err := m.store.Delete(c.Request().Context(), sid); err != nil {
			return err
		}
	}
	c.SetCookie(m.cookie("", -1))
	return nil
}

// Forget drops the request's session from the store, for sessions that point
// at a deleted user.
func (m *Manager) Forget(c echo.Context) {
	if sid, ok := m.sessionID(c); ok {
		_ = m.store.Delete(c.Request().Context(), sid)
	}
}

func (m *Manager) sessionID(c echo.Context) (string, bool) {
	ck, err := c.Cookie(CookieName)
	if err != nil || ck.Value == "" {
		return "", false
	}
	sid, err := service.ParseSessionToken(m.secret, ck.Value)
	if err != nil {
		return "", false
	}
	return sid, true
}

func (m *Manager) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
