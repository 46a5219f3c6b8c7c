package middleware

import (
	"errors"

	"trainease/internal/apperr"
	"trainease/internal/database"
	"trainease/internal/model"
	"trainease/internal/store"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

var getUserByID = store.GetUserByID

// SessionResolver maps a request to the user id of its session.
// *session.Manager satisfies it.
type SessionResolver interface {
	UserID(c echo.Context) (int, bool, error)
	Forget(c echo.Context)
}

// Auth re-reads the user row on every request so role changes and deletions
// apply immediately.
type Auth struct {
	sessions SessionResolver
	db       database.DB
}

func NewAuth(sessions SessionResolver, db database.DB) *Auth {
	return &Auth{sessions: sessions, db: db}
}

func (a *Auth) currentUser(c echo.Context) (*model.User, error) {
	userID, ok, err := a.sessions.UserID(c)
	if err != nil {
		return nil, apperr.Internal("failed to read session", err)
	}
	if !ok {
		return nil, nil
	}
	user, err := getUserByID(c.Request().Context(), a.db, userID)
	if errors.Is(err, store.ErrNotFound) {
		a.sessions.Forget(c)
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Internal("failed to load user", err)
	}
	return user, nil
}

func (a *Auth) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := a.currentUser(c)
		if err != nil {
			return err
		}
		if user == nil {
			return apperr.Unauthorized("not authenticated")
		}
		c.Set(ContextUserKey, user)
		return next(c)
	}
}

func (a *Auth) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return a.RequireAuth(func(c echo.Context) error {
		if !CurrentUser(c).IsAdmin {
			return apperr.Forbidden("admin privileges required")
		}
		return next(c)
	})
}

// CurrentUser returns the user stored by RequireAuth, or nil.
func CurrentUser(c echo.Context) *model.User {
	u, _ := c.Get(ContextUserKey).(*model.User)
	return u
}
