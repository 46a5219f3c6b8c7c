// Package session keeps the server-side mapping from session id to user.
package session

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("session not found")

// Data is the payload stored per session.
type Data struct {
	UserID int `json:"userId"`
}

type Store interface {
	Save(ctx context.Context, sid string, d Data, ttl time.Duration) error
	// Load returns ErrNotFound for unknown or expired sessions.
	Load(ctx context.Context, sid string) (Data, error)
	Delete(ctx context.Context, sid string) error
}

// Pruner is implemented by stores that need expired rows removed.
type Pruner interface {
	Prune(ctx context.Context) (int64, error)
}
