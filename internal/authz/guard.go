// Package authz decides whether a requester may act on an owned resource.
package authz

import (
	"context"
	"fmt"
)

// Subject is the authenticated requester.
type Subject struct {
	ID      int  `json:"id"`
	IsAdmin bool `json:"isAdmin"`
}

// Guard reports whether subject may read or modify a resource owned by ownerID.
type Guard interface {
	Allow(ctx context.Context, subject Subject, ownerID int) (bool, error)
}

// OwnerOrAdmin admits the owner and any administrator.
func OwnerOrAdmin(subject Subject, ownerID int) bool {
	return subject.IsAdmin || subject.ID == ownerID
}

type builtinGuard struct{}

func (builtinGuard) Allow(_ context.Context, subject Subject, ownerID int) (bool, error) {
	return OwnerOrAdmin(subject, ownerID), nil
}

// NewBuiltinGuard returns the in-process Go implementation of OwnerOrAdmin.
func NewBuiltinGuard() Guard {
	return builtinGuard{}
}

// New builds the guard named by engine ("builtin" or "rego").
func New(ctx context.Context, engine string) (Guard, error) {
	switch engine {
	case "", "builtin":
		return NewBuiltinGuard(), nil
	case "rego":
		return NewRegoGuard(ctx)
	}
	return nil, fmt.Errorf("unknown authz engine %q", engine)
}
