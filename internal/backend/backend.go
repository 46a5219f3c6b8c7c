// Package backend selects between the primary API and the alternate
// implementation and translates the one field whose name differs.
package backend

import (
	"encoding/json"
	"fmt"
	"strings"
)

type Kind string

const (
	Primary   Kind = "primary"
	Alternate Kind = "alternate"
)

// DefaultAlternateBase is where the alternate API is mounted.
const DefaultAlternateBase = "/java-api"

const (
	primaryAdminField   = "isAdmin"
	alternateAdminField = "admin"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case "", Primary:
		return Primary, nil
	case Alternate:
		return Alternate, nil
	}
	return "", fmt.Errorf("unknown backend %q", s)
}

// Adapter rewrites paths and payloads for the selected backend.
type Adapter struct {
	Kind          Kind
	AlternateBase string
}

func NewAdapter(kind Kind) Adapter {
	return Adapter{Kind: kind, AlternateBase: DefaultAlternateBase}
}

// Endpoint maps a primary /api path onto the selected backend.
func (a Adapter) Endpoint(path string) string {
	if a.Kind != Alternate {
		return path
	}
	base := a.AlternateBase
	if base == "" {
		base = DefaultAlternateBase
	}
	if path == "/api" || strings.HasPrefix(path, "/api/") {
		return base + strings.TrimPrefix(path, "/api")
	}
	return path
}

// Outgoing prepares a decoded JSON value for the selected backend.
func (a Adapter) Outgoing(v any) any {
	if a.Kind == Alternate {
		return ToAlternate(v)
	}
	return v
}

// Incoming normalizes a decoded JSON value from the selected backend.
func (a Adapter) Incoming(v any) any {
	if a.Kind == Alternate {
		return FromAlternate(v)
	}
	return v
}

// ToAlternate renames isAdmin to admin on an object or on each object of an
// array. Other values are returned unchanged.
func ToAlternate(v any) any {
	return renameField(v, primaryAdminField, alternateAdminField)
}

// FromAlternate renames admin to isAdmin, the inverse of ToAlternate.
func FromAlternate(v any) any {
	return renameField(v, alternateAdminField, primaryAdminField)
}

func renameField(v any, from, to string) any {
	switch t := v.(type) {
	case map[string]any:
		val, ok := t[from]
		if !ok {
			return t
		}
		out := make(map[string]any, len(t))
		for k, x := range t {
			if k != from {
				out[k] = x
			}
		}
		out[to] = val
		return out
	case []any:
		out := make([]any, len(t))
		for i, x := range t {
			out[i] = renameField(x, from, to)
		}
		return out
	}
	return v
}

// TransformJSON decodes body, applies f and re-encodes it. Empty and non-JSON
// bodies are returned as they are.
func TransformJSON(body []byte, f func(any) any) ([]byte, error) {
	if len(body) == 0 {
		return body, nil
	}
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return body, nil
	}
	return json.Marshal(f(v))
}
