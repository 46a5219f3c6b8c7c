package backend

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{"": Primary, "primary": Primary, " Alternate ": Alternate} {
		got, err := ParseKind(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := ParseKind("java")
	require.Error(t, err)
}

func TestEndpoint(t *testing.T) {
	primary := NewAdapter(Primary)
	require.Equal(t, "/api/bookings", primary.Endpoint("/api/bookings"))

	alt := NewAdapter(Alternate)
	require.Equal(t, "/java-api/bookings/3/cancel", alt.Endpoint("/api/bookings/3/cancel"))
	require.Equal(t, "/java-api", alt.Endpoint("/api"))
	require.Equal(t, "/apis/x", alt.Endpoint("/apis/x"))
	require.Equal(t, "/swagger/index.html", alt.Endpoint("/swagger/index.html"))

	custom := Adapter{Kind: Alternate, AlternateBase: "/v2"}
	require.Equal(t, "/v2/users", custom.Endpoint("/api/users"))
	require.Equal(t, "/java-api/users", Adapter{Kind: Alternate}.Endpoint("/api/users"))
}

func TestFieldMapping(t *testing.T) {
	user := map[string]any{"id": 2.0, "username": "alice", "isAdmin": true}

	alt := ToAlternate(user).(map[string]any)
	require.Equal(t, map[string]any{"id": 2.0, "username": "alice", "admin": true}, alt)
	require.Contains(t, user, "isAdmin", "input must not be mutated")

	back := FromAlternate(alt)
	require.Equal(t, user, back)

	list := []any{
		map[string]any{"id": 1.0, "admin": true},
		map[string]any{"id": 2.0, "admin": false},
		"scalar",
	}
	got := FromAlternate(list).([]any)
	require.Equal(t, true, got[0].(map[string]any)["isAdmin"])
	require.Equal(t, false, got[1].(map[string]any)["isAdmin"])
	require.Equal(t, "scalar", got[2])

	// values without the field and non-objects pass through
	train := map[string]any{"id": 1.0, "name": "Express 101"}
	require.Equal(t, train, ToAlternate(train))
	require.Equal(t, 42.0, FromAlternate(42.0))
	require.Nil(t, ToAlternate(nil))
}

func TestAdapterDirection(t *testing.T) {
	in := map[string]any{"isAdmin": true}
	require.Equal(t, in, NewAdapter(Primary).Outgoing(in))
	require.Equal(t, map[string]any{"admin": true}, NewAdapter(Alternate).Outgoing(in))
	require.Equal(t, in, NewAdapter(Alternate).Incoming(map[string]any{"admin": true}))
	require.Equal(t, map[string]any{"admin": true}, NewAdapter(Primary).Incoming(map[string]any{"admin": true}))
}

func TestTransformJSON(t *testing.T) {
	out, err := TransformJSON([]byte(`[{"id":1,"admin":true}]`), FromAlternate)
	require.NoError(t, err)
	require.JSONEq(t, `[{"id":1,"isAdmin":true}]`, string(out))

	out, err = TransformJSON([]byte("plain text"), FromAlternate)
	require.NoError(t, err)
	require.Equal(t, "plain text", string(out))

	out, err = TransformJSON(nil, FromAlternate)
	require.NoError(t, err)
	require.Empty(t, out)
}
