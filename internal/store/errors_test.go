package store

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	err := wrap("GetTrain", pgx.ErrNoRows)
	require.ErrorIs(t, err, ErrNotFound)
	require.Contains(t, err.Error(), "GetTrain")

	err = wrap("CreateUser", &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})
	require.ErrorIs(t, err, ErrDuplicate)
	require.Contains(t, err.Error(), "users_username_key")

	boom := errors.New("boom")
	err = wrap("ListRoutes", boom)
	require.ErrorIs(t, err, boom)
	require.False(t, errors.Is(err, ErrNotFound))
}

func TestExpectOne(t *testing.T) {
	require.NoError(t, expectOne("x", pgconn.NewCommandTag("DELETE 1"), nil))
	require.ErrorIs(t, expectOne("x", pgconn.NewCommandTag("DELETE 0"), nil), ErrNotFound)
	require.Error(t, expectOne("x", pgconn.CommandTag{}, errors.New("fail")))
}
