package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"trainease/internal/database"
	"trainease/internal/store"
)

// PostgresStore keeps sessions in the session table. Expired rows are
// invisible to Load and removed by Prune.
type PostgresStore struct {
	db  database.DB
	now func() time.Time
}

func NewPostgresStore(db database.DB) *PostgresStore {
	return &PostgresStore{db: db, now: time.Now}
}

func (s *PostgresStore) Save(ctx context.Context, sid string, d Data, ttl time.Duration) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return store.SaveSession(ctx, s.db, sid, raw, s.now().Add(ttl))
}

func (s *PostgresStore) Load(ctx context.Context, sid string) (Data, error) {
	raw, err := store.LoadSession(ctx, s.db, sid)
	if errors.Is(err, store.ErrNotFound) {
		return Data{}, ErrNotFound
	}
	if err != nil {
		return Data{}, err
	}
	var d Data
	if err := json.Unmarshal(raw, &d); err != nil {
		return Data{}, fmt.Errorf("decode session: %w", err)
	}
	return d, nil
}

func (s *PostgresStore) Delete(ctx context.Context, sid string) error {
	return store.DeleteSession(ctx, s.db, sid)
}

func (s *PostgresStore) Prune(ctx context.Context) (int64, error) {
	return store.PruneSessions(ctx, s.db)
}
