package store

import (
	"context"
	"time"

	"trainease/internal/database"
)

func SaveSession(ctx context.Context, db database.DB, sid string, data []byte, expire time.Time) error {
	_, err := db.Exec(ctx,
		`INSERT INTO session (sid, sess, expire) VALUES ($1, $2, $3)
		 ON CONFLICT (sid) DO UPDATE SET sess = EXCLUDED.sess, expire = EXCLUDED.expire`,
		sid, data, expire,
	)
	if err != nil {
		return wrap("SaveSession", err)
	}
	return nil
}

// LoadSession returns the payload of an unexpired session.
func LoadSession(ctx context.Context, db database.DB, sid string) ([]byte, error) {
	var data []byte
	err := db.QueryRow(ctx,
		`SELECT sess FROM session WHERE sid = $1 AND expire > now()`,
		sid,
	).Scan(&data)
	if err != nil {
		return nil, wrap("LoadSession", err)
	}
	return data, nil
}

func DeleteSession(ctx context.Context, db database.DB, sid string) error {
	if _, err := db.Exec(ctx, `DELETE FROM session WHERE sid = $1`, sid); err != nil {
		return wrap("DeleteSession", err)
	}
	return nil
}

func PruneSessions(ctx context.Context, db database.DB) (int64, error) {
	tag, err := db.Exec(ctx, `DELETE FROM session WHERE expire <= now()`)
	if err != nil {
		return 0, wrap("PruneSessions", err)
	}
	return tag.RowsAffected(), nil
}
