package store

import (
	"context"
	"fmt"
	"reflect"

	"trainease/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

/* ---------- fakes ---------- */

// fakeRow implements pgx.Row by copying vals into the scan targets in order.
type fakeRow struct {
	vals    []any
	scanErr error
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	return assign(dest, r.vals)
}

func assign(dest, vals []any) error {
	if len(dest) != len(vals) {
		return fmt.Errorf("fakeRow: %d targets, %d values", len(dest), len(vals))
	}
	for i := range dest {
		reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(vals[i]))
	}
	return nil
}

// fakeRows implements pgx.Rows over a fixed result set.
type fakeRows struct {
	data    [][]any
	idx     int
	scanErr error
	err     error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	vals := r.data[r.idx]
	r.idx++
	return assign(dest, vals)
}
func (r *fakeRows) Values() ([]any, error) { return nil, nil }
func (r *fakeRows) RawValues() [][]byte    { return nil }
func (r *fakeRows) Conn() *pgx.Conn        { return nil }

// call records the last statement sent to a fake database.
type call struct {
	sql  string
	args []any
}

func rowDB(c *call, row *fakeRow) *database.FakeDB {
	return &database.FakeDB{
		QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
			if c != nil {
				c.sql, c.args = sql, args
			}
			return row
		},
	}
}

func rowsDB(c *call, rows pgx.Rows, err error) *database.FakeDB {
	return &database.FakeDB{
		QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
			if c != nil {
				c.sql, c.args = sql, args
			}
			return rows, err
		},
	}
}

func execDB(c *call, tag string, err error) *database.FakeDB {
	return &database.FakeDB{
		ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
			if c != nil {
				c.sql, c.args = sql, args
			}
			return pgconn.NewCommandTag(tag), err
		},
	}
}
