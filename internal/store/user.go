package store

import (
	"context"

	"trainease/internal/database"
	"trainease/internal/model"

	"github.com/jackc/pgx/v5"
)

const userColumns = `id, username, full_name, password, is_admin`

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.FullName,
		&u.PasswordHash,
		&u.IsAdmin,
	); err != nil {
		return nil, err
	}
	return u, nil
}

func GetUserByID(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	u, err := scanUser(db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		userID,
	))
	if err != nil {
		return nil, wrap("GetUserByID", err)
	}
	return u, nil
}

func GetUserByUsername(ctx context.Context, db database.DB, username string) (*model.User, error) {
	u, err := scanUser(db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`,
		username,
	))
	if err != nil {
		return nil, wrap("GetUserByUsername", err)
	}
	return u, nil
}

func ListUsers(ctx context.Context, db database.DB) ([]model.User, error) {
	rows, err := db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, wrap("ListUsers", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, wrap("ListUsers", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("ListUsers", err)
	}
	return users, nil
}

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (username, full_name, password, is_admin)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		u.Username,
		u.FullName,
		u.PasswordHash,
		u.IsAdmin,
	)
	if err := row.Scan(&u.ID); err != nil {
		return nil, wrap("CreateUser", err)
	}
	return u, nil
}

// SetUserAdmin changes the role flag and returns the updated row.
func SetUserAdmin(ctx context.Context, db database.DB, userID int, isAdmin bool) (*model.User, error) {
	u, err := scanUser(db.QueryRow(ctx,
		`UPDATE users SET is_admin = $1 WHERE id = $2
		 RETURNING `+userColumns,
		isAdmin,
		userID,
	))
	if err != nil {
		return nil, wrap("SetUserAdmin", err)
	}
	return u, nil
}

// DeleteUser removes the user; their bookings go with them through the
// ON DELETE CASCADE foreign key.
func DeleteUser(ctx context.Context, db database.DB, userID int) error {
	tag, err := db.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	return expectOne("DeleteUser", tag, err)
}

// EnsureAdmin inserts the administrator row with id 1 when it is missing,
// restores its role flag, and moves the id sequence past it.
func EnsureAdmin(ctx context.Context, db database.Querier, username, fullName, passwordHash string) (created bool, err error) {
	tag, err := db.Exec(ctx,
		`INSERT INTO users (id, username, full_name, password, is_admin)
		 VALUES ($1, $2, $3, $4, TRUE)
		 ON CONFLICT DO NOTHING`,
		model.AdminUserID, username, fullName, passwordHash,
	)
	if err != nil {
		return false, wrap("EnsureAdmin", err)
	}
	if _, err := db.Exec(ctx, `UPDATE users SET is_admin = TRUE WHERE id = $1`, model.AdminUserID); err != nil {
		return false, wrap("EnsureAdmin", err)
	}
	if _, err := db.Exec(ctx,
		`SELECT setval(pg_get_serial_sequence('users', 'id'), GREATEST((SELECT MAX(id) FROM users), 1))`,
	); err != nil {
		return false, wrap("EnsureAdmin", err)
	}
	return tag.RowsAffected() == 1, nil
}
