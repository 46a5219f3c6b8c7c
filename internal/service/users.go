// File: internal/service/users.go
package service

import (
	"context"
	"errors"

	"trainease/internal/apperr"
	"trainease/internal/database"
	"trainease/internal/model"
	"trainease/internal/store"
)

var (
	setUserAdmin = store.SetUserAdmin
	deleteUser   = store.DeleteUser
)

// ErrProtectedAdmin 回傳 id = 1 被修改或刪除時的錯誤
func ErrProtectedAdmin() *apperr.AppError {
	return apperr.Forbidden("the primary administrator cannot be modified")
}

// SetUserRole 切換管理員旗標；id = 1 受保護
func SetUserRole(ctx context.Context, db database.DB, userID int, isAdmin bool) (*model.User, error) {
	if userID == model.AdminUserID {
		return nil, ErrProtectedAdmin()
	}
	u, err := setUserAdmin(ctx, db, userID, isAdmin)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.NotFound("user")
	}
	if err != nil {
		return nil, apperr.Internal("failed to update user", err)
	}
	return u, nil
}

// RemoveUser 刪除使用者並連帶刪除其訂票；id = 1 受保護
func RemoveUser(ctx context.Context, db database.DB, userID int) error {
	if userID == model.AdminUserID {
		return ErrProtectedAdmin()
	}
	err := deleteUser(ctx, db, userID)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound("user")
	}
	if err != nil {
		return apperr.Internal("failed to delete user", err)
	}
	return nil
}
