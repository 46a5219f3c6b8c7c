// File: internal/handler/users/users.go
package users

import (
	"errors"
	"net/http"

	"trainease/internal/api"
	"trainease/internal/apperr"
	"trainease/internal/database"
	"trainease/internal/handler"
	"trainease/internal/model"
	"trainease/internal/service"
	"trainease/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	listUsers   = store.ListUsers
	getUserByID = store.GetUserByID
	setUserRole = service.SetUserRole
	removeUser  = service.RemoveUser
)

// ListUsersHandler 列出所有使用者（管理員），不含密碼
// @Summary     List users
// @Tags        users
// @Produce     json
// @Success     200 {array}  api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return apperr.Respond(c, apperr.Internal("failed to list users", err))
		}
		resp := make([]api.UserResponse, 0, len(users))
		for i := range users {
			resp = append(resp, api.NewUserResponse(&users[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// GetUserHandler 取得單一使用者（管理員）
// @Summary     Get user
// @Tags        users
// @Produce     json
// @Param       id  path     int true "使用者 ID"
// @Success     200 {object} api.UserResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /users/{id} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "id")
		if err != nil {
			return apperr.Respond(c, err)
		}
		user, err := getUserByID(c.Request().Context(), db, id)
		if errors.Is(err, store.ErrNotFound) {
			return apperr.Respond(c, apperr.NotFound("user"))
		}
		if err != nil {
			return apperr.Respond(c, apperr.Internal("failed to load user", err))
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}

// UpdateUserRoleHandler 切換管理員身分（管理員）；id = 1 回傳 403
// @Summary     Update user role
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id   path     int                       true "使用者 ID"
// @Param       body body     api.UpdateUserRoleRequest true "isAdmin"
// @Success     200  {object} api.UserResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     403  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Router      /users/{id} [patch]
func UpdateUserRoleHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "id")
		if err != nil {
			return apperr.Respond(c, err)
		}
		// 先擋下受保護的管理員，避免無效 body 掩蓋 403
		if id == model.AdminUserID {
			return apperr.Respond(c, service.ErrProtectedAdmin())
		}
		var req api.UpdateUserRoleRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return apperr.Respond(c, err)
		}
		user, err := setUserRole(c.Request().Context(), db, id, *req.IsAdmin)
		if err != nil {
			return apperr.Respond(c, err)
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}

// DeleteUserHandler 刪除使用者與其訂票（管理員）；id = 1 回傳 403
// @Summary     Delete user
// @Tags        users
// @Param       id path int true "使用者 ID"
// @Success     204
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /users/{id} [delete]
func DeleteUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "id")
		if err != nil {
			return apperr.Respond(c, err)
		}
		if err := removeUser(c.Request().Context(), db, id); err != nil {
			return apperr.Respond(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
