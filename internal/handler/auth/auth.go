// File: internal/handler/auth/auth.go
package auth

import (
	"net/http"

	"trainease/internal/api"
	"trainease/internal/apperr"
	"trainease/internal/database"
	"trainease/internal/handler"
	"trainease/internal/middleware"
	"trainease/internal/service"

	"github.com/labstack/echo/v4"
)

var (
	registerUser     = service.RegisterUser
	authenticateUser = service.AuthenticateUser
)

// Sessions 開啟與銷毀登入 session；*session.Manager 實作此介面
type Sessions interface {
	Start(c echo.Context, userID int) error
	Destroy(c echo.Context) error
}

// RegisterHandler 註冊新使用者並直接登入
// @Summary     Register
// @Description 建立一般使用者帳號（不接受 isAdmin），成功後設定 session cookie
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.RegisterRequest true "註冊資料"
// @Success     201  {object} api.UserResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /register [post]
func RegisterHandler(db database.DB, sessions Sessions) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return apperr.Respond(c, err)
		}

		user, err := registerUser(c.Request().Context(), db, req)
		if err != nil {
			return apperr.Respond(c, err)
		}
		if err := sessions.Start(c, user.ID); err != nil {
			return apperr.Respond(c, apperr.Internal("failed to start session", err))
		}
		return c.JSON(http.StatusCreated, api.NewUserResponse(user))
	}
}

// LoginHandler 驗證帳密並設定 session cookie
// @Summary     Login
// @Description 使用 username 與 password 登入
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.LoginRequest true "登入資料"
// @Success     200  {object} api.UserResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /login [post]
func LoginHandler(db database.DB, sessions Sessions) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return apperr.Respond(c, err)
		}

		user, err := authenticateUser(c.Request().Context(), db, req.Username, req.Password)
		if err != nil {
			return apperr.Respond(c, err)
		}
		if err := sessions.Start(c, user.ID); err != nil {
			return apperr.Respond(c, apperr.Internal("failed to start session", err))
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}

// LogoutHandler 銷毀目前的 session
// @Summary     Logout
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /logout [post]
func LogoutHandler(sessions Sessions) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := sessions.Destroy(c); err != nil {
			return apperr.Respond(c, apperr.Internal("failed to end session", err))
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Logged out successfully"})
	}
}

// CurrentUserHandler 回傳目前登入的使用者（需通過 RequireAuth）
// @Summary     Current user
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Router      /user [get]
func CurrentUserHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)
		if user == nil {
			return apperr.Respond(c, apperr.Unauthorized("not authenticated"))
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}
