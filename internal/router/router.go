// File: internal/router/router.go
package router

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"trainease/internal/backend"
	"trainease/internal/cache"
	"trainease/internal/database"
	"trainease/internal/handler"
	"trainease/internal/handler/auth"
	"trainease/internal/handler/bookings"
	"trainease/internal/handler/routes"
	"trainease/internal/handler/trains"
	"trainease/internal/handler/users"
	"trainease/internal/middleware"
	"trainease/internal/session"
)

// Deps 是路由需要的相依物件
type Deps struct {
	DB       database.DB
	Cache    cache.Cache // 使用 Postgres session store 時可為 nil
	Sessions *session.Manager
	Bookings bookings.Service

	// 設定時把 /java-api/* 轉發到另一個後端
	AlternateBackendURL string
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) error {
	authMw := middleware.NewAuth(d.Sessions, d.DB)

	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(d.DB, d.Cache))

	// 登入流程
	api.POST("/register", auth.RegisterHandler(d.DB, d.Sessions))
	api.POST("/login", auth.LoginHandler(d.DB, d.Sessions))
	api.POST("/logout", auth.LogoutHandler(d.Sessions))
	api.GET("/user", auth.CurrentUserHandler(), authMw.RequireAuth)

	// 列車：讀取公開，寫入限管理員
	api.GET("/trains", trains.ListTrainsHandler(d.DB))
	api.GET("/trains/:id", trains.GetTrainHandler(d.DB))
	api.POST("/trains", trains.CreateTrainHandler(d.DB), authMw.RequireAdmin)
	api.PUT("/trains/:id", trains.UpdateTrainHandler(d.DB), authMw.RequireAdmin)
	api.DELETE("/trains/:id", trains.DeleteTrainHandler(d.DB), authMw.RequireAdmin)

	// 路線
	api.GET("/routes", routes.ListRoutesHandler(d.DB))
	api.GET("/routes/:id", routes.GetRouteHandler(d.DB))
	api.POST("/routes", routes.CreateRouteHandler(d.DB), authMw.RequireAdmin)
	api.PUT("/routes/:id", routes.UpdateRouteHandler(d.DB), authMw.RequireAdmin)
	api.PATCH("/routes/:id", routes.UpdateRouteHandler(d.DB), authMw.RequireAdmin)
	api.DELETE("/routes/:id", routes.DeleteRouteHandler(d.DB), authMw.RequireAdmin)

	// 訂票：需登入，擁有者或管理員
	apiBookings := api.Group("/bookings", authMw.RequireAuth)
	apiBookings.GET("", bookings.ListBookingsHandler(d.Bookings))
	apiBookings.POST("", bookings.CreateBookingHandler(d.Bookings))
	apiBookings.GET("/:id", bookings.GetBookingHandler(d.Bookings))
	apiBookings.PUT("/:id", bookings.UpdateBookingHandler(d.Bookings))
	apiBookings.POST("/:id/cancel", bookings.CancelBookingHandler(d.Bookings))

	// 管理員專屬 Users
	apiUsers := api.Group("/users", authMw.RequireAdmin)
	apiUsers.GET("", users.ListUsersHandler(d.DB))
	apiUsers.GET("/:id", users.GetUserHandler(d.DB))
	apiUsers.PATCH("/:id", users.UpdateUserRoleHandler(d.DB))
	apiUsers.DELETE("/:id", users.DeleteUserHandler(d.DB))

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	if d.AlternateBackendURL != "" {
		proxy, err := alternateProxy(d.AlternateBackendURL)
		if err != nil {
			return err
		}
		e.Group(backend.DefaultAlternateBase, proxy)
	}
	return nil
}

// alternateProxy 轉發 /java-api/* 到 <target>/api/*，並把回應欄位換成主後端的名稱
func alternateProxy(target string) (echo.MiddlewareFunc, error) {
	u, err := url.Parse(target)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid alternate backend url %q", target)
	}
	return echomw.ProxyWithConfig(echomw.ProxyConfig{
		Balancer: echomw.NewRoundRobinBalancer([]*echomw.ProxyTarget{{URL: u}}),
		Rewrite: map[string]string{
			backend.DefaultAlternateBase:        "/api",
			backend.DefaultAlternateBase + "/*": "/api/$1",
		},
		ModifyResponse: normalizeAlternateResponse,
	}), nil
}

func normalizeAlternateResponse(res *http.Response) error {
	if !strings.HasPrefix(res.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		return nil
	}
	raw, err := io.ReadAll(res.Body)
	_ = res.Body.Close()
	if err != nil {
		return err
	}
	raw, err = backend.TransformJSON(raw, backend.FromAlternate)
	if err != nil {
		return err
	}
	res.Body = io.NopCloser(bytes.NewReader(raw))
	res.ContentLength = int64(len(raw))
	res.Header.Set(echo.HeaderContentLength, strconv.Itoa(len(raw)))
	return nil
}
