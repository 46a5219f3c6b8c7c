// File: internal/handler/ping.go
package handler

import (
	"net/http"

	"trainease/internal/apperr"
	"trainease/internal/cache"
	"trainease/internal/database"

	"github.com/labstack/echo/v4"
)

// PingResponse 健康檢查回應模型
// swagger:model PingResponse
type PingResponse struct {
	// 回應訊息
	Message string `json:"message" example:"pong"`
}

// PingHandler 健康檢查
// @Summary     Health Check
// @Description 回傳 pong，並檢查資料庫與 Redis 連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /ping [get]
func PingHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			return apperr.Respond(c, apperr.Internal("database unhealthy", err))
		}
		// 使用 Postgres session store 時沒有 Redis
		if cch != nil {
			if err := cch.Ping(ctx).Err(); err != nil {
				return apperr.Respond(c, apperr.Internal("cache unhealthy", err))
			}
		}
		return c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}
