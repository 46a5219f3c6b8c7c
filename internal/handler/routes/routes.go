// File: internal/handler/routes/routes.go
package routes

import (
	"errors"
	"net/http"

	"trainease/internal/api"
	"trainease/internal/apperr"
	"trainease/internal/database"
	"trainease/internal/handler"
	"trainease/internal/model"
	"trainease/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	listRoutes  = store.ListRoutes
	getRoute    = store.GetRoute
	createRoute = store.CreateRoute
	updateRoute = store.UpdateRoute
	deleteRoute = store.DeleteRoute
)

func storeError(err error, action string) error {
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound("route")
	}
	return apperr.Internal("failed to "+action+" route", err)
}

// ListRoutesHandler 列出所有路線
// @Summary     List routes
// @Tags        routes
// @Produce     json
// @Success     200 {array}  model.Route
// @Failure     500 {object} api.ErrorResponse
// @Router      /routes [get]
func ListRoutesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		routes, err := listRoutes(c.Request().Context(), db)
		if err != nil {
			return apperr.Respond(c, storeError(err, "list"))
		}
		return c.JSON(http.StatusOK, routes)
	}
}

// GetRouteHandler 取得單一路線
// @Summary     Get route
// @Tags        routes
// @Produce     json
// @Param       id  path     int true "路線 ID"
// @Success     200 {object} model.Route
// @Failure     404 {object} api.ErrorResponse
// @Router      /routes/{id} [get]
func GetRouteHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "id")
		if err != nil {
			return apperr.Respond(c, err)
		}
		route, err := getRoute(c.Request().Context(), db, id)
		if err != nil {
			return apperr.Respond(c, storeError(err, "load"))
		}
		return c.JSON(http.StatusOK, route)
	}
}

// CreateRouteHandler 新增路線（管理員）；未給時刻時使用預設 09:00 AM / 11:00 AM
// @Summary     Create route
// @Tags        routes
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateRouteRequest true "路線資料"
// @Success     201  {object} model.Route
// @Failure     400  {object} api.ErrorResponse
// @Failure     403  {object} api.ErrorResponse
// @Router      /routes [post]
func CreateRouteHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateRouteRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return apperr.Respond(c, err)
		}
		route, err := createRoute(c.Request().Context(), db, &model.Route{
			Origin:        req.Origin,
			Destination:   req.Destination,
			Duration:      req.Duration,
			DepartureTime: req.DepartureTime,
			ArrivalTime:   req.ArrivalTime,
			Price:         *req.Price,
		})
		if err != nil {
			return apperr.Respond(c, storeError(err, "create"))
		}
		return c.JSON(http.StatusCreated, route)
	}
}

// UpdateRouteHandler 部分更新路線（管理員），PUT 與 PATCH 共用
// @Summary     Update route
// @Tags        routes
// @Accept      json
// @Produce     json
// @Param       id   path     int                    true "路線 ID"
// @Param       body body     api.UpdateRouteRequest true "要更新的欄位"
// @Success     200  {object} model.Route
// @Failure     400  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Router      /routes/{id} [put]
// @Router      /routes/{id} [patch]
func UpdateRouteHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "id")
		if err != nil {
			return apperr.Respond(c, err)
		}
		var req api.UpdateRouteRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return apperr.Respond(c, err)
		}
		route, err := updateRoute(c.Request().Context(), db, id, model.RoutePatch{
			Origin:        req.Origin,
			Destination:   req.Destination,
			Duration:      req.Duration,
			DepartureTime: req.DepartureTime,
			ArrivalTime:   req.ArrivalTime,
			Price:         req.Price,
		})
		if err != nil {
			return apperr.Respond(c, storeError(err, "update"))
		}
		return c.JSON(http.StatusOK, route)
	}
}

// DeleteRouteHandler 刪除路線（管理員）
// @Summary     Delete route
// @Tags        routes
// @Param       id path int true "路線 ID"
// @Success     204
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /routes/{id} [delete]
func DeleteRouteHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "id")
		if err != nil {
			return apperr.Respond(c, err)
		}
		if err := deleteRoute(c.Request().Context(), db, id); err != nil {
			return apperr.Respond(c, storeError(err, "delete"))
		}
		return c.NoContent(http.StatusNoContent)
	}
}
