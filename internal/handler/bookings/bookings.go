// File: internal/handler/bookings/bookings.go
package bookings

import (
	"context"
	"net/http"

	"trainease/internal/api"
	"trainease/internal/apperr"
	"trainease/internal/handler"
	"trainease/internal/middleware"
	"trainease/internal/model"

	"github.com/labstack/echo/v4"
)

// Service 訂票業務規則；*service.Bookings 實作此介面
type Service interface {
	List(ctx context.Context, requester *model.User) ([]model.Booking, error)
	Get(ctx context.Context, requester *model.User, id int) (*model.Booking, error)
	Create(ctx context.Context, requester *model.User, req api.CreateBookingRequest) (*model.Booking, error)
	Update(ctx context.Context, requester *model.User, id int, req api.UpdateBookingRequest) (*model.Booking, error)
	Cancel(ctx context.Context, requester *model.User, id int) (*model.Booking, error)
}

// ListBookingsHandler 一般使用者取得自己的訂票，管理員取得全部
// @Summary     List bookings
// @Tags        bookings
// @Produce     json
// @Success     200 {array}  model.Booking
// @Failure     401 {object} api.ErrorResponse
// @Router      /bookings [get]
func ListBookingsHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := svc.List(c.Request().Context(), middleware.CurrentUser(c))
		if err != nil {
			return apperr.Respond(c, err)
		}
		return c.JSON(http.StatusOK, list)
	}
}

// GetBookingHandler 取得單筆訂票（擁有者或管理員）
// @Summary     Get booking
// @Tags        bookings
// @Produce     json
// @Param       id  path     int true "訂票 ID"
// @Success     200 {object} model.Booking
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /bookings/{id} [get]
func GetBookingHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "id")
		if err != nil {
			return apperr.Respond(c, err)
		}
		b, err := svc.Get(c.Request().Context(), middleware.CurrentUser(c), id)
		if err != nil {
			return apperr.Respond(c, err)
		}
		return c.JSON(http.StatusOK, b)
	}
}

// CreateBookingHandler 為目前使用者建立訂票
// @Summary     Create booking
// @Description 擁有者一律為呼叫者；seats 預設 1，departureTime 預設為現在
// @Tags        bookings
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateBookingRequest true "訂票資料"
// @Success     201  {object} model.Booking
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Router      /bookings [post]
func CreateBookingHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateBookingRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return apperr.Respond(c, err)
		}
		b, err := svc.Create(c.Request().Context(), middleware.CurrentUser(c), req)
		if err != nil {
			return apperr.Respond(c, err)
		}
		return c.JSON(http.StatusCreated, b)
	}
}

// UpdateBookingHandler 部分更新訂票（擁有者或管理員）
// @Summary     Update booking
// @Tags        bookings
// @Accept      json
// @Produce     json
// @Param       id   path     int                      true "訂票 ID"
// @Param       body body     api.UpdateBookingRequest true "要更新的欄位"
// @Success     200  {object} model.Booking
// @Failure     400  {object} api.ErrorResponse
// @Failure     403  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Router      /bookings/{id} [put]
func UpdateBookingHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "id")
		if err != nil {
			return apperr.Respond(c, err)
		}
		var req api.UpdateBookingRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return apperr.Respond(c, err)
		}
		b, err := svc.Update(c.Request().Context(), middleware.CurrentUser(c), id, req)
		if err != nil {
			return apperr.Respond(c, err)
		}
		return c.JSON(http.StatusOK, b)
	}
}

// CancelBookingHandler 取消訂票；已取消的訂票回傳 409
// @Summary     Cancel booking
// @Tags        bookings
// @Produce     json
// @Param       id  path     int true "訂票 ID"
// @Success     200 {object} api.CancelBookingResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Router      /bookings/{id}/cancel [post]
func CancelBookingHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "id")
		if err != nil {
			return apperr.Respond(c, err)
		}
		b, err := svc.Cancel(c.Request().Context(), middleware.CurrentUser(c), id)
		if err != nil {
			return apperr.Respond(c, err)
		}
		return c.JSON(http.StatusOK, api.CancelBookingResponse{
			Message: "Booking canceled successfully",
			Booking: *b,
		})
	}
}
