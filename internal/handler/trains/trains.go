// File: internal/handler/trains/trains.go
package trains

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
	listTrains  = store.ListTrains
	getTrain    = store.GetTrain
	createTrain = store.CreateTrain
	updateTrain = store.UpdateTrain
	deleteTrain = store.DeleteTrain
)

func storeError(err error, action string) error {
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound("train")
	}
	return apperr.Internal("failed to "+action+" train", err)
}

// ListTrainsHandler 列出所有車次
// @Summary     List trains
// @Tags        trains
// @Produce     json
// @Success     200 {array}  model.Train
// @Failure     500 {object} api.ErrorResponse
// @Router      /trains [get]
func ListTrainsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		trains, err := listTrains(c.Request().Context(), db)
		if err != nil {
			return apperr.Respond(c, storeError(err, "list"))
		}
		return c.JSON(http.StatusOK, trains)
	}
}

// GetTrainHandler 取得單一車次
// @Summary     Get train
// @Tags        trains
// @Produce     json
// @Param       id  path     int true "車次 ID"
// @Success     200 {object} model.Train
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /trains/{id} [get]
func GetTrainHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "id")
		if err != nil {
			return apperr.Respond(c, err)
		}
		train, err := getTrain(c.Request().Context(), db, id)
		if err != nil {
			return apperr.Respond(c, storeError(err, "load"))
		}
		return c.JSON(http.StatusOK, train)
	}
}

// CreateTrainHandler 新增車次（管理員）
// @Summary     Create train
// @Tags        trains
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateTrainRequest true "車次資料"
// @Success     201  {object} model.Train
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     403  {object} api.ErrorResponse
// @Router      /trains [post]
func CreateTrainHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateTrainRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return apperr.Respond(c, err)
		}
		train, err := createTrain(c.Request().Context(), db, &model.Train{
			Name:     req.Name,
			Capacity: req.Capacity,
			Type:     req.Type,
		})
		if err != nil {
			return apperr.Respond(c, storeError(err, "create"))
		}
		return c.JSON(http.StatusCreated, train)
	}
}

// UpdateTrainHandler 部分更新車次（管理員）
// @Summary     Update train
// @Tags        trains
// @Accept      json
// @Produce     json
// @Param       id   path     int                    true "車次 ID"
// @Param       body body     api.UpdateTrainRequest true "要更新的欄位"
// @Success     200  {object} model.Train
// @Failure     400  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Router      /trains/{id} [put]
func UpdateTrainHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "id")
		if err != nil {
			return apperr.Respond(c, err)
		}
		var req api.UpdateTrainRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return apperr.Respond(c, err)
		}
		train, err := updateTrain(c.Request().Context(), db, id, model.TrainPatch{
			Name:     req.Name,
			Capacity: req.Capacity,
			Type:     req.Type,
		})
		if err != nil {
			return apperr.Respond(c, storeError(err, "update"))
		}
		return c.JSON(http.StatusOK, train)
	}
}

// DeleteTrainHandler 刪除車次（管理員）；既有訂票保留
// @Summary     Delete train
// @Tags        trains
// @Param       id path int true "車次 ID"
// @Success     204
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /trains/{id} [delete]
func DeleteTrainHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "id")
		if err != nil {
			return apperr.Respond(c, err)
		}
		if err := deleteTrain(c.Request().Context(), db, id); err != nil {
			return apperr.Respond(c, storeError(err, "delete"))
		}
		return c.NoContent(http.StatusNoContent)
	}
}
