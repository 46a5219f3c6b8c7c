// File: internal/handler/request.go
package handler

import (
	"strconv"

	"trainease/internal/apperr"

	"github.com/labstack/echo/v4"
)

// BindAndValidate 綁定請求內容並以 validator 驗證，失敗時回傳 VALIDATION_ERROR
func BindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return apperr.Validation("invalid request body", nil)
	}
	if err := c.Validate(req); err != nil {
		return apperr.FromValidation(err)
	}
	return nil
}

// ParamID 解析路徑上的正整數 id
func ParamID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, apperr.Validation("invalid id", map[string]any{name: "positive integer"})
	}
	return id, nil
}
