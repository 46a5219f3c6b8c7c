package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"trainease/internal/apperr"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type testValidator struct{ v *validator.Validate }

func (tv testValidator) Validate(i any) error { return tv.v.Struct(i) }

type seatsRequest struct {
	Seats int `json:"seats" validate:"required,min=1"`
}

func jsonCtx(body string) echo.Context {
	e := echo.New()
	e.Validator = testValidator{validator.New()}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidate(t *testing.T) {
	var req seatsRequest
	require.NoError(t, BindAndValidate(jsonCtx(`{"seats":2}`), &req))
	require.Equal(t, 2, req.Seats)

	err := BindAndValidate(jsonCtx(`{"seats":`), &seatsRequest{})
	require.True(t, apperr.Is(err, apperr.CodeValidation))

	err = BindAndValidate(jsonCtx(`{"seats":0}`), &seatsRequest{})
	appErr := apperr.As(err)
	require.Equal(t, apperr.CodeValidation, appErr.Code)
	require.Contains(t, appErr.Details, "Seats")
}

func TestParamID(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.SetParamNames("id")

	c.SetParamValues("12")
	id, err := ParamID(c, "id")
	require.NoError(t, err)
	require.Equal(t, 12, id)

	for _, bad := range []string{"abc", "0", "-3", ""} {
		c.SetParamValues(bad)
		_, err := ParamID(c, "id")
		require.True(t, apperr.Is(err, apperr.CodeValidation), bad)
	}
}
