package response

import (
	"errors"
	"net/http"

	"github.com/MedAmineFouzai/BuilderServiceRest/pkg/errs"
	"github.com/labstack/echo/v4"
)

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors"`
}

func WriteSuccessResponse(c echo.Context, message string, data interface{}) error {
	resp := SuccessResponse{}
	resp.Status = "success"
	resp.Message = message
	resp.Data = data

	return c.JSON(http.StatusOK, resp)
}

// WriteErrorResponse maps err to its status code. Field errors of a
// validation failure are returned when details is nil.
func WriteErrorResponse(c echo.Context, err error, details interface{}) error {
	statusCode := errs.GetErrorStatusCode(err)
	resp := ErrorResponse{}
	resp.Status = "error"
	resp.Message = err.Error()
	resp.Errors = details

	if statusCode >= http.StatusInternalServerError {
		resp.Message = errs.ErrInternalServer.Error()
	}

	var validationErr *errs.ValidationError
	if resp.Errors == nil && errors.As(err, &validationErr) {
		resp.Errors = validationErr.Errors
	}

	return c.JSON(statusCode, resp)
}
