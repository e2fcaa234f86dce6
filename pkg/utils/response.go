package utils

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/tatthien/church-equipment/pkg/errors"
)

type HTTPResponse struct {
	Status     bool        `json:"status"`
	Body       interface{} `json:"body,omitempty"`
	Message    string      `json:"message"`
	Reason     string      `json:"reason,omitempty"`
	Field      string      `json:"field,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int, pagination ...Pagination) error {
	response := &HTTPResponse{
		Status:  true,
		Body:    body,
		Message: message,
	}
	if len(pagination) > 0 {
		response.Pagination = &pagination[0]
	}
	return ctx.JSON(code, response)
}

// ErrorResponse translates any error into the response envelope. The reason
// code always names the rule that failed; internal details stay in the logs.
func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		field := ""
		if len(validationErrs) > 0 {
			field = validationErrs[0].Field()
		}
		return ctx.JSON(http.StatusBadRequest, &HTTPResponse{
			Status:  false,
			Message: "request validation failed",
			Reason:  string(apperrors.ReasonValidationFailed),
			Field:   field,
		})
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		return ctx.JSON(echoErr.Code, &HTTPResponse{
			Status:  false,
			Message: http.StatusText(echoErr.Code),
			Reason:  string(apperrors.ReasonValidationFailed),
		})
	}

	httpErr := apperrors.Wrap(err)
	if httpErr.Code >= http.StatusInternalServerError {
		logger.Error("request failed", zap.Error(err))
	}

	return ctx.JSON(httpErr.Code, &HTTPResponse{
		Status:  false,
		Message: httpErr.Message,
		Reason:  string(httpErr.Reason),
		Field:   httpErr.Field,
	})
}
