package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Reason is a stable machine-readable code identifying why a request was
// rejected. Clients map reasons to localized text; messages here are hints.
type Reason string

const (
	ReasonUnauthorized     Reason = "UNAUTHORIZED"
	ReasonForbidden        Reason = "FORBIDDEN"
	ReasonValidationFailed Reason = "VALIDATION_FAILED"
	ReasonNotFound         Reason = "NOT_FOUND"
	ReasonConflict         Reason = "CONFLICT"
	ReasonInternal         Reason = "INTERNAL"
)

// Field-level sub-codes carried alongside VALIDATION_FAILED.
const (
	CodeMissingName      = "MISSING_NAME"
	CodeInvalidStatus    = "INVALID_STATUS"
	CodeInvalidRole      = "INVALID_ROLE"
	CodeUsernameTooShort = "USERNAME_TOO_SHORT"
	CodePasswordTooShort = "PASSWORD_TOO_SHORT"
	CodeNameTooShort     = "NAME_TOO_SHORT"
	CodeDuplicateName    = "DUPLICATE_NAME"
)

var (
	ErrInvalidSigningMethod = errors.New("unexpected token signing method")
	ErrInvalidToken         = errors.New("invalid token")
	ErrTokenExpired         = errors.New("token has expired")
	ErrTokenNotYetValid     = errors.New("token is not valid yet")

	ErrEmptyAuthHeader    = errors.New("authorization header is missing")
	ErrInvalidAuthHeader  = errors.New("authorization header is malformed")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")

	ErrUserNotFoundInContext = errors.New("caller identity missing from request context")

	ErrNotFound   = errors.New("record not found")
	ErrConflict   = errors.New("record already exists")
	ErrBadRequest = errors.New("bad request")
	ErrSelfDelete = errors.New("cannot delete your own account")
)

// HttpError carries everything the response writer needs: the HTTP status,
// the machine-readable reason, an optional field sub-code and a human hint.
type HttpError struct {
	Code    int    `json:"-"`
	Reason  Reason `json:"reason"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, reason Reason, message string, err error) *HttpError {
	return &HttpError{Code: code, Reason: reason, Message: message, Err: err}
}

// NewValidationError builds the VALIDATION_FAILED envelope around a
// field-level sub-code, e.g. MISSING_NAME.
func NewValidationError(field, subCode, message string) *HttpError {
	return &HttpError{
		Code:    http.StatusBadRequest,
		Reason:  ReasonValidationFailed,
		Field:   field,
		Message: fmt.Sprintf("%s: %s", subCode, message),
	}
}

// Wrap maps the well-known sentinels onto HttpError so controllers can hand
// any service error straight to the response writer.
func Wrap(err error) *HttpError {
	var httpErr *HttpError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return NewHttpError(http.StatusNotFound, ReasonNotFound, "record not found", err)
	case errors.Is(err, ErrConflict):
		return NewHttpError(http.StatusConflict, ReasonConflict, "a record with this name already exists", err)
	case errors.Is(err, ErrInvalidCredentials):
		return NewHttpError(http.StatusUnauthorized, ReasonUnauthorized, "invalid username or password", err)
	case errors.Is(err, ErrForbidden):
		return NewHttpError(http.StatusForbidden, ReasonForbidden, "you do not have permission to perform this action", err)
	case errors.Is(err, ErrSelfDelete):
		return NewHttpError(http.StatusBadRequest, ReasonValidationFailed, "cannot delete your own account", err)
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, ErrEmptyAuthHeader),
		errors.Is(err, ErrInvalidAuthHeader),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrTokenNotYetValid),
		errors.Is(err, ErrInvalidSigningMethod),
		errors.Is(err, ErrUserNotFoundInContext):
		return NewHttpError(http.StatusUnauthorized, ReasonUnauthorized, "authentication required", err)
	case errors.Is(err, ErrBadRequest):
		return NewHttpError(http.StatusBadRequest, ReasonValidationFailed, "bad request", err)
	}

	return NewHttpError(http.StatusInternalServerError, ReasonInternal, "internal server error", err)
}
