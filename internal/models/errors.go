package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the JSON error envelope returned by every failing request.
// Error carries either an error code or a list of FieldError.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   any    `json:"error,omitempty"`
}

// AppError is an application error carrying the HTTP status it maps to.
type AppError struct {
	Status  int
	Code    string
	Message string
	Fields  []FieldError
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidationError returns a 400 error with the given message.
func NewValidationError(message string) *AppError {
	return &AppError{
		Status:  fiber.StatusBadRequest,
		Code:    "VALIDATION_ERROR",
		Message: message,
	}
}

// NewFieldValidationError returns a 400 error carrying field-level failures.
func NewFieldValidationError(message string, fields []FieldError) *AppError {
	return &AppError{
		Status:  fiber.StatusBadRequest,
		Code:    "VALIDATION_ERROR",
		Message: message,
		Fields:  fields,
	}
}

// NewUnauthorizedError returns a 401 error with the given message.
func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Status:  fiber.StatusUnauthorized,
		Code:    "UNAUTHORIZED",
		Message: message,
	}
}

// NewNotFoundError returns a 404 error with the given message.
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Status:  fiber.StatusNotFound,
		Code:    "NOT_FOUND",
		Message: message,
	}
}

// NewConflictError returns a 409 error with the given message.
func NewConflictError(message string) *AppError {
	return &AppError{
		Status:  fiber.StatusConflict,
		Code:    "CONFLICT",
		Message: message,
	}
}

// NewInternalError wraps an unexpected error into a 500.
func NewInternalError(err error) *AppError {
	return &AppError{
		Status:  fiber.StatusInternalServerError,
		Code:    "INTERNAL_ERROR",
		Message: "Internal server error",
		Err:     err,
	}
}

// RespondWithError writes the standard error envelope. The status comes from
// the AppError; anything else maps to 500 with a generic message.
func RespondWithError(c *fiber.Ctx, err error) error {
	appErr, ok := err.(*AppError)
	if !ok {
		appErr = NewInternalError(err)
	}

	response := ErrorResponse{Message: appErr.Message}
	if len(appErr.Fields) > 0 {
		response.Error = appErr.Fields
	} else {
		response.Error = appErr.Code
	}

	return c.Status(appErr.Status).JSON(response)
}
