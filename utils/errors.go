package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ErrorKind classifies an AppError independently of its HTTP status. The
// status codes below intentionally mirror the legacy API: unauthenticated
// requests get 400, and a doctor conflict gets 404.
type ErrorKind string

const (
	KindValidation      ErrorKind = "validation"
	KindUnauthenticated ErrorKind = "unauthenticated"
	KindForbidden       ErrorKind = "forbidden"
	KindNotFound        ErrorKind = "not_found"
	KindConflict        ErrorKind = "conflict"
	KindInternal        ErrorKind = "internal"
)

// AppError is the single error type handlers return; the Fiber error handler
// renders it into the uniform {success, message} envelope.
type AppError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func ValidationError(message string) error {
	return &AppError{Kind: KindValidation, Status: fiber.StatusBadRequest, Message: message}
}

func Unauthenticated(message string) error {
	return &AppError{Kind: KindUnauthenticated, Status: fiber.StatusBadRequest, Message: message}
}

func Forbidden(message string) error {
	return &AppError{Kind: KindForbidden, Status: fiber.StatusForbidden, Message: message}
}

func NotFound(message string) error {
	return &AppError{Kind: KindNotFound, Status: fiber.StatusNotFound, Message: message}
}

// Conflict keeps the legacy 404 status for ambiguous doctor matches.
func Conflict(message string) error {
	return &AppError{Kind: KindConflict, Status: fiber.StatusNotFound, Message: message}
}

func Internal(err error) error {
	return &AppError{Kind: KindInternal, Status: fiber.StatusInternalServerError, Message: "Internal Server Error", Err: err}
}

// ErrorHandler renders every handler error as {success:false, message}.
// Wired into fiber.Config at startup.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return c.Status(appErr.Status).JSON(fiber.Map{
			"success": false,
			"message": appErr.Message,
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"success": false,
			"message": fiberErr.Message,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "Internal Server Error",
	})
}

// WrapDBError maps gorm's missing-row error to NotFound and everything else
// to Internal.
func WrapDBError(err error, notFoundMessage string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(notFoundMessage)
	}
	return Internal(err)
}
