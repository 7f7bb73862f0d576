package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func TestErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		kind   ErrorKind
		status int
	}{
		{"validation", ValidationError("bad"), KindValidation, 400},
		{"unauthenticated", Unauthenticated("who"), KindUnauthenticated, 400},
		{"forbidden", Forbidden("no"), KindForbidden, 403},
		{"not found", NotFound("gone"), KindNotFound, 404},
		{"conflict keeps legacy 404", Conflict("two doctors"), KindConflict, 404},
		{"internal", Internal(errors.New("boom")), KindInternal, 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var appErr *AppError
			if !errors.As(tt.err, &appErr) {
				t.Fatal("not an AppError")
			}
			if appErr.Kind != tt.kind {
				t.Errorf("kind = %s, want %s", appErr.Kind, tt.kind)
			}
			if appErr.Status != tt.status {
				t.Errorf("status = %d, want %d", appErr.Status, tt.status)
			}
		})
	}
}

func TestErrorHandlerEnvelope(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/app-error", func(c *fiber.Ctx) error {
		return NotFound("Doctor Not Found!")
	})
	app.Get("/plain-error", func(c *fiber.Ctx) error {
		return errors.New("driver exploded")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/app-error", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 404 {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("bad body %q: %v", raw, err)
	}
	if body.Success {
		t.Error("success should be false")
	}
	if body.Message != "Doctor Not Found!" {
		t.Errorf("message = %q", body.Message)
	}

	// Unexpected errors never leak details.
	resp, err = app.Test(httptest.NewRequest("GET", "/plain-error", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 500 {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}
	raw, _ = io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatal(err)
	}
	if body.Message != "Internal Server Error" {
		t.Errorf("message = %q", body.Message)
	}
}

func TestWrapDBError(t *testing.T) {
	err := WrapDBError(gorm.ErrRecordNotFound, "Appointment Not Found!")
	var appErr *AppError
	if !errors.As(err, &appErr) || appErr.Kind != KindNotFound {
		t.Fatalf("missing row should map to not found, got %v", err)
	}
	if appErr.Message != "Appointment Not Found!" {
		t.Errorf("message = %q", appErr.Message)
	}

	err = WrapDBError(errors.New("conn refused"), "Appointment Not Found!")
	if !errors.As(err, &appErr) || appErr.Kind != KindInternal {
		t.Errorf("generic error should map to internal, got %v", err)
	}
}
