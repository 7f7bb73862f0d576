package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/zeecare/hospital-backend/models"
	"github.com/zeecare/hospital-backend/utils"
)

// gateApp builds an app with an admin gate in front of a trivial handler.
// Only the pre-lookup paths (missing cookie, invalid token) are exercised
// here; they never reach the database.
func gateApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: utils.ErrorHandler})
	app.Get("/admin", IsAdminAuthenticated(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func decodeBody(t *testing.T, resp io.Reader) (body struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}) {
	t.Helper()
	raw, _ := io.ReadAll(resp)
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("bad body %q: %v", raw, err)
	}
	return body
}

func TestGateMissingCookie(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := gateApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 400 {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	body := decodeBody(t, resp.Body)
	if body.Message != "Admin Not Authenticated!" {
		t.Errorf("message = %q", body.Message)
	}
}

func TestGateGarbageToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := gateApp()

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Cookie", utils.AdminCookie+"=garbage")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 400 {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestGateExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := utils.SignToken(1, -time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	app := gateApp()
	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Cookie", utils.AdminCookie+"="+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 400 {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	body := decodeBody(t, resp.Body)
	if body.Message != "Admin Not Authenticated!" {
		t.Errorf("message = %q", body.Message)
	}
}

func TestAuthorizeRoleMismatch(t *testing.T) {
	patient := models.User{Role: models.RolePatient}
	err := authorize(&patient, models.RoleAdmin)
	var appErr *utils.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("want AppError, got %v", err)
	}
	if appErr.Kind != utils.KindForbidden || appErr.Status != 403 {
		t.Errorf("kind/status = %s/%d", appErr.Kind, appErr.Status)
	}
	// The refusal names the caller's actual role.
	if appErr.Message != "Patient not authorized for this resource!" {
		t.Errorf("message = %q", appErr.Message)
	}

	admin := models.User{Role: models.RoleAdmin}
	if err := authorize(&admin, models.RoleAdmin); err != nil {
		t.Errorf("matching role refused: %v", err)
	}
}
