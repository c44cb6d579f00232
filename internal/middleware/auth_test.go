package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestParseUserID_RoundTrip(t *testing.T) {
	userID := uuid.New()
	token := signToken(t, testSecret, userID.String())

	got, err := ParseUserID(token, testSecret)
	if err != nil {
		t.Fatalf("ParseUserID failed: %v", err)
	}
	if got != userID {
		t.Errorf("got %s, want %s", got, userID)
	}
}

func TestParseUserID_WrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", uuid.NewString())
	if _, err := ParseUserID(token, testSecret); err == nil {
		t.Error("expected signature validation to fail")
	}
}

func TestParseUserID_SubjectNotUUID(t *testing.T) {
	token := signToken(t, testSecret, "not-a-uuid")
	if _, err := ParseUserID(token, testSecret); err == nil {
		t.Error("expected non-uuid subject to fail")
	}
}

func TestRequireAuth(t *testing.T) {
	userID := uuid.New()

	app := fiber.New()
	app.Get("/protected", RequireAuth(testSecret), func(c *fiber.Ctx) error {
		got, ok := UserID(c)
		if !ok {
			t.Error("user id missing from context")
		}
		if got != userID {
			t.Errorf("context user id = %s, want %s", got, userID)
		}
		return c.SendStatus(fiber.StatusOK)
	})

	// No token
	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", resp.StatusCode)
	}

	// Garbage token
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("garbage token: status = %d, want 401", resp.StatusCode)
	}

	// Valid token
	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, userID.String()))
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("valid token: status = %d, want 200", resp.StatusCode)
	}
}

func TestOptionalAuth(t *testing.T) {
	userID := uuid.New()

	app := fiber.New()
	app.Get("/open", OptionalAuth(testSecret), func(c *fiber.Ctx) error {
		if _, ok := UserID(c); ok {
			return c.SendString("known")
		}
		return c.SendString("anonymous")
	})

	// Anonymous request still passes
	resp, err := app.Test(httptest.NewRequest("GET", "/open", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("anonymous: status = %d, want 200", resp.StatusCode)
	}

	// Invalid token is ignored, not rejected
	req := httptest.NewRequest("GET", "/open", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("bad token: status = %d, want 200", resp.StatusCode)
	}

	// Valid token resolves the user
	req = httptest.NewRequest("GET", "/open", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, userID.String()))
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("valid token: status = %d, want 200", resp.StatusCode)
	}
}
