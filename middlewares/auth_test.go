package middlewares

import (
	"io"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// The secret is read once per process, so it has to be in place before the
// first token is issued or parsed.
func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET_KEY", "test-secret")
	os.Exit(m.Run())
}

func authApp() *fiber.App {
	app := fiber.New()
	app.Get("/whoami", IsAuthenticatedHeader(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":   c.Locals("userID"),
			"branch_id": c.Locals("branchID"),
		})
	})
	return app
}

func TestAuthRoundTrip(t *testing.T) {
	token, err := GenerateJWT("user-123", 7)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := authApp().Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestAuthRejectsBadTokens(t *testing.T) {
	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"empty bearer", "Bearer "},
		{"garbage token", "Bearer not.a.jwt"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest("GET", "/whoami", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		resp, err := authApp().Test(req)
		if err != nil {
			t.Fatalf("%s: app.Test: %v", tc.name, err)
		}
		resp.Body.Close()
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Fatalf("%s: status = %d, want 401", tc.name, resp.StatusCode)
		}
	}
}

func TestBranchFromLocalsQueryOverride(t *testing.T) {
	app := fiber.New()
	app.Get("/branch", func(c *fiber.Ctx) error {
		c.Locals("branchID", uint(3))
		return c.SendString(strconv.Itoa(int(BranchFromLocals(c))))
	})

	fetch := func(path string) string {
		t.Helper()
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatalf("read body: %v", err)
		}
		return string(body)
	}

	if got := fetch("/branch"); got != "3" {
		t.Fatalf("token branch = %s, want 3", got)
	}
	if got := fetch("/branch?branch_id=9"); got != "9" {
		t.Fatalf("override branch = %s, want 9", got)
	}
	if got := fetch("/branch?branch_id=abc"); got != "3" {
		t.Fatalf("bad override should fall back, got %s", got)
	}
}
