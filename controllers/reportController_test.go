package controllers

import (
	"net/http/httptest"
	"testing"
	"time"

	"pintureria-backend/reports"

	"github.com/gofiber/fiber/v2"
)

func rangeFor(t *testing.T, query string) (reports.DateRange, int) {
	t.Helper()
	var r reports.DateRange
	app := fiber.New()
	app.Get("/probe", func(c *fiber.Ctx) error {
		parsed, err := parseDateRange(c)
		if err != nil {
			return err
		}
		r = parsed
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest("GET", "/probe"+query, nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	return r, resp.StatusCode
}

func TestParseDateRange(t *testing.T) {
	r, status := rangeFor(t, "?from=2026-08-01&to=2026-08-31")
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if !r.From.Equal(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("from = %v", r.From)
	}
	// 'to' is inclusive, so the exclusive bound lands on the next day.
	if !r.To.Equal(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("to = %v", r.To)
	}
}

func TestParseDateRangeDefaults(t *testing.T) {
	r, status := rangeFor(t, "")
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if !r.From.Before(r.To) {
		t.Fatalf("default range not ordered: %v .. %v", r.From, r.To)
	}
}

func TestParseDateRangeRejectsBadInput(t *testing.T) {
	cases := []string{
		"?from=31-08-2026",
		"?to=notadate",
		"?from=2026-08-31&to=2026-08-01",
		"?from=2026-08-15&to=2026-08-14",
	}
	for _, q := range cases {
		if _, status := rangeFor(t, q); status != fiber.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", q, status)
		}
	}
}
