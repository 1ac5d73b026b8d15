package utils

import "testing"

func TestRound2(t *testing.T) {
	cases := []struct {
		in, expected float64
	}{
		{0, 0},
		{1.004, 1.00},
		{1.006, 1.01},
		{119.999, 120.00},
		{3.9996, 4.00},
		{-1.006, -1.01},
		{100.50, 100.50},
	}
	for _, tc := range cases {
		if got := Round2(tc.in); got != tc.expected {
			t.Fatalf("Round2(%v) = %v, want %v", tc.in, got, tc.expected)
		}
	}
}

func TestCents(t *testing.T) {
	cases := []struct {
		in       float64
		expected int64
	}{
		{0, 0},
		{112.00, 11200},
		{0.01, 1},
		{111.99, 11199},
		{-5.25, -525},
	}
	for _, tc := range cases {
		if got := Cents(tc.in); got != tc.expected {
			t.Fatalf("Cents(%v) = %v, want %v", tc.in, got, tc.expected)
		}
	}
}

func TestApplyDiscount(t *testing.T) {
	if got := Round2(ApplyDiscount(200, 10)); got != 180.00 {
		t.Fatalf("ApplyDiscount(200, 10) = %v, want 180", got)
	}
	if got := ApplyDiscount(50, 0); got != 50 {
		t.Fatalf("ApplyDiscount(50, 0) = %v, want 50", got)
	}
	if got := Round2(ApplyDiscount(50, 100)); got != 0 {
		t.Fatalf("ApplyDiscount(50, 100) = %v, want 0", got)
	}
}
