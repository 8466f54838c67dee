package domain

import (
	"math"
	"testing"
)

func TestComputeRemaining_DiscountApplied(t *testing.T) {
	got := ComputeRemaining(5000, 2000, 10)
	if math.Abs(got-2500) > 1e-6 {
		t.Fatalf("remaining = %v, want 2500", got)
	}
}

func TestComputeRemaining_FullyPaid(t *testing.T) {
	got := ComputeRemaining(10000, 10000, 0)
	if math.Abs(got) > 1e-6 {
		t.Fatalf("remaining = %v, want 0", got)
	}
}

func TestComputeRemaining_OverpaidGoesNegative(t *testing.T) {
	got := ComputeRemaining(1000, 1500, 0)
	if got >= 0 {
		t.Fatalf("remaining = %v, want negative", got)
	}
	if math.Abs(got+500) > 1e-6 {
		t.Fatalf("remaining = %v, want -500", got)
	}
}

func TestComputeRemaining_FullDiscount(t *testing.T) {
	got := ComputeRemaining(5000, 0, 100)
	if math.Abs(got) > 1e-6 {
		t.Fatalf("remaining = %v, want 0", got)
	}
}

func TestValidateBillingInput(t *testing.T) {
	cases := []struct {
		name     string
		total    float64
		advance  float64
		discount float64
		wantErr  bool
	}{
		{"valid", 5000, 2000, 10, false},
		{"zero everything", 0, 0, 0, false},
		{"negative total", -1, 0, 0, true},
		{"negative advance", 100, -1, 0, true},
		{"discount below range", 100, 0, -5, true},
		{"discount above range", 100, 0, 101, true},
		{"discount at bounds", 100, 0, 100, false},
	}
	for _, tc := range cases {
		err := ValidateBillingInput(tc.total, tc.advance, tc.discount)
		if tc.wantErr && !IsValidation(err) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
		if !tc.wantErr && err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
	}
}
