package domain_test

import (
	"errors"
	"testing"

	"weightloss/internal/domain"
)

func TestParseWeight(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{"80", 80, false},
		{" 72.5 ", 72.5, false},
		{"", 0, true},
		{"   ", 0, true},
		{"abc", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
		{"0", 0, true},
		{"-3", 0, true},
	}
	for _, tc := range tests {
		got, err := domain.ParseWeight(tc.raw)
		if (err != nil) != tc.wantErr {
			t.Fatalf("ParseWeight(%q) err = %v; wantErr %v", tc.raw, err, tc.wantErr)
		}
		if err != nil {
			var ve *domain.ValidationError
			if !errors.As(err, &ve) || ve.Field != "weight" {
				t.Errorf("ParseWeight(%q) err = %v; want weight ValidationError", tc.raw, err)
			}
			continue
		}
		if got != tc.want {
			t.Errorf("ParseWeight(%q) = %v; want %v", tc.raw, got, tc.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	if got, err := domain.ParseDate("2024-01-08"); err != nil || got != "2024-01-08" {
		t.Fatalf("ParseDate = %q, %v", got, err)
	}
	for _, raw := range []string{"", "2024-13-01", "08/01/2024", "2024-02-30"} {
		if _, err := domain.ParseDate(raw); !domain.IsValidation(err) {
			t.Errorf("ParseDate(%q) err = %v; want ValidationError", raw, err)
		}
	}
}

func TestGoalIn(t *testing.T) {
	g := domain.Goal{Value: "154", Unit: domain.Pounds}
	got, err := g.In(domain.Kilograms)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(got, 69.853, 0.001) {
		t.Errorf("In(kg) = %v; want ~69.853", got)
	}
	if _, err := (domain.Goal{Value: "x", Unit: domain.Kilograms}).In(domain.Pounds); err == nil {
		t.Error("expected error for non-numeric goal")
	}
}

func TestErrorKinds(t *testing.T) {
	if !domain.IsNotFound(&domain.NotFoundError{ID: 7}) {
		t.Error("expected IsNotFound")
	}
	if domain.IsNotFound(errors.New("x")) || domain.IsValidation(errors.New("x")) {
		t.Error("plain errors must not match")
	}
	if got := (&domain.NotFoundError{ID: 7}).Error(); got != "entry 7 not found" {
		t.Errorf("Error() = %q", got)
	}
}
