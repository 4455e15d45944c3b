package domain_test

import (
	"math"
	"testing"

	"weightloss/internal/domain"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		from, to domain.Unit
		want     float64
	}{
		{"kg to lbs", 100.0, domain.Kilograms, domain.Pounds, 220.462},
		{"lbs to kg", 220.462, domain.Pounds, domain.Kilograms, 100.0},
		{"same unit kg", 80.0, domain.Kilograms, domain.Kilograms, 80.0},
		{"same unit lbs", 180.0, domain.Pounds, domain.Pounds, 180.0},
		{"unknown units", 50.0, domain.Unit("st"), domain.Kilograms, 50.0},
		{"zero value", 0, domain.Kilograms, domain.Pounds, 0},
		{"negative still computes", -10, domain.Kilograms, domain.Pounds, -22.0462},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.Convert(tc.value, tc.from, tc.to)
			if !almostEqual(got, tc.want, 0.001) {
				t.Errorf("Convert(%v, %q, %q) = %v; want %v",
					tc.value, tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestConversionRoundTrip(t *testing.T) {
	for _, x := range []float64{0.1, 1, 45.3, 70, 99.99, 150.25, 400, 12345.678} {
		if got := domain.ToKilograms(domain.ToPounds(x)); !almostEqual(got, x, 1e-3) {
			t.Errorf("ToKilograms(ToPounds(%v)) = %v", x, got)
		}
	}
}

func TestToPoundsKeepsPrecision(t *testing.T) {
	// 1 kg must not be rounded to 2.2.
	if got := domain.ToPounds(1); got != 2.20462 {
		t.Fatalf("ToPounds(1) = %v; want 2.20462", got)
	}
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.Unit
		wantErr bool
	}{
		{"kg", domain.Kilograms, false},
		{"KG", domain.Kilograms, false},
		{"lbs", domain.Pounds, false},
		{"lb", domain.Pounds, false},
		{" lbs ", domain.Pounds, false},
		{"stone", "", true},
		{"", "", true},
	}
	for _, tc := range tests {
		got, err := domain.ParseUnit(tc.in)
		if (err != nil) != tc.wantErr {
			t.Fatalf("ParseUnit(%q) err = %v; wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParseUnit(%q) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestRound1(t *testing.T) {
	if got := domain.Round1(5.1466); got != 5.1 {
		t.Errorf("Round1(5.1466) = %v", got)
	}
	if got := domain.Round1(69.96); got != 70 {
		t.Errorf("Round1(69.96) = %v", got)
	}
}
