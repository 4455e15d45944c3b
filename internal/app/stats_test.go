package app_test

import (
	"errors"
	"testing"

	"weightloss/internal/app"
	"weightloss/internal/domain"
)

func TestStats(t *testing.T) {
	es := entries("2024-01-01", 70.0, "2024-01-02", 72.0, "2024-01-03", 68.0)

	avg, err := app.Average(es)
	if err != nil || avg != 70.0 {
		t.Errorf("Average = %v, %v; want 70", avg, err)
	}
	lo, err := app.Min(es)
	if err != nil || lo != 68 {
		t.Errorf("Min = %v, %v; want 68", lo, err)
	}
	hi, err := app.Max(es)
	if err != nil || hi != 72 {
		t.Errorf("Max = %v, %v; want 72", hi, err)
	}

	sum, err := app.Summarize(es)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if sum != (app.Summary{Count: 3, Average: 70, Min: 68, Max: 72}) {
		t.Errorf("unexpected summary %+v", sum)
	}
}

func TestStats_Empty(t *testing.T) {
	for name, fn := range map[string]func([]domain.WeightEntry) (float64, error){
		"Average": app.Average,
		"Min":     app.Min,
		"Max":     app.Max,
	} {
		if _, err := fn(nil); !errors.Is(err, domain.ErrNoData) {
			t.Errorf("%s(empty) err = %v; want ErrNoData", name, err)
		}
	}
	if _, err := app.Summarize([]domain.WeightEntry{}); !errors.Is(err, domain.ErrNoData) {
		t.Errorf("Summarize(empty) err = %v; want ErrNoData", err)
	}
}
