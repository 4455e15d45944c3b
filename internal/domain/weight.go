package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// DayLayout is the calendar-date format used for entry dates.
const DayLayout = "2006-01-02"

// WeightEntry represents a single dated weight measurement. Weight is kept in
// kilograms regardless of the unit it was entered in.
type WeightEntry struct {
	ID     int64   `json:"id"`
	Weight float64 `json:"weight"`
	Date   string  `json:"date"`
}

// Day parses the entry date.
func (e WeightEntry) Day() (time.Time, error) {
	return time.Parse(DayLayout, e.Date)
}

// ParseWeight parses a user-supplied weight. The value must be a finite
// number greater than zero.
func ParseWeight(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, &ValidationError{Field: "weight", Reason: "required"}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ValidationError{Field: "weight", Reason: "must be a number"}
	}
	if v <= 0 {
		return 0, &ValidationError{Field: "weight", Reason: "must be > 0"}
	}
	return v, nil
}

// ParseDate validates a YYYY-MM-DD calendar date and returns it normalised.
func ParseDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", &ValidationError{Field: "date", Reason: "required"}
	}
	d, err := time.Parse(DayLayout, raw)
	if err != nil {
		return "", &ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"}
	}
	return d.Format(DayLayout), nil
}
