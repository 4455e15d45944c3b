package app

import "weightloss/internal/domain"

// Summary holds descriptive statistics over stored (kilogram) weights.
type Summary struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

// Average returns the arithmetic mean weight, or domain.ErrNoData.
func Average(entries []domain.WeightEntry) (float64, error) {
	if len(entries) == 0 {
		return 0, domain.ErrNoData
	}
	var sum float64
	for _, e := range entries {
		sum += e.Weight
	}
	return sum / float64(len(entries)), nil
}

// Min returns the lowest weight, or domain.ErrNoData.
func Min(entries []domain.WeightEntry) (float64, error) {
	if len(entries) == 0 {
		return 0, domain.ErrNoData
	}
	m := entries[0].Weight
	for _, e := range entries[1:] {
		m = min(m, e.Weight)
	}
	return m, nil
}

// Max returns the highest weight, or domain.ErrNoData.
func Max(entries []domain.WeightEntry) (float64, error) {
	if len(entries) == 0 {
		return 0, domain.ErrNoData
	}
	m := entries[0].Weight
	for _, e := range entries[1:] {
		m = max(m, e.Weight)
	}
	return m, nil
}

// Summarize computes count, average, min and max together.
func Summarize(entries []domain.WeightEntry) (Summary, error) {
	avg, err := Average(entries)
	if err != nil {
		return Summary{}, err
	}
	lo, _ := Min(entries)
	hi, _ := Max(entries)
	return Summary{Count: len(entries), Average: avg, Min: lo, Max: hi}, nil
}
