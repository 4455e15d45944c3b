package domain

import (
	"fmt"
	"math"
	"strings"
)

// Unit is a display unit for weights. Stored weights are always kilograms.
type Unit string

const (
	Kilograms Unit = "kg"
	Pounds    Unit = "lbs"
)

const kgToLbs = 2.20462

// Valid reports whether u is one of the supported units.
func (u Unit) Valid() bool {
	return u == Kilograms || u == Pounds
}

// ParseUnit accepts "kg", "lbs" and the shorthand "lb".
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kg":
		return Kilograms, nil
	case "lbs", "lb":
		return Pounds, nil
	}
	return "", &ValidationError{Field: "unit", Reason: fmt.Sprintf("unit must be %q or %q", Kilograms, Pounds)}
}

// ToPounds converts kilograms to pounds at full precision.
func ToPounds(kg float64) float64 {
	return kg * kgToLbs
}

// ToKilograms converts pounds to kilograms at full precision.
func ToKilograms(lbs float64) float64 {
	return lbs / kgToLbs
}

// Convert converts v between units.
// Returns v unchanged if from == to or if either unit is unrecognised.
func Convert(v float64, from, to Unit) float64 {
	if from == to {
		return v
	}
	if from == Kilograms && to == Pounds {
		return ToPounds(v)
	}
	if from == Pounds && to == Kilograms {
		return ToKilograms(v)
	}
	return v
}

// Round1 rounds v to one decimal place for display.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
