package domain

import "strconv"

// Goal is the user's target weight, kept in the unit it was entered in.
type Goal struct {
	Value string `json:"value"`
	Unit  Unit   `json:"unit"`
}

// Weight returns the numeric goal value in its own unit.
func (g Goal) Weight() (float64, error) {
	return strconv.ParseFloat(g.Value, 64)
}

// In returns the goal value converted to unit.
func (g Goal) In(unit Unit) (float64, error) {
	v, err := g.Weight()
	if err != nil {
		return 0, err
	}
	return Convert(v, g.Unit, unit), nil
}
