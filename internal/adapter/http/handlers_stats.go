package adapthttp

import (
	"errors"
	"net/http"

	"weightloss/internal/app"
	"weightloss/internal/domain"
)

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	unit, err := s.displayUnit(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	entries := s.entries.List()
	resp := map[string]any{
		"unit":              unit,
		"count":             len(entries),
		"average":           nil,
		"min":               nil,
		"max":               nil,
		"distanceToGoal":    nil,
		"averageWeeklyLoss": round2(s.goals.AverageWeeklyLoss(entries, unit)),
	}

	sum, err := app.Summarize(entries)
	switch {
	case errors.Is(err, domain.ErrNoData):
	case err != nil:
		writeError(w, http.StatusInternalServerError, err)
		return
	default:
		toUnit := func(kg float64) float64 {
			return domain.Round1(domain.Convert(kg, domain.Kilograms, unit))
		}
		resp["average"] = toUnit(sum.Average)
		resp["min"] = toUnit(sum.Min)
		resp["max"] = toUnit(sum.Max)
	}

	if d, ok := s.goals.Progress(entries, unit); ok {
		resp["distanceToGoal"] = domain.Round1(d)
	}
	writeJSON(w, http.StatusOK, resp)
}
