package adapthttp

import (
	"net/http"

	"weightloss/internal/domain"
)

func (s *Server) handleGoalGet(w http.ResponseWriter, r *http.Request) {
	unit, err := s.displayUnit(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	goal, ok := s.goals.Goal()
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{"goal": nil, "display": nil, "unit": unit})
		return
	}
	v, err := goal.In(unit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"goal": goal, "display": domain.Round1(v), "unit": unit})
}

func (s *Server) handleGoalPut(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Value numberOrString `json:"value"`
		Unit  string         `json:"unit"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	unit, err := s.bodyUnit(body.Unit)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	goal, err := s.goals.SetGoal(r.Context(), string(body.Value), unit)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"goal": goal})
}

func (s *Server) handleGoalDelete(w http.ResponseWriter, r *http.Request) {
	s.goals.ClearGoal(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleStartingWeightGet(w http.ResponseWriter, r *http.Request) {
	unit, err := s.displayUnit(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	kg, ok := s.goals.StartingWeight()
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{"startingWeight": nil, "display": nil, "unit": unit})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"startingWeight": kg,
		"display":        domain.Round1(domain.Convert(kg, domain.Kilograms, unit)),
		"unit":           unit,
	})
}

func (s *Server) handleStartingWeightPut(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Value numberOrString `json:"value"`
		Unit  string         `json:"unit"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	unit, err := s.bodyUnit(body.Unit)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	kg, err := s.goals.SetStartingWeightIn(r.Context(), string(body.Value), unit)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"startingWeight": kg})
}

func (s *Server) handleStartingWeightDelete(w http.ResponseWriter, r *http.Request) {
	s.goals.ClearStartingWeight(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
