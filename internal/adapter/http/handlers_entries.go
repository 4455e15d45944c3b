package adapthttp

import (
	"net/http"

	"weightloss/internal/domain"
)

// entryView is an entry as rendered for clients: the stored kilogram weight
// plus the same weight in the requested display unit.
type entryView struct {
	ID      int64       `json:"id"`
	Date    string      `json:"date"`
	Weight  float64     `json:"weight"`
	Display float64     `json:"display"`
	Unit    domain.Unit `json:"unit"`
}

func newEntryView(e domain.WeightEntry, unit domain.Unit) entryView {
	return entryView{
		ID:      e.ID,
		Date:    e.Date,
		Weight:  e.Weight,
		Display: domain.Round1(domain.Convert(e.Weight, domain.Kilograms, unit)),
		Unit:    unit,
	}
}

type entryBody struct {
	Weight numberOrString `json:"weight"`
	Date   string         `json:"date"`
	Unit   string         `json:"unit"`
}

func (s *Server) handleEntriesList(w http.ResponseWriter, r *http.Request) {
	unit, err := s.displayUnit(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	entries := s.entries.List()
	items := make([]entryView, 0, len(entries))
	for _, e := range entries {
		items = append(items, newEntryView(e, unit))
	}
	writeJSON(w, http.StatusOK, map[string]any{"unit": unit, "items": items})
}

func (s *Server) handleEntriesAdd(w http.ResponseWriter, r *http.Request) {
	var body entryBody
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	unit, err := s.bodyUnit(body.Unit)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	ctx := r.Context()
	entry, err := s.entries.AddIn(ctx, string(body.Weight), body.Date, unit)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	startingSet := s.goals.EnsureStartingWeight(ctx, entry.Weight)
	writeJSON(w, http.StatusOK, map[string]any{
		"entry":          newEntryView(entry, unit),
		"startingWeight": startingSet,
	})
}

func (s *Server) handleEntriesEdit(w http.ResponseWriter, r *http.Request) {
	id, err := idVar(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	var body entryBody
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	unit, err := s.bodyUnit(body.Unit)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	entry, err := s.entries.EditIn(r.Context(), id, string(body.Weight), body.Date, unit)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"entry": newEntryView(entry, unit)})
}

func (s *Server) handleEntriesDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idVar(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.entries.Delete(r.Context(), id)
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
