package adapthttp

import "net/http"

func (s *Server) handleSettingsUnitGet(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"unit": s.settings.DisplayUnit()})
}

func (s *Server) handleSettingsUnitPut(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Unit string `json:"unit"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	unit, err := s.settings.SetDisplayUnit(r.Context(), body.Unit)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"unit": unit})
}
