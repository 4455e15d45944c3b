package adapthttp

import (
	"net/http"
	"time"
)

func (s *Server) handleChartsSeries(w http.ResponseWriter, r *http.Request) {
	unit, err := s.displayUnit(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	days := intQuery(r, "days", 0)

	points, err := s.charts.GetSeries(string(unit), days)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"days":  days,
		"unit":  unit,
		"today": localDayString(time.Now()),
		"items": points,
	})
}
