package app

import (
	"time"

	"weightloss/internal/domain"
)

// maxChartDays bounds the window a caller may request.
const maxChartDays = 366

// EntryLister is the read side of EntryStore used by chart rendering.
type EntryLister interface {
	List() []domain.WeightEntry
}

// ChartsService encapsulates chart data retrieval use cases.
type ChartsService struct {
	entries EntryLister
	now     func() time.Time
}

// NewChartsService creates a ChartsService reading from the given entries.
func NewChartsService(entries EntryLister) *ChartsService {
	return &ChartsService{entries: entries, now: time.Now}
}

// WithClock replaces the time source used to anchor the day window.
func (s *ChartsService) WithClock(now func() time.Time) *ChartsService {
	s.now = now
	return s
}

// Point is a single chart data point.
type Point struct {
	ID     int64       `json:"id"`
	Date   string      `json:"date"`
	Weight float64     `json:"weight"`
	Unit   domain.Unit `json:"unit"`
}

// GetSeries returns entries in date order with weights converted to unit and
// rounded to one decimal. When days > 0 only the last days calendar days
// (including today) are returned.
func (s *ChartsService) GetSeries(unit string, days int) ([]Point, error) {
	u, err := domain.ParseUnit(unit)
	if err != nil {
		return nil, err
	}
	if days > maxChartDays {
		days = maxChartDays
	}

	var since string
	if days > 0 {
		since = s.now().In(time.Local).AddDate(0, 0, -(days - 1)).Format(domain.DayLayout)
	}

	entries := s.entries.List()
	points := make([]Point, 0, len(entries))
	for _, e := range entries {
		if e.Date < since {
			continue
		}
		points = append(points, Point{
			ID:     e.ID,
			Date:   e.Date,
			Weight: domain.Round1(domain.Convert(e.Weight, domain.Kilograms, u)),
			Unit:   u,
		})
	}
	return points, nil
}
