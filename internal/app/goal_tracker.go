package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"weightloss/internal/domain"
)

const week = 7 * 24 * time.Hour

// GoalTracker owns the optional goal and starting weight and computes
// progress figures against them.
type GoalTracker struct {
	kv domain.KVStore

	// writeMu serializes each mutation with its store write. Acquired
	// before mu.
	writeMu sync.Mutex

	mu       sync.RWMutex
	goal     *domain.Goal
	starting *float64
}

// NewGoalTracker creates a GoalTracker with no goal and no starting weight.
func NewGoalTracker(kv domain.KVStore) *GoalTracker {
	return &GoalTracker{kv: kv}
}

// Load reads the goal and starting weight from the store. Missing or
// malformed values are treated as absent.
func (g *GoalTracker) Load(ctx context.Context) {
	g.writeMu.Lock()
	defer g.writeMu.Unlock()

	var goal *domain.Goal
	if raw, ok := g.get(ctx, domain.KeyGoal); ok {
		var stored domain.Goal
		if err := json.Unmarshal([]byte(raw), &stored); err != nil {
			log.Printf("goal: discarding malformed %s: %v", domain.KeyGoal, err)
		} else if _, err := stored.Weight(); err != nil || !stored.Unit.Valid() {
			log.Printf("goal: discarding invalid goal %+v", stored)
		} else {
			goal = &stored
		}
	}

	var starting *float64
	if raw, ok := g.get(ctx, domain.KeyStartingWeight); ok {
		if v, err := domain.ParseWeight(raw); err != nil {
			log.Printf("goal: discarding malformed %s: %v", domain.KeyStartingWeight, err)
		} else {
			starting = &v
		}
	}

	g.mu.Lock()
	g.goal, g.starting = goal, starting
	g.mu.Unlock()
}

func (g *GoalTracker) get(ctx context.Context, key string) (string, bool) {
	raw, ok, err := g.kv.Get(ctx, key)
	if err != nil {
		log.Printf("goal: load %s: %v", key, err)
		return "", false
	}
	return raw, ok
}

// SetGoal replaces the current goal.
func (g *GoalTracker) SetGoal(ctx context.Context, value string, unit domain.Unit) (domain.Goal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return domain.Goal{}, &domain.ValidationError{Field: "goal", Reason: "required"}
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return domain.Goal{}, &domain.ValidationError{Field: "goal", Reason: "must be a number"}
	}
	if !unit.Valid() {
		return domain.Goal{}, &domain.ValidationError{Field: "unit", Reason: fmt.Sprintf("unknown unit %q", unit)}
	}

	goal := domain.Goal{Value: value, Unit: unit}
	g.writeMu.Lock()
	defer g.writeMu.Unlock()
	g.mu.Lock()
	g.goal = &goal
	g.mu.Unlock()

	if err := g.saveGoal(ctx, goal); err != nil {
		log.Printf("goal: %v", err)
	}
	return goal, nil
}

func (g *GoalTracker) saveGoal(ctx context.Context, goal domain.Goal) error {
	b, err := json.Marshal(goal)
	if err != nil {
		return fmt.Errorf("encode goal: %w", err)
	}
	if err := g.kv.Set(ctx, domain.KeyGoal, string(b)); err != nil {
		return fmt.Errorf("save goal: %w", err)
	}
	return nil
}

// ClearGoal removes the goal. Clearing an absent goal is a no-op.
func (g *GoalTracker) ClearGoal(ctx context.Context) {
	g.writeMu.Lock()
	defer g.writeMu.Unlock()
	g.mu.Lock()
	g.goal = nil
	g.mu.Unlock()

	if err := g.kv.Delete(ctx, domain.KeyGoal); err != nil {
		log.Printf("goal: clear: %v", err)
	}
}

// Goal returns the current goal, if any.
func (g *GoalTracker) Goal() (domain.Goal, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.goal == nil {
		return domain.Goal{}, false
	}
	return *g.goal, true
}

// SetStartingWeight sets the baseline (kilograms) used for loss rates.
func (g *GoalTracker) SetStartingWeight(ctx context.Context, value string) (float64, error) {
	return g.SetStartingWeightIn(ctx, value, domain.Kilograms)
}

// SetStartingWeightIn sets the baseline from a value entered in unit and
// returns it in kilograms.
func (g *GoalTracker) SetStartingWeightIn(ctx context.Context, value string, unit domain.Unit) (float64, error) {
	if !unit.Valid() {
		return 0, &domain.ValidationError{Field: "unit", Reason: fmt.Sprintf("unknown unit %q", unit)}
	}
	v, err := domain.ParseWeight(value)
	if err != nil {
		return 0, err
	}
	kg := domain.Convert(v, unit, domain.Kilograms)

	g.writeMu.Lock()
	defer g.writeMu.Unlock()
	g.mu.Lock()
	g.starting = &kg
	g.mu.Unlock()

	g.save(ctx, kg)
	return kg, nil
}

// EnsureStartingWeight sets the starting weight to kg unless one is already
// set. It reports whether the value was taken.
func (g *GoalTracker) EnsureStartingWeight(ctx context.Context, kg float64) bool {
	g.writeMu.Lock()
	defer g.writeMu.Unlock()
	g.mu.Lock()
	if g.starting != nil {
		g.mu.Unlock()
		return false
	}
	g.starting = &kg
	g.mu.Unlock()

	g.save(ctx, kg)
	return true
}

func (g *GoalTracker) save(ctx context.Context, kg float64) {
	if err := g.kv.Set(ctx, domain.KeyStartingWeight, strconv.FormatFloat(kg, 'f', -1, 64)); err != nil {
		log.Printf("goal: save starting weight: %v", err)
	}
}

// ClearStartingWeight removes the starting weight. Idempotent.
func (g *GoalTracker) ClearStartingWeight(ctx context.Context) {
	g.writeMu.Lock()
	defer g.writeMu.Unlock()
	g.mu.Lock()
	g.starting = nil
	g.mu.Unlock()

	if err := g.kv.Delete(ctx, domain.KeyStartingWeight); err != nil {
		log.Printf("goal: clear starting weight: %v", err)
	}
}

// StartingWeight returns the starting weight in kilograms, if set.
func (g *GoalTracker) StartingWeight() (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.starting == nil {
		return 0, false
	}
	return *g.starting, true
}

// DistanceToGoal returns current minus goal, both expressed in display.
// Positive means above the goal. ok is false when no goal is set.
func (g *GoalTracker) DistanceToGoal(currentKg float64, display domain.Unit) (float64, bool) {
	goal, ok := g.Goal()
	if !ok {
		return 0, false
	}
	target, err := goal.In(display)
	if err != nil {
		return 0, false
	}
	return domain.Convert(currentKg, domain.Kilograms, display) - target, true
}

// Progress is DistanceToGoal measured from the latest entry by date. ok is
// false when there is no goal or no entry.
func (g *GoalTracker) Progress(entries []domain.WeightEntry, display domain.Unit) (float64, bool) {
	if len(entries) == 0 {
		return 0, false
	}
	sorted := SortByDate(entries)
	return g.DistanceToGoal(sorted[len(sorted)-1].Weight, display)
}

// AverageWeeklyLoss returns the loss per week since the starting weight, in
// display units. It needs at least two entries and a starting weight and
// returns 0 otherwise. The elapsed time spans the first and last entries by
// date, rounded to whole weeks with a floor of one.
func (g *GoalTracker) AverageWeeklyLoss(entries []domain.WeightEntry, display domain.Unit) float64 {
	start, ok := g.StartingWeight()
	if !ok || len(entries) < 2 {
		return 0
	}
	sorted := SortByDate(entries)
	first, last := sorted[0], sorted[len(sorted)-1]

	firstDay, err := first.Day()
	if err != nil {
		return 0
	}
	lastDay, err := last.Day()
	if err != nil {
		return 0
	}

	totalLoss := domain.Convert(start, domain.Kilograms, display) - domain.Convert(last.Weight, domain.Kilograms, display)
	weeks := max(1, math.Round(float64(lastDay.Sub(firstDay))/float64(week)))
	return totalLoss / weeks
}
