package app_test

import (
	"context"
	"testing"

	"weightloss/internal/adapter/memory"
	"weightloss/internal/app"
	"weightloss/internal/domain"
)

func TestSettings_DefaultAndPersist(t *testing.T) {
	kv := memory.New()
	ctx := context.Background()

	svc := app.NewSettingsService(kv)
	svc.Load(ctx)
	if got := svc.DisplayUnit(); got != domain.Kilograms {
		t.Fatalf("expected kg default, got %q", got)
	}

	if _, err := svc.SetDisplayUnit(ctx, "stone"); !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	u, err := svc.SetDisplayUnit(ctx, "lb")
	if err != nil || u != domain.Pounds {
		t.Fatalf("SetDisplayUnit = %q, %v", u, err)
	}

	reloaded := app.NewSettingsService(kv)
	reloaded.Load(ctx)
	if got := reloaded.DisplayUnit(); got != domain.Pounds {
		t.Fatalf("expected persisted lbs, got %q", got)
	}
}

func TestSettings_LoadInvalid(t *testing.T) {
	kv := memory.New()
	ctx := context.Background()
	_ = kv.Set(ctx, domain.KeyDisplayUnit, "furlongs")

	svc := app.NewSettingsService(kv)
	svc.Load(ctx)
	if got := svc.DisplayUnit(); got != domain.Kilograms {
		t.Fatalf("expected kg fallback, got %q", got)
	}
}

func TestSetDisplayUnit_OverlappingWritesKeepStoreCurrent(t *testing.T) {
	kv := newBlockingKV()
	s := app.NewSettingsService(kv)
	ctx := context.Background()

	overlap(t, kv,
		func() { _, _ = s.SetDisplayUnit(ctx, "lbs") },
		func() { _, _ = s.SetDisplayUnit(ctx, "kg") },
	)

	got, _ := kv.value(domain.KeyDisplayUnit)
	if got != string(s.DisplayUnit()) {
		t.Fatalf("store holds %q, memory %q", got, s.DisplayUnit())
	}
}
