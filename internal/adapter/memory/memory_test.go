package memory

import (
	"context"
	"errors"
	"testing"
)

func TestKVStore(t *testing.T) {
	db := New()
	ctx := context.Background()

	// Missing key
	if _, ok, err := db.Get(ctx, "weightEntries"); err != nil || ok {
		t.Fatalf("Get missing: ok=%v err=%v", ok, err)
	}

	if err := db.Set(ctx, "weightEntries", "[]"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok, err := db.Get(ctx, "weightEntries")
	if err != nil || !ok || v != "[]" {
		t.Fatalf("Get: %q ok=%v err=%v", v, ok, err)
	}

	// Overwrite
	_ = db.Set(ctx, "weightEntries", `[{"id":1}]`)
	v, _, _ = db.Get(ctx, "weightEntries")
	if v != `[{"id":1}]` {
		t.Errorf("expected overwritten value, got %q", v)
	}

	// Delete is idempotent
	if err := db.Delete(ctx, "weightEntries"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := db.Delete(ctx, "weightEntries"); err != nil {
		t.Fatalf("second Delete: %v", err)
	}
	if db.Len() != 0 {
		t.Errorf("expected empty store, got %d keys", db.Len())
	}
}

func TestFailWrites(t *testing.T) {
	db := New()
	ctx := context.Background()
	db.FailWrites = errors.New("disk full")

	if err := db.Set(ctx, "goal", "{}"); err == nil {
		t.Fatal("expected Set error")
	}
	if err := db.Delete(ctx, "goal"); err == nil {
		t.Fatal("expected Delete error")
	}
	if _, ok, _ := db.Get(ctx, "goal"); ok {
		t.Error("failed write must not be visible")
	}
}
