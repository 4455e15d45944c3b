package postgres

import (
	"context"
	"os"
	"testing"
)

// Runs against a live server only when TEST_DATABASE_URL is set.
func openTest(t *testing.T) *DB {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	db, err := Open(url)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestOpen_RequiresConnString(t *testing.T) {
	if _, err := Open(" "); err == nil {
		t.Fatal("expected error for empty connection string")
	}
}

func TestKVStore(t *testing.T) {
	db := openTest(t)
	ctx := context.Background()
	const key = "test:displayUnit"
	t.Cleanup(func() { _ = db.Delete(context.Background(), key) })

	if err := db.Set(ctx, key, "kg"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := db.Set(ctx, key, "lbs"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	v, ok, err := db.Get(ctx, key)
	if err != nil || !ok || v != "lbs" {
		t.Fatalf("Get: %q ok=%v err=%v", v, ok, err)
	}
	if err := db.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, err := db.Get(ctx, key); err != nil || ok {
		t.Fatalf("Get after delete: ok=%v err=%v", ok, err)
	}
}
