// Package domain contains the core entities, conversions and ports.
package domain

import "context"

// Keys under which state is mirrored into the key-value store.
const (
	KeyEntries        = "weightEntries"
	KeyStartingWeight = "startingWeight"
	KeyGoal           = "goal"
	KeyDisplayUnit    = "displayUnit"
)

// KVStore is the port for the string key-value persistence provider.
// Get reports ok=false for a missing key.
type KVStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
