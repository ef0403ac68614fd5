package repositories

import (
	"context"
	"time"
)

// EventDeduper remembers processed gateway event ids.
// It only short-circuits redeliveries; correctness never depends on it.
type EventDeduper interface {
	// Seen reports whether eventID was marked before and has not expired.
	Seen(ctx context.Context, eventID string) (bool, error)

	// Mark remembers eventID for ttl.
	Mark(ctx context.Context, eventID string, ttl time.Duration) error
}
