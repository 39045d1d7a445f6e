// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// StatsCache caches serialized dashboard summaries per user for a short TTL.
// A miss is (nil, nil); cache failures are reported but callers treat them
// as misses, never as aggregation failures.
type StatsCache interface {
	// GetDashboard returns the cached dashboard payload for the user, or nil on miss.
	GetDashboard(ctx context.Context, userID uuid.UUID) ([]byte, error)

	// SetDashboard stores the dashboard payload for the user.
	SetDashboard(ctx context.Context, userID uuid.UUID, payload []byte) error

	// InvalidateDashboard drops the cached payload after a write that changes it.
	InvalidateDashboard(ctx context.Context, userID uuid.UUID) error
}
