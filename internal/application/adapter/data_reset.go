// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// DataReset wipes a merchant's operational data (sales, sale items, expenses,
// products, worked days) inside a single transaction. The user account and
// profile survive; only the movement data goes.
type DataReset interface {
	// WipeUserData removes all operational rows belonging to the user.
	WipeUserData(ctx context.Context, userID uuid.UUID) error
}
