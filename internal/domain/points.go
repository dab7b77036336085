package domain

import (
	"context"
	"time"
)

type PointType string

const (
	PointTypeEarn   PointType = "earn"
	PointTypeRedeem PointType = "redeem"
)

// VoidWindow is how long after creation a points transaction may be voided.
const VoidWindow = 30 * 24 * time.Hour

// PointsTransaction is one row of the append-only loyalty ledger. Points are
// stored signed: earn rows positive, redeem rows negative. The user's
// denormalized balance is always the sum of their rows.
type PointsTransaction struct {
	ID        int
	UserID    int
	BookingID *int
	Type      PointType
	Points    int
	CreatedAt time.Time
}

// CanVoid reports whether the transaction is still inside the void window.
func (t *PointsTransaction) CanVoid(now time.Time) bool {
	return now.Sub(t.CreatedAt) <= VoidWindow
}

type PointsFilters struct {
	Pagination
	UserID int
	Type   PointType
}

type PointsSummary struct {
	UserID        int
	UserName      string
	CurrentPoints int
	TotalEarned   int
	TotalRedeemed int
	Recent        []PointsTransaction
}

type PointsRepository interface {
	// Create appends the ledger row and adjusts the user's balance by the
	// signed delta in one transaction.
	Create(ctx context.Context, tx *PointsTransaction) error

	GetById(ctx context.Context, id int) (*PointsTransaction, error)
	GetAll(ctx context.Context, filters PointsFilters) ([]PointsTransaction, *Metadata, error)
	GetUserSummary(ctx context.Context, userID int) (*PointsSummary, error)

	// Void reverses the row's signed delta on the user's balance and deletes
	// the row, in one transaction.
	Void(ctx context.Context, tx *PointsTransaction) error
}
