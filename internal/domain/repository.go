package domain

import (
	"context"

	"github.com/google/uuid"
)

// FundRepository defines the interface for fund record persistence operations
type FundRepository interface {
	// Create persists a new fund record
	Create(ctx context.Context, fund *Fund) error

	// GetByID retrieves a fund record by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*Fund, error)

	// List retrieves all fund records
	List(ctx context.Context) ([]*Fund, error)
}

// TradeRecordRepository defines the interface for trade history persistence operations
type TradeRecordRepository interface {
	// Create persists a new trade record
	Create(ctx context.Context, record *TradeRecord) error

	// ListByFund retrieves a paginated list of trade records for a fund,
	// newest first. limit and offset are used for pagination.
	ListByFund(ctx context.Context, fundID uuid.UUID, limit, offset int) ([]*TradeRecord, error)

	// Count returns the total number of trade records for a fund
	Count(ctx context.Context, fundID uuid.UUID) (int, error)
}
