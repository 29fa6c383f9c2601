package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/blockvest/smartfund-backend/internal/domain"
)

// tradeRecordRepository implements domain.TradeRecordRepository
type tradeRecordRepository struct {
	db *DB
}

// NewTradeRecordRepository creates a new trade record repository
func NewTradeRecordRepository(db *DB) domain.TradeRecordRepository {
	return &tradeRecordRepository{db: db}
}

// Create persists a new trade record
func (r *tradeRecordRepository) Create(ctx context.Context, record *domain.TradeRecord) error {
	query := `
		INSERT INTO trade_records (id, fund_id, kind, src_asset, src_amount,
			dest_asset, dest_amount, executed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		record.FundID,
		string(record.Kind),
		string(record.SrcAsset),
		record.SrcAmount.String(),
		string(record.DestAsset),
		record.DestAmount.String(),
		record.ExecutedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create trade record: %w", err)
	}

	return nil
}

// ListByFund retrieves a paginated list of trade records for a fund, newest first
func (r *tradeRecordRepository) ListByFund(ctx context.Context, fundID uuid.UUID, limit, offset int) ([]*domain.TradeRecord, error) {
	query := `
		SELECT id, fund_id, kind, src_asset, src_amount, dest_asset, dest_amount, executed_at
		FROM trade_records
		WHERE fund_id = $1
		ORDER BY executed_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, fundID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list trade records: %w", err)
	}
	defer rows.Close()

	var records []*domain.TradeRecord
	for rows.Next() {
		var record domain.TradeRecord
		var kind, srcAsset, srcAmountStr, destAsset, destAmountStr string

		err := rows.Scan(
			&record.ID,
			&record.FundID,
			&kind,
			&srcAsset,
			&srcAmountStr,
			&destAsset,
			&destAmountStr,
			&record.ExecutedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trade record row: %w", err)
		}

		record.Kind = domain.TradeKind(kind)
		record.SrcAsset = domain.Asset(srcAsset)
		record.DestAsset = domain.Asset(destAsset)

		// Parse amounts (DECIMAL)
		if record.SrcAmount, err = decimal.NewFromString(srcAmountStr); err != nil {
			return nil, fmt.Errorf("failed to parse src_amount: %w", err)
		}
		if record.DestAmount, err = decimal.NewFromString(destAmountStr); err != nil {
			return nil, fmt.Errorf("failed to parse dest_amount: %w", err)
		}

		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trade record rows: %w", err)
	}

	return records, nil
}

// Count returns the total number of trade records for a fund
func (r *tradeRecordRepository) Count(ctx context.Context, fundID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM trade_records WHERE fund_id = $1`

	var count int
	if err := r.db.QueryRowContext(ctx, query, fundID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count trade records: %w", err)
	}

	return count, nil
}
