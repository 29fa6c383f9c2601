package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/blockvest/smartfund-backend/internal/domain"
)

// fundRepository implements domain.FundRepository
type fundRepository struct {
	db *DB
}

// NewFundRepository creates a new fund repository
func NewFundRepository(db *DB) domain.FundRepository {
	return &fundRepository{db: db}
}

// Create persists a new fund record
func (r *fundRepository) Create(ctx context.Context, fund *domain.Fund) error {
	query := `
		INSERT INTO funds (id, name, manager, platform, success_fee_bp, platform_fee_bp,
			base_asset, quote_asset, whitelist_only, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.ExecContext(ctx, query,
		fund.ID,
		fund.Name,
		string(fund.Manager),
		string(fund.Platform),
		fund.SuccessFeeBP,
		fund.PlatformFeeBP,
		string(fund.BaseAsset),
		string(fund.QuoteAsset),
		fund.WhitelistOnly,
		fund.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create fund: %w", err)
	}

	return nil
}

// GetByID retrieves a fund record by its ID
func (r *fundRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Fund, error) {
	query := `
		SELECT id, name, manager, platform, success_fee_bp, platform_fee_bp,
			base_asset, quote_asset, whitelist_only, created_at
		FROM funds
		WHERE id = $1
	`

	fund, err := scanFund(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("fund not found: %w", err)
		}
		return nil, fmt.Errorf("failed to get fund by ID: %w", err)
	}

	return fund, nil
}

// List retrieves all fund records, oldest first
func (r *fundRepository) List(ctx context.Context) ([]*domain.Fund, error) {
	query := `
		SELECT id, name, manager, platform, success_fee_bp, platform_fee_bp,
			base_asset, quote_asset, whitelist_only, created_at
		FROM funds
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list funds: %w", err)
	}
	defer rows.Close()

	var funds []*domain.Fund
	for rows.Next() {
		fund, err := scanFund(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fund row: %w", err)
		}
		funds = append(funds, fund)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate fund rows: %w", err)
	}

	return funds, nil
}

// rowScanner abstracts sql.Row and sql.Rows for shared scanning
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanFund(row rowScanner) (*domain.Fund, error) {
	var fund domain.Fund
	var manager, platform, baseAsset, quoteAsset string

	err := row.Scan(
		&fund.ID,
		&fund.Name,
		&manager,
		&platform,
		&fund.SuccessFeeBP,
		&fund.PlatformFeeBP,
		&baseAsset,
		&quoteAsset,
		&fund.WhitelistOnly,
		&fund.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	fund.Manager = domain.Address(manager)
	fund.Platform = domain.Address(platform)
	fund.BaseAsset = domain.Asset(baseAsset)
	fund.QuoteAsset = domain.Asset(quoteAsset)

	return &fund, nil
}
