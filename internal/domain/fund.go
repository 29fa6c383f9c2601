package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Fee percentages are expressed in basis points (1% = 100)
const (
	TotalPercentageBP = 10000
	// MaximumSuccessFeeBP caps the manager's cut of profit at 30%
	MaximumSuccessFeeBP = 3000
)

// Fund represents a fund instance's configuration record.
// The live accounting state (asset/share/cost-basis ledgers) is owned by the
// FundController built from this record.
type Fund struct {
	ID              uuid.UUID
	Name            string
	Manager         Address
	Platform        Address
	SuccessFeeBP    int64 // manager's cut of profit, basis points
	PlatformFeeBP   int64 // platform's cut of the manager's cut, basis points
	BaseAsset       Asset // asset deposits arrive in (NativeAsset or a stablecoin)
	QuoteAsset      Asset // unit of account the fund value is expressed in
	WhitelistOnly   bool
	CreatedAt       time.Time
}

// Validate ensures the fund record adheres to domain rules
// Returns an error if validation fails
func (f *Fund) Validate() error {
	if f.Name == "" {
		return errors.New("fund name cannot be empty")
	}
	if f.Manager == "" {
		return errors.New("fund must have a manager address")
	}
	if f.SuccessFeeBP < 0 || f.SuccessFeeBP > MaximumSuccessFeeBP {
		return errors.New("success fee must be between 0 and 3000 basis points")
	}
	if f.PlatformFeeBP < 0 || f.PlatformFeeBP > TotalPercentageBP {
		return errors.New("platform fee must be between 0 and 10000 basis points")
	}
	if f.PlatformFeeBP > 0 && f.Platform == "" {
		return errors.New("fund with a platform fee must have a platform address")
	}
	if f.BaseAsset == "" || f.QuoteAsset == "" {
		return errors.New("fund must have base and quote assets")
	}
	return nil
}
