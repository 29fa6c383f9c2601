package domain

import "errors"

// Error taxonomy for fund operations.
// InvalidInput/Unauthorized errors are rejected before any state mutation,
// ExternalFailure unwinds the whole enclosing operation, and Reentrancy is
// rejected immediately with no state change.
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrNotWhitelisted      = errors.New("address is not whitelisted")
	ErrExternalFailure     = errors.New("external portal failure")
	ErrReentrancy          = errors.New("reentrant call rejected")
	ErrInsufficientBalance = errors.New("insufficient asset balance")
	ErrInsufficientShares  = errors.New("insufficient shares")
	ErrAssetNotFound       = errors.New("asset not found")
	ErrFundNotFound        = errors.New("fund not found")
)
