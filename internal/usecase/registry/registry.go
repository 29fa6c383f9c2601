package registry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/blockvest/smartfund-backend/internal/domain"
	"github.com/blockvest/smartfund-backend/internal/usecase/fund"
)

// CreateFundInput represents the input for creating a fund
type CreateFundInput struct {
	Name          string
	Manager       domain.Address
	Platform      domain.Address
	SuccessFeeBP  int64
	PlatformFeeBP int64
	BaseAsset     domain.Asset
	QuoteAsset    domain.Asset
	WhitelistOnly bool
}

// Service creates fund instances and records them. Each created fund gets its
// own ledgers wired to the shared portal collaborators; the registry itself is
// pure bookkeeping.
type Service struct {
	FundRepo domain.FundRepository
	Collab   fund.Collaborators

	mu          sync.RWMutex
	controllers map[uuid.UUID]*fund.Controller
}

// NewService creates a new registry Service instance
func NewService(fundRepo domain.FundRepository, collab fund.Collaborators) *Service {
	return &Service{
		FundRepo:    fundRepo,
		Collab:      collab,
		controllers: make(map[uuid.UUID]*fund.Controller),
	}
}

// CreateFund validates and persists a fund record and builds its controller
func (s *Service) CreateFund(ctx context.Context, input CreateFundInput) (*fund.Controller, error) {
	record := &domain.Fund{
		ID:            uuid.New(),
		Name:          input.Name,
		Manager:       input.Manager,
		Platform:      input.Platform,
		SuccessFeeBP:  input.SuccessFeeBP,
		PlatformFeeBP: input.PlatformFeeBP,
		BaseAsset:     input.BaseAsset,
		QuoteAsset:    input.QuoteAsset,
		WhitelistOnly: input.WhitelistOnly,
		CreatedAt:     time.Now(),
	}
	if err := record.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if err := s.FundRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	controller := fund.NewController(record, s.Collab)

	s.mu.Lock()
	s.controllers[record.ID] = controller
	s.mu.Unlock()

	return controller, nil
}

// Get returns the live controller for a fund
func (s *Service) Get(fundID uuid.UUID) (*fund.Controller, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	controller, ok := s.controllers[fundID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrFundNotFound, fundID)
	}
	return controller, nil
}

// List retrieves all persisted fund records
func (s *Service) List(ctx context.Context) ([]*domain.Fund, error) {
	return s.FundRepo.List(ctx)
}
