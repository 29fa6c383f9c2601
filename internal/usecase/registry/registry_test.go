package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/blockvest/smartfund-backend/internal/domain"
	"github.com/blockvest/smartfund-backend/internal/usecase/fund"
)

// MockFundRepository is a mock implementation of FundRepository for testing
type MockFundRepository struct {
	mock.Mock
}

func (m *MockFundRepository) Create(ctx context.Context, f *domain.Fund) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFundRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Fund, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fund), args.Error(1)
}

func (m *MockFundRepository) List(ctx context.Context) ([]*domain.Fund, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Fund), args.Error(1)
}

func validInput() CreateFundInput {
	return CreateFundInput{
		Name:         "Growth Fund",
		Manager:      "0xManager",
		SuccessFeeBP: 1000,
		BaseAsset:    domain.NativeAsset,
		QuoteAsset:   domain.NativeAsset,
	}
}

func TestCreateFund_PersistsAndBuildsController(t *testing.T) {
	mockRepo := new(MockFundRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	service := NewService(mockRepo, fund.Collaborators{})

	controller, err := service.CreateFund(context.Background(), validInput())

	assert.NoError(t, err)
	assert.NotNil(t, controller)
	assert.Equal(t, "Growth Fund", controller.Fund.Name)
	assert.NotEqual(t, uuid.Nil, controller.Fund.ID)
	assert.True(t, controller.TotalShares().IsZero())
	mockRepo.AssertExpectations(t)
}

func TestCreateFund_RejectsInvalidRecord(t *testing.T) {
	mockRepo := new(MockFundRepository)
	service := NewService(mockRepo, fund.Collaborators{})

	input := validInput()
	input.SuccessFeeBP = domain.MaximumSuccessFeeBP + 1

	_, err := service.CreateFund(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestCreateFund_RepositoryErrorPropagates(t *testing.T) {
	mockRepo := new(MockFundRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("database error"))
	service := NewService(mockRepo, fund.Collaborators{})

	_, err := service.CreateFund(context.Background(), validInput())

	assert.Error(t, err)
}

func TestGet_ReturnsLiveController(t *testing.T) {
	mockRepo := new(MockFundRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	service := NewService(mockRepo, fund.Collaborators{})

	created, err := service.CreateFund(context.Background(), validInput())
	assert.NoError(t, err)

	got, err := service.Get(created.Fund.ID)

	assert.NoError(t, err)
	// the registry hands out the same live instance, not a copy
	assert.Same(t, created, got)
}

func TestGet_UnknownFund(t *testing.T) {
	service := NewService(new(MockFundRepository), fund.Collaborators{})

	_, err := service.Get(uuid.New())

	assert.ErrorIs(t, err, domain.ErrFundNotFound)
}

func TestList_DelegatesToRepository(t *testing.T) {
	mockRepo := new(MockFundRepository)
	records := []*domain.Fund{{ID: uuid.New(), Name: "Fund A"}}
	mockRepo.On("List", mock.Anything).Return(records, nil)
	service := NewService(mockRepo, fund.Collaborators{})

	got, err := service.List(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, records, got)
	mockRepo.AssertExpectations(t)
}
