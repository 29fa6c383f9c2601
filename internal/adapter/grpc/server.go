package grpc

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	smartfundv1 "github.com/blockvest/smartfund-backend/internal/adapter/grpc/smartfund/v1"
	"github.com/blockvest/smartfund-backend/internal/domain"
	"github.com/blockvest/smartfund-backend/internal/usecase/fund"
	"github.com/blockvest/smartfund-backend/internal/usecase/registry"
)

// Server implements the SmartFundService gRPC server
type Server struct {
	smartfundv1.UnimplementedSmartFundServiceServer

	Registry  *registry.Service
	TradeRepo domain.TradeRecordRepository
}

// NewServer creates a new gRPC server instance
func NewServer(registryService *registry.Service, tradeRepo domain.TradeRecordRepository) *Server {
	return &Server{
		Registry:  registryService,
		TradeRepo: tradeRepo,
	}
}

// CreateFund handles the CreateFund RPC
func (s *Server) CreateFund(ctx context.Context, req *smartfundv1.CreateFundRequest) (*smartfundv1.CreateFundResponse, error) {
	controller, err := s.Registry.CreateFund(ctx, registry.CreateFundInput{
		Name:          req.Name,
		Manager:       domain.Address(req.Manager),
		Platform:      domain.Address(req.Platform),
		SuccessFeeBP:  req.SuccessFeeBp,
		PlatformFeeBP: req.PlatformFeeBp,
		BaseAsset:     domain.Asset(req.BaseAsset),
		QuoteAsset:    domain.Asset(req.QuoteAsset),
		WhitelistOnly: req.WhitelistOnly,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &smartfundv1.CreateFundResponse{Fund: domainFundToProto(controller.Fund)}, nil
}

// GetFund handles the GetFund RPC
func (s *Server) GetFund(ctx context.Context, req *smartfundv1.GetFundRequest) (*smartfundv1.GetFundResponse, error) {
	controller, err := s.fundController(req.FundId)
	if err != nil {
		return nil, err
	}
	return &smartfundv1.GetFundResponse{Fund: domainFundToProto(controller.Fund)}, nil
}

// ListFunds handles the ListFunds RPC
func (s *Server) ListFunds(ctx context.Context, req *smartfundv1.ListFundsRequest) (*smartfundv1.ListFundsResponse, error) {
	funds, err := s.Registry.List(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &smartfundv1.ListFundsResponse{}
	for _, f := range funds {
		resp.Funds = append(resp.Funds, domainFundToProto(f))
	}
	return resp, nil
}

// Deposit handles the Deposit RPC
func (s *Server) Deposit(ctx context.Context, req *smartfundv1.DepositRequest) (*smartfundv1.DepositResponse, error) {
	controller, caller, err := s.fundAndCaller(ctx, req.FundId)
	if err != nil {
		return nil, err
	}

	amount, err := parseAmount(req.Amount, "amount")
	if err != nil {
		return nil, err
	}

	minted, err := controller.Deposit(ctx, caller, amount)
	if err != nil {
		return nil, mapError(err)
	}
	return &smartfundv1.DepositResponse{SharesMinted: minted.String()}, nil
}

// Withdraw handles the Withdraw RPC
func (s *Server) Withdraw(ctx context.Context, req *smartfundv1.WithdrawRequest) (*smartfundv1.WithdrawResponse, error) {
	controller, caller, err := s.fundAndCaller(ctx, req.FundId)
	if err != nil {
		return nil, err
	}

	withdrawn, err := controller.Withdraw(ctx, caller, req.PercentBp)
	if err != nil {
		return nil, mapError(err)
	}
	return &smartfundv1.WithdrawResponse{ValueWithdrawn: withdrawn.String()}, nil
}

// Trade handles the Trade RPC
func (s *Server) Trade(ctx context.Context, req *smartfundv1.TradeRequest) (*smartfundv1.TradeResponse, error) {
	controller, caller, err := s.fundAndCaller(ctx, req.FundId)
	if err != nil {
		return nil, err
	}

	srcAmount, err := parseAmount(req.SrcAmount, "src_amount")
	if err != nil {
		return nil, err
	}
	minReturn, err := parseOptionalAmount(req.MinReturn, "min_return")
	if err != nil {
		return nil, err
	}
	nativeValue, err := parseOptionalAmount(req.NativeValue, "native_value")
	if err != nil {
		return nil, err
	}

	record, err := controller.Trade(ctx, caller, fund.TradeInput{
		SrcAsset:    domain.Asset(req.SrcAsset),
		SrcAmount:   srcAmount,
		DestAsset:   domain.Asset(req.DestAsset),
		MinReturn:   minReturn,
		NativeValue: nativeValue,
		RoutingData: req.RoutingData,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &smartfundv1.TradeResponse{Record: domainTradeToProto(record)}, nil
}

// BuyPool handles the BuyPool RPC
func (s *Server) BuyPool(ctx context.Context, req *smartfundv1.BuyPoolRequest) (*smartfundv1.BuyPoolResponse, error) {
	controller, caller, err := s.fundAndCaller(ctx, req.FundId)
	if err != nil {
		return nil, err
	}

	amount, err := parseAmount(req.Amount, "amount")
	if err != nil {
		return nil, err
	}

	if err := controller.BuyPool(ctx, caller, amount, domain.PoolChoice(req.PoolChoice), domain.Asset(req.PoolToken)); err != nil {
		return nil, mapError(err)
	}
	return &smartfundv1.BuyPoolResponse{}, nil
}

// SellPool handles the SellPool RPC
func (s *Server) SellPool(ctx context.Context, req *smartfundv1.SellPoolRequest) (*smartfundv1.SellPoolResponse, error) {
	controller, caller, err := s.fundAndCaller(ctx, req.FundId)
	if err != nil {
		return nil, err
	}

	amount, err := parseAmount(req.Amount, "amount")
	if err != nil {
		return nil, err
	}

	if err := controller.SellPool(ctx, caller, amount, domain.PoolChoice(req.PoolChoice), domain.Asset(req.PoolToken)); err != nil {
		return nil, mapError(err)
	}
	return &smartfundv1.SellPoolResponse{}, nil
}

// CompoundMint handles the CompoundMint RPC
func (s *Server) CompoundMint(ctx context.Context, req *smartfundv1.CompoundMintRequest) (*smartfundv1.CompoundMintResponse, error) {
	controller, caller, err := s.fundAndCaller(ctx, req.FundId)
	if err != nil {
		return nil, err
	}

	amount, err := parseAmount(req.Amount, "amount")
	if err != nil {
		return nil, err
	}

	if err := controller.CompoundMint(ctx, caller, amount, domain.Asset(req.WrappedAsset)); err != nil {
		return nil, mapError(err)
	}
	return &smartfundv1.CompoundMintResponse{}, nil
}

// CompoundRedeemByPercent handles the CompoundRedeemByPercent RPC
func (s *Server) CompoundRedeemByPercent(ctx context.Context, req *smartfundv1.CompoundRedeemByPercentRequest) (*smartfundv1.CompoundRedeemByPercentResponse, error) {
	controller, caller, err := s.fundAndCaller(ctx, req.FundId)
	if err != nil {
		return nil, err
	}

	percent, err := parseAmount(req.Percent, "percent")
	if err != nil {
		return nil, err
	}

	if err := controller.CompoundRedeemByPercent(ctx, caller, percent, domain.Asset(req.WrappedAsset)); err != nil {
		return nil, mapError(err)
	}
	return &smartfundv1.CompoundRedeemByPercentResponse{}, nil
}

// FundManagerWithdraw handles the FundManagerWithdraw RPC
func (s *Server) FundManagerWithdraw(ctx context.Context, req *smartfundv1.FundManagerWithdrawRequest) (*smartfundv1.FundManagerWithdrawResponse, error) {
	controller, caller, err := s.fundAndCaller(ctx, req.FundId)
	if err != nil {
		return nil, err
	}

	claimed, err := controller.FundManagerWithdraw(ctx, caller)
	if err != nil {
		return nil, mapError(err)
	}
	return &smartfundv1.FundManagerWithdrawResponse{ValueClaimed: claimed.String()}, nil
}

// GetFundValue handles the GetFundValue RPC
func (s *Server) GetFundValue(ctx context.Context, req *smartfundv1.GetFundValueRequest) (*smartfundv1.GetFundValueResponse, error) {
	controller, err := s.fundController(req.FundId)
	if err != nil {
		return nil, err
	}

	value, err := controller.CalculateFundValue(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return &smartfundv1.GetFundValueResponse{Value: value.String()}, nil
}

// GetAddressProfit handles the GetAddressProfit RPC
func (s *Server) GetAddressProfit(ctx context.Context, req *smartfundv1.GetAddressProfitRequest) (*smartfundv1.GetAddressProfitResponse, error) {
	controller, err := s.fundController(req.FundId)
	if err != nil {
		return nil, err
	}

	profit, err := controller.CalculateAddressProfit(ctx, domain.Address(req.Address))
	if err != nil {
		return nil, mapError(err)
	}
	return &smartfundv1.GetAddressProfitResponse{Profit: profit.String()}, nil
}

// GetFundProfit handles the GetFundProfit RPC
func (s *Server) GetFundProfit(ctx context.Context, req *smartfundv1.GetFundProfitRequest) (*smartfundv1.GetFundProfitResponse, error) {
	controller, err := s.fundController(req.FundId)
	if err != nil {
		return nil, err
	}

	profit, err := controller.CalculateFundProfit(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return &smartfundv1.GetFundProfitResponse{Profit: profit.String()}, nil
}

// GetFundManagerCut handles the GetFundManagerCut RPC
func (s *Server) GetFundManagerCut(ctx context.Context, req *smartfundv1.GetFundManagerCutRequest) (*smartfundv1.GetFundManagerCutResponse, error) {
	controller, err := s.fundController(req.FundId)
	if err != nil {
		return nil, err
	}

	remaining, fundValue, total, err := controller.CalculateFundManagerCut(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return &smartfundv1.GetFundManagerCutResponse{
		RemainingCut: remaining.String(),
		FundValue:    fundValue.String(),
		TotalCut:     total.String(),
	}, nil
}

// GetAllTokenAddresses handles the GetAllTokenAddresses RPC
func (s *Server) GetAllTokenAddresses(ctx context.Context, req *smartfundv1.GetAllTokenAddressesRequest) (*smartfundv1.GetAllTokenAddressesResponse, error) {
	controller, err := s.fundController(req.FundId)
	if err != nil {
		return nil, err
	}

	resp := &smartfundv1.GetAllTokenAddressesResponse{}
	for _, asset := range controller.GetAllTokenAddresses() {
		resp.Assets = append(resp.Assets, string(asset))
	}
	return resp, nil
}

// GetShares handles the GetShares RPC
func (s *Server) GetShares(ctx context.Context, req *smartfundv1.GetSharesRequest) (*smartfundv1.GetSharesResponse, error) {
	controller, err := s.fundController(req.FundId)
	if err != nil {
		return nil, err
	}

	return &smartfundv1.GetSharesResponse{
		Balance:     controller.BalanceOf(domain.Address(req.Holder)).String(),
		TotalShares: controller.TotalShares().String(),
	}, nil
}

// ListTrades handles the ListTrades RPC
func (s *Server) ListTrades(ctx context.Context, req *smartfundv1.ListTradesRequest) (*smartfundv1.ListTradesResponse, error) {
	fundID, err := uuid.Parse(req.FundId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid fund_id format: %v", err)
	}

	limit := int(req.Limit)
	if limit <= 0 {
		limit = 50
	}

	records, err := s.TradeRepo.ListByFund(ctx, fundID, limit, int(req.Offset))
	if err != nil {
		return nil, mapError(err)
	}
	count, err := s.TradeRepo.Count(ctx, fundID)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &smartfundv1.ListTradesResponse{TotalCount: int32(count)}
	for _, record := range records {
		resp.Records = append(resp.Records, domainTradeToProto(record))
	}
	return resp, nil
}

// TransferShares handles the TransferShares RPC
func (s *Server) TransferShares(ctx context.Context, req *smartfundv1.TransferSharesRequest) (*smartfundv1.TransferSharesResponse, error) {
	controller, caller, err := s.fundAndCaller(ctx, req.FundId)
	if err != nil {
		return nil, err
	}

	shares, err := parseAmount(req.Shares, "shares")
	if err != nil {
		return nil, err
	}

	if err := controller.TransferShares(caller, domain.Address(req.To), shares); err != nil {
		return nil, mapError(err)
	}
	return &smartfundv1.TransferSharesResponse{}, nil
}

// SetWhitelistOnly handles the SetWhitelistOnly RPC
func (s *Server) SetWhitelistOnly(ctx context.Context, req *smartfundv1.SetWhitelistOnlyRequest) (*smartfundv1.SetWhitelistOnlyResponse, error) {
	controller, caller, err := s.fundAndCaller(ctx, req.FundId)
	if err != nil {
		return nil, err
	}

	if err := controller.SetWhitelistOnly(caller, req.Enabled); err != nil {
		return nil, mapError(err)
	}
	return &smartfundv1.SetWhitelistOnlyResponse{}, nil
}

// SetWhitelistAddress handles the SetWhitelistAddress RPC
func (s *Server) SetWhitelistAddress(ctx context.Context, req *smartfundv1.SetWhitelistAddressRequest) (*smartfundv1.SetWhitelistAddressResponse, error) {
	controller, caller, err := s.fundAndCaller(ctx, req.FundId)
	if err != nil {
		return nil, err
	}

	if err := controller.SetWhitelistAddress(caller, domain.Address(req.Address), req.Allowed); err != nil {
		return nil, mapError(err)
	}
	return &smartfundv1.SetWhitelistAddressResponse{}, nil
}

// RemoveAsset handles the RemoveAsset RPC
func (s *Server) RemoveAsset(ctx context.Context, req *smartfundv1.RemoveAssetRequest) (*smartfundv1.RemoveAssetResponse, error) {
	controller, caller, err := s.fundAndCaller(ctx, req.FundId)
	if err != nil {
		return nil, err
	}

	if err := controller.RemoveAsset(caller, domain.Asset(req.Asset), int(req.Index)); err != nil {
		return nil, mapError(err)
	}
	return &smartfundv1.RemoveAssetResponse{}, nil
}

// fundController resolves a fund controller from a request fund ID
func (s *Server) fundController(fundID string) (*fund.Controller, error) {
	id, err := uuid.Parse(fundID)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid fund_id format: %v", err)
	}
	controller, err := s.Registry.Get(id)
	if err != nil {
		return nil, mapError(err)
	}
	return controller, nil
}

// fundAndCaller resolves the fund controller and the caller address attached
// by the auth interceptor; mutating RPCs require both
func (s *Server) fundAndCaller(ctx context.Context, fundID string) (*fund.Controller, domain.Address, error) {
	controller, err := s.fundController(fundID)
	if err != nil {
		return nil, "", err
	}
	caller, ok := CallerFromContext(ctx)
	if !ok {
		return nil, "", status.Error(codes.Unauthenticated, "missing x-caller-address metadata")
	}
	return controller, caller, nil
}

// parseAmount parses a required decimal string field
func parseAmount(value, field string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", field, err)
	}
	return amount, nil
}

// parseOptionalAmount parses a decimal string field that may be empty (zero)
func parseOptionalAmount(value, field string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	return parseAmount(value, field)
}

// domainFundToProto converts a domain Fund to a proto Fund message
func domainFundToProto(f *domain.Fund) *smartfundv1.Fund {
	return &smartfundv1.Fund{
		Id:            f.ID.String(),
		Name:          f.Name,
		Manager:       string(f.Manager),
		Platform:      string(f.Platform),
		SuccessFeeBp:  f.SuccessFeeBP,
		PlatformFeeBp: f.PlatformFeeBP,
		BaseAsset:     string(f.BaseAsset),
		QuoteAsset:    string(f.QuoteAsset),
		WhitelistOnly: f.WhitelistOnly,
		CreatedAt:     timestamppb.New(f.CreatedAt),
	}
}

// domainTradeToProto converts a domain TradeRecord to a proto TradeRecord message
func domainTradeToProto(record *domain.TradeRecord) *smartfundv1.TradeRecord {
	return &smartfundv1.TradeRecord{
		Id:         record.ID.String(),
		FundId:     record.FundID.String(),
		Kind:       string(record.Kind),
		SrcAsset:   string(record.SrcAsset),
		SrcAmount:  record.SrcAmount.String(),
		DestAsset:  string(record.DestAsset),
		DestAmount: record.DestAmount.String(),
		ExecutedAt: timestamppb.New(record.ExecutedAt),
	}
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return status.Errorf(codes.InvalidArgument, "%s", err.Error())
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrNotWhitelisted):
		return status.Errorf(codes.PermissionDenied, "%s", err.Error())
	case errors.Is(err, domain.ErrReentrancy):
		return status.Errorf(codes.Aborted, "%s", err.Error())
	case errors.Is(err, domain.ErrExternalFailure):
		return status.Errorf(codes.Unavailable, "%s", err.Error())
	case errors.Is(err, domain.ErrInsufficientBalance), errors.Is(err, domain.ErrInsufficientShares):
		return status.Errorf(codes.FailedPrecondition, "%s", err.Error())
	case errors.Is(err, domain.ErrFundNotFound), errors.Is(err, domain.ErrAssetNotFound):
		return status.Errorf(codes.NotFound, "%s", err.Error())
	default:
		return status.Errorf(codes.Internal, "%s", err.Error())
	}
}
