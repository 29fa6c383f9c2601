// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: smartfund/v1/smartfund.proto

package smartfundv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	SmartFundService_CreateFund_FullMethodName              = "/smartfund.v1.SmartFundService/CreateFund"
	SmartFundService_GetFund_FullMethodName                 = "/smartfund.v1.SmartFundService/GetFund"
	SmartFundService_ListFunds_FullMethodName               = "/smartfund.v1.SmartFundService/ListFunds"
	SmartFundService_Deposit_FullMethodName                 = "/smartfund.v1.SmartFundService/Deposit"
	SmartFundService_Withdraw_FullMethodName                = "/smartfund.v1.SmartFundService/Withdraw"
	SmartFundService_Trade_FullMethodName                   = "/smartfund.v1.SmartFundService/Trade"
	SmartFundService_BuyPool_FullMethodName                 = "/smartfund.v1.SmartFundService/BuyPool"
	SmartFundService_SellPool_FullMethodName                = "/smartfund.v1.SmartFundService/SellPool"
	SmartFundService_CompoundMint_FullMethodName            = "/smartfund.v1.SmartFundService/CompoundMint"
	SmartFundService_CompoundRedeemByPercent_FullMethodName = "/smartfund.v1.SmartFundService/CompoundRedeemByPercent"
	SmartFundService_FundManagerWithdraw_FullMethodName     = "/smartfund.v1.SmartFundService/FundManagerWithdraw"
	SmartFundService_GetFundValue_FullMethodName            = "/smartfund.v1.SmartFundService/GetFundValue"
	SmartFundService_GetAddressProfit_FullMethodName        = "/smartfund.v1.SmartFundService/GetAddressProfit"
	SmartFundService_GetFundProfit_FullMethodName           = "/smartfund.v1.SmartFundService/GetFundProfit"
	SmartFundService_GetFundManagerCut_FullMethodName       = "/smartfund.v1.SmartFundService/GetFundManagerCut"
	SmartFundService_GetAllTokenAddresses_FullMethodName    = "/smartfund.v1.SmartFundService/GetAllTokenAddresses"
	SmartFundService_GetShares_FullMethodName               = "/smartfund.v1.SmartFundService/GetShares"
	SmartFundService_ListTrades_FullMethodName              = "/smartfund.v1.SmartFundService/ListTrades"
	SmartFundService_TransferShares_FullMethodName          = "/smartfund.v1.SmartFundService/TransferShares"
	SmartFundService_SetWhitelistOnly_FullMethodName        = "/smartfund.v1.SmartFundService/SetWhitelistOnly"
	SmartFundService_SetWhitelistAddress_FullMethodName     = "/smartfund.v1.SmartFundService/SetWhitelistAddress"
	SmartFundService_RemoveAsset_FullMethodName             = "/smartfund.v1.SmartFundService/RemoveAsset"
)

// SmartFundServiceClient is the client API for SmartFundService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// SmartFundService is the public surface of the pooled-investment fund backend.
// All monetary amounts are decimal strings. The caller's address is carried in
// the x-caller-address request metadata header.
type SmartFundServiceClient interface {
	CreateFund(ctx context.Context, in *CreateFundRequest, opts ...grpc.CallOption) (*CreateFundResponse, error)
	GetFund(ctx context.Context, in *GetFundRequest, opts ...grpc.CallOption) (*GetFundResponse, error)
	ListFunds(ctx context.Context, in *ListFundsRequest, opts ...grpc.CallOption) (*ListFundsResponse, error)
	Deposit(ctx context.Context, in *DepositRequest, opts ...grpc.CallOption) (*DepositResponse, error)
	Withdraw(ctx context.Context, in *WithdrawRequest, opts ...grpc.CallOption) (*WithdrawResponse, error)
	Trade(ctx context.Context, in *TradeRequest, opts ...grpc.CallOption) (*TradeResponse, error)
	BuyPool(ctx context.Context, in *BuyPoolRequest, opts ...grpc.CallOption) (*BuyPoolResponse, error)
	SellPool(ctx context.Context, in *SellPoolRequest, opts ...grpc.CallOption) (*SellPoolResponse, error)
	CompoundMint(ctx context.Context, in *CompoundMintRequest, opts ...grpc.CallOption) (*CompoundMintResponse, error)
	CompoundRedeemByPercent(ctx context.Context, in *CompoundRedeemByPercentRequest, opts ...grpc.CallOption) (*CompoundRedeemByPercentResponse, error)
	FundManagerWithdraw(ctx context.Context, in *FundManagerWithdrawRequest, opts ...grpc.CallOption) (*FundManagerWithdrawResponse, error)
	GetFundValue(ctx context.Context, in *GetFundValueRequest, opts ...grpc.CallOption) (*GetFundValueResponse, error)
	GetAddressProfit(ctx context.Context, in *GetAddressProfitRequest, opts ...grpc.CallOption) (*GetAddressProfitResponse, error)
	GetFundProfit(ctx context.Context, in *GetFundProfitRequest, opts ...grpc.CallOption) (*GetFundProfitResponse, error)
	GetFundManagerCut(ctx context.Context, in *GetFundManagerCutRequest, opts ...grpc.CallOption) (*GetFundManagerCutResponse, error)
	GetAllTokenAddresses(ctx context.Context, in *GetAllTokenAddressesRequest, opts ...grpc.CallOption) (*GetAllTokenAddressesResponse, error)
	GetShares(ctx context.Context, in *GetSharesRequest, opts ...grpc.CallOption) (*GetSharesResponse, error)
	ListTrades(ctx context.Context, in *ListTradesRequest, opts ...grpc.CallOption) (*ListTradesResponse, error)
	TransferShares(ctx context.Context, in *TransferSharesRequest, opts ...grpc.CallOption) (*TransferSharesResponse, error)
	SetWhitelistOnly(ctx context.Context, in *SetWhitelistOnlyRequest, opts ...grpc.CallOption) (*SetWhitelistOnlyResponse, error)
	SetWhitelistAddress(ctx context.Context, in *SetWhitelistAddressRequest, opts ...grpc.CallOption) (*SetWhitelistAddressResponse, error)
	RemoveAsset(ctx context.Context, in *RemoveAssetRequest, opts ...grpc.CallOption) (*RemoveAssetResponse, error)
}

type smartFundServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSmartFundServiceClient(cc grpc.ClientConnInterface) SmartFundServiceClient {
	return &smartFundServiceClient{cc}
}

func (c *smartFundServiceClient) CreateFund(ctx context.Context, in *CreateFundRequest, opts ...grpc.CallOption) (*CreateFundResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateFundResponse)
	err := c.cc.Invoke(ctx, SmartFundService_CreateFund_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *smartFundServiceClient) GetFund(ctx context.Context, in *GetFundRequest, opts ...grpc.CallOption) (*GetFundResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetFundResponse)
	err := c.cc.Invoke(ctx, SmartFundService_GetFund_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *smartFundServiceClient) ListFunds(ctx context.Context, in *ListFundsRequest, opts ...grpc.CallOption) (*ListFundsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListFundsResponse)
	err := c.cc.Invoke(ctx, SmartFundService_ListFunds_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *smartFundServiceClient) Deposit(ctx context.Context, in *DepositRequest, opts ...grpc.CallOption) (*DepositResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DepositResponse)
	err := c.cc.Invoke(ctx, SmartFundService_Deposit_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *smartFundServiceClient) Withdraw(ctx context.Context, in *WithdrawRequest, opts ...grpc.CallOption) (*WithdrawResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(WithdrawResponse)
	err := c.cc.Invoke(ctx, SmartFundService_Withdraw_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *smartFundServiceClient) Trade(ctx context.Context, in *TradeRequest, opts ...grpc.CallOption) (*TradeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(TradeResponse)
	err := c.cc.Invoke(ctx, SmartFundService_Trade_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *smartFundServiceClient) BuyPool(ctx context.Context, in *BuyPoolRequest, opts ...grpc.CallOption) (*BuyPoolResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BuyPoolResponse)
	err := c.cc.Invoke(ctx, SmartFundService_BuyPool_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *smartFundServiceClient) SellPool(ctx context.Context, in *SellPoolRequest, opts ...grpc.CallOption) (*SellPoolResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SellPoolResponse)
	err := c.cc.Invoke(ctx, SmartFundService_SellPool_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *smartFundServiceClient) CompoundMint(ctx context.Context, in *CompoundMintRequest, opts ...grpc.CallOption) (*CompoundMintResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CompoundMintResponse)
	err := c.cc.Invoke(ctx, SmartFundService_CompoundMint_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *smartFundServiceClient) CompoundRedeemByPercent(ctx context.Context, in *CompoundRedeemByPercentRequest, opts ...grpc.CallOption) (*CompoundRedeemByPercentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CompoundRedeemByPercentResponse)
	err := c.cc.Invoke(ctx, SmartFundService_CompoundRedeemByPercent_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *smartFundServiceClient) FundManagerWithdraw(ctx context.Context, in *FundManagerWithdrawRequest, opts ...grpc.CallOption) (*FundManagerWithdrawResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(FundManagerWithdrawResponse)
	err := c.cc.Invoke(ctx, SmartFundService_FundManagerWithdraw_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *smartFundServiceClient) GetFundValue(ctx context.Context, in *GetFundValueRequest, opts ...grpc.CallOption) (*GetFundValueResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetFundValueResponse)
	err := c.cc.Invoke(ctx, SmartFundService_GetFundValue_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *smartFundServiceClient) GetAddressProfit(ctx context.Context, in *GetAddressProfitRequest, opts ...grpc.CallOption) (*GetAddressProfitResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetAddressProfitResponse)
	err := c.cc.Invoke(ctx, SmartFundService_GetAddressProfit_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *smartFundServiceClient) GetFundProfit(ctx context.Context, in *GetFundProfitRequest, opts ...grpc.CallOption) (*GetFundProfitResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetFundProfitResponse)
	err := c.cc.Invoke(ctx, SmartFundService_GetFundProfit_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *smartFundServiceClient) GetFundManagerCut(ctx context.Context, in *GetFundManagerCutRequest, opts ...grpc.CallOption) (*GetFundManagerCutResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetFundManagerCutResponse)
	err := c.cc.Invoke(ctx, SmartFundService_GetFundManagerCut_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *smartFundServiceClient) GetAllTokenAddresses(ctx context.Context, in *GetAllTokenAddressesRequest, opts ...grpc.CallOption) (*GetAllTokenAddressesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetAllTokenAddressesResponse)
	err := c.cc.Invoke(ctx, SmartFundService_GetAllTokenAddresses_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *smartFundServiceClient) GetShares(ctx context.Context, in *GetSharesRequest, opts ...grpc.CallOption) (*GetSharesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetSharesResponse)
	err := c.cc.Invoke(ctx, SmartFundService_GetShares_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *smartFundServiceClient) ListTrades(ctx context.Context, in *ListTradesRequest, opts ...grpc.CallOption) (*ListTradesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListTradesResponse)
	err := c.cc.Invoke(ctx, SmartFundService_ListTrades_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *smartFundServiceClient) TransferShares(ctx context.Context, in *TransferSharesRequest, opts ...grpc.CallOption) (*TransferSharesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(TransferSharesResponse)
	err := c.cc.Invoke(ctx, SmartFundService_TransferShares_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *smartFundServiceClient) SetWhitelistOnly(ctx context.Context, in *SetWhitelistOnlyRequest, opts ...grpc.CallOption) (*SetWhitelistOnlyResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetWhitelistOnlyResponse)
	err := c.cc.Invoke(ctx, SmartFundService_SetWhitelistOnly_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *smartFundServiceClient) SetWhitelistAddress(ctx context.Context, in *SetWhitelistAddressRequest, opts ...grpc.CallOption) (*SetWhitelistAddressResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetWhitelistAddressResponse)
	err := c.cc.Invoke(ctx, SmartFundService_SetWhitelistAddress_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *smartFundServiceClient) RemoveAsset(ctx context.Context, in *RemoveAssetRequest, opts ...grpc.CallOption) (*RemoveAssetResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RemoveAssetResponse)
	err := c.cc.Invoke(ctx, SmartFundService_RemoveAsset_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SmartFundServiceServer is the server API for SmartFundService service.
// All implementations must embed UnimplementedSmartFundServiceServer
// for forward compatibility.
//
// SmartFundService is the public surface of the pooled-investment fund backend.
// All monetary amounts are decimal strings. The caller's address is carried in
// the x-caller-address request metadata header.
type SmartFundServiceServer interface {
	CreateFund(context.Context, *CreateFundRequest) (*CreateFundResponse, error)
	GetFund(context.Context, *GetFundRequest) (*GetFundResponse, error)
	ListFunds(context.Context, *ListFundsRequest) (*ListFundsResponse, error)
	Deposit(context.Context, *DepositRequest) (*DepositResponse, error)
	Withdraw(context.Context, *WithdrawRequest) (*WithdrawResponse, error)
	Trade(context.Context, *TradeRequest) (*TradeResponse, error)
	BuyPool(context.Context, *BuyPoolRequest) (*BuyPoolResponse, error)
	SellPool(context.Context, *SellPoolRequest) (*SellPoolResponse, error)
	CompoundMint(context.Context, *CompoundMintRequest) (*CompoundMintResponse, error)
	CompoundRedeemByPercent(context.Context, *CompoundRedeemByPercentRequest) (*CompoundRedeemByPercentResponse, error)
	FundManagerWithdraw(context.Context, *FundManagerWithdrawRequest) (*FundManagerWithdrawResponse, error)
	GetFundValue(context.Context, *GetFundValueRequest) (*GetFundValueResponse, error)
	GetAddressProfit(context.Context, *GetAddressProfitRequest) (*GetAddressProfitResponse, error)
	GetFundProfit(context.Context, *GetFundProfitRequest) (*GetFundProfitResponse, error)
	GetFundManagerCut(context.Context, *GetFundManagerCutRequest) (*GetFundManagerCutResponse, error)
	GetAllTokenAddresses(context.Context, *GetAllTokenAddressesRequest) (*GetAllTokenAddressesResponse, error)
	GetShares(context.Context, *GetSharesRequest) (*GetSharesResponse, error)
	ListTrades(context.Context, *ListTradesRequest) (*ListTradesResponse, error)
	TransferShares(context.Context, *TransferSharesRequest) (*TransferSharesResponse, error)
	SetWhitelistOnly(context.Context, *SetWhitelistOnlyRequest) (*SetWhitelistOnlyResponse, error)
	SetWhitelistAddress(context.Context, *SetWhitelistAddressRequest) (*SetWhitelistAddressResponse, error)
	RemoveAsset(context.Context, *RemoveAssetRequest) (*RemoveAssetResponse, error)
	mustEmbedUnimplementedSmartFundServiceServer()
}

// UnimplementedSmartFundServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedSmartFundServiceServer struct{}

func (UnimplementedSmartFundServiceServer) CreateFund(context.Context, *CreateFundRequest) (*CreateFundResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateFund not implemented")
}
func (UnimplementedSmartFundServiceServer) GetFund(context.Context, *GetFundRequest) (*GetFundResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetFund not implemented")
}
func (UnimplementedSmartFundServiceServer) ListFunds(context.Context, *ListFundsRequest) (*ListFundsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListFunds not implemented")
}
func (UnimplementedSmartFundServiceServer) Deposit(context.Context, *DepositRequest) (*DepositResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Deposit not implemented")
}
func (UnimplementedSmartFundServiceServer) Withdraw(context.Context, *WithdrawRequest) (*WithdrawResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Withdraw not implemented")
}
func (UnimplementedSmartFundServiceServer) Trade(context.Context, *TradeRequest) (*TradeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Trade not implemented")
}
func (UnimplementedSmartFundServiceServer) BuyPool(context.Context, *BuyPoolRequest) (*BuyPoolResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BuyPool not implemented")
}
func (UnimplementedSmartFundServiceServer) SellPool(context.Context, *SellPoolRequest) (*SellPoolResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SellPool not implemented")
}
func (UnimplementedSmartFundServiceServer) CompoundMint(context.Context, *CompoundMintRequest) (*CompoundMintResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CompoundMint not implemented")
}
func (UnimplementedSmartFundServiceServer) CompoundRedeemByPercent(context.Context, *CompoundRedeemByPercentRequest) (*CompoundRedeemByPercentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CompoundRedeemByPercent not implemented")
}
func (UnimplementedSmartFundServiceServer) FundManagerWithdraw(context.Context, *FundManagerWithdrawRequest) (*FundManagerWithdrawResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method FundManagerWithdraw not implemented")
}
func (UnimplementedSmartFundServiceServer) GetFundValue(context.Context, *GetFundValueRequest) (*GetFundValueResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetFundValue not implemented")
}
func (UnimplementedSmartFundServiceServer) GetAddressProfit(context.Context, *GetAddressProfitRequest) (*GetAddressProfitResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAddressProfit not implemented")
}
func (UnimplementedSmartFundServiceServer) GetFundProfit(context.Context, *GetFundProfitRequest) (*GetFundProfitResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetFundProfit not implemented")
}
func (UnimplementedSmartFundServiceServer) GetFundManagerCut(context.Context, *GetFundManagerCutRequest) (*GetFundManagerCutResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetFundManagerCut not implemented")
}
func (UnimplementedSmartFundServiceServer) GetAllTokenAddresses(context.Context, *GetAllTokenAddressesRequest) (*GetAllTokenAddressesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAllTokenAddresses not implemented")
}
func (UnimplementedSmartFundServiceServer) GetShares(context.Context, *GetSharesRequest) (*GetSharesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetShares not implemented")
}
func (UnimplementedSmartFundServiceServer) ListTrades(context.Context, *ListTradesRequest) (*ListTradesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListTrades not implemented")
}
func (UnimplementedSmartFundServiceServer) TransferShares(context.Context, *TransferSharesRequest) (*TransferSharesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method TransferShares not implemented")
}
func (UnimplementedSmartFundServiceServer) SetWhitelistOnly(context.Context, *SetWhitelistOnlyRequest) (*SetWhitelistOnlyResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetWhitelistOnly not implemented")
}
func (UnimplementedSmartFundServiceServer) SetWhitelistAddress(context.Context, *SetWhitelistAddressRequest) (*SetWhitelistAddressResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetWhitelistAddress not implemented")
}
func (UnimplementedSmartFundServiceServer) RemoveAsset(context.Context, *RemoveAssetRequest) (*RemoveAssetResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RemoveAsset not implemented")
}
func (UnimplementedSmartFundServiceServer) mustEmbedUnimplementedSmartFundServiceServer() {}
func (UnimplementedSmartFundServiceServer) testEmbeddedByValue()                          {}

// UnsafeSmartFundServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to SmartFundServiceServer will
// result in compilation errors.
type UnsafeSmartFundServiceServer interface {
	mustEmbedUnimplementedSmartFundServiceServer()
}

func RegisterSmartFundServiceServer(s grpc.ServiceRegistrar, srv SmartFundServiceServer) {
	// If the following call pancis, it indicates UnimplementedSmartFundServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&SmartFundService_ServiceDesc, srv)
}

func _SmartFundService_CreateFund_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateFundRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SmartFundServiceServer).CreateFund(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SmartFundService_CreateFund_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SmartFundServiceServer).CreateFund(ctx, req.(*CreateFundRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SmartFundService_GetFund_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetFundRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SmartFundServiceServer).GetFund(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SmartFundService_GetFund_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SmartFundServiceServer).GetFund(ctx, req.(*GetFundRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SmartFundService_ListFunds_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListFundsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SmartFundServiceServer).ListFunds(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SmartFundService_ListFunds_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SmartFundServiceServer).ListFunds(ctx, req.(*ListFundsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SmartFundService_Deposit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DepositRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SmartFundServiceServer).Deposit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SmartFundService_Deposit_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SmartFundServiceServer).Deposit(ctx, req.(*DepositRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SmartFundService_Withdraw_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(WithdrawRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SmartFundServiceServer).Withdraw(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SmartFundService_Withdraw_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SmartFundServiceServer).Withdraw(ctx, req.(*WithdrawRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SmartFundService_Trade_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TradeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SmartFundServiceServer).Trade(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SmartFundService_Trade_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SmartFundServiceServer).Trade(ctx, req.(*TradeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SmartFundService_BuyPool_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BuyPoolRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SmartFundServiceServer).BuyPool(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SmartFundService_BuyPool_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SmartFundServiceServer).BuyPool(ctx, req.(*BuyPoolRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SmartFundService_SellPool_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SellPoolRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SmartFundServiceServer).SellPool(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SmartFundService_SellPool_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SmartFundServiceServer).SellPool(ctx, req.(*SellPoolRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SmartFundService_CompoundMint_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CompoundMintRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SmartFundServiceServer).CompoundMint(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SmartFundService_CompoundMint_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SmartFundServiceServer).CompoundMint(ctx, req.(*CompoundMintRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SmartFundService_CompoundRedeemByPercent_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CompoundRedeemByPercentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SmartFundServiceServer).CompoundRedeemByPercent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SmartFundService_CompoundRedeemByPercent_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SmartFundServiceServer).CompoundRedeemByPercent(ctx, req.(*CompoundRedeemByPercentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SmartFundService_FundManagerWithdraw_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FundManagerWithdrawRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SmartFundServiceServer).FundManagerWithdraw(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SmartFundService_FundManagerWithdraw_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SmartFundServiceServer).FundManagerWithdraw(ctx, req.(*FundManagerWithdrawRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SmartFundService_GetFundValue_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetFundValueRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SmartFundServiceServer).GetFundValue(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SmartFundService_GetFundValue_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SmartFundServiceServer).GetFundValue(ctx, req.(*GetFundValueRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SmartFundService_GetAddressProfit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetAddressProfitRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SmartFundServiceServer).GetAddressProfit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SmartFundService_GetAddressProfit_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SmartFundServiceServer).GetAddressProfit(ctx, req.(*GetAddressProfitRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SmartFundService_GetFundProfit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetFundProfitRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SmartFundServiceServer).GetFundProfit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SmartFundService_GetFundProfit_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SmartFundServiceServer).GetFundProfit(ctx, req.(*GetFundProfitRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SmartFundService_GetFundManagerCut_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetFundManagerCutRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SmartFundServiceServer).GetFundManagerCut(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SmartFundService_GetFundManagerCut_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SmartFundServiceServer).GetFundManagerCut(ctx, req.(*GetFundManagerCutRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SmartFundService_GetAllTokenAddresses_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetAllTokenAddressesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SmartFundServiceServer).GetAllTokenAddresses(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SmartFundService_GetAllTokenAddresses_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SmartFundServiceServer).GetAllTokenAddresses(ctx, req.(*GetAllTokenAddressesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SmartFundService_GetShares_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetSharesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SmartFundServiceServer).GetShares(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SmartFundService_GetShares_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SmartFundServiceServer).GetShares(ctx, req.(*GetSharesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SmartFundService_ListTrades_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListTradesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SmartFundServiceServer).ListTrades(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SmartFundService_ListTrades_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SmartFundServiceServer).ListTrades(ctx, req.(*ListTradesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SmartFundService_TransferShares_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TransferSharesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SmartFundServiceServer).TransferShares(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SmartFundService_TransferShares_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SmartFundServiceServer).TransferShares(ctx, req.(*TransferSharesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SmartFundService_SetWhitelistOnly_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetWhitelistOnlyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SmartFundServiceServer).SetWhitelistOnly(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SmartFundService_SetWhitelistOnly_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SmartFundServiceServer).SetWhitelistOnly(ctx, req.(*SetWhitelistOnlyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SmartFundService_SetWhitelistAddress_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetWhitelistAddressRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SmartFundServiceServer).SetWhitelistAddress(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SmartFundService_SetWhitelistAddress_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SmartFundServiceServer).SetWhitelistAddress(ctx, req.(*SetWhitelistAddressRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SmartFundService_RemoveAsset_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RemoveAssetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SmartFundServiceServer).RemoveAsset(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SmartFundService_RemoveAsset_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SmartFundServiceServer).RemoveAsset(ctx, req.(*RemoveAssetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// SmartFundService_ServiceDesc is the grpc.ServiceDesc for SmartFundService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var SmartFundService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "smartfund.v1.SmartFundService",
	HandlerType: (*SmartFundServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateFund",
			Handler:    _SmartFundService_CreateFund_Handler,
		},
		{
			MethodName: "GetFund",
			Handler:    _SmartFundService_GetFund_Handler,
		},
		{
			MethodName: "ListFunds",
			Handler:    _SmartFundService_ListFunds_Handler,
		},
		{
			MethodName: "Deposit",
			Handler:    _SmartFundService_Deposit_Handler,
		},
		{
			MethodName: "Withdraw",
			Handler:    _SmartFundService_Withdraw_Handler,
		},
		{
			MethodName: "Trade",
			Handler:    _SmartFundService_Trade_Handler,
		},
		{
			MethodName: "BuyPool",
			Handler:    _SmartFundService_BuyPool_Handler,
		},
		{
			MethodName: "SellPool",
			Handler:    _SmartFundService_SellPool_Handler,
		},
		{
			MethodName: "CompoundMint",
			Handler:    _SmartFundService_CompoundMint_Handler,
		},
		{
			MethodName: "CompoundRedeemByPercent",
			Handler:    _SmartFundService_CompoundRedeemByPercent_Handler,
		},
		{
			MethodName: "FundManagerWithdraw",
			Handler:    _SmartFundService_FundManagerWithdraw_Handler,
		},
		{
			MethodName: "GetFundValue",
			Handler:    _SmartFundService_GetFundValue_Handler,
		},
		{
			MethodName: "GetAddressProfit",
			Handler:    _SmartFundService_GetAddressProfit_Handler,
		},
		{
			MethodName: "GetFundProfit",
			Handler:    _SmartFundService_GetFundProfit_Handler,
		},
		{
			MethodName: "GetFundManagerCut",
			Handler:    _SmartFundService_GetFundManagerCut_Handler,
		},
		{
			MethodName: "GetAllTokenAddresses",
			Handler:    _SmartFundService_GetAllTokenAddresses_Handler,
		},
		{
			MethodName: "GetShares",
			Handler:    _SmartFundService_GetShares_Handler,
		},
		{
			MethodName: "ListTrades",
			Handler:    _SmartFundService_ListTrades_Handler,
		},
		{
			MethodName: "TransferShares",
			Handler:    _SmartFundService_TransferShares_Handler,
		},
		{
			MethodName: "SetWhitelistOnly",
			Handler:    _SmartFundService_SetWhitelistOnly_Handler,
		},
		{
			MethodName: "SetWhitelistAddress",
			Handler:    _SmartFundService_SetWhitelistAddress_Handler,
		},
		{
			MethodName: "RemoveAsset",
			Handler:    _SmartFundService_RemoveAsset_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "smartfund/v1/smartfund.proto",
}
