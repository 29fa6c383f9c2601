// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: smartfund/v1/smartfund.proto

package smartfundv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Fund struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Manager       string                 `protobuf:"bytes,3,opt,name=manager,proto3" json:"manager,omitempty"`
	Platform      string                 `protobuf:"bytes,4,opt,name=platform,proto3" json:"platform,omitempty"`
	SuccessFeeBp  int64                  `protobuf:"varint,5,opt,name=success_fee_bp,json=successFeeBp,proto3" json:"success_fee_bp,omitempty"`
	PlatformFeeBp int64                  `protobuf:"varint,6,opt,name=platform_fee_bp,json=platformFeeBp,proto3" json:"platform_fee_bp,omitempty"`
	BaseAsset     string                 `protobuf:"bytes,7,opt,name=base_asset,json=baseAsset,proto3" json:"base_asset,omitempty"`
	QuoteAsset    string                 `protobuf:"bytes,8,opt,name=quote_asset,json=quoteAsset,proto3" json:"quote_asset,omitempty"`
	WhitelistOnly bool                   `protobuf:"varint,9,opt,name=whitelist_only,json=whitelistOnly,proto3" json:"whitelist_only,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,10,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Fund) Reset() {
	*x = Fund{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Fund) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Fund) ProtoMessage() {}

func (x *Fund) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Fund.ProtoReflect.Descriptor instead.
func (*Fund) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{0}
}

func (x *Fund) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Fund) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Fund) GetManager() string {
	if x != nil {
		return x.Manager
	}
	return ""
}

func (x *Fund) GetPlatform() string {
	if x != nil {
		return x.Platform
	}
	return ""
}

func (x *Fund) GetSuccessFeeBp() int64 {
	if x != nil {
		return x.SuccessFeeBp
	}
	return 0
}

func (x *Fund) GetPlatformFeeBp() int64 {
	if x != nil {
		return x.PlatformFeeBp
	}
	return 0
}

func (x *Fund) GetBaseAsset() string {
	if x != nil {
		return x.BaseAsset
	}
	return ""
}

func (x *Fund) GetQuoteAsset() string {
	if x != nil {
		return x.QuoteAsset
	}
	return ""
}

func (x *Fund) GetWhitelistOnly() bool {
	if x != nil {
		return x.WhitelistOnly
	}
	return false
}

func (x *Fund) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

type TradeRecord struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FundId        string                 `protobuf:"bytes,2,opt,name=fund_id,json=fundId,proto3" json:"fund_id,omitempty"`
	Kind          string                 `protobuf:"bytes,3,opt,name=kind,proto3" json:"kind,omitempty"`
	SrcAsset      string                 `protobuf:"bytes,4,opt,name=src_asset,json=srcAsset,proto3" json:"src_asset,omitempty"`
	SrcAmount     string                 `protobuf:"bytes,5,opt,name=src_amount,json=srcAmount,proto3" json:"src_amount,omitempty"`
	DestAsset     string                 `protobuf:"bytes,6,opt,name=dest_asset,json=destAsset,proto3" json:"dest_asset,omitempty"`
	DestAmount    string                 `protobuf:"bytes,7,opt,name=dest_amount,json=destAmount,proto3" json:"dest_amount,omitempty"`
	ExecutedAt    *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=executed_at,json=executedAt,proto3" json:"executed_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TradeRecord) Reset() {
	*x = TradeRecord{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TradeRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TradeRecord) ProtoMessage() {}

func (x *TradeRecord) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TradeRecord.ProtoReflect.Descriptor instead.
func (*TradeRecord) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{1}
}

func (x *TradeRecord) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *TradeRecord) GetFundId() string {
	if x != nil {
		return x.FundId
	}
	return ""
}

func (x *TradeRecord) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *TradeRecord) GetSrcAsset() string {
	if x != nil {
		return x.SrcAsset
	}
	return ""
}

func (x *TradeRecord) GetSrcAmount() string {
	if x != nil {
		return x.SrcAmount
	}
	return ""
}

func (x *TradeRecord) GetDestAsset() string {
	if x != nil {
		return x.DestAsset
	}
	return ""
}

func (x *TradeRecord) GetDestAmount() string {
	if x != nil {
		return x.DestAmount
	}
	return ""
}

func (x *TradeRecord) GetExecutedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.ExecutedAt
	}
	return nil
}

type CreateFundRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Manager       string                 `protobuf:"bytes,2,opt,name=manager,proto3" json:"manager,omitempty"`
	Platform      string                 `protobuf:"bytes,3,opt,name=platform,proto3" json:"platform,omitempty"`
	SuccessFeeBp  int64                  `protobuf:"varint,4,opt,name=success_fee_bp,json=successFeeBp,proto3" json:"success_fee_bp,omitempty"`
	PlatformFeeBp int64                  `protobuf:"varint,5,opt,name=platform_fee_bp,json=platformFeeBp,proto3" json:"platform_fee_bp,omitempty"`
	BaseAsset     string                 `protobuf:"bytes,6,opt,name=base_asset,json=baseAsset,proto3" json:"base_asset,omitempty"`
	QuoteAsset    string                 `protobuf:"bytes,7,opt,name=quote_asset,json=quoteAsset,proto3" json:"quote_asset,omitempty"`
	WhitelistOnly bool                   `protobuf:"varint,8,opt,name=whitelist_only,json=whitelistOnly,proto3" json:"whitelist_only,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateFundRequest) Reset() {
	*x = CreateFundRequest{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateFundRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateFundRequest) ProtoMessage() {}

func (x *CreateFundRequest) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateFundRequest.ProtoReflect.Descriptor instead.
func (*CreateFundRequest) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{2}
}

func (x *CreateFundRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateFundRequest) GetManager() string {
	if x != nil {
		return x.Manager
	}
	return ""
}

func (x *CreateFundRequest) GetPlatform() string {
	if x != nil {
		return x.Platform
	}
	return ""
}

func (x *CreateFundRequest) GetSuccessFeeBp() int64 {
	if x != nil {
		return x.SuccessFeeBp
	}
	return 0
}

func (x *CreateFundRequest) GetPlatformFeeBp() int64 {
	if x != nil {
		return x.PlatformFeeBp
	}
	return 0
}

func (x *CreateFundRequest) GetBaseAsset() string {
	if x != nil {
		return x.BaseAsset
	}
	return ""
}

func (x *CreateFundRequest) GetQuoteAsset() string {
	if x != nil {
		return x.QuoteAsset
	}
	return ""
}

func (x *CreateFundRequest) GetWhitelistOnly() bool {
	if x != nil {
		return x.WhitelistOnly
	}
	return false
}

type CreateFundResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Fund          *Fund                  `protobuf:"bytes,1,opt,name=fund,proto3" json:"fund,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateFundResponse) Reset() {
	*x = CreateFundResponse{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateFundResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateFundResponse) ProtoMessage() {}

func (x *CreateFundResponse) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateFundResponse.ProtoReflect.Descriptor instead.
func (*CreateFundResponse) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{3}
}

func (x *CreateFundResponse) GetFund() *Fund {
	if x != nil {
		return x.Fund
	}
	return nil
}

type GetFundRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FundId        string                 `protobuf:"bytes,1,opt,name=fund_id,json=fundId,proto3" json:"fund_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetFundRequest) Reset() {
	*x = GetFundRequest{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetFundRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetFundRequest) ProtoMessage() {}

func (x *GetFundRequest) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetFundRequest.ProtoReflect.Descriptor instead.
func (*GetFundRequest) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{4}
}

func (x *GetFundRequest) GetFundId() string {
	if x != nil {
		return x.FundId
	}
	return ""
}

type GetFundResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Fund          *Fund                  `protobuf:"bytes,1,opt,name=fund,proto3" json:"fund,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetFundResponse) Reset() {
	*x = GetFundResponse{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetFundResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetFundResponse) ProtoMessage() {}

func (x *GetFundResponse) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetFundResponse.ProtoReflect.Descriptor instead.
func (*GetFundResponse) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{5}
}

func (x *GetFundResponse) GetFund() *Fund {
	if x != nil {
		return x.Fund
	}
	return nil
}

type ListFundsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListFundsRequest) Reset() {
	*x = ListFundsRequest{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFundsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFundsRequest) ProtoMessage() {}

func (x *ListFundsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFundsRequest.ProtoReflect.Descriptor instead.
func (*ListFundsRequest) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{6}
}

type ListFundsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Funds         []*Fund                `protobuf:"bytes,1,rep,name=funds,proto3" json:"funds,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListFundsResponse) Reset() {
	*x = ListFundsResponse{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFundsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFundsResponse) ProtoMessage() {}

func (x *ListFundsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFundsResponse.ProtoReflect.Descriptor instead.
func (*ListFundsResponse) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{7}
}

func (x *ListFundsResponse) GetFunds() []*Fund {
	if x != nil {
		return x.Funds
	}
	return nil
}

type DepositRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FundId        string                 `protobuf:"bytes,1,opt,name=fund_id,json=fundId,proto3" json:"fund_id,omitempty"`
	Amount        string                 `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DepositRequest) Reset() {
	*x = DepositRequest{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DepositRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DepositRequest) ProtoMessage() {}

func (x *DepositRequest) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DepositRequest.ProtoReflect.Descriptor instead.
func (*DepositRequest) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{8}
}

func (x *DepositRequest) GetFundId() string {
	if x != nil {
		return x.FundId
	}
	return ""
}

func (x *DepositRequest) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

type DepositResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SharesMinted  string                 `protobuf:"bytes,1,opt,name=shares_minted,json=sharesMinted,proto3" json:"shares_minted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DepositResponse) Reset() {
	*x = DepositResponse{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DepositResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DepositResponse) ProtoMessage() {}

func (x *DepositResponse) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DepositResponse.ProtoReflect.Descriptor instead.
func (*DepositResponse) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{9}
}

func (x *DepositResponse) GetSharesMinted() string {
	if x != nil {
		return x.SharesMinted
	}
	return ""
}

type WithdrawRequest struct {
	state  protoimpl.MessageState `protogen:"open.v1"`
	FundId string                 `protobuf:"bytes,1,opt,name=fund_id,json=fundId,proto3" json:"fund_id,omitempty"`
	// Basis points of the caller's shares to withdraw. 0 means 100%.
	PercentBp     int64 `protobuf:"varint,2,opt,name=percent_bp,json=percentBp,proto3" json:"percent_bp,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WithdrawRequest) Reset() {
	*x = WithdrawRequest{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WithdrawRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WithdrawRequest) ProtoMessage() {}

func (x *WithdrawRequest) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WithdrawRequest.ProtoReflect.Descriptor instead.
func (*WithdrawRequest) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{10}
}

func (x *WithdrawRequest) GetFundId() string {
	if x != nil {
		return x.FundId
	}
	return ""
}

func (x *WithdrawRequest) GetPercentBp() int64 {
	if x != nil {
		return x.PercentBp
	}
	return 0
}

type WithdrawResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ValueWithdrawn string                 `protobuf:"bytes,1,opt,name=value_withdrawn,json=valueWithdrawn,proto3" json:"value_withdrawn,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *WithdrawResponse) Reset() {
	*x = WithdrawResponse{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WithdrawResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WithdrawResponse) ProtoMessage() {}

func (x *WithdrawResponse) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WithdrawResponse.ProtoReflect.Descriptor instead.
func (*WithdrawResponse) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{11}
}

func (x *WithdrawResponse) GetValueWithdrawn() string {
	if x != nil {
		return x.ValueWithdrawn
	}
	return ""
}

type TradeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FundId        string                 `protobuf:"bytes,1,opt,name=fund_id,json=fundId,proto3" json:"fund_id,omitempty"`
	SrcAsset      string                 `protobuf:"bytes,2,opt,name=src_asset,json=srcAsset,proto3" json:"src_asset,omitempty"`
	SrcAmount     string                 `protobuf:"bytes,3,opt,name=src_amount,json=srcAmount,proto3" json:"src_amount,omitempty"`
	DestAsset     string                 `protobuf:"bytes,4,opt,name=dest_asset,json=destAsset,proto3" json:"dest_asset,omitempty"`
	MinReturn     string                 `protobuf:"bytes,5,opt,name=min_return,json=minReturn,proto3" json:"min_return,omitempty"`
	NativeValue   string                 `protobuf:"bytes,6,opt,name=native_value,json=nativeValue,proto3" json:"native_value,omitempty"`
	RoutingData   []byte                 `protobuf:"bytes,7,opt,name=routing_data,json=routingData,proto3" json:"routing_data,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TradeRequest) Reset() {
	*x = TradeRequest{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TradeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TradeRequest) ProtoMessage() {}

func (x *TradeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TradeRequest.ProtoReflect.Descriptor instead.
func (*TradeRequest) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{12}
}

func (x *TradeRequest) GetFundId() string {
	if x != nil {
		return x.FundId
	}
	return ""
}

func (x *TradeRequest) GetSrcAsset() string {
	if x != nil {
		return x.SrcAsset
	}
	return ""
}

func (x *TradeRequest) GetSrcAmount() string {
	if x != nil {
		return x.SrcAmount
	}
	return ""
}

func (x *TradeRequest) GetDestAsset() string {
	if x != nil {
		return x.DestAsset
	}
	return ""
}

func (x *TradeRequest) GetMinReturn() string {
	if x != nil {
		return x.MinReturn
	}
	return ""
}

func (x *TradeRequest) GetNativeValue() string {
	if x != nil {
		return x.NativeValue
	}
	return ""
}

func (x *TradeRequest) GetRoutingData() []byte {
	if x != nil {
		return x.RoutingData
	}
	return nil
}

type TradeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Record        *TradeRecord           `protobuf:"bytes,1,opt,name=record,proto3" json:"record,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TradeResponse) Reset() {
	*x = TradeResponse{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TradeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TradeResponse) ProtoMessage() {}

func (x *TradeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TradeResponse.ProtoReflect.Descriptor instead.
func (*TradeResponse) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{13}
}

func (x *TradeResponse) GetRecord() *TradeRecord {
	if x != nil {
		return x.Record
	}
	return nil
}

type BuyPoolRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FundId        string                 `protobuf:"bytes,1,opt,name=fund_id,json=fundId,proto3" json:"fund_id,omitempty"`
	Amount        string                 `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
	PoolChoice    string                 `protobuf:"bytes,3,opt,name=pool_choice,json=poolChoice,proto3" json:"pool_choice,omitempty"`
	PoolToken     string                 `protobuf:"bytes,4,opt,name=pool_token,json=poolToken,proto3" json:"pool_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BuyPoolRequest) Reset() {
	*x = BuyPoolRequest{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BuyPoolRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BuyPoolRequest) ProtoMessage() {}

func (x *BuyPoolRequest) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BuyPoolRequest.ProtoReflect.Descriptor instead.
func (*BuyPoolRequest) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{14}
}

func (x *BuyPoolRequest) GetFundId() string {
	if x != nil {
		return x.FundId
	}
	return ""
}

func (x *BuyPoolRequest) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

func (x *BuyPoolRequest) GetPoolChoice() string {
	if x != nil {
		return x.PoolChoice
	}
	return ""
}

func (x *BuyPoolRequest) GetPoolToken() string {
	if x != nil {
		return x.PoolToken
	}
	return ""
}

type BuyPoolResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BuyPoolResponse) Reset() {
	*x = BuyPoolResponse{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BuyPoolResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BuyPoolResponse) ProtoMessage() {}

func (x *BuyPoolResponse) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BuyPoolResponse.ProtoReflect.Descriptor instead.
func (*BuyPoolResponse) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{15}
}

type SellPoolRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FundId        string                 `protobuf:"bytes,1,opt,name=fund_id,json=fundId,proto3" json:"fund_id,omitempty"`
	Amount        string                 `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
	PoolChoice    string                 `protobuf:"bytes,3,opt,name=pool_choice,json=poolChoice,proto3" json:"pool_choice,omitempty"`
	PoolToken     string                 `protobuf:"bytes,4,opt,name=pool_token,json=poolToken,proto3" json:"pool_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SellPoolRequest) Reset() {
	*x = SellPoolRequest{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SellPoolRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SellPoolRequest) ProtoMessage() {}

func (x *SellPoolRequest) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SellPoolRequest.ProtoReflect.Descriptor instead.
func (*SellPoolRequest) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{16}
}

func (x *SellPoolRequest) GetFundId() string {
	if x != nil {
		return x.FundId
	}
	return ""
}

func (x *SellPoolRequest) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

func (x *SellPoolRequest) GetPoolChoice() string {
	if x != nil {
		return x.PoolChoice
	}
	return ""
}

func (x *SellPoolRequest) GetPoolToken() string {
	if x != nil {
		return x.PoolToken
	}
	return ""
}

type SellPoolResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SellPoolResponse) Reset() {
	*x = SellPoolResponse{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SellPoolResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SellPoolResponse) ProtoMessage() {}

func (x *SellPoolResponse) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SellPoolResponse.ProtoReflect.Descriptor instead.
func (*SellPoolResponse) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{17}
}

type CompoundMintRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FundId        string                 `protobuf:"bytes,1,opt,name=fund_id,json=fundId,proto3" json:"fund_id,omitempty"`
	Amount        string                 `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
	WrappedAsset  string                 `protobuf:"bytes,3,opt,name=wrapped_asset,json=wrappedAsset,proto3" json:"wrapped_asset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CompoundMintRequest) Reset() {
	*x = CompoundMintRequest{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompoundMintRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompoundMintRequest) ProtoMessage() {}

func (x *CompoundMintRequest) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompoundMintRequest.ProtoReflect.Descriptor instead.
func (*CompoundMintRequest) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{18}
}

func (x *CompoundMintRequest) GetFundId() string {
	if x != nil {
		return x.FundId
	}
	return ""
}

func (x *CompoundMintRequest) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

func (x *CompoundMintRequest) GetWrappedAsset() string {
	if x != nil {
		return x.WrappedAsset
	}
	return ""
}

type CompoundMintResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CompoundMintResponse) Reset() {
	*x = CompoundMintResponse{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompoundMintResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompoundMintResponse) ProtoMessage() {}

func (x *CompoundMintResponse) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompoundMintResponse.ProtoReflect.Descriptor instead.
func (*CompoundMintResponse) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{19}
}

type CompoundRedeemByPercentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FundId        string                 `protobuf:"bytes,1,opt,name=fund_id,json=fundId,proto3" json:"fund_id,omitempty"`
	Percent       string                 `protobuf:"bytes,2,opt,name=percent,proto3" json:"percent,omitempty"`
	WrappedAsset  string                 `protobuf:"bytes,3,opt,name=wrapped_asset,json=wrappedAsset,proto3" json:"wrapped_asset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CompoundRedeemByPercentRequest) Reset() {
	*x = CompoundRedeemByPercentRequest{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompoundRedeemByPercentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompoundRedeemByPercentRequest) ProtoMessage() {}

func (x *CompoundRedeemByPercentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompoundRedeemByPercentRequest.ProtoReflect.Descriptor instead.
func (*CompoundRedeemByPercentRequest) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{20}
}

func (x *CompoundRedeemByPercentRequest) GetFundId() string {
	if x != nil {
		return x.FundId
	}
	return ""
}

func (x *CompoundRedeemByPercentRequest) GetPercent() string {
	if x != nil {
		return x.Percent
	}
	return ""
}

func (x *CompoundRedeemByPercentRequest) GetWrappedAsset() string {
	if x != nil {
		return x.WrappedAsset
	}
	return ""
}

type CompoundRedeemByPercentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CompoundRedeemByPercentResponse) Reset() {
	*x = CompoundRedeemByPercentResponse{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompoundRedeemByPercentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompoundRedeemByPercentResponse) ProtoMessage() {}

func (x *CompoundRedeemByPercentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompoundRedeemByPercentResponse.ProtoReflect.Descriptor instead.
func (*CompoundRedeemByPercentResponse) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{21}
}

type FundManagerWithdrawRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FundId        string                 `protobuf:"bytes,1,opt,name=fund_id,json=fundId,proto3" json:"fund_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FundManagerWithdrawRequest) Reset() {
	*x = FundManagerWithdrawRequest{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FundManagerWithdrawRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FundManagerWithdrawRequest) ProtoMessage() {}

func (x *FundManagerWithdrawRequest) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FundManagerWithdrawRequest.ProtoReflect.Descriptor instead.
func (*FundManagerWithdrawRequest) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{22}
}

func (x *FundManagerWithdrawRequest) GetFundId() string {
	if x != nil {
		return x.FundId
	}
	return ""
}

type FundManagerWithdrawResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ValueClaimed  string                 `protobuf:"bytes,1,opt,name=value_claimed,json=valueClaimed,proto3" json:"value_claimed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FundManagerWithdrawResponse) Reset() {
	*x = FundManagerWithdrawResponse{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FundManagerWithdrawResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FundManagerWithdrawResponse) ProtoMessage() {}

func (x *FundManagerWithdrawResponse) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FundManagerWithdrawResponse.ProtoReflect.Descriptor instead.
func (*FundManagerWithdrawResponse) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{23}
}

func (x *FundManagerWithdrawResponse) GetValueClaimed() string {
	if x != nil {
		return x.ValueClaimed
	}
	return ""
}

type GetFundValueRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FundId        string                 `protobuf:"bytes,1,opt,name=fund_id,json=fundId,proto3" json:"fund_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetFundValueRequest) Reset() {
	*x = GetFundValueRequest{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetFundValueRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetFundValueRequest) ProtoMessage() {}

func (x *GetFundValueRequest) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetFundValueRequest.ProtoReflect.Descriptor instead.
func (*GetFundValueRequest) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{24}
}

func (x *GetFundValueRequest) GetFundId() string {
	if x != nil {
		return x.FundId
	}
	return ""
}

type GetFundValueResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Value         string                 `protobuf:"bytes,1,opt,name=value,proto3" json:"value,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetFundValueResponse) Reset() {
	*x = GetFundValueResponse{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetFundValueResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetFundValueResponse) ProtoMessage() {}

func (x *GetFundValueResponse) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetFundValueResponse.ProtoReflect.Descriptor instead.
func (*GetFundValueResponse) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{25}
}

func (x *GetFundValueResponse) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

type GetAddressProfitRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FundId        string                 `protobuf:"bytes,1,opt,name=fund_id,json=fundId,proto3" json:"fund_id,omitempty"`
	Address       string                 `protobuf:"bytes,2,opt,name=address,proto3" json:"address,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAddressProfitRequest) Reset() {
	*x = GetAddressProfitRequest{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAddressProfitRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAddressProfitRequest) ProtoMessage() {}

func (x *GetAddressProfitRequest) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAddressProfitRequest.ProtoReflect.Descriptor instead.
func (*GetAddressProfitRequest) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{26}
}

func (x *GetAddressProfitRequest) GetFundId() string {
	if x != nil {
		return x.FundId
	}
	return ""
}

func (x *GetAddressProfitRequest) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

type GetAddressProfitResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Profit        string                 `protobuf:"bytes,1,opt,name=profit,proto3" json:"profit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAddressProfitResponse) Reset() {
	*x = GetAddressProfitResponse{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAddressProfitResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAddressProfitResponse) ProtoMessage() {}

func (x *GetAddressProfitResponse) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAddressProfitResponse.ProtoReflect.Descriptor instead.
func (*GetAddressProfitResponse) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{27}
}

func (x *GetAddressProfitResponse) GetProfit() string {
	if x != nil {
		return x.Profit
	}
	return ""
}

type GetFundProfitRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FundId        string                 `protobuf:"bytes,1,opt,name=fund_id,json=fundId,proto3" json:"fund_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetFundProfitRequest) Reset() {
	*x = GetFundProfitRequest{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetFundProfitRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetFundProfitRequest) ProtoMessage() {}

func (x *GetFundProfitRequest) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetFundProfitRequest.ProtoReflect.Descriptor instead.
func (*GetFundProfitRequest) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{28}
}

func (x *GetFundProfitRequest) GetFundId() string {
	if x != nil {
		return x.FundId
	}
	return ""
}

type GetFundProfitResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Profit        string                 `protobuf:"bytes,1,opt,name=profit,proto3" json:"profit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetFundProfitResponse) Reset() {
	*x = GetFundProfitResponse{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetFundProfitResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetFundProfitResponse) ProtoMessage() {}

func (x *GetFundProfitResponse) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetFundProfitResponse.ProtoReflect.Descriptor instead.
func (*GetFundProfitResponse) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{29}
}

func (x *GetFundProfitResponse) GetProfit() string {
	if x != nil {
		return x.Profit
	}
	return ""
}

type GetFundManagerCutRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FundId        string                 `protobuf:"bytes,1,opt,name=fund_id,json=fundId,proto3" json:"fund_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetFundManagerCutRequest) Reset() {
	*x = GetFundManagerCutRequest{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetFundManagerCutRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetFundManagerCutRequest) ProtoMessage() {}

func (x *GetFundManagerCutRequest) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetFundManagerCutRequest.ProtoReflect.Descriptor instead.
func (*GetFundManagerCutRequest) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{30}
}

func (x *GetFundManagerCutRequest) GetFundId() string {
	if x != nil {
		return x.FundId
	}
	return ""
}

type GetFundManagerCutResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RemainingCut  string                 `protobuf:"bytes,1,opt,name=remaining_cut,json=remainingCut,proto3" json:"remaining_cut,omitempty"`
	FundValue     string                 `protobuf:"bytes,2,opt,name=fund_value,json=fundValue,proto3" json:"fund_value,omitempty"`
	TotalCut      string                 `protobuf:"bytes,3,opt,name=total_cut,json=totalCut,proto3" json:"total_cut,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetFundManagerCutResponse) Reset() {
	*x = GetFundManagerCutResponse{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetFundManagerCutResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetFundManagerCutResponse) ProtoMessage() {}

func (x *GetFundManagerCutResponse) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetFundManagerCutResponse.ProtoReflect.Descriptor instead.
func (*GetFundManagerCutResponse) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{31}
}

func (x *GetFundManagerCutResponse) GetRemainingCut() string {
	if x != nil {
		return x.RemainingCut
	}
	return ""
}

func (x *GetFundManagerCutResponse) GetFundValue() string {
	if x != nil {
		return x.FundValue
	}
	return ""
}

func (x *GetFundManagerCutResponse) GetTotalCut() string {
	if x != nil {
		return x.TotalCut
	}
	return ""
}

type GetAllTokenAddressesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FundId        string                 `protobuf:"bytes,1,opt,name=fund_id,json=fundId,proto3" json:"fund_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAllTokenAddressesRequest) Reset() {
	*x = GetAllTokenAddressesRequest{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAllTokenAddressesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAllTokenAddressesRequest) ProtoMessage() {}

func (x *GetAllTokenAddressesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAllTokenAddressesRequest.ProtoReflect.Descriptor instead.
func (*GetAllTokenAddressesRequest) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{32}
}

func (x *GetAllTokenAddressesRequest) GetFundId() string {
	if x != nil {
		return x.FundId
	}
	return ""
}

type GetAllTokenAddressesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Assets        []string               `protobuf:"bytes,1,rep,name=assets,proto3" json:"assets,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAllTokenAddressesResponse) Reset() {
	*x = GetAllTokenAddressesResponse{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAllTokenAddressesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAllTokenAddressesResponse) ProtoMessage() {}

func (x *GetAllTokenAddressesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAllTokenAddressesResponse.ProtoReflect.Descriptor instead.
func (*GetAllTokenAddressesResponse) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{33}
}

func (x *GetAllTokenAddressesResponse) GetAssets() []string {
	if x != nil {
		return x.Assets
	}
	return nil
}

type GetSharesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FundId        string                 `protobuf:"bytes,1,opt,name=fund_id,json=fundId,proto3" json:"fund_id,omitempty"`
	Holder        string                 `protobuf:"bytes,2,opt,name=holder,proto3" json:"holder,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSharesRequest) Reset() {
	*x = GetSharesRequest{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSharesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSharesRequest) ProtoMessage() {}

func (x *GetSharesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSharesRequest.ProtoReflect.Descriptor instead.
func (*GetSharesRequest) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{34}
}

func (x *GetSharesRequest) GetFundId() string {
	if x != nil {
		return x.FundId
	}
	return ""
}

func (x *GetSharesRequest) GetHolder() string {
	if x != nil {
		return x.Holder
	}
	return ""
}

type GetSharesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Balance       string                 `protobuf:"bytes,1,opt,name=balance,proto3" json:"balance,omitempty"`
	TotalShares   string                 `protobuf:"bytes,2,opt,name=total_shares,json=totalShares,proto3" json:"total_shares,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSharesResponse) Reset() {
	*x = GetSharesResponse{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSharesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSharesResponse) ProtoMessage() {}

func (x *GetSharesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSharesResponse.ProtoReflect.Descriptor instead.
func (*GetSharesResponse) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{35}
}

func (x *GetSharesResponse) GetBalance() string {
	if x != nil {
		return x.Balance
	}
	return ""
}

func (x *GetSharesResponse) GetTotalShares() string {
	if x != nil {
		return x.TotalShares
	}
	return ""
}

type ListTradesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FundId        string                 `protobuf:"bytes,1,opt,name=fund_id,json=fundId,proto3" json:"fund_id,omitempty"`
	Limit         int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset        int32                  `protobuf:"varint,3,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTradesRequest) Reset() {
	*x = ListTradesRequest{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTradesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTradesRequest) ProtoMessage() {}

func (x *ListTradesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTradesRequest.ProtoReflect.Descriptor instead.
func (*ListTradesRequest) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{36}
}

func (x *ListTradesRequest) GetFundId() string {
	if x != nil {
		return x.FundId
	}
	return ""
}

func (x *ListTradesRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListTradesRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListTradesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Records       []*TradeRecord         `protobuf:"bytes,1,rep,name=records,proto3" json:"records,omitempty"`
	TotalCount    int32                  `protobuf:"varint,2,opt,name=total_count,json=totalCount,proto3" json:"total_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTradesResponse) Reset() {
	*x = ListTradesResponse{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTradesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTradesResponse) ProtoMessage() {}

func (x *ListTradesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTradesResponse.ProtoReflect.Descriptor instead.
func (*ListTradesResponse) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{37}
}

func (x *ListTradesResponse) GetRecords() []*TradeRecord {
	if x != nil {
		return x.Records
	}
	return nil
}

func (x *ListTradesResponse) GetTotalCount() int32 {
	if x != nil {
		return x.TotalCount
	}
	return 0
}

type TransferSharesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FundId        string                 `protobuf:"bytes,1,opt,name=fund_id,json=fundId,proto3" json:"fund_id,omitempty"`
	To            string                 `protobuf:"bytes,2,opt,name=to,proto3" json:"to,omitempty"`
	Shares        string                 `protobuf:"bytes,3,opt,name=shares,proto3" json:"shares,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TransferSharesRequest) Reset() {
	*x = TransferSharesRequest{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[38]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TransferSharesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TransferSharesRequest) ProtoMessage() {}

func (x *TransferSharesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[38]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TransferSharesRequest.ProtoReflect.Descriptor instead.
func (*TransferSharesRequest) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{38}
}

func (x *TransferSharesRequest) GetFundId() string {
	if x != nil {
		return x.FundId
	}
	return ""
}

func (x *TransferSharesRequest) GetTo() string {
	if x != nil {
		return x.To
	}
	return ""
}

func (x *TransferSharesRequest) GetShares() string {
	if x != nil {
		return x.Shares
	}
	return ""
}

type TransferSharesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TransferSharesResponse) Reset() {
	*x = TransferSharesResponse{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[39]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TransferSharesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TransferSharesResponse) ProtoMessage() {}

func (x *TransferSharesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[39]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TransferSharesResponse.ProtoReflect.Descriptor instead.
func (*TransferSharesResponse) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{39}
}

type SetWhitelistOnlyRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FundId        string                 `protobuf:"bytes,1,opt,name=fund_id,json=fundId,proto3" json:"fund_id,omitempty"`
	Enabled       bool                   `protobuf:"varint,2,opt,name=enabled,proto3" json:"enabled,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetWhitelistOnlyRequest) Reset() {
	*x = SetWhitelistOnlyRequest{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[40]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetWhitelistOnlyRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetWhitelistOnlyRequest) ProtoMessage() {}

func (x *SetWhitelistOnlyRequest) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[40]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetWhitelistOnlyRequest.ProtoReflect.Descriptor instead.
func (*SetWhitelistOnlyRequest) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{40}
}

func (x *SetWhitelistOnlyRequest) GetFundId() string {
	if x != nil {
		return x.FundId
	}
	return ""
}

func (x *SetWhitelistOnlyRequest) GetEnabled() bool {
	if x != nil {
		return x.Enabled
	}
	return false
}

type SetWhitelistOnlyResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetWhitelistOnlyResponse) Reset() {
	*x = SetWhitelistOnlyResponse{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[41]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetWhitelistOnlyResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetWhitelistOnlyResponse) ProtoMessage() {}

func (x *SetWhitelistOnlyResponse) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[41]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetWhitelistOnlyResponse.ProtoReflect.Descriptor instead.
func (*SetWhitelistOnlyResponse) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{41}
}

type SetWhitelistAddressRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FundId        string                 `protobuf:"bytes,1,opt,name=fund_id,json=fundId,proto3" json:"fund_id,omitempty"`
	Address       string                 `protobuf:"bytes,2,opt,name=address,proto3" json:"address,omitempty"`
	Allowed       bool                   `protobuf:"varint,3,opt,name=allowed,proto3" json:"allowed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetWhitelistAddressRequest) Reset() {
	*x = SetWhitelistAddressRequest{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[42]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetWhitelistAddressRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetWhitelistAddressRequest) ProtoMessage() {}

func (x *SetWhitelistAddressRequest) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[42]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetWhitelistAddressRequest.ProtoReflect.Descriptor instead.
func (*SetWhitelistAddressRequest) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{42}
}

func (x *SetWhitelistAddressRequest) GetFundId() string {
	if x != nil {
		return x.FundId
	}
	return ""
}

func (x *SetWhitelistAddressRequest) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *SetWhitelistAddressRequest) GetAllowed() bool {
	if x != nil {
		return x.Allowed
	}
	return false
}

type SetWhitelistAddressResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetWhitelistAddressResponse) Reset() {
	*x = SetWhitelistAddressResponse{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[43]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetWhitelistAddressResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetWhitelistAddressResponse) ProtoMessage() {}

func (x *SetWhitelistAddressResponse) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[43]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetWhitelistAddressResponse.ProtoReflect.Descriptor instead.
func (*SetWhitelistAddressResponse) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{43}
}

type RemoveAssetRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FundId        string                 `protobuf:"bytes,1,opt,name=fund_id,json=fundId,proto3" json:"fund_id,omitempty"`
	Asset         string                 `protobuf:"bytes,2,opt,name=asset,proto3" json:"asset,omitempty"`
	Index         int32                  `protobuf:"varint,3,opt,name=index,proto3" json:"index,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RemoveAssetRequest) Reset() {
	*x = RemoveAssetRequest{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[44]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemoveAssetRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemoveAssetRequest) ProtoMessage() {}

func (x *RemoveAssetRequest) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[44]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemoveAssetRequest.ProtoReflect.Descriptor instead.
func (*RemoveAssetRequest) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{44}
}

func (x *RemoveAssetRequest) GetFundId() string {
	if x != nil {
		return x.FundId
	}
	return ""
}

func (x *RemoveAssetRequest) GetAsset() string {
	if x != nil {
		return x.Asset
	}
	return ""
}

func (x *RemoveAssetRequest) GetIndex() int32 {
	if x != nil {
		return x.Index
	}
	return 0
}

type RemoveAssetResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RemoveAssetResponse) Reset() {
	*x = RemoveAssetResponse{}
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[45]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemoveAssetResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemoveAssetResponse) ProtoMessage() {}

func (x *RemoveAssetResponse) ProtoReflect() protoreflect.Message {
	mi := &file_smartfund_v1_smartfund_proto_msgTypes[45]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemoveAssetResponse.ProtoReflect.Descriptor instead.
func (*RemoveAssetResponse) Descriptor() ([]byte, []int) {
	return file_smartfund_v1_smartfund_proto_rawDescGZIP(), []int{45}
}

var File_smartfund_v1_smartfund_proto protoreflect.FileDescriptor

const file_smartfund_v1_smartfund_proto_rawDesc = "" +
	"\n" +
	"\x1csmartfund/v1/smartfund.proto\x12\fsmartfund.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"\xd0\x02\n" +
	"\x04Fund\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x18\n" +
	"\amanager\x18\x03 \x01(\tR\amanager\x12\x1a\n" +
	"\bplatform\x18\x04 \x01(\tR\bplatform\x12$\n" +
	"\x0esuccess_fee_bp\x18\x05 \x01(\x03R\fsuccessFeeBp\x12&\n" +
	"\x0fplatform_fee_bp\x18\x06 \x01(\x03R\rplatformFeeBp\x12\x1d\n" +
	"\n" +
	"base_asset\x18\a \x01(\tR\tbaseAsset\x12\x1f\n" +
	"\vquote_asset\x18\b \x01(\tR\n" +
	"quoteAsset\x12%\n" +
	"\x0ewhitelist_only\x18\t \x01(\bR\rwhitelistOnly\x129\n" +
	"\n" +
	"created_at\x18\n" +
	" \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\"\x83\x02\n" +
	"\vTradeRecord\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\afund_id\x18\x02 \x01(\tR\x06fundId\x12\x12\n" +
	"\x04kind\x18\x03 \x01(\tR\x04kind\x12\x1b\n" +
	"\tsrc_asset\x18\x04 \x01(\tR\bsrcAsset\x12\x1d\n" +
	"\n" +
	"src_amount\x18\x05 \x01(\tR\tsrcAmount\x12\x1d\n" +
	"\n" +
	"dest_asset\x18\x06 \x01(\tR\tdestAsset\x12\x1f\n" +
	"\vdest_amount\x18\a \x01(\tR\n" +
	"destAmount\x12;\n" +
	"\vexecuted_at\x18\b \x01(\v2\x1a.google.protobuf.TimestampR\n" +
	"executedAt\"\x92\x02\n" +
	"\x11CreateFundRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x18\n" +
	"\amanager\x18\x02 \x01(\tR\amanager\x12\x1a\n" +
	"\bplatform\x18\x03 \x01(\tR\bplatform\x12$\n" +
	"\x0esuccess_fee_bp\x18\x04 \x01(\x03R\fsuccessFeeBp\x12&\n" +
	"\x0fplatform_fee_bp\x18\x05 \x01(\x03R\rplatformFeeBp\x12\x1d\n" +
	"\n" +
	"base_asset\x18\x06 \x01(\tR\tbaseAsset\x12\x1f\n" +
	"\vquote_asset\x18\a \x01(\tR\n" +
	"quoteAsset\x12%\n" +
	"\x0ewhitelist_only\x18\b \x01(\bR\rwhitelistOnly\"<\n" +
	"\x12CreateFundResponse\x12&\n" +
	"\x04fund\x18\x01 \x01(\v2\x12.smartfund.v1.FundR\x04fund\")\n" +
	"\x0eGetFundRequest\x12\x17\n" +
	"\afund_id\x18\x01 \x01(\tR\x06fundId\"9\n" +
	"\x0fGetFundResponse\x12&\n" +
	"\x04fund\x18\x01 \x01(\v2\x12.smartfund.v1.FundR\x04fund\"\x12\n" +
	"\x10ListFundsRequest\"=\n" +
	"\x11ListFundsResponse\x12(\n" +
	"\x05funds\x18\x01 \x03(\v2\x12.smartfund.v1.FundR\x05funds\"A\n" +
	"\x0eDepositRequest\x12\x17\n" +
	"\afund_id\x18\x01 \x01(\tR\x06fundId\x12\x16\n" +
	"\x06amount\x18\x02 \x01(\tR\x06amount\"6\n" +
	"\x0fDepositResponse\x12#\n" +
	"\rshares_minted\x18\x01 \x01(\tR\fsharesMinted\"I\n" +
	"\x0fWithdrawRequest\x12\x17\n" +
	"\afund_id\x18\x01 \x01(\tR\x06fundId\x12\x1d\n" +
	"\n" +
	"percent_bp\x18\x02 \x01(\x03R\tpercentBp\";\n" +
	"\x10WithdrawResponse\x12'\n" +
	"\x0fvalue_withdrawn\x18\x01 \x01(\tR\x0evalueWithdrawn\"\xe7\x01\n" +
	"\fTradeRequest\x12\x17\n" +
	"\afund_id\x18\x01 \x01(\tR\x06fundId\x12\x1b\n" +
	"\tsrc_asset\x18\x02 \x01(\tR\bsrcAsset\x12\x1d\n" +
	"\n" +
	"src_amount\x18\x03 \x01(\tR\tsrcAmount\x12\x1d\n" +
	"\n" +
	"dest_asset\x18\x04 \x01(\tR\tdestAsset\x12\x1d\n" +
	"\n" +
	"min_return\x18\x05 \x01(\tR\tminReturn\x12!\n" +
	"\fnative_value\x18\x06 \x01(\tR\vnativeValue\x12!\n" +
	"\frouting_data\x18\a \x01(\fR\vroutingData\"B\n" +
	"\rTradeResponse\x121\n" +
	"\x06record\x18\x01 \x01(\v2\x19.smartfund.v1.TradeRecordR\x06record\"\x81\x01\n" +
	"\x0eBuyPoolRequest\x12\x17\n" +
	"\afund_id\x18\x01 \x01(\tR\x06fundId\x12\x16\n" +
	"\x06amount\x18\x02 \x01(\tR\x06amount\x12\x1f\n" +
	"\vpool_choice\x18\x03 \x01(\tR\n" +
	"poolChoice\x12\x1d\n" +
	"\n" +
	"pool_token\x18\x04 \x01(\tR\tpoolToken\"\x11\n" +
	"\x0fBuyPoolResponse\"\x82\x01\n" +
	"\x0fSellPoolRequest\x12\x17\n" +
	"\afund_id\x18\x01 \x01(\tR\x06fundId\x12\x16\n" +
	"\x06amount\x18\x02 \x01(\tR\x06amount\x12\x1f\n" +
	"\vpool_choice\x18\x03 \x01(\tR\n" +
	"poolChoice\x12\x1d\n" +
	"\n" +
	"pool_token\x18\x04 \x01(\tR\tpoolToken\"\x12\n" +
	"\x10SellPoolResponse\"k\n" +
	"\x13CompoundMintRequest\x12\x17\n" +
	"\afund_id\x18\x01 \x01(\tR\x06fundId\x12\x16\n" +
	"\x06amount\x18\x02 \x01(\tR\x06amount\x12#\n" +
	"\rwrapped_asset\x18\x03 \x01(\tR\fwrappedAsset\"\x16\n" +
	"\x14CompoundMintResponse\"x\n" +
	"\x1eCompoundRedeemByPercentRequest\x12\x17\n" +
	"\afund_id\x18\x01 \x01(\tR\x06fundId\x12\x18\n" +
	"\apercent\x18\x02 \x01(\tR\apercent\x12#\n" +
	"\rwrapped_asset\x18\x03 \x01(\tR\fwrappedAsset\"!\n" +
	"\x1fCompoundRedeemByPercentResponse\"5\n" +
	"\x1aFundManagerWithdrawRequest\x12\x17\n" +
	"\afund_id\x18\x01 \x01(\tR\x06fundId\"B\n" +
	"\x1bFundManagerWithdrawResponse\x12#\n" +
	"\rvalue_claimed\x18\x01 \x01(\tR\fvalueClaimed\".\n" +
	"\x13GetFundValueRequest\x12\x17\n" +
	"\afund_id\x18\x01 \x01(\tR\x06fundId\",\n" +
	"\x14GetFundValueResponse\x12\x14\n" +
	"\x05value\x18\x01 \x01(\tR\x05value\"L\n" +
	"\x17GetAddressProfitRequest\x12\x17\n" +
	"\afund_id\x18\x01 \x01(\tR\x06fundId\x12\x18\n" +
	"\aaddress\x18\x02 \x01(\tR\aaddress\"2\n" +
	"\x18GetAddressProfitResponse\x12\x16\n" +
	"\x06profit\x18\x01 \x01(\tR\x06profit\"/\n" +
	"\x14GetFundProfitRequest\x12\x17\n" +
	"\afund_id\x18\x01 \x01(\tR\x06fundId\"/\n" +
	"\x15GetFundProfitResponse\x12\x16\n" +
	"\x06profit\x18\x01 \x01(\tR\x06profit\"3\n" +
	"\x18GetFundManagerCutRequest\x12\x17\n" +
	"\afund_id\x18\x01 \x01(\tR\x06fundId\"|\n" +
	"\x19GetFundManagerCutResponse\x12#\n" +
	"\rremaining_cut\x18\x01 \x01(\tR\fremainingCut\x12\x1d\n" +
	"\n" +
	"fund_value\x18\x02 \x01(\tR\tfundValue\x12\x1b\n" +
	"\ttotal_cut\x18\x03 \x01(\tR\btotalCut\"6\n" +
	"\x1bGetAllTokenAddressesRequest\x12\x17\n" +
	"\afund_id\x18\x01 \x01(\tR\x06fundId\"6\n" +
	"\x1cGetAllTokenAddressesResponse\x12\x16\n" +
	"\x06assets\x18\x01 \x03(\tR\x06assets\"C\n" +
	"\x10GetSharesRequest\x12\x17\n" +
	"\afund_id\x18\x01 \x01(\tR\x06fundId\x12\x16\n" +
	"\x06holder\x18\x02 \x01(\tR\x06holder\"P\n" +
	"\x11GetSharesResponse\x12\x18\n" +
	"\abalance\x18\x01 \x01(\tR\abalance\x12!\n" +
	"\ftotal_shares\x18\x02 \x01(\tR\vtotalShares\"Z\n" +
	"\x11ListTradesRequest\x12\x17\n" +
	"\afund_id\x18\x01 \x01(\tR\x06fundId\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\x12\x16\n" +
	"\x06offset\x18\x03 \x01(\x05R\x06offset\"j\n" +
	"\x12ListTradesResponse\x123\n" +
	"\arecords\x18\x01 \x03(\v2\x19.smartfund.v1.TradeRecordR\arecords\x12\x1f\n" +
	"\vtotal_count\x18\x02 \x01(\x05R\n" +
	"totalCount\"X\n" +
	"\x15TransferSharesRequest\x12\x17\n" +
	"\afund_id\x18\x01 \x01(\tR\x06fundId\x12\x0e\n" +
	"\x02to\x18\x02 \x01(\tR\x02to\x12\x16\n" +
	"\x06shares\x18\x03 \x01(\tR\x06shares\"\x18\n" +
	"\x16TransferSharesResponse\"L\n" +
	"\x17SetWhitelistOnlyRequest\x12\x17\n" +
	"\afund_id\x18\x01 \x01(\tR\x06fundId\x12\x18\n" +
	"\aenabled\x18\x02 \x01(\bR\aenabled\"\x1a\n" +
	"\x18SetWhitelistOnlyResponse\"i\n" +
	"\x1aSetWhitelistAddressRequest\x12\x17\n" +
	"\afund_id\x18\x01 \x01(\tR\x06fundId\x12\x18\n" +
	"\aaddress\x18\x02 \x01(\tR\aaddress\x12\x18\n" +
	"\aallowed\x18\x03 \x01(\bR\aallowed\"\x1d\n" +
	"\x1bSetWhitelistAddressResponse\"Y\n" +
	"\x12RemoveAssetRequest\x12\x17\n" +
	"\afund_id\x18\x01 \x01(\tR\x06fundId\x12\x14\n" +
	"\x05asset\x18\x02 \x01(\tR\x05asset\x12\x14\n" +
	"\x05index\x18\x03 \x01(\x05R\x05index\"\x15\n" +
	"\x13RemoveAssetResponse2\xa4\x0f\n" +
	"\x10SmartFundService\x12O\n" +
	"\n" +
	"CreateFund\x12\x1f.smartfund.v1.CreateFundRequest\x1a .smartfund.v1.CreateFundResponse\x12F\n" +
	"\aGetFund\x12\x1c.smartfund.v1.GetFundRequest\x1a\x1d.smartfund.v1.GetFundResponse\x12L\n" +
	"\tListFunds\x12\x1e.smartfund.v1.ListFundsRequest\x1a\x1f.smartfund.v1.ListFundsResponse\x12F\n" +
	"\aDeposit\x12\x1c.smartfund.v1.DepositRequest\x1a\x1d.smartfund.v1.DepositResponse\x12I\n" +
	"\bWithdraw\x12\x1d.smartfund.v1.WithdrawRequest\x1a\x1e.smartfund.v1.WithdrawResponse\x12@\n" +
	"\x05Trade\x12\x1a.smartfund.v1.TradeRequest\x1a\x1b.smartfund.v1.TradeResponse\x12F\n" +
	"\aBuyPool\x12\x1c.smartfund.v1.BuyPoolRequest\x1a\x1d.smartfund.v1.BuyPoolResponse\x12I\n" +
	"\bSellPool\x12\x1d.smartfund.v1.SellPoolRequest\x1a\x1e.smartfund.v1.SellPoolResponse\x12U\n" +
	"\fCompoundMint\x12!.smartfund.v1.CompoundMintRequest\x1a\".smartfund.v1.CompoundMintResponse\x12v\n" +
	"\x17CompoundRedeemByPercent\x12,.smartfund.v1.CompoundRedeemByPercentRequest\x1a-.smartfund.v1.CompoundRedeemByPercentResponse\x12j\n" +
	"\x13FundManagerWithdraw\x12(.smartfund.v1.FundManagerWithdrawRequest\x1a).smartfund.v1.FundManagerWithdrawResponse\x12U\n" +
	"\fGetFundValue\x12!.smartfund.v1.GetFundValueRequest\x1a\".smartfund.v1.GetFundValueResponse\x12a\n" +
	"\x10GetAddressProfit\x12%.smartfund.v1.GetAddressProfitRequest\x1a&.smartfund.v1.GetAddressProfitResponse\x12X\n" +
	"\rGetFundProfit\x12\".smartfund.v1.GetFundProfitRequest\x1a#.smartfund.v1.GetFundProfitResponse\x12d\n" +
	"\x11GetFundManagerCut\x12&.smartfund.v1.GetFundManagerCutRequest\x1a'.smartfund.v1.GetFundManagerCutResponse\x12m\n" +
	"\x14GetAllTokenAddresses\x12).smartfund.v1.GetAllTokenAddressesRequest\x1a*.smartfund.v1.GetAllTokenAddressesResponse\x12L\n" +
	"\tGetShares\x12\x1e.smartfund.v1.GetSharesRequest\x1a\x1f.smartfund.v1.GetSharesResponse\x12O\n" +
	"\n" +
	"ListTrades\x12\x1f.smartfund.v1.ListTradesRequest\x1a .smartfund.v1.ListTradesResponse\x12[\n" +
	"\x0eTransferShares\x12#.smartfund.v1.TransferSharesRequest\x1a$.smartfund.v1.TransferSharesResponse\x12a\n" +
	"\x10SetWhitelistOnly\x12%.smartfund.v1.SetWhitelistOnlyRequest\x1a&.smartfund.v1.SetWhitelistOnlyResponse\x12j\n" +
	"\x13SetWhitelistAddress\x12(.smartfund.v1.SetWhitelistAddressRequest\x1a).smartfund.v1.SetWhitelistAddressResponse\x12R\n" +
	"\vRemoveAsset\x12 .smartfund.v1.RemoveAssetRequest\x1a!.smartfund.v1.RemoveAssetResponseBWZUgithub.com/blockvest/smartfund-backend/internal/adapter/grpc/smartfund/v1;smartfundv1b\x06proto3"

var (
	file_smartfund_v1_smartfund_proto_rawDescOnce sync.Once
	file_smartfund_v1_smartfund_proto_rawDescData []byte
)

func file_smartfund_v1_smartfund_proto_rawDescGZIP() []byte {
	file_smartfund_v1_smartfund_proto_rawDescOnce.Do(func() {
		file_smartfund_v1_smartfund_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_smartfund_v1_smartfund_proto_rawDesc), len(file_smartfund_v1_smartfund_proto_rawDesc)))
	})
	return file_smartfund_v1_smartfund_proto_rawDescData
}

var file_smartfund_v1_smartfund_proto_msgTypes = make([]protoimpl.MessageInfo, 46)
var file_smartfund_v1_smartfund_proto_goTypes = []any{
	(*Fund)(nil),                            // 0: smartfund.v1.Fund
	(*TradeRecord)(nil),                     // 1: smartfund.v1.TradeRecord
	(*CreateFundRequest)(nil),               // 2: smartfund.v1.CreateFundRequest
	(*CreateFundResponse)(nil),              // 3: smartfund.v1.CreateFundResponse
	(*GetFundRequest)(nil),                  // 4: smartfund.v1.GetFundRequest
	(*GetFundResponse)(nil),                 // 5: smartfund.v1.GetFundResponse
	(*ListFundsRequest)(nil),                // 6: smartfund.v1.ListFundsRequest
	(*ListFundsResponse)(nil),               // 7: smartfund.v1.ListFundsResponse
	(*DepositRequest)(nil),                  // 8: smartfund.v1.DepositRequest
	(*DepositResponse)(nil),                 // 9: smartfund.v1.DepositResponse
	(*WithdrawRequest)(nil),                 // 10: smartfund.v1.WithdrawRequest
	(*WithdrawResponse)(nil),                // 11: smartfund.v1.WithdrawResponse
	(*TradeRequest)(nil),                    // 12: smartfund.v1.TradeRequest
	(*TradeResponse)(nil),                   // 13: smartfund.v1.TradeResponse
	(*BuyPoolRequest)(nil),                  // 14: smartfund.v1.BuyPoolRequest
	(*BuyPoolResponse)(nil),                 // 15: smartfund.v1.BuyPoolResponse
	(*SellPoolRequest)(nil),                 // 16: smartfund.v1.SellPoolRequest
	(*SellPoolResponse)(nil),                // 17: smartfund.v1.SellPoolResponse
	(*CompoundMintRequest)(nil),             // 18: smartfund.v1.CompoundMintRequest
	(*CompoundMintResponse)(nil),            // 19: smartfund.v1.CompoundMintResponse
	(*CompoundRedeemByPercentRequest)(nil),  // 20: smartfund.v1.CompoundRedeemByPercentRequest
	(*CompoundRedeemByPercentResponse)(nil), // 21: smartfund.v1.CompoundRedeemByPercentResponse
	(*FundManagerWithdrawRequest)(nil),      // 22: smartfund.v1.FundManagerWithdrawRequest
	(*FundManagerWithdrawResponse)(nil),     // 23: smartfund.v1.FundManagerWithdrawResponse
	(*GetFundValueRequest)(nil),             // 24: smartfund.v1.GetFundValueRequest
	(*GetFundValueResponse)(nil),            // 25: smartfund.v1.GetFundValueResponse
	(*GetAddressProfitRequest)(nil),         // 26: smartfund.v1.GetAddressProfitRequest
	(*GetAddressProfitResponse)(nil),        // 27: smartfund.v1.GetAddressProfitResponse
	(*GetFundProfitRequest)(nil),            // 28: smartfund.v1.GetFundProfitRequest
	(*GetFundProfitResponse)(nil),           // 29: smartfund.v1.GetFundProfitResponse
	(*GetFundManagerCutRequest)(nil),        // 30: smartfund.v1.GetFundManagerCutRequest
	(*GetFundManagerCutResponse)(nil),       // 31: smartfund.v1.GetFundManagerCutResponse
	(*GetAllTokenAddressesRequest)(nil),     // 32: smartfund.v1.GetAllTokenAddressesRequest
	(*GetAllTokenAddressesResponse)(nil),    // 33: smartfund.v1.GetAllTokenAddressesResponse
	(*GetSharesRequest)(nil),                // 34: smartfund.v1.GetSharesRequest
	(*GetSharesResponse)(nil),               // 35: smartfund.v1.GetSharesResponse
	(*ListTradesRequest)(nil),               // 36: smartfund.v1.ListTradesRequest
	(*ListTradesResponse)(nil),              // 37: smartfund.v1.ListTradesResponse
	(*TransferSharesRequest)(nil),           // 38: smartfund.v1.TransferSharesRequest
	(*TransferSharesResponse)(nil),          // 39: smartfund.v1.TransferSharesResponse
	(*SetWhitelistOnlyRequest)(nil),         // 40: smartfund.v1.SetWhitelistOnlyRequest
	(*SetWhitelistOnlyResponse)(nil),        // 41: smartfund.v1.SetWhitelistOnlyResponse
	(*SetWhitelistAddressRequest)(nil),      // 42: smartfund.v1.SetWhitelistAddressRequest
	(*SetWhitelistAddressResponse)(nil),     // 43: smartfund.v1.SetWhitelistAddressResponse
	(*RemoveAssetRequest)(nil),              // 44: smartfund.v1.RemoveAssetRequest
	(*RemoveAssetResponse)(nil),             // 45: smartfund.v1.RemoveAssetResponse
	(*timestamppb.Timestamp)(nil),           // 46: google.protobuf.Timestamp
}
var file_smartfund_v1_smartfund_proto_depIdxs = []int32{
	46, // 0: smartfund.v1.Fund.created_at:type_name -> google.protobuf.Timestamp
	46, // 1: smartfund.v1.TradeRecord.executed_at:type_name -> google.protobuf.Timestamp
	0,  // 2: smartfund.v1.CreateFundResponse.fund:type_name -> smartfund.v1.Fund
	0,  // 3: smartfund.v1.GetFundResponse.fund:type_name -> smartfund.v1.Fund
	0,  // 4: smartfund.v1.ListFundsResponse.funds:type_name -> smartfund.v1.Fund
	1,  // 5: smartfund.v1.TradeResponse.record:type_name -> smartfund.v1.TradeRecord
	1,  // 6: smartfund.v1.ListTradesResponse.records:type_name -> smartfund.v1.TradeRecord
	2,  // 7: smartfund.v1.SmartFundService.CreateFund:input_type -> smartfund.v1.CreateFundRequest
	4,  // 8: smartfund.v1.SmartFundService.GetFund:input_type -> smartfund.v1.GetFundRequest
	6,  // 9: smartfund.v1.SmartFundService.ListFunds:input_type -> smartfund.v1.ListFundsRequest
	8,  // 10: smartfund.v1.SmartFundService.Deposit:input_type -> smartfund.v1.DepositRequest
	10, // 11: smartfund.v1.SmartFundService.Withdraw:input_type -> smartfund.v1.WithdrawRequest
	12, // 12: smartfund.v1.SmartFundService.Trade:input_type -> smartfund.v1.TradeRequest
	14, // 13: smartfund.v1.SmartFundService.BuyPool:input_type -> smartfund.v1.BuyPoolRequest
	16, // 14: smartfund.v1.SmartFundService.SellPool:input_type -> smartfund.v1.SellPoolRequest
	18, // 15: smartfund.v1.SmartFundService.CompoundMint:input_type -> smartfund.v1.CompoundMintRequest
	20, // 16: smartfund.v1.SmartFundService.CompoundRedeemByPercent:input_type -> smartfund.v1.CompoundRedeemByPercentRequest
	22, // 17: smartfund.v1.SmartFundService.FundManagerWithdraw:input_type -> smartfund.v1.FundManagerWithdrawRequest
	24, // 18: smartfund.v1.SmartFundService.GetFundValue:input_type -> smartfund.v1.GetFundValueRequest
	26, // 19: smartfund.v1.SmartFundService.GetAddressProfit:input_type -> smartfund.v1.GetAddressProfitRequest
	28, // 20: smartfund.v1.SmartFundService.GetFundProfit:input_type -> smartfund.v1.GetFundProfitRequest
	30, // 21: smartfund.v1.SmartFundService.GetFundManagerCut:input_type -> smartfund.v1.GetFundManagerCutRequest
	32, // 22: smartfund.v1.SmartFundService.GetAllTokenAddresses:input_type -> smartfund.v1.GetAllTokenAddressesRequest
	34, // 23: smartfund.v1.SmartFundService.GetShares:input_type -> smartfund.v1.GetSharesRequest
	36, // 24: smartfund.v1.SmartFundService.ListTrades:input_type -> smartfund.v1.ListTradesRequest
	38, // 25: smartfund.v1.SmartFundService.TransferShares:input_type -> smartfund.v1.TransferSharesRequest
	40, // 26: smartfund.v1.SmartFundService.SetWhitelistOnly:input_type -> smartfund.v1.SetWhitelistOnlyRequest
	42, // 27: smartfund.v1.SmartFundService.SetWhitelistAddress:input_type -> smartfund.v1.SetWhitelistAddressRequest
	44, // 28: smartfund.v1.SmartFundService.RemoveAsset:input_type -> smartfund.v1.RemoveAssetRequest
	3,  // 29: smartfund.v1.SmartFundService.CreateFund:output_type -> smartfund.v1.CreateFundResponse
	5,  // 30: smartfund.v1.SmartFundService.GetFund:output_type -> smartfund.v1.GetFundResponse
	7,  // 31: smartfund.v1.SmartFundService.ListFunds:output_type -> smartfund.v1.ListFundsResponse
	9,  // 32: smartfund.v1.SmartFundService.Deposit:output_type -> smartfund.v1.DepositResponse
	11, // 33: smartfund.v1.SmartFundService.Withdraw:output_type -> smartfund.v1.WithdrawResponse
	13, // 34: smartfund.v1.SmartFundService.Trade:output_type -> smartfund.v1.TradeResponse
	15, // 35: smartfund.v1.SmartFundService.BuyPool:output_type -> smartfund.v1.BuyPoolResponse
	17, // 36: smartfund.v1.SmartFundService.SellPool:output_type -> smartfund.v1.SellPoolResponse
	19, // 37: smartfund.v1.SmartFundService.CompoundMint:output_type -> smartfund.v1.CompoundMintResponse
	21, // 38: smartfund.v1.SmartFundService.CompoundRedeemByPercent:output_type -> smartfund.v1.CompoundRedeemByPercentResponse
	23, // 39: smartfund.v1.SmartFundService.FundManagerWithdraw:output_type -> smartfund.v1.FundManagerWithdrawResponse
	25, // 40: smartfund.v1.SmartFundService.GetFundValue:output_type -> smartfund.v1.GetFundValueResponse
	27, // 41: smartfund.v1.SmartFundService.GetAddressProfit:output_type -> smartfund.v1.GetAddressProfitResponse
	29, // 42: smartfund.v1.SmartFundService.GetFundProfit:output_type -> smartfund.v1.GetFundProfitResponse
	31, // 43: smartfund.v1.SmartFundService.GetFundManagerCut:output_type -> smartfund.v1.GetFundManagerCutResponse
	33, // 44: smartfund.v1.SmartFundService.GetAllTokenAddresses:output_type -> smartfund.v1.GetAllTokenAddressesResponse
	35, // 45: smartfund.v1.SmartFundService.GetShares:output_type -> smartfund.v1.GetSharesResponse
	37, // 46: smartfund.v1.SmartFundService.ListTrades:output_type -> smartfund.v1.ListTradesResponse
	39, // 47: smartfund.v1.SmartFundService.TransferShares:output_type -> smartfund.v1.TransferSharesResponse
	41, // 48: smartfund.v1.SmartFundService.SetWhitelistOnly:output_type -> smartfund.v1.SetWhitelistOnlyResponse
	43, // 49: smartfund.v1.SmartFundService.SetWhitelistAddress:output_type -> smartfund.v1.SetWhitelistAddressResponse
	45, // 50: smartfund.v1.SmartFundService.RemoveAsset:output_type -> smartfund.v1.RemoveAssetResponse
	29, // [29:51] is the sub-list for method output_type
	7,  // [7:29] is the sub-list for method input_type
	7,  // [7:7] is the sub-list for extension type_name
	7,  // [7:7] is the sub-list for extension extendee
	0,  // [0:7] is the sub-list for field type_name
}

func init() { file_smartfund_v1_smartfund_proto_init() }
func file_smartfund_v1_smartfund_proto_init() {
	if File_smartfund_v1_smartfund_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_smartfund_v1_smartfund_proto_rawDesc), len(file_smartfund_v1_smartfund_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   46,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_smartfund_v1_smartfund_proto_goTypes,
		DependencyIndexes: file_smartfund_v1_smartfund_proto_depIdxs,
		MessageInfos:      file_smartfund_v1_smartfund_proto_msgTypes,
	}.Build()
	File_smartfund_v1_smartfund_proto = out.File
	file_smartfund_v1_smartfund_proto_goTypes = nil
	file_smartfund_v1_smartfund_proto_depIdxs = nil
}
