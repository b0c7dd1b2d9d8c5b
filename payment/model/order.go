package model

import "time"

type Gateway string

const (
	GatewayMoMo    Gateway = "momo"
	GatewayZaloPay Gateway = "zalopay"
	GatewayVNPay   Gateway = "vnpay"
)

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusPaid    OrderStatus = "paid"
	OrderStatusFailed  OrderStatus = "failed"
	OrderStatusExpired OrderStatus = "expired"
)

// Terminal reports whether the status can no longer change.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusPaid || s == OrderStatusFailed || s == OrderStatusExpired
}

// GatewayOrder is a wallet payment awaiting its callback.
type GatewayOrder struct {
	OrderID    string
	Gateway    Gateway
	Amount     int64
	BillCode   string
	Status     OrderStatus
	WorkflowID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CallbackEvent is one verified gateway callback. Amount is in dong.
type CallbackEvent struct {
	Gateway         Gateway
	OrderID         string
	Amount          int64
	ProviderTransID string
	ResultCode      string
	Success         bool
	ReceivedAt      time.Time
}

// WalletPaymentRequest is the body of the MoMo and ZaloPay create endpoints.
type WalletPaymentRequest struct {
	BillCode     string `json:"billCode"`
	Amount       int64  `json:"amount"`
	CustomerName string `json:"customerName"`
	Description  string `json:"description"`
}

type MoMoPayment struct {
	PartnerCode string `json:"partnerCode"`
	OrderID     string `json:"orderId"`
	RequestID   string `json:"requestId"`
	Amount      int64  `json:"amount"`
	ResultCode  int    `json:"resultCode"`
	Message     string `json:"message"`
	PayURL      string `json:"payUrl,omitempty"`
	Deeplink    string `json:"deeplink,omitempty"`
	QRCodeURL   string `json:"qrCodeUrl,omitempty"`
}

type ZaloPayOrder struct {
	AppTransID    string `json:"appTransId"`
	ReturnCode    int    `json:"returnCode"`
	ReturnMessage string `json:"returnMessage"`
	OrderURL      string `json:"orderUrl,omitempty"`
	ZPTransToken  string `json:"zpTransToken,omitempty"`
}

// VNPayPaymentRequest asks for a VNPay payment URL. BankCode preselects the
// customer's bank and may be empty. ClientIP is sent to VNPay as vnp_IpAddr.
type VNPayPaymentRequest struct {
	BillCode    string `json:"billCode"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	BankCode    string `json:"bankCode,omitempty"`
	ClientIP    string `json:"-"`
}

type VNPayPayment struct {
	OrderID    string `json:"orderId"`
	Amount     int64  `json:"amount"`
	PaymentURL string `json:"paymentUrl"`
	ExpiresAt  string `json:"expiresAt"`
}

type BIDVTransferRequest struct {
	FromAccount string `json:"fromAccount"`
	ToAccount   string `json:"toAccount"`
	Amount      int64  `json:"amount"`
	Content     string `json:"content"`
	BankCode    string `json:"bankCode"`
}

type BIDVTransferResult struct {
	RequestID     string `json:"requestId"`
	TransactionID string `json:"transactionId,omitempty"`
	Status        string `json:"status"`
	Message       string `json:"message,omitempty"`
}

type BIDVAccount struct {
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName,omitempty"`
	Balance       int64  `json:"balance"`
	Currency      string `json:"currency,omitempty"`
	Status        string `json:"status,omitempty"`
}

// CallbackOutcome is what a verified wallet callback means for its order.
// Duplicate is set when the same provider transaction was already recorded.
type CallbackOutcome struct {
	Gateway         Gateway
	OrderID         string
	WorkflowID      string
	ProviderTransID string
	ResultCode      string
	Paid            bool
	Duplicate       bool
}

// ZaloPayCallbackAck is the body ZaloPay expects in answer to a callback.
type ZaloPayCallbackAck struct {
	ReturnCode    int    `json:"return_code"`
	ReturnMessage string `json:"return_message"`
}

// VNPay IPN answer codes.
const (
	VNPayAckConfirmed        = "00"
	VNPayAckOrderNotFound    = "01"
	VNPayAckAlreadyConfirmed = "02"
	VNPayAckInvalidAmount    = "04"
	VNPayAckInvalidSignature = "97"
	VNPayAckUnknownError     = "99"
)

// VNPayIPNAck is the body VNPay expects in answer to an IPN.
type VNPayIPNAck struct {
	RspCode string `json:"RspCode"`
	Message string `json:"Message"`
}
