package gateway

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"time"

	"payoo.app/payment/callback"
	"payoo.app/payment/model"
	"payoo.app/payment/provider"
	"payoo.app/payment/signing"
	"payoo.app/payment/workflow"
)

const (
	vnPayVersion     = "2.1.0"
	vnPayCommand     = "pay"
	vnPayOrderType   = "billpayment"
	vnPayOrderPrefix = "PAYOO"
	vnPayPaidCode    = "00"
	vnPayDateLayout  = "20060102150405"
	vnPayDefaultIP   = "127.0.0.1"
)

// vnp_Amount is in hundredths of a dong.
const vnPayAmountScale = 100

// CreateVNPayPayment signs a redirect to the VNPay payment page. VNPay is not
// called; the customer's browser carries the request.
func (b *business) CreateVNPayPayment(ctx context.Context, req *model.VNPayPaymentRequest) (*model.VNPayPayment, error) {
	if req.Amount > math.MaxInt64/vnPayAmountScale {
		return nil, model.ValidationError("amount is too large")
	}
	secret, err := b.registry.ResolveSecret(provider.VNPay)
	if err != nil {
		return nil, configurationFailure(provider.VNPay, err)
	}
	tmnCode, err := b.registry.ResolveCredential(provider.VNPay, provider.CredTmnCode)
	if err != nil {
		return nil, configurationFailure(provider.VNPay, err)
	}
	endpoint, err := b.registry.ResolveEndpoint(provider.VNPay, provider.OpVNPayPay)
	if err != nil {
		return nil, configurationFailure(provider.VNPay, err)
	}
	alg, err := b.registry.Algorithm(provider.VNPay)
	if err != nil {
		return nil, configurationFailure(provider.VNPay, err)
	}

	now := b.now().In(vietnamTime)
	expiresAt := now.Add(workflow.DefaultOrderExpiry)
	txnRef := fmt.Sprintf("%s%d", vnPayOrderPrefix, now.UnixMilli())

	info := req.Description
	if info == "" {
		info = "Thanh toan hoa don " + req.BillCode
	}
	ip := req.ClientIP
	if ip == "" {
		ip = vnPayDefaultIP
	}

	params := url.Values{
		"vnp_Version":    {vnPayVersion},
		"vnp_Command":    {vnPayCommand},
		"vnp_TmnCode":    {tmnCode},
		"vnp_Amount":     {strconv.FormatInt(req.Amount*vnPayAmountScale, 10)},
		"vnp_CurrCode":   {"VND"},
		"vnp_TxnRef":     {txnRef},
		"vnp_OrderInfo":  {info},
		"vnp_OrderType":  {vnPayOrderType},
		"vnp_Locale":     {"vn"},
		"vnp_ReturnUrl":  {b.settings.VNPayReturnURL},
		"vnp_IpAddr":     {ip},
		"vnp_CreateDate": {now.Format(vnPayDateLayout)},
		"vnp_ExpireDate": {expiresAt.Format(vnPayDateLayout)},
	}
	if req.BankCode != "" {
		params.Set("vnp_BankCode", req.BankCode)
	}

	canonical, err := signing.VNPay(params)
	if err != nil {
		return nil, configurationFailure(provider.VNPay, err)
	}
	enc, err := b.registry.Encoding(provider.VNPay)
	if err != nil {
		return nil, configurationFailure(provider.VNPay, err)
	}
	hash, err := signing.SignWith(alg, canonical, secret, enc)
	if err != nil {
		return nil, configurationFailure(provider.VNPay, err)
	}

	if err := b.recordOrder(ctx, model.GatewayVNPay, txnRef, req.BillCode, req.Amount); err != nil {
		return nil, err
	}

	return &model.VNPayPayment{
		OrderID:    txnRef,
		Amount:     req.Amount,
		PaymentURL: endpoint + "?" + canonical + "&" + signing.VNPaySecureHash + "=" + hash,
		ExpiresAt:  expiresAt.Format(time.RFC3339),
	}, nil
}

// HandleVNPayCallback must only see IPNs whose secure hash was verified.
func (b *business) HandleVNPayCallback(ctx context.Context, payload callback.Payload) (*model.CallbackOutcome, error) {
	txnRef := payload.Value("vnp_TxnRef")
	transNo := payload.Value("vnp_TransactionNo")
	if txnRef == "" || transNo == "" {
		return nil, model.ValidationError("vnp_TxnRef and vnp_TransactionNo are required")
	}

	scaled, err := callbackAmount(payload.Value("vnp_Amount"))
	if err != nil {
		return nil, err
	}
	if scaled%vnPayAmountScale != 0 {
		return nil, model.ValidationError("invalid callback amount")
	}

	responseCode := payload.Value("vnp_ResponseCode")
	status, hasStatus := payload.Get("vnp_TransactionStatus")
	paid := responseCode == vnPayPaidCode && (!hasStatus || status == vnPayPaidCode)

	return b.recordCallback(ctx, model.CallbackEvent{
		Gateway:         model.GatewayVNPay,
		OrderID:         txnRef,
		Amount:          scaled / vnPayAmountScale,
		ProviderTransID: transNo,
		ResultCode:      responseCode,
		Success:         paid,
	})
}
