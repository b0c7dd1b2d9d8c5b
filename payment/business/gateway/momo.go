package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"payoo.app/payment/callback"
	"payoo.app/payment/model"
	"payoo.app/payment/provider"
	"payoo.app/payment/signing"
	"payoo.app/payment/transport"
)

const (
	moMoRequestType = "captureWallet"
	moMoOrderPrefix = "PAYOO_"
	moMoPaidCode    = "0"
)

type moMoCreateRequest struct {
	PartnerCode string `json:"partnerCode"`
	PartnerName string `json:"partnerName"`
	StoreID     string `json:"storeId"`
	RequestID   string `json:"requestId"`
	Amount      int64  `json:"amount"`
	OrderID     string `json:"orderId"`
	OrderInfo   string `json:"orderInfo"`
	RedirectURL string `json:"redirectUrl"`
	IPNURL      string `json:"ipnUrl"`
	Lang        string `json:"lang"`
	ExtraData   string `json:"extraData"`
	RequestType string `json:"requestType"`
	Signature   string `json:"signature"`
}

type moMoCreateResponse struct {
	PartnerCode string `json:"partnerCode"`
	OrderID     string `json:"orderId"`
	RequestID   string `json:"requestId"`
	Amount      int64  `json:"amount"`
	ResultCode  int    `json:"resultCode"`
	Message     string `json:"message"`
	PayURL      string `json:"payUrl"`
	Deeplink    string `json:"deeplink"`
	QRCodeURL   string `json:"qrCodeUrl"`
}

// CreateMoMoPayment opens a captureWallet payment and records the pending order.
func (b *business) CreateMoMoPayment(ctx context.Context, req *model.WalletPaymentRequest) (*model.MoMoPayment, error) {
	secret, err := b.registry.ResolveSecret(provider.MoMo)
	if err != nil {
		return nil, configurationFailure(provider.MoMo, err)
	}
	partnerCode, err := b.registry.ResolveCredential(provider.MoMo, provider.CredPartnerCode)
	if err != nil {
		return nil, configurationFailure(provider.MoMo, err)
	}
	accessKey, err := b.registry.ResolveCredential(provider.MoMo, provider.CredAccessKey)
	if err != nil {
		return nil, configurationFailure(provider.MoMo, err)
	}
	endpoint, err := b.registry.ResolveEndpoint(provider.MoMo, provider.OpMoMoCreate)
	if err != nil {
		return nil, configurationFailure(provider.MoMo, err)
	}

	body := moMoCreateRequest{
		PartnerCode: partnerCode,
		PartnerName: "Payoo Payment",
		StoreID:     "PayooStore",
		RequestID:   b.newRequestID(),
		Amount:      req.Amount,
		OrderID:     fmt.Sprintf("%s%d", moMoOrderPrefix, b.now().UnixMilli()),
		OrderInfo:   "Thanh toan hoa don qua Payoo - " + req.BillCode,
		RedirectURL: b.settings.MoMoRedirectURL,
		IPNURL:      b.settings.MoMoIPNURL,
		Lang:        "vi",
		RequestType: moMoRequestType,
	}

	raw, err := signing.MoMoCreate(signing.MoMoCreateParams{
		AccessKey:   accessKey,
		Amount:      strconv.FormatInt(body.Amount, 10),
		ExtraData:   body.ExtraData,
		IPNURL:      body.IPNURL,
		OrderID:     body.OrderID,
		OrderInfo:   body.OrderInfo,
		PartnerCode: body.PartnerCode,
		RedirectURL: body.RedirectURL,
		RequestID:   body.RequestID,
		RequestType: body.RequestType,
	})
	if err != nil {
		return nil, configurationFailure(provider.MoMo, err)
	}
	body.Signature, err = b.sign(provider.MoMo, raw, secret)
	if err != nil {
		return nil, configurationFailure(provider.MoMo, err)
	}

	httpReq, err := transport.JSONRequest(http.MethodPost, endpoint, body)
	if err != nil {
		return nil, internalFailure("failed to build MoMo request", err, "order_id", body.OrderID)
	}
	resp, err := b.caller.Do(ctx, httpReq)
	if err != nil {
		return nil, upstreamFailure(provider.MoMo, err)
	}

	var out moMoCreateResponse
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return nil, upstreamFailure(provider.MoMo, fmt.Errorf("decode create response: %w", err))
	}
	if out.ResultCode != 0 {
		return nil, upstreamFailure(provider.MoMo, fmt.Errorf("create rejected with result code %d: %s", out.ResultCode, out.Message))
	}

	if err := b.recordOrder(ctx, model.GatewayMoMo, body.OrderID, req.BillCode, req.Amount); err != nil {
		return nil, err
	}

	return &model.MoMoPayment{
		PartnerCode: out.PartnerCode,
		OrderID:     body.OrderID,
		RequestID:   body.RequestID,
		Amount:      req.Amount,
		ResultCode:  out.ResultCode,
		Message:     out.Message,
		PayURL:      out.PayURL,
		Deeplink:    out.Deeplink,
		QRCodeURL:   out.QRCodeURL,
	}, nil
}

// HandleMoMoCallback must only see notifications whose signature was verified.
func (b *business) HandleMoMoCallback(ctx context.Context, payload callback.Payload) (*model.CallbackOutcome, error) {
	orderID := payload.Value("orderId")
	transID := payload.Value("transId")
	if orderID == "" || transID == "" {
		return nil, model.ValidationError("orderId and transId are required")
	}

	amount, err := callbackAmount(payload.Value("amount"))
	if err != nil {
		return nil, err
	}

	resultCode := payload.Value("resultCode")
	return b.recordCallback(ctx, model.CallbackEvent{
		Gateway:         model.GatewayMoMo,
		OrderID:         orderID,
		Amount:          amount,
		ProviderTransID: transID,
		ResultCode:      resultCode,
		Success:         resultCode == moMoPaidCode,
	})
}

func (b *business) sign(providerID, raw string, secret signing.Secret) (string, error) {
	enc, err := b.registry.Encoding(providerID)
	if err != nil {
		return "", err
	}
	return signing.Sign(raw, secret, enc)
}
