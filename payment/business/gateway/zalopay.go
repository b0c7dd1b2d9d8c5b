package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"payoo.app/payment/callback"
	"payoo.app/payment/model"
	"payoo.app/payment/provider"
	"payoo.app/payment/signing"
	"payoo.app/payment/transport"
)

const (
	zaloPayEmbedData = "{}"
	zaloPayBankCode  = "zalopayapp"
	zaloPayOK        = 1
)

// app_trans_id must start with the order date in Vietnam time.
var vietnamTime = time.FixedZone("ICT", 7*60*60)

type zaloPayItem struct {
	ItemID       string `json:"itemid"`
	ItemName     string `json:"itemname"`
	ItemPrice    int64  `json:"itemprice"`
	ItemQuantity int    `json:"itemquantity"`
}

type zaloPayCreateResponse struct {
	ReturnCode    int    `json:"return_code"`
	ReturnMessage string `json:"return_message"`
	OrderURL      string `json:"order_url"`
	ZPTransToken  string `json:"zp_trans_token"`
}

type zaloPayCallbackData struct {
	AppID      json.Number `json:"app_id"`
	AppTransID string      `json:"app_trans_id"`
	ZPTransID  json.Number `json:"zp_trans_id"`
	Amount     json.Number `json:"amount"`
}

// CreateZaloPayOrder creates an order on ZaloPay and records it as pending.
// app_trans_id is prefixed with the Vietnam date.
func (b *business) CreateZaloPayOrder(ctx context.Context, req *model.WalletPaymentRequest) (*model.ZaloPayOrder, error) {
	key1, err := b.registry.ResolveSecret(provider.ZaloPay)
	if err != nil {
		return nil, configurationFailure(provider.ZaloPay, err)
	}
	appID, err := b.registry.ResolveCredential(provider.ZaloPay, provider.CredAppID)
	if err != nil {
		return nil, configurationFailure(provider.ZaloPay, err)
	}
	endpoint, err := b.registry.ResolveEndpoint(provider.ZaloPay, provider.OpZaloPayCreate)
	if err != nil {
		return nil, configurationFailure(provider.ZaloPay, err)
	}

	now := b.now()
	ms := now.UnixMilli()
	appTransID := fmt.Sprintf("%s_%d", now.In(vietnamTime).Format("060102"), ms)
	appUser := fmt.Sprintf("user_%d", ms)
	appTime := strconv.FormatInt(ms, 10)
	amount := strconv.FormatInt(req.Amount, 10)

	item, err := json.Marshal([]zaloPayItem{{
		ItemID:       req.BillCode,
		ItemName:     "Hoa don",
		ItemPrice:    req.Amount,
		ItemQuantity: 1,
	}})
	if err != nil {
		return nil, internalFailure("failed to encode ZaloPay item", err, "bill_code", req.BillCode)
	}

	raw, err := signing.ZaloPayCreate(signing.ZaloPayCreateParams{
		AppID:      appID,
		AppTransID: appTransID,
		AppUser:    appUser,
		Amount:     amount,
		AppTime:    appTime,
		EmbedData:  zaloPayEmbedData,
		Item:       string(item),
	})
	if err != nil {
		return nil, configurationFailure(provider.ZaloPay, err)
	}
	mac, err := b.sign(provider.ZaloPay, raw, key1)
	if err != nil {
		return nil, configurationFailure(provider.ZaloPay, err)
	}

	description := req.Description
	if description == "" {
		description = "Thanh toan hoa don " + req.BillCode
	}
	form := url.Values{
		"app_id":       {appID},
		"app_trans_id": {appTransID},
		"app_user":     {appUser},
		"app_time":     {appTime},
		"amount":       {amount},
		"embed_data":   {zaloPayEmbedData},
		"item":         {string(item)},
		"description":  {description},
		"bank_code":    {zaloPayBankCode},
		"callback_url": {b.settings.ZaloPayCallbackURL},
		"mac":          {mac},
	}

	resp, err := b.caller.Do(ctx, transport.FormRequest(endpoint, form))
	if err != nil {
		return nil, upstreamFailure(provider.ZaloPay, err)
	}

	var out zaloPayCreateResponse
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return nil, upstreamFailure(provider.ZaloPay, fmt.Errorf("decode create response: %w", err))
	}
	if out.ReturnCode != zaloPayOK {
		return nil, upstreamFailure(provider.ZaloPay, fmt.Errorf("create rejected with return code %d: %s", out.ReturnCode, out.ReturnMessage))
	}

	if err := b.recordOrder(ctx, model.GatewayZaloPay, appTransID, req.BillCode, req.Amount); err != nil {
		return nil, err
	}

	return &model.ZaloPayOrder{
		AppTransID:    appTransID,
		ReturnCode:    out.ReturnCode,
		ReturnMessage: out.ReturnMessage,
		OrderURL:      out.OrderURL,
		ZPTransToken:  out.ZPTransToken,
	}, nil
}

// HandleZaloPayCallback must only see callbacks whose MAC was verified. ZaloPay
// calls back for successful payments only.
func (b *business) HandleZaloPayCallback(ctx context.Context, payload callback.Payload) (*model.CallbackOutcome, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(payload.Value("data"))))
	dec.UseNumber()

	var data zaloPayCallbackData
	if err := dec.Decode(&data); err != nil {
		return nil, model.ValidationError("invalid callback data")
	}
	if data.AppTransID == "" || data.ZPTransID == "" {
		return nil, model.ValidationError("app_trans_id and zp_trans_id are required")
	}

	amount, err := callbackAmount(data.Amount.String())
	if err != nil {
		return nil, err
	}

	return b.recordCallback(ctx, model.CallbackEvent{
		Gateway:         model.GatewayZaloPay,
		OrderID:         data.AppTransID,
		Amount:          amount,
		ProviderTransID: data.ZPTransID.String(),
		ResultCode:      strconv.Itoa(zaloPayOK),
		Success:         true,
	})
}
