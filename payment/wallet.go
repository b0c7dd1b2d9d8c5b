package payment

import (
	"encoding/json"
	"io"
	"net/http"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"payoo.app/payment/callback"
	"payoo.app/payment/model"
)

const maxCallbackBytes = 64 << 10

// CreateWalletPaymentRequest is the body of the MoMo and ZaloPay create endpoints.
type CreateWalletPaymentRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	BillCode     string `json:"billCode" validate:"required,max=64"`
	Amount       int64  `json:"amount" validate:"gt=0"`
	CustomerName string `json:"customerName" validate:"omitempty,max=100"`
	Description  string `json:"description" validate:"omitempty,max=255"`
}

func (r *CreateWalletPaymentRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return model.ValidationError(err.Error())
	}
	return nil
}

func (r *CreateWalletPaymentRequest) toModel() *model.WalletPaymentRequest {
	return &model.WalletPaymentRequest{
		BillCode:     r.BillCode,
		Amount:       r.Amount,
		CustomerName: r.CustomerName,
		Description:  r.Description,
	}
}

// readCallback decodes an inbound callback and checks its signature. It writes
// the error response itself and reports whether the caller may go on.
func (s *Service) readCallback(w http.ResponseWriter, req *http.Request, gateway model.Gateway) (callback.Payload, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, req.Body, maxCallbackBytes))
	if err != nil {
		errs.HTTPError(w, model.ValidationError("unreadable callback body"))
		return callback.Payload{}, false
	}

	payload, err := callback.ParsePayload(body)
	if err != nil {
		rlog.Warn("malformed callback", "gateway", gateway, "error", err)
		errs.HTTPError(w, model.ValidationError("malformed callback body"))
		return callback.Payload{}, false
	}

	if !s.callbacks.Validate(payload, gateway) {
		rlog.Warn("callback signature rejected", "gateway", gateway)
		errs.HTTPError(w, model.AuthenticationError("invalid callback signature"))
		return callback.Payload{}, false
	}
	return payload, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		rlog.Error("failed to write response", "error", err)
	}
}
