package payment

import (
	"context"
	"net/http"
	"strings"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"payoo.app/payment/callback"
	"payoo.app/payment/model"
)

// CreateVNPayPaymentRequest asks for a signed VNPay redirect. ForwardedFor is
// the proxy chain of the customer's browser; its first entry becomes vnp_IpAddr.
type CreateVNPayPaymentRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`
	ForwardedFor   string `header:"X-Forwarded-For" json:"-"`

	BillCode    string `json:"billCode" validate:"required,max=64"`
	Amount      int64  `json:"amount" validate:"gt=0"`
	Description string `json:"description" validate:"omitempty,max=255"`
	BankCode    string `json:"bankCode" validate:"omitempty,alphanum,max=20"`
}

func (r *CreateVNPayPaymentRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return model.ValidationError(err.Error())
	}
	return nil
}

func (r *CreateVNPayPaymentRequest) toModel() *model.VNPayPaymentRequest {
	ip, _, _ := strings.Cut(r.ForwardedFor, ",")
	return &model.VNPayPaymentRequest{
		BillCode:    r.BillCode,
		Amount:      r.Amount,
		Description: r.Description,
		BankCode:    r.BankCode,
		ClientIP:    strings.TrimSpace(ip),
	}
}

//encore:api public path=/api/payments/vnpay/create method=POST tag:idempotency
func (s *Service) CreateVNPayPayment(ctx context.Context, req *CreateVNPayPaymentRequest) (*model.VNPayPayment, error) {
	payment, err := s.gateways.CreateVNPayPayment(ctx, req.toModel())
	if err != nil {
		rlog.Error("failed to create VNPay payment", "error", err, "bill_code", req.BillCode)
		return nil, err
	}

	if wfErr := s.startOrderWorkflow(ctx, model.GatewayVNPay, payment.OrderID); wfErr != nil {
		rlog.Error("workflow start issue", "order_id", payment.OrderID, "error", wfErr)
	}
	return payment, nil
}

// VNPayIPN receives VNPay payment notifications. VNPay reads the outcome from
// RspCode, so every answer is 200.
//
//encore:api public raw path=/api/payments/vnpay/ipn method=GET
func (s *Service) VNPayIPN(w http.ResponseWriter, req *http.Request) {
	payload, err := callback.PayloadFromQuery(req.URL.Query())
	if err != nil {
		rlog.Warn("malformed callback", "gateway", model.GatewayVNPay, "error", err)
		writeVNPayAck(w, model.VNPayAckUnknownError, "Invalid request")
		return
	}
	if !s.callbacks.Validate(payload, model.GatewayVNPay) {
		rlog.Warn("callback signature rejected", "gateway", model.GatewayVNPay)
		writeVNPayAck(w, model.VNPayAckInvalidSignature, "Invalid signature")
		return
	}

	outcome, err := s.gateways.HandleVNPayCallback(req.Context(), payload)
	if err != nil {
		rlog.Error("failed to handle VNPay callback", "error", err, "order_id", payload.Value("vnp_TxnRef"))
		switch {
		case errs.Code(err) == errs.NotFound:
			writeVNPayAck(w, model.VNPayAckOrderNotFound, "Order not found")
		case model.Category(err) == model.ErrAmountMismatch:
			writeVNPayAck(w, model.VNPayAckInvalidAmount, "Invalid amount")
		default:
			writeVNPayAck(w, model.VNPayAckUnknownError, "Unknown error")
		}
		return
	}

	if outcome.Duplicate {
		writeVNPayAck(w, model.VNPayAckAlreadyConfirmed, "Order already confirmed")
		return
	}
	s.signalCallback(outcome)
	writeVNPayAck(w, model.VNPayAckConfirmed, "Confirm Success")
}

func writeVNPayAck(w http.ResponseWriter, code, message string) {
	writeJSON(w, http.StatusOK, model.VNPayIPNAck{RspCode: code, Message: message})
}
