package payment

import (
	"context"

	"encore.dev/rlog"

	"payoo.app/payment/model"
)

// ProcessPaymentRequest carries raw card data. Neither the full number nor the
// CVV is stored or logged.
type ProcessPaymentRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	CardNumber   string `json:"cardNumber" validate:"required,max=32"`
	CardHolder   string `json:"cardHolder" validate:"omitempty,max=100"`
	ExpMonth     string `json:"expMonth" validate:"required,max=2"`
	ExpYear      string `json:"expYear" validate:"required,max=4"`
	CVV          string `json:"cvv" validate:"required,max=4"`
	Amount       int64  `json:"amount" validate:"gt=0"`
	CustomerCode string `json:"customerCode" validate:"required,max=64"`
	BillType     string `json:"billType" validate:"required,max=32"`
}

//encore:api public path=/api/payments/process method=POST tag:idempotency
func (s *Service) ProcessPayment(ctx context.Context, req *ProcessPaymentRequest) (*model.PaymentResult, error) {
	result, err := s.cards.ProcessPayment(ctx, &model.PaymentRequest{
		CardNumber:   req.CardNumber,
		CardHolder:   req.CardHolder,
		ExpMonth:     req.ExpMonth,
		ExpYear:      req.ExpYear,
		CVV:          req.CVV,
		Amount:       req.Amount,
		CustomerCode: req.CustomerCode,
		BillType:     model.BillType(req.BillType),
	})
	if err != nil {
		rlog.Error("failed to process payment", "error", err, "customer_code", req.CustomerCode)
		return nil, err
	}
	return result, nil
}

// Validate checks the request shape. Card rules are applied by the processor
// so that each failure keeps its own message.
func (r *ProcessPaymentRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return model.ValidationError(err.Error())
	}
	return nil
}
