package payment

import (
	"context"

	"payoo.app/payment/model"
)

//encore:api public path=/api/payments/status/:transactionId method=GET
func (s *Service) PaymentStatus(ctx context.Context, transactionId string) (*model.PaymentStatusResult, error) {
	if err := validate.Var(transactionId, "required,alphanum,max=32"); err != nil {
		return nil, model.ValidationError("invalid transaction id")
	}
	return s.cards.GetStatus(ctx, transactionId)
}
