package payment

import (
	"context"
	"net/http"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"payoo.app/payment/model"
)

//encore:api public path=/api/payments/momo/create method=POST tag:idempotency
func (s *Service) CreateMoMoPayment(ctx context.Context, req *CreateWalletPaymentRequest) (*model.MoMoPayment, error) {
	payment, err := s.gateways.CreateMoMoPayment(ctx, req.toModel())
	if err != nil {
		rlog.Error("failed to create MoMo payment", "error", err, "bill_code", req.BillCode)
		return nil, err
	}

	if wfErr := s.startOrderWorkflow(ctx, model.GatewayMoMo, payment.OrderID); wfErr != nil {
		// The order stays pending; a late callback is still recorded.
		rlog.Error("workflow start issue", "order_id", payment.OrderID, "error", wfErr)
	}
	return payment, nil
}

// MoMoCallback receives MoMo payment notifications (IPN).
//
//encore:api public raw path=/api/payments/momo/callback method=POST
func (s *Service) MoMoCallback(w http.ResponseWriter, req *http.Request) {
	payload, ok := s.readCallback(w, req, model.GatewayMoMo)
	if !ok {
		return
	}

	outcome, err := s.gateways.HandleMoMoCallback(req.Context(), payload)
	if err != nil {
		rlog.Error("failed to handle MoMo callback", "error", err, "order_id", payload.Value("orderId"))
		errs.HTTPError(w, err)
		return
	}

	s.signalCallback(outcome)
	w.WriteHeader(http.StatusNoContent)
}
