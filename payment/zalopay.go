package payment

import (
	"context"
	"net/http"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"payoo.app/payment/model"
)

//encore:api public path=/api/payments/zalopay/create method=POST tag:idempotency
func (s *Service) CreateZaloPayOrder(ctx context.Context, req *CreateWalletPaymentRequest) (*model.ZaloPayOrder, error) {
	order, err := s.gateways.CreateZaloPayOrder(ctx, req.toModel())
	if err != nil {
		rlog.Error("failed to create ZaloPay order", "error", err, "bill_code", req.BillCode)
		return nil, err
	}

	if wfErr := s.startOrderWorkflow(ctx, model.GatewayZaloPay, order.AppTransID); wfErr != nil {
		rlog.Error("workflow start issue", "order_id", order.AppTransID, "error", wfErr)
	}
	return order, nil
}

//encore:api public raw path=/api/payments/zalopay/callback method=POST
func (s *Service) ZaloPayCallback(w http.ResponseWriter, req *http.Request) {
	payload, ok := s.readCallback(w, req, model.GatewayZaloPay)
	if !ok {
		return
	}

	outcome, err := s.gateways.HandleZaloPayCallback(req.Context(), payload)
	if err != nil {
		rlog.Error("failed to handle ZaloPay callback", "error", err)
		errs.HTTPError(w, err)
		return
	}

	s.signalCallback(outcome)
	writeJSON(w, http.StatusOK, model.ZaloPayCallbackAck{ReturnCode: 1, ReturnMessage: "success"})
}
