package gateway

import (
	"context"
	"strconv"

	"encore.dev/rlog"
	"github.com/jackc/pgx/v5/pgtype"

	"payoo.app/payment/model"
	"payoo.app/payment/store"
	"payoo.app/payment/workflow"
)

func (b *business) recordOrder(ctx context.Context, gateway model.Gateway, orderID, billCode string, amount int64) error {
	_, err := b.repo.CreateGatewayOrder(ctx, store.CreateGatewayOrderParams{
		OrderID:    orderID,
		Gateway:    string(gateway),
		Amount:     amount,
		BillCode:   billCode,
		Status:     string(model.OrderStatusPending),
		WorkflowID: pgtype.Text{String: workflow.WorkflowID(string(gateway), orderID), Valid: true},
	})
	if err != nil {
		return internalFailure("failed to record gateway order", err, "gateway", gateway, "order_id", orderID)
	}
	return nil
}

// recordCallback stores a verified callback. The callback must come from the
// order's gateway and carry the order's amount. A replay of an already recorded
// provider transaction is reported as Duplicate and changes nothing.
func (b *business) recordCallback(ctx context.Context, event model.CallbackEvent) (*model.CallbackOutcome, error) {
	order, err := b.repo.GetGatewayOrder(ctx, event.OrderID)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, model.NotFoundError("order not found")
		}
		return nil, internalFailure("failed to get gateway order", err, "order_id", event.OrderID)
	}
	if order.Gateway != string(event.Gateway) {
		rlog.Warn("callback gateway does not match order",
			"gateway", event.Gateway, "order_gateway", order.Gateway, "order_id", order.OrderID)
		return nil, model.ValidationError("callback does not match order")
	}
	if order.Amount != event.Amount {
		rlog.Warn("callback amount does not match order",
			"gateway", event.Gateway, "order_id", order.OrderID, "amount", event.Amount, "order_amount", order.Amount)
		return nil, model.AmountMismatchError()
	}

	outcome := &model.CallbackOutcome{
		Gateway:         event.Gateway,
		OrderID:         order.OrderID,
		WorkflowID:      order.WorkflowID.String,
		ProviderTransID: event.ProviderTransID,
		ResultCode:      event.ResultCode,
		Paid:            event.Success,
	}
	if !order.WorkflowID.Valid {
		outcome.WorkflowID = workflow.WorkflowID(order.Gateway, order.OrderID)
	}

	_, err = b.repo.CreateCallbackEvent(ctx, store.CreateCallbackEventParams{
		Gateway:         string(event.Gateway),
		OrderID:         event.OrderID,
		ProviderTransID: event.ProviderTransID,
		ResultCode:      event.ResultCode,
		Success:         event.Success,
	})
	if err != nil {
		if !store.IsUniqueViolation(err) {
			return nil, internalFailure("failed to record callback", err, "gateway", event.Gateway, "order_id", event.OrderID)
		}
		rlog.Info("duplicate callback ignored", "gateway", event.Gateway, "order_id", event.OrderID, "provider_trans_id", event.ProviderTransID)
		outcome.Duplicate = true
	}
	return outcome, nil
}

// callbackAmount parses the whole-dong amount a gateway reports in a callback.
func callbackAmount(raw string) (int64, error) {
	amount, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || amount < 0 {
		return 0, model.ValidationError("invalid callback amount")
	}
	return amount, nil
}
