package workflow

import (
	"context"

	"encore.dev/beta/errs"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"payoo.app/payment/model"
)

const ErrTypeIllegalTransition = "ILLEGAL_ORDER_TRANSITION"

// OrderTransitioner changes the status of a gateway order.
type OrderTransitioner interface {
	Transition(ctx context.Context, orderID string, to model.OrderStatus) (bool, error)
}

type ActivityDependencies struct {
	Orders OrderTransitioner
}

var activityDeps *ActivityDependencies

func SetActivityDependencies(orders OrderTransitioner) {
	activityDeps = &ActivityDependencies{
		Orders: orders,
	}
}

// RecordOrderOutcomeActivity marks the order paid or failed.
func RecordOrderOutcomeActivity(ctx context.Context, orderID string, paid bool) error {
	to := model.OrderStatusFailed
	if paid {
		to = model.OrderStatusPaid
	}
	return transitionOrder(ctx, orderID, to)
}

// ExpireOrderActivity marks an order that never received its callback as expired.
func ExpireOrderActivity(ctx context.Context, orderID string) error {
	return transitionOrder(ctx, orderID, model.OrderStatusExpired)
}

func transitionOrder(ctx context.Context, orderID string, to model.OrderStatus) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Transitioning order", "orderID", orderID, "to", to)

	if activityDeps == nil || activityDeps.Orders == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	changed, err := activityDeps.Orders.Transition(ctx, orderID, to)
	if err != nil {
		switch errs.Code(err) {
		case errs.FailedPrecondition, errs.NotFound, errs.InvalidArgument:
			logger.Warn("Order transition rejected", "orderID", orderID, "to", to, "error", err)
			return temporal.NewNonRetryableApplicationError("order transition rejected", ErrTypeIllegalTransition, err)
		}
		logger.Error("Failed to transition order", "orderID", orderID, "to", to, "error", err)
		return err
	}

	logger.Info("Order transitioned", "orderID", orderID, "to", to, "changed", changed)
	return nil
}
