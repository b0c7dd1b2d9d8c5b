package workflow

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

const DefaultOrderExpiry = 15 * time.Minute

type GatewayOrderParams struct {
	OrderID   string        `json:"order_id"`
	Gateway   string        `json:"gateway"`
	ExpiresIn time.Duration `json:"expires_in"`
}

// WorkflowID is the id of the workflow that tracks orderID.
func WorkflowID(gateway, orderID string) string {
	return fmt.Sprintf("order-%s-%s", gateway, orderID)
}

// GatewayOrder waits for the callback of a wallet order and records its outcome,
// or expires the order when no callback arrives in time.
func GatewayOrder(ctx workflow.Context, params GatewayOrderParams) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting gateway order workflow", "orderID", params.OrderID, "gateway", params.Gateway, "expiresIn", params.ExpiresIn)

	expiresIn := params.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = DefaultOrderExpiry
	}

	timerCtx, cancelTimer := workflow.WithCancel(ctx)
	timer := workflow.NewTimer(timerCtx, expiresIn)
	callbackCh := workflow.GetSignalChannel(ctx, CallbackReceivedSignalName)

	var outcomeErr error
	selector := workflow.NewSelector(ctx)

	selector.AddReceive(callbackCh, func(c workflow.ReceiveChannel, more bool) {
		var signal CallbackReceivedSignal
		c.Receive(ctx, &signal)
		cancelTimer()
		logger.Info("Received callback", "orderID", params.OrderID, "paid", signal.Paid, "resultCode", signal.ResultCode)

		outcomeErr = recordOutcome(ctx, params.OrderID, signal.Paid)
		if outcomeErr != nil {
			logger.Error("Failed to record order outcome", "orderID", params.OrderID, "error", outcomeErr)
		}
	})

	selector.AddFuture(timer, func(f workflow.Future) {
		if err := f.Get(ctx, nil); err != nil {
			outcomeErr = err
			return
		}
		logger.Info("Order expired without callback", "orderID", params.OrderID)

		outcomeErr = expireOrder(ctx, params.OrderID)
		if outcomeErr != nil {
			logger.Error("Failed to expire order", "orderID", params.OrderID, "error", outcomeErr)
		}
	})

	selector.Select(ctx)

	if outcomeErr != nil {
		return outcomeErr
	}
	logger.Info("Gateway order workflow completed", "orderID", params.OrderID)
	return nil
}

func orderActivityOptions(ctx workflow.Context) workflow.Context {
	return workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:        time.Second,
			BackoffCoefficient:     2.0,
			MaximumInterval:        10 * time.Second,
			MaximumAttempts:        5,
			NonRetryableErrorTypes: []string{ErrTypeIllegalTransition},
		},
	})
}

func recordOutcome(ctx workflow.Context, orderID string, paid bool) error {
	return workflow.ExecuteActivity(orderActivityOptions(ctx), RecordOrderOutcomeActivity, orderID, paid).Get(ctx, nil)
}

func expireOrder(ctx workflow.Context, orderID string) error {
	return workflow.ExecuteActivity(orderActivityOptions(ctx), ExpireOrderActivity, orderID).Get(ctx, nil)
}
