package payment

import (
	"context"
	"fmt"

	"encore.dev/rlog"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"payoo.app/payment/model"
	"payoo.app/payment/workflow"
)

// startOrderWorkflow starts the workflow that waits for the order's callback.
func (s *Service) startOrderWorkflow(ctx context.Context, gateway model.Gateway, orderID string) error {
	workflowID := workflow.WorkflowID(string(gateway), orderID)

	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: taskQueue,
	}
	params := workflow.GatewayOrderParams{
		OrderID:   orderID,
		Gateway:   string(gateway),
		ExpiresIn: workflow.DefaultOrderExpiry,
	}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.GatewayOrder, params)
	if err != nil {
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("workflow already started", "order_id", orderID, "workflow_id", workflowID)
			return nil
		}
		return fmt.Errorf("execute workflow %s: %w", workflowID, err)
	}
	return nil
}

// signalCallback hands a recorded callback to the order workflow. Replays are
// not signalled again.
func (s *Service) signalCallback(outcome *model.CallbackOutcome) {
	if outcome.Duplicate {
		return
	}
	signal := workflow.CallbackReceivedSignal{
		Paid:            outcome.Paid,
		ResultCode:      outcome.ResultCode,
		ProviderTransID: outcome.ProviderTransID,
	}
	runAsync("signal_callback", func(ctx context.Context) error {
		return s.temporal.SignalWorkflow(ctx, outcome.WorkflowID, "", workflow.CallbackReceivedSignalName, signal)
	})
}
