package domain

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.dev/beta/errs"

	"payoo.app/payment/model"
	"payoo.app/payment/store"
)

// TxBeginner starts database transactions. *pgxpool.Pool satisfies it.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// OrderStateMachine owns every status change of a gateway order. Each change runs
// in its own transaction with the order row locked.
type OrderStateMachine struct {
	db      TxBeginner
	queries func(tx pgx.Tx) store.Querier
}

func NewOrderStateMachine(db *pgxpool.Pool, queries *store.Queries) *OrderStateMachine {
	return &OrderStateMachine{
		db: db,
		queries: func(tx pgx.Tx) store.Querier {
			return queries.WithTx(tx)
		},
	}
}

// Transition moves the order to status to. It reports false when the order was
// already in that status.
func (sm *OrderStateMachine) Transition(ctx context.Context, orderID string, to model.OrderStatus) (bool, error) {
	changed := false
	err := sm.transitionWithLock(ctx, orderID, func(q store.Querier, current store.GatewayOrder) error {
		from := model.OrderStatus(current.Status)
		noop, err := checkTransition(from, to)
		if err != nil || noop {
			return err
		}

		if _, err := q.UpdateGatewayOrderStatus(ctx, store.UpdateGatewayOrderStatusParams{
			OrderID: orderID,
			Status:  string(to),
		}); err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to update order status"}
		}
		changed = true
		return nil
	})
	return changed, err
}

func (sm *OrderStateMachine) transitionWithLock(ctx context.Context, orderID string, fn func(store.Querier, store.GatewayOrder) error) error {
	tx, err := sm.db.Begin(ctx)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to start transaction"}
	}
	defer tx.Rollback(ctx)

	q := sm.queries(tx)
	current, err := q.GetGatewayOrderForUpdate(ctx, orderID)
	if err != nil {
		if store.IsNotFound(err) {
			return &errs.Error{Code: errs.NotFound, Message: "order not found"}
		}
		return &errs.Error{Code: errs.Internal, Message: "failed to lock order for status transition"}
	}

	if err := fn(q, current); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to commit status transition"}
	}
	return nil
}

// checkTransition allows pending -> paid|failed|expired only. Repeating a
// transition into the current terminal status is a no-op.
func checkTransition(from, to model.OrderStatus) (noop bool, err error) {
	if !to.Terminal() {
		return false, &errs.Error{
			Code:    errs.InvalidArgument,
			Message: fmt.Sprintf("%s is not a target order status", to),
		}
	}
	if from == to {
		return true, nil
	}
	if from != model.OrderStatusPending {
		return false, &errs.Error{
			Code:    errs.FailedPrecondition,
			Message: fmt.Sprintf("order is already %s", from),
		}
	}
	return false, nil
}
