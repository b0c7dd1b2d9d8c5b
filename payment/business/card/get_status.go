package card

import (
	"context"

	"encore.dev/rlog"

	"payoo.app/payment/model"
	"payoo.app/payment/store"
)

func (b *business) GetStatus(ctx context.Context, transactionID string) (*model.PaymentStatusResult, error) {
	tx, err := b.repo.GetTransaction(ctx, transactionID)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, model.NotFoundError("transaction not found")
		}
		rlog.Error("failed to get transaction", "error", err, "transaction_id", transactionID)
		return nil, model.InternalError()
	}

	return &model.PaymentStatusResult{
		TransactionID: tx.ID,
		Status:        model.PaymentStatus(tx.Status),
		Timestamp:     tx.CreatedAt.Time.Format(timestampLayout),
	}, nil
}
