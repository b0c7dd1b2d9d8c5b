package card

import (
	"context"
	"time"

	"payoo.app/payment/model"
	"payoo.app/payment/provider"
	"payoo.app/payment/store"
	"payoo.app/payment/txid"
)

// Business charges cards and reports on the transactions it recorded.
type Business interface {
	// ProcessPayment validates the card, then signs and stores the transaction.
	// Only the masked number is stored.
	ProcessPayment(ctx context.Context, req *model.PaymentRequest) (*model.PaymentResult, error)
	GetStatus(ctx context.Context, transactionID string) (*model.PaymentStatusResult, error)
}

type business struct {
	registry *provider.Registry
	repo     store.Querier
	ids      *txid.Generator
	now      func() time.Time
}

// NewCardBusiness stores transactions in repo under ids drawn from ids.
func NewCardBusiness(registry *provider.Registry, repo store.Querier, ids *txid.Generator) Business {
	return &business{
		registry: registry,
		repo:     repo,
		ids:      ids,
		now:      time.Now,
	}
}
