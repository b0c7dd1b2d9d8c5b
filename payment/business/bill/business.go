package bill

import (
	"context"
	"time"

	"payoo.app/payment/model"
	"payoo.app/payment/provider"
	"payoo.app/payment/transport"
)

// Business answers bill queries against the provider registry.
type Business interface {
	// Lookup never fails: when the provider cannot answer, the record is synthetic.
	Lookup(ctx context.Context, query model.BillQuery) *model.BillRecord
	// Providers lists who issues bills of billType. It is empty for an unknown type.
	Providers(billType model.BillType) []model.BillProvider
}

type business struct {
	registry *provider.Registry
	caller   transport.Caller
	now      func() time.Time
}

// NewBillBusiness queries providers through caller.
func NewBillBusiness(registry *provider.Registry, caller transport.Caller) Business {
	return &business{
		registry: registry,
		caller:   caller,
		now:      time.Now,
	}
}
