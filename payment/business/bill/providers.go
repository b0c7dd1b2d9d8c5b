package bill

import (
	"payoo.app/payment/model"
	"payoo.app/payment/provider"
)

func (b *business) Providers(billType model.BillType) []model.BillProvider {
	op := provider.OperationKind(billType)
	if !provider.IsBillOperation(op) {
		return []model.BillProvider{}
	}
	listed := b.registry.Providers(op)
	out := make([]model.BillProvider, 0, len(listed))
	for _, l := range listed {
		out = append(out, model.BillProvider{ID: l.ID, Name: l.Name, Default: l.Default})
	}
	return out
}
