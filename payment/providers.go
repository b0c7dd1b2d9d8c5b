package payment

import (
	"context"

	"payoo.app/payment/model"
)

// ListProvidersResponse lists providers in registry order.
type ListProvidersResponse struct {
	BillType  string               `json:"billType"`
	Providers []model.BillProvider `json:"providers"`
}

// ListProviders names the companies that issue bills of billType. An unknown
// type has no providers.
//
//encore:api public path=/api/providers/:billType method=GET
func (s *Service) ListProviders(ctx context.Context, billType string) (*ListProvidersResponse, error) {
	return &ListProvidersResponse{
		BillType:  billType,
		Providers: s.bills.Providers(model.BillType(billType)),
	}, nil
}
