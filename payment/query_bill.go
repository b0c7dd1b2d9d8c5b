package payment

import (
	"context"

	"payoo.app/payment/model"
)

// QueryBillRequest identifies a customer with one provider. PhoneNumber is
// required by telecom providers.
type QueryBillRequest struct {
	CustomerCode string `json:"customerCode" validate:"required,max=64"`
	BillType     string `json:"billType" validate:"required,max=32"`
	Provider     string `json:"provider" validate:"required,max=32"`
	PhoneNumber  string `json:"phoneNumber,omitempty" validate:"omitempty,numeric,min=9,max=12"`
}

// QueryBill looks a bill up with its provider. It always answers with a
// record; when the provider cannot be reached the record is synthetic.
//
//encore:api public path=/api/bills/query method=POST
func (s *Service) QueryBill(ctx context.Context, req *QueryBillRequest) (*model.BillRecord, error) {
	return s.bills.Lookup(ctx, model.BillQuery{
		CustomerCode: req.CustomerCode,
		BillType:     model.BillType(req.BillType),
		Provider:     req.Provider,
		PhoneNumber:  req.PhoneNumber,
	}), nil
}

func (r *QueryBillRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return model.ValidationError(err.Error())
	}
	return nil
}
