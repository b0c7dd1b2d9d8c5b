package payment

import (
	"context"

	"encore.dev/rlog"

	"payoo.app/payment/model"
)

// BIDVTransferRequest moves money between two BIDV accounts. ToAccount must
// differ from FromAccount.
type BIDVTransferRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	FromAccount string `json:"fromAccount" validate:"required,numeric,max=20"`
	ToAccount   string `json:"toAccount" validate:"required,numeric,max=20,nefield=FromAccount"`
	Amount      int64  `json:"amount" validate:"gt=0"`
	Content     string `json:"content" validate:"required,max=210"`
	BankCode    string `json:"bankCode" validate:"required,max=20"`
}

//encore:api public path=/api/payments/bidv/transfer method=POST tag:idempotency
func (s *Service) BIDVTransfer(ctx context.Context, req *BIDVTransferRequest) (*model.BIDVTransferResult, error) {
	result, err := s.gateways.BIDVTransfer(ctx, &model.BIDVTransferRequest{
		FromAccount: req.FromAccount,
		ToAccount:   req.ToAccount,
		Amount:      req.Amount,
		Content:     req.Content,
		BankCode:    req.BankCode,
	})
	if err != nil {
		rlog.Error("failed to transfer with BIDV", "error", err)
		return nil, err
	}
	return result, nil
}

func (r *BIDVTransferRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return model.ValidationError(err.Error())
	}
	return nil
}

//encore:api public path=/api/payments/bidv/account/:accountNumber method=GET
func (s *Service) BIDVAccount(ctx context.Context, accountNumber string) (*model.BIDVAccount, error) {
	if err := validate.Var(accountNumber, "required,numeric,max=20"); err != nil {
		return nil, model.ValidationError("invalid account number")
	}

	account, err := s.gateways.BIDVAccountInfo(ctx, accountNumber)
	if err != nil {
		rlog.Error("failed to get BIDV account", "error", err)
		return nil, err
	}
	return account, nil
}
