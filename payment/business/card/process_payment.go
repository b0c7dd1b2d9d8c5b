package card

import (
	"context"
	"errors"
	"strconv"

	"encore.dev/rlog"

	"payoo.app/payment/card"
	"payoo.app/payment/model"
	"payoo.app/payment/provider"
	"payoo.app/payment/signing"
	"payoo.app/payment/store"
)

const (
	timestampLayout = "2006-01-02 15:04:05"
	maxIDAttempts   = 3
)

var cardErrorMessages = map[error]string{
	card.ErrInvalidScheme: "Số thẻ không hợp lệ",
	card.ErrExpired:       "Thẻ đã hết hạn",
	card.ErrInvalidCVV:    "Mã CVV không hợp lệ",
}

func (b *business) ProcessPayment(ctx context.Context, req *model.PaymentRequest) (*model.PaymentResult, error) {
	start := b.now()

	if err := card.Validate(card.Card{
		Number:   req.CardNumber,
		ExpMonth: req.ExpMonth,
		ExpYear:  req.ExpYear,
		CVV:      req.CVV,
	}, start); err != nil {
		return nil, model.ValidationError(cardErrorMessage(err))
	}

	secret, err := b.registry.ResolveSecret(provider.Card)
	if err != nil {
		rlog.Error("card signing secret unavailable", "error", err)
		return nil, model.ConfigurationError()
	}

	masked := card.Mask(req.CardNumber)
	timestamp := start.Format(timestampLayout)

	var tx store.Transaction
	for attempt := 1; ; attempt++ {
		id := b.ids.Next()
		signature, err := b.sign(id, req, timestamp, secret)
		if err != nil {
			rlog.Error("failed to sign card payment", "error", err, "transaction_id", id)
			return nil, model.InternalError()
		}

		tx, err = b.repo.CreateTransaction(ctx, store.CreateTransactionParams{
			ID:           id,
			Status:       string(model.PaymentStatusSuccess),
			Amount:       req.Amount,
			MaskedCard:   masked,
			CustomerCode: req.CustomerCode,
			BillType:     string(req.BillType),
			Signature:    signature,
		})
		if err == nil {
			break
		}
		if store.IsUniqueViolation(err) && attempt < maxIDAttempts {
			rlog.Warn("transaction id collision, regenerating", "transaction_id", id, "attempt", attempt)
			continue
		}
		rlog.Error("failed to record transaction", "error", err, "transaction_id", id)
		return nil, model.InternalError()
	}

	return &model.PaymentResult{
		TransactionID:    tx.ID,
		Status:           model.PaymentStatusSuccess,
		Message:          "Thanh toán thành công",
		Amount:           tx.Amount,
		MaskedCard:       tx.MaskedCard,
		Signature:        tx.Signature,
		Timestamp:        timestamp,
		ProcessingTimeMs: b.now().Sub(start).Milliseconds(),
	}, nil
}

func (b *business) sign(id string, req *model.PaymentRequest, timestamp string, secret signing.Secret) (string, error) {
	canonical, err := signing.CardPayment(signing.CardPaymentParams{
		TransactionID: id,
		CardBIN:       card.BIN(req.CardNumber),
		Amount:        strconv.FormatInt(req.Amount, 10),
		Timestamp:     timestamp,
	})
	if err != nil {
		return "", err
	}
	return signing.Sign(canonical, secret, signing.EncodingBase64)
}

func cardErrorMessage(err error) string {
	for sentinel, msg := range cardErrorMessages {
		if errors.Is(err, sentinel) {
			return msg
		}
	}
	return "Thông tin thẻ không hợp lệ"
}
