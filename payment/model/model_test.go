package model

import (
	"errors"
	"fmt"
	"testing"

	"encore.dev/beta/errs"
	"github.com/stretchr/testify/assert"
)

func TestFormatVND(t *testing.T) {
	testCases := []struct {
		amount   int64
		expected string
	}{
		{amount: 0, expected: "0 VNĐ"},
		{amount: 999, expected: "999 VNĐ"},
		{amount: 250000, expected: "250,000 VNĐ"},
		{amount: 1234567, expected: "1,234,567 VNĐ"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatVND(tc.amount))
		})
	}
}

func TestNewBillRecord(t *testing.T) {
	q := BillQuery{CustomerCode: "PE001", BillType: BillTypeElectric, Provider: "EVN"}

	rec := NewBillRecord(q, BillFields{CustomerName: "A", Amount: 250000}, BillSourceLive)
	assert.Equal(t, "250,000 VNĐ", rec.AmountText)
	assert.Equal(t, "PE001", rec.CustomerCode)
	assert.Equal(t, BillSourceLive, rec.Source)

	rec = NewBillRecord(q, BillFields{Amount: -5}, BillSourceSynthetic)
	assert.Equal(t, int64(0), rec.Amount)
	assert.Equal(t, "0 VNĐ", rec.AmountText)
}

func TestErrors(t *testing.T) {
	testCases := []struct {
		name     string
		err      *errs.Error
		code     errs.ErrCode
		category string
	}{
		{name: "validation", err: ValidationError("bad"), code: errs.InvalidArgument, category: ErrValidation},
		{name: "amount_mismatch", err: AmountMismatchError(), code: errs.InvalidArgument, category: ErrAmountMismatch},
		{name: "authentication", err: AuthenticationError("bad signature"), code: errs.Unauthenticated, category: ErrAuthentication},
		{name: "not_found", err: NotFoundError("missing"), code: errs.NotFound, category: ErrNotFound},
		{name: "upstream", err: UpstreamError("down"), code: errs.Unavailable, category: ErrUpstream},
		{name: "configuration", err: ConfigurationError(), code: errs.Internal, category: ErrConfiguration},
		{name: "internal", err: InternalError(), code: errs.Internal, category: ErrInternal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, tc.err.Code)
			details, ok := tc.err.Details.(ErrorDetails)
			assert.True(t, ok)
			assert.Equal(t, tc.category, details.Error)
			assert.NotEmpty(t, details.Timestamp)
		})
	}
}

func TestCategory(t *testing.T) {
	assert.Equal(t, ErrAmountMismatch, Category(AmountMismatchError()))
	assert.Equal(t, ErrNotFound, Category(fmt.Errorf("lookup: %w", NotFoundError("missing"))))
	assert.Equal(t, "", Category(&errs.Error{Code: errs.Internal}))
	assert.Equal(t, "", Category(errors.New("plain")))
	assert.Equal(t, "", Category(nil))
}

func TestOrderStatus_Terminal(t *testing.T) {
	assert.False(t, OrderStatusPending.Terminal())
	assert.True(t, OrderStatusPaid.Terminal())
	assert.True(t, OrderStatusFailed.Terminal())
	assert.True(t, OrderStatusExpired.Terminal())
}
