package payment

import (
	"context"
	"testing"

	"encore.dev/beta/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"payoo.app/payment/model"
)

func validPaymentRequest() *ProcessPaymentRequest {
	return &ProcessPaymentRequest{
		CardNumber:   "4111 1111 1111 1234",
		CardHolder:   "NGUYEN VAN AN",
		ExpMonth:     "12",
		ExpYear:      "27",
		CVV:          "123",
		Amount:       250000,
		CustomerCode: "PE001234567",
		BillType:     "electric",
	}
}

func TestProcessPayment(t *testing.T) {
	testCases := []struct {
		name          string
		mockResult    *model.PaymentResult
		mockError     error
		expectedCode  errs.ErrCode
		expectedError string
	}{
		{
			name: "successful_payment",
			mockResult: &model.PaymentResult{
				TransactionID: "VPS1752575408000001",
				Status:        model.PaymentStatusSuccess,
				Amount:        250000,
				MaskedCard:    "4111 **** **** 1234",
			},
		},
		{
			name:          "card_expired",
			mockError:     model.ValidationError("Thẻ đã hết hạn"),
			expectedCode:  errs.InvalidArgument,
			expectedError: "Thẻ đã hết hạn",
		},
		{
			name:          "not_configured",
			mockError:     model.ConfigurationError(),
			expectedCode:  errs.Internal,
			expectedError: "payment service is not configured",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestService(t)
			s.cards.EXPECT().
				ProcessPayment(gomock.Any(), &model.PaymentRequest{
					CardNumber:   "4111 1111 1111 1234",
					CardHolder:   "NGUYEN VAN AN",
					ExpMonth:     "12",
					ExpYear:      "27",
					CVV:          "123",
					Amount:       250000,
					CustomerCode: "PE001234567",
					BillType:     model.BillTypeElectric,
				}).
				Return(tc.mockResult, tc.mockError).
				Times(1)

			resp, err := s.ProcessPayment(context.Background(), validPaymentRequest())

			if tc.expectedError != "" {
				assert.Nil(t, resp)
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				assert.Contains(t, err.Error(), tc.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.mockResult, resp)
		})
	}
}

func TestProcessPaymentRequest_Validation(t *testing.T) {
	testCases := []struct {
		name          string
		mutate        func(r *ProcessPaymentRequest)
		expectedError string
	}{
		{name: "valid_request", mutate: func(r *ProcessPaymentRequest) {}},
		{name: "without_card_holder", mutate: func(r *ProcessPaymentRequest) { r.CardHolder = "" }},
		{name: "missing_card_number", mutate: func(r *ProcessPaymentRequest) { r.CardNumber = "" }, expectedError: "CardNumber"},
		{name: "missing_cvv", mutate: func(r *ProcessPaymentRequest) { r.CVV = "" }, expectedError: "CVV"},
		{name: "zero_amount", mutate: func(r *ProcessPaymentRequest) { r.Amount = 0 }, expectedError: "Amount"},
		{name: "negative_amount", mutate: func(r *ProcessPaymentRequest) { r.Amount = -1 }, expectedError: "Amount"},
		{name: "missing_customer_code", mutate: func(r *ProcessPaymentRequest) { r.CustomerCode = "" }, expectedError: "CustomerCode"},
		{name: "long_exp_year", mutate: func(r *ProcessPaymentRequest) { r.ExpYear = "20277" }, expectedError: "ExpYear"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := validPaymentRequest()
			tc.mutate(req)

			err := req.Validate()

			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Equal(t, errs.InvalidArgument, errs.Code(err))
				assert.Contains(t, err.Error(), tc.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}
