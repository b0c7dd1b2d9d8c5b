package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"encore.dev/beta/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"payoo.app/payment/callback"
	"payoo.app/payment/model"
	"payoo.app/payment/signing"
	"payoo.app/payment/workflow"
)

const vnPayOrderID = "PAYOO1752575408000"

func vnPayRequest() *CreateVNPayPaymentRequest {
	return &CreateVNPayPaymentRequest{
		IdempotencyKey: "idem-vnpay-1",
		ForwardedFor:   " 203.113.1.10 , 10.0.0.1",
		BillCode:       "PE001234567",
		Amount:         250000,
	}
}

func TestCreateVNPayPayment(t *testing.T) {
	payment := &model.VNPayPayment{
		OrderID:    vnPayOrderID,
		Amount:     250000,
		PaymentURL: "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html?vnp_Amount=25000000",
		ExpiresAt:  "2025-07-15T17:45:08+07:00",
	}

	testCases := []struct {
		name           string
		mockPayment    *model.VNPayPayment
		mockError      error
		expectWorkflow bool
		workflowError  error
		expectedCode   errs.ErrCode
	}{
		{
			name:           "successful_creation",
			mockPayment:    payment,
			expectWorkflow: true,
		},
		{
			name:           "workflow_start_failure_keeps_payment",
			mockPayment:    payment,
			expectWorkflow: true,
			workflowError:  assert.AnError,
		},
		{
			name:         "amount_too_large",
			mockError:    model.ValidationError("amount is too large"),
			expectedCode: errs.InvalidArgument,
		},
		{
			name:         "missing_configuration",
			mockError:    model.ConfigurationError(),
			expectedCode: errs.Internal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestService(t)
			s.gateways.EXPECT().
				CreateVNPayPayment(gomock.Any(), &model.VNPayPaymentRequest{
					BillCode: "PE001234567",
					Amount:   250000,
					ClientIP: "203.113.1.10",
				}).
				Return(tc.mockPayment, tc.mockError).
				Times(1)

			if tc.expectWorkflow {
				s.temporal.On("ExecuteWorkflow",
					mock.Anything,
					mock.Anything,
					mock.Anything,
					workflow.GatewayOrderParams{OrderID: vnPayOrderID, Gateway: "vnpay", ExpiresIn: workflow.DefaultOrderExpiry},
				).Return(nil, tc.workflowError).Once()
			}

			resp, err := s.CreateVNPayPayment(context.Background(), vnPayRequest())

			if tc.expectedCode != errs.OK {
				assert.Nil(t, resp)
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, payment, resp)
		})
	}
}

func TestCreateVNPayPaymentRequest_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		modify  func(r *CreateVNPayPaymentRequest)
		isValid bool
	}{
		{name: "valid", modify: func(r *CreateVNPayPaymentRequest) {}, isValid: true},
		{name: "with_bank_code", modify: func(r *CreateVNPayPaymentRequest) { r.BankCode = "NCB" }, isValid: true},
		{name: "bank_code_with_symbols", modify: func(r *CreateVNPayPaymentRequest) { r.BankCode = "NCB&x=1" }},
		{name: "missing_bill_code", modify: func(r *CreateVNPayPaymentRequest) { r.BillCode = "" }},
		{name: "zero_amount", modify: func(r *CreateVNPayPaymentRequest) { r.Amount = 0 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := vnPayRequest()
			tc.modify(req)
			err := req.Validate()
			if tc.isValid {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, errs.InvalidArgument, errs.Code(err))
		})
	}
}

func TestCreateVNPayPaymentRequest_ClientIP(t *testing.T) {
	req := vnPayRequest()
	req.ForwardedFor = ""
	assert.Equal(t, "", req.toModel().ClientIP)

	req.ForwardedFor = "198.51.100.7"
	assert.Equal(t, "198.51.100.7", req.toModel().ClientIP)
}

func signedVNPayIPN(t *testing.T, secret signing.Secret) url.Values {
	t.Helper()
	q := url.Values{
		"vnp_Amount":            {"25000000"},
		"vnp_BankCode":          {"NCB"},
		"vnp_OrderInfo":         {"Thanh toan hoa don PE001234567"},
		"vnp_PayDate":           {"20250715173512"},
		"vnp_ResponseCode":      {"00"},
		"vnp_TmnCode":           {"PAYOOTMN"},
		"vnp_TransactionNo":     {"14512345"},
		"vnp_TransactionStatus": {"00"},
		"vnp_TxnRef":            {vnPayOrderID},
	}
	canonical, err := signing.VNPay(q)
	require.NoError(t, err)
	hash, err := signing.SignWith(signing.SHA512, canonical, secret, signing.EncodingHex)
	require.NoError(t, err)
	q.Set(signing.VNPaySecureHashType, "HmacSHA512")
	q.Set(signing.VNPaySecureHash, hash)
	return q
}

func TestVNPayIPN(t *testing.T) {
	outcome := &model.CallbackOutcome{
		Gateway:         model.GatewayVNPay,
		OrderID:         vnPayOrderID,
		WorkflowID:      "order-vnpay-" + vnPayOrderID,
		ProviderTransID: "14512345",
		ResultCode:      "00",
		Paid:            true,
	}
	duplicate := *outcome
	duplicate.Duplicate = true

	testCases := []struct {
		name         string
		query        func(t *testing.T) string
		expectHandle bool
		mockOutcome  *model.CallbackOutcome
		mockError    error
		expectSignal bool
		expectedAck  string
	}{
		{
			name:         "paid",
			query:        func(t *testing.T) string { return signedVNPayIPN(t, "vnpay-secret").Encode() },
			expectHandle: true,
			mockOutcome:  outcome,
			expectSignal: true,
			expectedAck:  `{"RspCode":"00","Message":"Confirm Success"}`,
		},
		{
			name:         "replayed",
			query:        func(t *testing.T) string { return signedVNPayIPN(t, "vnpay-secret").Encode() },
			expectHandle: true,
			mockOutcome:  &duplicate,
			expectedAck:  `{"RspCode":"02","Message":"Order already confirmed"}`,
		},
		{
			name:        "wrong_secret",
			query:       func(t *testing.T) string { return signedVNPayIPN(t, "other").Encode() },
			expectedAck: `{"RspCode":"97","Message":"Invalid signature"}`,
		},
		{
			name: "tampered_amount",
			query: func(t *testing.T) string {
				q := signedVNPayIPN(t, "vnpay-secret")
				q.Set("vnp_Amount", "100")
				return q.Encode()
			},
			expectedAck: `{"RspCode":"97","Message":"Invalid signature"}`,
		},
		{
			name:        "repeated_field",
			query:       func(t *testing.T) string { return signedVNPayIPN(t, "vnpay-secret").Encode() + "&vnp_TxnRef=X" },
			expectedAck: `{"RspCode":"99","Message":"Invalid request"}`,
		},
		{
			name:         "unknown_order",
			query:        func(t *testing.T) string { return signedVNPayIPN(t, "vnpay-secret").Encode() },
			expectHandle: true,
			mockError:    model.NotFoundError("order not found"),
			expectedAck:  `{"RspCode":"01","Message":"Order not found"}`,
		},
		{
			name:         "amount_mismatch",
			query:        func(t *testing.T) string { return signedVNPayIPN(t, "vnpay-secret").Encode() },
			expectHandle: true,
			mockError:    model.AmountMismatchError(),
			expectedAck:  `{"RspCode":"04","Message":"Invalid amount"}`,
		},
		{
			name:         "store_failure",
			query:        func(t *testing.T) string { return signedVNPayIPN(t, "vnpay-secret").Encode() },
			expectHandle: true,
			mockError:    model.InternalError(),
			expectedAck:  `{"RspCode":"99","Message":"Unknown error"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestService(t)
			if tc.expectHandle {
				s.gateways.EXPECT().
					HandleVNPayCallback(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p callback.Payload) (*model.CallbackOutcome, error) {
						assert.Equal(t, vnPayOrderID, p.Value("vnp_TxnRef"))
						return tc.mockOutcome, tc.mockError
					}).
					Times(1)
			}
			if tc.expectSignal {
				s.temporal.On("SignalWorkflow",
					mock.Anything,
					"order-vnpay-"+vnPayOrderID,
					"",
					workflow.CallbackReceivedSignalName,
					workflow.CallbackReceivedSignal{Paid: true, ResultCode: "00", ProviderTransID: "14512345"},
				).Return(nil).Once()
			}

			req := httptest.NewRequest(http.MethodGet, "/api/payments/vnpay/ipn?"+tc.query(t), nil)
			rec := httptest.NewRecorder()

			s.VNPayIPN(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tc.expectedAck, rec.Body.String())
		})
	}
}
