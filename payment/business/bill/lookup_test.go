package bill

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"payoo.app/payment/mocks/transport/transport_caller"
	"payoo.app/payment/model"
	"payoo.app/payment/provider"
	"payoo.app/payment/transport"
)

var fixedNow = time.Date(2025, time.July, 15, 10, 30, 8, 0, time.UTC)

func newTestBusiness(t *testing.T, caller transport.Caller, secrets map[string]string) *business {
	t.Helper()
	registry, err := provider.NewDefaultRegistry(provider.MapSource(secrets))
	require.NoError(t, err)
	return &business{
		registry: registry,
		caller:   caller,
		now:      func() time.Time { return fixedNow },
	}
}

func billSecrets() map[string]string {
	return map[string]string{
		"API_KEY_ELECTRIC_EVN":      "evn-key",
		"API_KEY_ELECTRIC_PC_HANOI": "pchn-key",
		"API_KEY_TELECOM_VIETTEL":   "viettel-key",
		"API_KEY_WATER_SAWACO":      "sawaco-key",
	}
}

func okResponse(body string) *transport.Response {
	return &transport.Response{StatusCode: http.StatusOK, Body: []byte(body)}
}

func TestLookup_LiveRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCaller := transport_caller.NewMockCaller(ctrl)
	b := newTestBusiness(t, mockCaller, billSecrets())

	mockCaller.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			assert.Equal(t, http.MethodPost, req.Method)
			assert.Equal(t, "https://api.pchanoi.vn/bill/lookup", req.URL)
			assert.Equal(t, "Bearer pchn-key", req.Header.Get("Authorization"))
			assert.Equal(t, "PAYOO", req.Header.Get("X-Merchant-Code"))
			assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
			assert.Equal(t, "application/json", req.Header.Get("Accept"))

			var body map[string]any
			require.NoError(t, json.Unmarshal(req.Body, &body))
			assert.Equal(t, "HN001234567", body["customerCode"])
			assert.Equal(t, "electric", body["billType"])
			assert.Equal(t, float64(fixedNow.UnixMilli()), body["timestamp"])
			assert.NotContains(t, body, "phoneNumber")

			return okResponse(`{"status":"success","customerName":"PHẠM THỊ HƯƠNG","address":"Hà Nội","amount":"275000","period":"Tháng 06/2025","dueDate":"2025-07-30"}`), nil
		}).
		Times(1)

	rec := b.Lookup(context.Background(), model.BillQuery{
		CustomerCode: "HN001234567",
		BillType:     model.BillTypeElectric,
		Provider:     "PC_HANOI",
	})

	assert.Equal(t, model.BillSourceLive, rec.Source)
	assert.Equal(t, "PHẠM THỊ HƯƠNG", rec.CustomerName)
	assert.Equal(t, "Hà Nội", rec.Address)
	assert.Equal(t, int64(275000), rec.Amount)
	assert.Equal(t, "275,000 VNĐ", rec.AmountText)
	assert.Equal(t, "Tháng 06/2025", rec.Period)
	assert.Equal(t, "2025-07-30", rec.DueDate)
	assert.Equal(t, "PC_HANOI", rec.Provider)
}

func TestLookup_ParsesProviderShapes(t *testing.T) {
	testCases := []struct {
		name            string
		response        string
		expectedName    string
		expectedAddress string
		expectedAmount  int64
		expectedPeriod  string
		expectedDueDate string
		expectedSource  model.BillSource
	}{
		{
			name:            "alias_names_and_numeric_amount",
			response:        `{"resultCode":"00","accountName":"A","customerAddress":"B","totalAmount":199999.9,"billPeriod":"07/2025","expiredDate":"2025-08-01"}`,
			expectedName:    "A",
			expectedAddress: "B",
			expectedAmount:  199999,
			expectedPeriod:  "07/2025",
			expectedDueDate: "2025-08-01",
			expectedSource:  model.BillSourceLive,
		},
		{
			name:            "nested_data_object",
			response:        `{"errorCode":0,"data":{"fullName":"C","location":"D","payAmount":120000,"cycleMonth":"06/2025","paymentDeadline":"2025-07-20"}}`,
			expectedName:    "C",
			expectedAddress: "D",
			expectedAmount:  120000,
			expectedPeriod:  "06/2025",
			expectedDueDate: "2025-07-20",
			expectedSource:  model.BillSourceLive,
		},
		{
			name:            "success_marker_inside_data",
			response:        `{"data":{"status":"success","name":"E","addr":"F","billAmount":"50000","month":"05/2025","deadline":"2025-07-01"}}`,
			expectedName:    "E",
			expectedAddress: "F",
			expectedAmount:  50000,
			expectedPeriod:  "05/2025",
			expectedDueDate: "2025-07-01",
			expectedSource:  model.BillSourceLive,
		},
		{
			name:            "missing_fields_fall_back_individually",
			response:        `{"status":"success","customerName":"G","amount":-1}`,
			expectedName:    "G",
			expectedAddress: "123 Nguyễn Huệ, P.Bến Nghé, Q.1, TP.HCM",
			expectedAmount:  392722,
			expectedPeriod:  "Tháng 07/2025",
			expectedDueDate: "2025-07-30",
			expectedSource:  model.BillSourceLive,
		},
		{
			name:            "unparsable_amount_falls_back",
			response:        `{"status":"success","amount":"abc"}`,
			expectedName:    "TRẦN VĂN MINH",
			expectedAddress: "123 Nguyễn Huệ, P.Bến Nghé, Q.1, TP.HCM",
			expectedAmount:  392722,
			expectedPeriod:  "Tháng 07/2025",
			expectedDueDate: "2025-07-30",
			expectedSource:  model.BillSourceLive,
		},
		{
			name:            "no_success_marker",
			response:        `{"status":"error","customerName":"H","amount":1}`,
			expectedName:    "TRẦN VĂN MINH",
			expectedAddress: "123 Nguyễn Huệ, P.Bến Nghé, Q.1, TP.HCM",
			expectedAmount:  392722,
			expectedPeriod:  "Tháng 07/2025",
			expectedDueDate: "2025-07-30",
			expectedSource:  model.BillSourceSynthetic,
		},
		{
			name:            "result_code_zero_is_not_success",
			response:        `{"resultCode":"0","customerName":"H"}`,
			expectedName:    "TRẦN VĂN MINH",
			expectedAddress: "123 Nguyễn Huệ, P.Bến Nghé, Q.1, TP.HCM",
			expectedAmount:  392722,
			expectedPeriod:  "Tháng 07/2025",
			expectedDueDate: "2025-07-30",
			expectedSource:  model.BillSourceSynthetic,
		},
		{
			name:            "malformed_json",
			response:        `{"status":"success",`,
			expectedName:    "TRẦN VĂN MINH",
			expectedAddress: "123 Nguyễn Huệ, P.Bến Nghé, Q.1, TP.HCM",
			expectedAmount:  392722,
			expectedPeriod:  "Tháng 07/2025",
			expectedDueDate: "2025-07-30",
			expectedSource:  model.BillSourceSynthetic,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockCaller := transport_caller.NewMockCaller(ctrl)
			b := newTestBusiness(t, mockCaller, billSecrets())
			mockCaller.EXPECT().Do(gomock.Any(), gomock.Any()).Return(okResponse(tc.response), nil).Times(1)

			rec := b.Lookup(context.Background(), model.BillQuery{
				CustomerCode: "PE001234567",
				BillType:     model.BillTypeElectric,
				Provider:     "EVN",
			})

			assert.Equal(t, tc.expectedSource, rec.Source)
			assert.Equal(t, tc.expectedName, rec.CustomerName)
			assert.Equal(t, tc.expectedAddress, rec.Address)
			assert.Equal(t, tc.expectedAmount, rec.Amount)
			assert.Equal(t, model.FormatVND(tc.expectedAmount), rec.AmountText)
			assert.Equal(t, tc.expectedPeriod, rec.Period)
			assert.Equal(t, tc.expectedDueDate, rec.DueDate)
		})
	}
}

func TestLookup_FallsBackWithoutCalling(t *testing.T) {
	testCases := []struct {
		name    string
		query   model.BillQuery
		secrets map[string]string
	}{
		{
			name:    "unknown_bill_type",
			query:   model.BillQuery{CustomerCode: "X1", BillType: "gas", Provider: "EVN"},
			secrets: billSecrets(),
		},
		{
			name:    "missing_api_key",
			query:   model.BillQuery{CustomerCode: "FPT001234567", BillType: model.BillTypeInternet, Provider: "FPT"},
			secrets: billSecrets(),
		},
		{
			name:    "telecom_without_phone",
			query:   model.BillQuery{CustomerCode: "C1", BillType: model.BillTypeTelecom, Provider: "VIETTEL"},
			secrets: billSecrets(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockCaller := transport_caller.NewMockCaller(ctrl)
			b := newTestBusiness(t, mockCaller, tc.secrets)
			mockCaller.EXPECT().Do(gomock.Any(), gomock.Any()).Times(0)

			rec := b.Lookup(context.Background(), tc.query)
			assert.Equal(t, model.BillSourceSynthetic, rec.Source)
			assert.Equal(t, model.FormatVND(rec.Amount), rec.AmountText)
		})
	}
}

func TestLookup_UpstreamFailureIsDeterministic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCaller := transport_caller.NewMockCaller(ctrl)
	b := newTestBusiness(t, mockCaller, billSecrets())
	mockCaller.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		Return(nil, transport.ErrUpstream).
		Times(2)

	query := model.BillQuery{CustomerCode: "SW001234567", BillType: model.BillTypeWater, Provider: "SAWACO"}
	first := b.Lookup(context.Background(), query)
	second := b.Lookup(context.Background(), query)

	assert.Equal(t, first, second)
	assert.Equal(t, model.BillSourceSynthetic, first.Source)
	assert.Equal(t, "ĐẶNG VĂN HÙNG", first.CustomerName)
	assert.Equal(t, int64(131877), first.Amount)
	assert.Equal(t, "131,877 VNĐ", first.AmountText)
}

func TestLookup_UnknownProviderUsesDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCaller := transport_caller.NewMockCaller(ctrl)
	b := newTestBusiness(t, mockCaller, billSecrets())
	mockCaller.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *transport.Request) (*transport.Response, error) {
			assert.Equal(t, "https://api.viettel.vn/bill/query", req.URL)
			assert.Equal(t, "Bearer viettel-key", req.Header.Get("Authorization"))

			var body map[string]any
			require.NoError(t, json.Unmarshal(req.Body, &body))
			assert.Equal(t, "0281234567", body["phoneNumber"])
			return nil, &transport.StatusError{StatusCode: http.StatusServiceUnavailable}
		}).
		Times(1)

	rec := b.Lookup(context.Background(), model.BillQuery{
		CustomerCode: "C1",
		BillType:     model.BillTypeTelecom,
		Provider:     "UNKNOWN_TELCO",
		PhoneNumber:  "0281234567",
	})

	assert.Equal(t, model.BillSourceSynthetic, rec.Source)
	assert.Equal(t, "TP.Hồ Chí Minh", rec.Address)
	assert.Equal(t, int64(294751), rec.Amount)
	assert.Equal(t, "UNKNOWN_TELCO", rec.Provider)
}
