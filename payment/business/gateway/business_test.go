package gateway

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"payoo.app/payment/provider"
	"payoo.app/payment/store"
	"payoo.app/payment/transport"
)

// 2025-07-15 17:30:08 in Vietnam.
var fixedNow = time.Date(2025, time.July, 15, 10, 30, 8, 0, time.UTC)

const (
	fixedMillis    = "1752575408000"
	fixedRequestID = "8c7e1a52-3f0b-4c57-9a44-2d1b6f0e9a10"
)

var testSettings = Settings{
	MoMoRedirectURL:    "https://payoo.test/payment/success",
	MoMoIPNURL:         "https://payoo.test/api/payments/momo/callback",
	ZaloPayCallbackURL: "https://payoo.test/api/payments/zalopay/callback",
	VNPayReturnURL:     "https://payoo.test/payment/vnpay-return",
}

func gatewaySecrets() map[string]string {
	return map[string]string{
		provider.RefMoMoPartnerCode:  "MOMOPAYOO",
		provider.RefMoMoAccessKey:    "momo-access",
		provider.RefMoMoSecretKey:    "momo-secret",
		provider.RefZaloPayAppID:     "2553",
		provider.RefZaloPayKey1:      "zalo-key1",
		provider.RefZaloPayKey2:      "zalo-key2",
		provider.RefBIDVClientID:     "bidv-client",
		provider.RefBIDVClientSecret: "bidv-secret",
		provider.RefVNPayTmnCode:     "PAYOOTMN",
		provider.RefVNPayHashSecret:  "vnpay-secret",
	}
}

func newTestBusiness(t *testing.T, caller transport.Caller, repo store.Querier, secrets map[string]string) *business {
	t.Helper()
	registry, err := provider.NewDefaultRegistry(provider.MapSource(secrets))
	require.NoError(t, err)
	return &business{
		registry:     registry,
		caller:       caller,
		repo:         repo,
		settings:     testSettings,
		now:          func() time.Time { return fixedNow },
		newRequestID: func() string { return fixedRequestID },
	}
}

func okResponse(body string) *transport.Response {
	return &transport.Response{StatusCode: http.StatusOK, Body: []byte(body)}
}
