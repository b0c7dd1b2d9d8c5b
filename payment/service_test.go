package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/mocks"
	"go.uber.org/mock/gomock"

	"payoo.app/payment/callback"
	"payoo.app/payment/mocks/business/bill_business"
	"payoo.app/payment/mocks/business/card_business"
	"payoo.app/payment/mocks/business/gateway_business"
	"payoo.app/payment/provider"
)

type testService struct {
	*Service
	bills    *bill_business.MockBusiness
	cards    *card_business.MockBusiness
	gateways *gateway_business.MockBusiness
	temporal *mocks.Client
}

func callbackSecrets() map[string]string {
	return map[string]string{
		provider.RefMoMoAccessKey:   "momo-access",
		provider.RefMoMoSecretKey:   "momo-secret",
		provider.RefZaloPayKey2:     "zalo-key2",
		provider.RefVNPayHashSecret: "vnpay-secret",
	}
}

func newTestService(t *testing.T) *testService {
	t.Helper()

	// Run async work inline so signal expectations can be asserted.
	originalRunAsync := runAsync
	runAsync = func(op string, fn func(ctx context.Context) error) { _ = fn(context.Background()) }
	t.Cleanup(func() { runAsync = originalRunAsync })

	ctrl := gomock.NewController(t)
	registry, err := provider.NewDefaultRegistry(provider.MapSource(callbackSecrets()))
	require.NoError(t, err)

	ts := &testService{
		bills:    bill_business.NewMockBusiness(ctrl),
		cards:    card_business.NewMockBusiness(ctrl),
		gateways: gateway_business.NewMockBusiness(ctrl),
		temporal: mocks.NewClient(t),
	}
	ts.Service = &Service{
		bills:     ts.bills,
		cards:     ts.cards,
		gateways:  ts.gateways,
		callbacks: callback.NewValidator(registry),
		temporal:  ts.temporal,
	}
	return ts
}
