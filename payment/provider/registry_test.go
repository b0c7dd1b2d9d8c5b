package provider

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payoo.app/payment/signing"
)

func fullSecrets() map[string]string {
	return map[string]string{
		RefMoMoPartnerCode:     "MOMO",
		RefMoMoAccessKey:       "AK",
		RefMoMoSecretKey:       "momo-secret",
		RefZaloPayAppID:        "2553",
		RefZaloPayKey1:         "zp-key1",
		RefZaloPayKey2:         "zp-key2",
		RefBIDVClientID:        "client-1",
		RefBIDVClientSecret:    "bidv-secret",
		RefCardHMACSecret:      "card-secret",
		RefVNPayTmnCode:        "PAYOOTMN",
		RefVNPayHashSecret:     "vnpay-secret",
		"API_KEY_ELECTRIC_EVN": "evn-key",
	}
}

func newTestRegistry(t *testing.T, secrets map[string]string) *Registry {
	t.Helper()
	r, err := NewDefaultRegistry(MapSource(secrets))
	require.NoError(t, err)
	return r
}

func TestRegistry_ResolveEndpoint(t *testing.T) {
	r := newTestRegistry(t, fullSecrets())

	testCases := []struct {
		name          string
		provider      string
		op            OperationKind
		expected      string
		expectedError error
	}{
		{
			name:     "known_electric_provider",
			provider: "PC_HANOI",
			op:       OpElectricBill,
			expected: "https://api.pchanoi.vn/bill/lookup",
		},
		{
			name:     "provider_id_is_case_insensitive",
			provider: " sawaco ",
			op:       OpWaterBill,
			expected: "https://api.sawaco.com.vn/bill/query",
		},
		{
			name:     "unknown_provider_falls_back_to_default",
			provider: "NOPE",
			op:       OpElectricBill,
			expected: "https://api.evn.com.vn/bill/query",
		},
		{
			name:     "provider_of_other_bill_type_falls_back",
			provider: "SAWACO",
			op:       OpTelecomBill,
			expected: "https://api.viettel.vn/bill/query",
		},
		{
			name:     "internet_default",
			provider: "",
			op:       OpInternetBill,
			expected: "https://api.fpt.vn/bill/query",
		},
		{
			name:     "gateway_operation",
			provider: BIDV,
			op:       OpBIDVTransfer,
			expected: "https://api.bidv.com.vn/gateway/v1/transfers",
		},
		{
			name:          "unknown_operation",
			provider:      "EVN",
			op:            OperationKind("gas"),
			expectedError: ErrUnknownOperation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			endpoint, err := r.ResolveEndpoint(tc.provider, tc.op)
			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, endpoint)
		})
	}
}

func TestRegistry_Lookup_ReportsFallback(t *testing.T) {
	r := newTestRegistry(t, fullSecrets())

	res, err := r.Lookup("VNPT", OpInternetBill)
	require.NoError(t, err)
	assert.False(t, res.FellBack)
	assert.Equal(t, "VNPT", res.Config.ID)

	res, err = r.Lookup("ACME", OpInternetBill)
	require.NoError(t, err)
	assert.True(t, res.FellBack)
	assert.Equal(t, "ACME", res.Requested)
	assert.Equal(t, "FPT", res.Config.ID)

	id, ok := r.DefaultProvider(OpWaterBill)
	assert.True(t, ok)
	assert.Equal(t, "SAWACO", id)
}

func TestRegistry_LookupReturnsCopy(t *testing.T) {
	r := newTestRegistry(t, fullSecrets())

	res, err := r.Lookup("EVN", OpElectricBill)
	require.NoError(t, err)
	res.Config.Endpoints[OpElectricBill] = "https://evil.example"

	endpoint, err := r.ResolveEndpoint("EVN", OpElectricBill)
	require.NoError(t, err)
	assert.Equal(t, "https://api.evn.com.vn/bill/query", endpoint)
}

func TestRegistry_Secrets(t *testing.T) {
	r := newTestRegistry(t, fullSecrets())

	secret, err := r.ResolveSecret(MoMo)
	require.NoError(t, err)
	assert.Equal(t, signing.Secret("momo-secret"), secret)

	secret, err = r.ResolveCallbackSecret(ZaloPay)
	require.NoError(t, err)
	assert.Equal(t, signing.Secret("zp-key2"), secret)

	secret, err = r.ResolveCallbackSecret(MoMo)
	require.NoError(t, err)
	assert.Equal(t, signing.Secret("momo-secret"), secret)

	code, err := r.ResolveCredential(MoMo, CredPartnerCode)
	require.NoError(t, err)
	assert.Equal(t, "MOMO", code)

	secret, err = r.ResolveSecret("EVN")
	require.NoError(t, err)
	assert.Equal(t, signing.Secret("evn-key"), secret)

	enc, err := r.Encoding(Card)
	require.NoError(t, err)
	assert.Equal(t, signing.EncodingBase64, enc)
}

func TestRegistry_MissingSecrets(t *testing.T) {
	secrets := fullSecrets()
	delete(secrets, RefZaloPayKey2)
	secrets[RefBIDVClientID] = ""
	r := newTestRegistry(t, secrets)

	_, err := r.ResolveSecret("HAWACO")
	assert.ErrorIs(t, err, ErrMissingSecret)
	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "HAWACO", cfgErr.Provider)
	assert.Equal(t, "API_KEY_WATER_HAWACO", cfgErr.Ref)

	_, err = r.ResolveCallbackSecret(ZaloPay)
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = r.ResolveCredential(BIDV, CredClientID)
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = r.ResolveCredential(MoMo, "unknown")
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = r.ResolveSecret("NOPE")
	assert.ErrorIs(t, err, ErrUnknownProvider)

	assert.NoError(t, r.RequireSecrets(MoMo, Card))
	err = r.RequireSecrets(GatewayProviders...)
	assert.ErrorIs(t, err, ErrMissingSecret)
	assert.NotContains(t, err.Error(), "zp-key1")
}

func TestRegistry_RequireSecrets_AllPresent(t *testing.T) {
	r := newTestRegistry(t, fullSecrets())
	assert.NoError(t, r.RequireSecrets(GatewayProviders...))
}

func TestNewRegistry_Validation(t *testing.T) {
	configs := []Config{
		{ID: "A", Endpoints: map[OperationKind]string{OpElectricBill: "https://a"}},
	}

	_, err := NewRegistry(append(configs, Config{ID: "a"}), nil, Secrets{}, DefaultTimeouts)
	assert.ErrorContains(t, err, "duplicate")

	_, err = NewRegistry(configs, map[OperationKind]string{OpWaterBill: "A"}, Secrets{}, DefaultTimeouts)
	assert.ErrorContains(t, err, "does not serve")

	_, err = NewRegistry(configs, map[OperationKind]string{OpElectricBill: "B"}, Secrets{}, DefaultTimeouts)
	assert.ErrorContains(t, err, "not registered")

	r, err := NewRegistry(configs, map[OperationKind]string{OpElectricBill: "a"}, Secrets{}, Timeouts{Connect: 1, Read: 2})
	require.NoError(t, err)
	assert.Equal(t, Timeouts{Connect: 1, Read: 2}, r.Timeouts())
}

func TestRegistry_ConcurrentReads(t *testing.T) {
	r := newTestRegistry(t, fullSecrets())

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = r.ResolveEndpoint("UNKNOWN", OpTelecomBill)
			_, _ = r.ResolveSecret(MoMo)
		}()
	}
	wg.Wait()
}

func TestExpandEndpoint(t *testing.T) {
	got := ExpandEndpoint("https://api.bidv.com.vn/gateway/v1/accounts/{accountNumber}",
		map[string]string{"accountNumber": "12 34/5"})
	assert.Equal(t, "https://api.bidv.com.vn/gateway/v1/accounts/12%2034%2F5", got)
}

func TestBillAPIKeyRef(t *testing.T) {
	assert.Equal(t, "API_KEY_ELECTRIC_EVN", BillAPIKeyRef(OpElectricBill, "evn"))
	assert.Equal(t, "API_KEY_INTERNET_VIETTEL_NET", BillAPIKeyRef(OpInternetBill, "VIETTEL_NET"))
}

func TestSecretRefs(t *testing.T) {
	refs := SecretRefs(DefaultConfigs())
	assert.Contains(t, refs, RefZaloPayKey2)
	assert.Contains(t, refs, "API_KEY_TELECOM_MOBIFONE")
	assert.IsNonDecreasing(t, refs)
}

func TestRegistry_Providers(t *testing.T) {
	r := newTestRegistry(t, fullSecrets())

	testCases := []struct {
		name     string
		op       OperationKind
		expected []Listing
	}{
		{
			name: "electric_in_table_order",
			op:   OpElectricBill,
			expected: []Listing{
				{ID: "EVN", Name: "Tập đoàn Điện lực Việt Nam", Default: true},
				{ID: "PC_HANOI", Name: "EVN Hà Nội"},
				{ID: "PC_HCMC", Name: "EVN TP.HCM"},
				{ID: "PC_DANANG", Name: "EVN Đà Nẵng"},
			},
		},
		{
			name: "internet",
			op:   OpInternetBill,
			expected: []Listing{
				{ID: "FPT", Name: "FPT Telecom", Default: true},
				{ID: "VNPT", Name: "VNPT"},
				{ID: "VIETTEL_NET", Name: "Viettel Internet"},
				{ID: "CMC", Name: "CMC Telecom"},
			},
		},
		{
			name:     "unnamed_provider_uses_id",
			op:       OpVNPayPay,
			expected: []Listing{{ID: VNPay, Name: VNPay, Default: true}},
		},
		{
			name: "operation_nobody_serves",
			op:   OperationKind("cable.bill"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, r.Providers(tc.op))
		})
	}
}

func TestRegistry_Algorithm(t *testing.T) {
	r := newTestRegistry(t, fullSecrets())

	alg, err := r.Algorithm(VNPay)
	require.NoError(t, err)
	assert.Equal(t, signing.SHA512, alg)

	alg, err = r.Algorithm(MoMo)
	require.NoError(t, err)
	assert.Equal(t, signing.SHA256, alg)

	_, err = r.Algorithm("NOPE")
	assert.ErrorIs(t, err, ErrUnknownProvider)
}
