package provider

import "payoo.app/payment/signing"

const (
	MoMo    = "MOMO"
	ZaloPay = "ZALOPAY"
	BIDV    = "BIDV"
	Card    = "CARD"
	VNPay   = "VNPAY"
)

// Secret references of the payment gateways.
const (
	RefMoMoPartnerCode  = "MOMO_PARTNER_CODE"
	RefMoMoAccessKey    = "MOMO_ACCESS_KEY"
	RefMoMoSecretKey    = "MOMO_SECRET_KEY"
	RefZaloPayAppID     = "ZALOPAY_APP_ID"
	RefZaloPayKey1      = "ZALOPAY_KEY1"
	RefZaloPayKey2      = "ZALOPAY_KEY2"
	RefBIDVClientID     = "BIDV_CLIENT_ID"
	RefBIDVClientSecret = "BIDV_CLIENT_SECRET"
	RefCardHMACSecret   = "CARD_HMAC_SECRET"
	RefVNPayTmnCode     = "VNPAY_TMN_CODE"
	RefVNPayHashSecret  = "VNPAY_HASH_SECRET"
)

// Credential names understood by ResolveCredential.
const (
	CredPartnerCode = "partnerCode"
	CredAccessKey   = "accessKey"
	CredAppID       = "appId"
	CredClientID    = "clientId"
	CredTmnCode     = "tmnCode"
)

// GatewayProviders are the providers whose secrets must be present at startup.
var GatewayProviders = []string{MoMo, ZaloPay, BIDV, VNPay, Card}

type billProvider struct {
	id       string
	name     string
	endpoint string
}

var billEndpoints = map[OperationKind][]billProvider{
	OpElectricBill: {
		{"EVN", "Tập đoàn Điện lực Việt Nam", "https://api.evn.com.vn/bill/query"},
		{"PC_HANOI", "EVN Hà Nội", "https://api.pchanoi.vn/bill/lookup"},
		{"PC_HCMC", "EVN TP.HCM", "https://api.pchochiminh.vn/bill/search"},
		{"PC_DANANG", "EVN Đà Nẵng", "https://api.pcdanang.vn/bill/info"},
	},
	OpWaterBill: {
		{"SAWACO", "SAWACO", "https://api.sawaco.com.vn/bill/query"},
		{"HAWACO", "HAWACO", "https://api.hawaco.vn/bill/lookup"},
		{"1WS", "Nước sạch số 1", "https://api.1ws.vn/bill/search"},
		{"DAWACO", "DAWACO", "https://api.dawaco.vn/bill/info"},
	},
	OpTelecomBill: {
		{"VIETTEL", "Viettel", "https://api.viettel.vn/bill/query"},
		{"VINAPHONE", "VinaPhone", "https://api.vinaphone.vn/bill/lookup"},
		{"MOBIFONE", "MobiFone", "https://api.mobifone.vn/bill/search"},
		{"VIETNAMOBILE", "Vietnamobile", "https://api.vietnamobile.vn/bill/info"},
	},
	OpInternetBill: {
		{"FPT", "FPT Telecom", "https://api.fpt.vn/bill/query"},
		{"VNPT", "VNPT", "https://api.vnpt.vn/bill/lookup"},
		{"VIETTEL_NET", "Viettel Internet", "https://api.viettel.vn/internet/bill"},
		{"CMC", "CMC Telecom", "https://api.cmc.vn/bill/search"},
	},
}

var defaultProviders = map[OperationKind]string{
	OpElectricBill:  "EVN",
	OpWaterBill:     "SAWACO",
	OpTelecomBill:   "VIETTEL",
	OpInternetBill:  "FPT",
	OpMoMoCreate:    MoMo,
	OpZaloPayCreate: ZaloPay,
	OpBIDVToken:     BIDV,
	OpBIDVTransfer:  BIDV,
	OpBIDVAccount:   BIDV,
	OpVNPayPay:      VNPay,
}

// BillOperations lists the bill lookup operation kinds.
var BillOperations = []OperationKind{OpElectricBill, OpWaterBill, OpTelecomBill, OpInternetBill}

// IsBillOperation reports whether op is a bill lookup.
func IsBillOperation(op OperationKind) bool {
	_, ok := billEndpoints[op]
	return ok
}

// DefaultConfigs returns the provider table the service runs with.
func DefaultConfigs() []Config {
	var configs []Config
	for _, op := range BillOperations {
		required := []string{"customerCode"}
		if op == OpTelecomBill {
			required = append(required, "phoneNumber")
		}
		for _, entry := range billEndpoints[op] {
			configs = append(configs, Config{
				ID:             entry.id,
				Name:           entry.name,
				Endpoints:      map[OperationKind]string{op: entry.endpoint},
				SecretRef:      BillAPIKeyRef(op, entry.id),
				RequiredParams: required,
			})
		}
	}

	return append(configs,
		Config{
			ID:        MoMo,
			Endpoints: map[OperationKind]string{OpMoMoCreate: "https://payment.momo.vn/v2/gateway/api/create"},
			SecretRef: RefMoMoSecretKey,
			CredentialRefs: map[string]string{
				CredPartnerCode: RefMoMoPartnerCode,
				CredAccessKey:   RefMoMoAccessKey,
			},
			Encoding: signing.EncodingHex,
		},
		Config{
			ID:                ZaloPay,
			Endpoints:         map[OperationKind]string{OpZaloPayCreate: "https://sb-openapi.zalopay.vn/v2/create"},
			SecretRef:         RefZaloPayKey1,
			CallbackSecretRef: RefZaloPayKey2,
			CredentialRefs:    map[string]string{CredAppID: RefZaloPayAppID},
			Encoding:          signing.EncodingHex,
		},
		Config{
			ID: BIDV,
			Endpoints: map[OperationKind]string{
				OpBIDVToken:    "https://api.bidv.com.vn/gateway/oauth/token",
				OpBIDVTransfer: "https://api.bidv.com.vn/gateway/v1/transfers",
				OpBIDVAccount:  "https://api.bidv.com.vn/gateway/v1/accounts/{accountNumber}",
			},
			SecretRef:      RefBIDVClientSecret,
			CredentialRefs: map[string]string{CredClientID: RefBIDVClientID},
			Encoding:       signing.EncodingHex,
		},
		Config{
			ID:             VNPay,
			Endpoints:      map[OperationKind]string{OpVNPayPay: "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html"},
			SecretRef:      RefVNPayHashSecret,
			CredentialRefs: map[string]string{CredTmnCode: RefVNPayTmnCode},
			Encoding:       signing.EncodingHex,
			Algorithm:      signing.SHA512,
		},
		Config{
			ID:        Card,
			SecretRef: RefCardHMACSecret,
			Encoding:  signing.EncodingBase64,
		},
	)
}

// NewDefaultRegistry builds the registry over DefaultConfigs with secrets read
// from source.
func NewDefaultRegistry(source Source) (*Registry, error) {
	configs := DefaultConfigs()
	secrets := LoadSecrets(source, SecretRefs(configs))
	return NewRegistry(configs, defaultProviders, secrets, DefaultTimeouts)
}
