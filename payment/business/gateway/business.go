package gateway

import (
	"context"
	"time"

	"github.com/google/uuid"

	"payoo.app/payment/callback"
	"payoo.app/payment/model"
	"payoo.app/payment/provider"
	"payoo.app/payment/store"
	"payoo.app/payment/transport"
)

// Settings holds the URLs the wallets send their customers and callbacks to.
type Settings struct {
	MoMoRedirectURL    string
	MoMoIPNURL         string
	ZaloPayCallbackURL string
	VNPayReturnURL     string
}

// DefaultSettings points every gateway at the production payoo.vn host.
var DefaultSettings = Settings{
	MoMoRedirectURL:    "https://payoo.vn/payment/success",
	MoMoIPNURL:         "https://payoo.vn/api/payments/momo/callback",
	ZaloPayCallbackURL: "https://payoo.vn/api/payments/zalopay/callback",
	VNPayReturnURL:     "https://payoo.vn/payment/vnpay-return",
}

// Business creates wallet payments and settles their callbacks. Callback
// handlers expect payloads whose signature the caller already verified.
type Business interface {
	CreateMoMoPayment(ctx context.Context, req *model.WalletPaymentRequest) (*model.MoMoPayment, error)
	HandleMoMoCallback(ctx context.Context, payload callback.Payload) (*model.CallbackOutcome, error)
	CreateZaloPayOrder(ctx context.Context, req *model.WalletPaymentRequest) (*model.ZaloPayOrder, error)
	HandleZaloPayCallback(ctx context.Context, payload callback.Payload) (*model.CallbackOutcome, error)
	CreateVNPayPayment(ctx context.Context, req *model.VNPayPaymentRequest) (*model.VNPayPayment, error)
	HandleVNPayCallback(ctx context.Context, payload callback.Payload) (*model.CallbackOutcome, error)
	BIDVTransfer(ctx context.Context, req *model.BIDVTransferRequest) (*model.BIDVTransferResult, error)
	BIDVAccountInfo(ctx context.Context, accountNumber string) (*model.BIDVAccount, error)
}

type business struct {
	registry     *provider.Registry
	caller       transport.Caller
	repo         store.Querier
	settings     Settings
	now          func() time.Time
	newRequestID func() string
}

// NewGatewayBusiness wires the wallets to registry for credentials and to repo
// for orders and callbacks.
func NewGatewayBusiness(registry *provider.Registry, caller transport.Caller, repo store.Querier, settings Settings) Business {
	return &business{
		registry:     registry,
		caller:       caller,
		repo:         repo,
		settings:     settings,
		now:          time.Now,
		newRequestID: uuid.NewString,
	}
}
