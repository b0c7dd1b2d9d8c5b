package callback

import (
	"strings"

	"payoo.app/payment/model"
	"payoo.app/payment/provider"
	"payoo.app/payment/signing"
)

// Verifier authenticates one gateway's callbacks.
type Verifier interface {
	Verify(p Payload) bool
}

// Validator dispatches a callback to the verifier of its gateway.
type Validator struct {
	verifiers map[model.Gateway]Verifier
}

func NewValidator(registry *provider.Registry) *Validator {
	return &Validator{
		verifiers: map[model.Gateway]Verifier{
			model.GatewayMoMo:    &moMoVerifier{registry: registry},
			model.GatewayZaloPay: &zaloPayVerifier{registry: registry},
			model.GatewayVNPay:   &vnPayVerifier{registry: registry},
		},
	}
}

// Validate reports whether p carries a valid signature for gateway. Unknown
// gateways, missing fields and missing secrets all fail.
func (v *Validator) Validate(p Payload, gateway model.Gateway) bool {
	verifier, ok := v.verifiers[gateway]
	if !ok {
		return false
	}
	return verifier.Verify(p)
}

type moMoVerifier struct {
	registry *provider.Registry
}

func (m *moMoVerifier) Verify(p Payload) bool {
	signature, ok := p.Get("signature")
	if !ok || signature == "" {
		return false
	}
	// extraData may be empty but must be sent.
	if _, ok := p.Get("extraData"); !ok {
		return false
	}
	accessKey, err := m.registry.ResolveCredential(provider.MoMo, provider.CredAccessKey)
	if err != nil {
		return false
	}
	secret, err := m.registry.ResolveCallbackSecret(provider.MoMo)
	if err != nil {
		return false
	}

	canonical, err := signing.MoMoIPN(signing.MoMoIPNParams{
		AccessKey:    accessKey,
		Amount:       p.Value("amount"),
		ExtraData:    p.Value("extraData"),
		Message:      p.Value("message"),
		OrderID:      p.Value("orderId"),
		OrderInfo:    p.Value("orderInfo"),
		OrderType:    p.Value("orderType"),
		PartnerCode:  p.Value("partnerCode"),
		PayType:      p.Value("payType"),
		RequestID:    p.Value("requestId"),
		ResponseTime: p.Value("responseTime"),
		ResultCode:   p.Value("resultCode"),
		TransID:      p.Value("transId"),
	})
	if err != nil {
		return false
	}
	return signing.Verify(canonical, secret, signature, signing.EncodingHex)
}

type zaloPayVerifier struct {
	registry *provider.Registry
}

func (z *zaloPayVerifier) Verify(p Payload) bool {
	mac, ok := p.Get("mac")
	if !ok || mac == "" {
		return false
	}
	canonical, err := signing.ZaloPayCallback(p.Value("data"))
	if err != nil {
		return false
	}
	secret, err := z.registry.ResolveCallbackSecret(provider.ZaloPay)
	if err != nil {
		return false
	}
	return signing.Verify(canonical, secret, mac, signing.EncodingHex)
}

type vnPayVerifier struct {
	registry *provider.Registry
}

// Verify checks vnp_SecureHash over every other vnp_ field. VNPay sends the
// hash in upper case on some channels.
func (v *vnPayVerifier) Verify(p Payload) bool {
	hash, ok := p.Get(signing.VNPaySecureHash)
	if !ok || hash == "" {
		return false
	}
	canonical, err := signing.VNPay(p.Query())
	if err != nil {
		return false
	}
	secret, err := v.registry.ResolveCallbackSecret(provider.VNPay)
	if err != nil {
		return false
	}
	alg, err := v.registry.Algorithm(provider.VNPay)
	if err != nil {
		return false
	}
	return signing.VerifyWith(alg, canonical, secret, strings.ToLower(hash), signing.EncodingHex)
}
