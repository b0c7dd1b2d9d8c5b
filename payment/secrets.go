package payment

import (
	"encoding/json"
	"fmt"
	"strings"

	"payoo.app/payment/provider"
)

var secrets struct {
	MomoPartnerCode  string
	MomoAccessKey    string
	MomoSecretKey    string
	ZaloPayAppID     string
	ZaloPayKey1      string
	ZaloPayKey2      string
	BIDVClientID     string
	BIDVClientSecret string
	CardHMACSecret   string
	VNPayTmnCode     string
	VNPayHashSecret  string
	// BillProviderKeys is a JSON object keyed API_KEY_{BILLTYPE}_{PROVIDER}.
	BillProviderKeys string
	TemporalHostPort string
}

const billKeyPrefix = "API_KEY_"

func gatewaySecretValues() map[string]string {
	return map[string]string{
		provider.RefMoMoPartnerCode:  secrets.MomoPartnerCode,
		provider.RefMoMoAccessKey:    secrets.MomoAccessKey,
		provider.RefMoMoSecretKey:    secrets.MomoSecretKey,
		provider.RefZaloPayAppID:     secrets.ZaloPayAppID,
		provider.RefZaloPayKey1:      secrets.ZaloPayKey1,
		provider.RefZaloPayKey2:      secrets.ZaloPayKey2,
		provider.RefBIDVClientID:     secrets.BIDVClientID,
		provider.RefBIDVClientSecret: secrets.BIDVClientSecret,
		provider.RefCardHMACSecret:   secrets.CardHMACSecret,
		provider.RefVNPayTmnCode:     secrets.VNPayTmnCode,
		provider.RefVNPayHashSecret:  secrets.VNPayHashSecret,
	}
}

// secretSource merges the gateway secrets with the bill provider API keys.
// Only API_KEY_ entries of billProviderKeys are taken.
func secretSource(gateway map[string]string, billProviderKeys string) (provider.Source, error) {
	values := make(map[string]string, len(gateway))
	for ref, v := range gateway {
		values[ref] = v
	}

	if strings.TrimSpace(billProviderKeys) != "" {
		var keys map[string]string
		if err := json.Unmarshal([]byte(billProviderKeys), &keys); err != nil {
			return nil, fmt.Errorf("decode BillProviderKeys: %w", err)
		}
		for ref, v := range keys {
			ref = strings.ToUpper(strings.TrimSpace(ref))
			if strings.HasPrefix(ref, billKeyPrefix) {
				values[ref] = v
			}
		}
	}
	return provider.MapSource(values), nil
}
