package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"payoo.app/payment/model"
	"payoo.app/payment/provider"
	"payoo.app/payment/signing"
	"payoo.app/payment/transport"
)

var errEmptyToken = errors.New("token response has no access_token")

type bidvCredentials struct {
	clientID string
	secret   signing.Secret
}

type bidvTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type bidvTransferBody struct {
	FromAccount string `json:"fromAccount"`
	ToAccount   string `json:"toAccount"`
	Amount      int64  `json:"amount"`
	Content     string `json:"content"`
	BankCode    string `json:"bankCode"`
}

type bidvTransferResponse struct {
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
	Message       string `json:"message"`
}

// BIDVTransfer authenticates with an OAuth token and submits a signed transfer.
func (b *business) BIDVTransfer(ctx context.Context, req *model.BIDVTransferRequest) (*model.BIDVTransferResult, error) {
	creds, err := b.bidvCredentials()
	if err != nil {
		return nil, configurationFailure(provider.BIDV, err)
	}
	endpoint, err := b.registry.ResolveEndpoint(provider.BIDV, provider.OpBIDVTransfer)
	if err != nil {
		return nil, configurationFailure(provider.BIDV, err)
	}

	token, err := b.bidvToken(ctx, creds)
	if err != nil {
		return nil, upstreamFailure(provider.BIDV, err)
	}

	httpReq, err := transport.JSONRequest(http.MethodPost, endpoint, bidvTransferBody{
		FromAccount: req.FromAccount,
		ToAccount:   req.ToAccount,
		Amount:      req.Amount,
		Content:     req.Content,
		BankCode:    req.BankCode,
	})
	if err != nil {
		return nil, internalFailure("failed to build BIDV transfer", err)
	}
	requestID, err := b.authorizeBIDV(httpReq, creds, token)
	if err != nil {
		return nil, configurationFailure(provider.BIDV, err)
	}

	resp, err := b.caller.Do(ctx, httpReq)
	if err != nil {
		return nil, upstreamFailure(provider.BIDV, err)
	}

	var out bidvTransferResponse
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return nil, upstreamFailure(provider.BIDV, fmt.Errorf("decode transfer response: %w", err))
	}

	return &model.BIDVTransferResult{
		RequestID:     requestID,
		TransactionID: out.TransactionID,
		Status:        out.Status,
		Message:       out.Message,
	}, nil
}

func (b *business) BIDVAccountInfo(ctx context.Context, accountNumber string) (*model.BIDVAccount, error) {
	creds, err := b.bidvCredentials()
	if err != nil {
		return nil, configurationFailure(provider.BIDV, err)
	}
	endpoint, err := b.registry.ResolveEndpoint(provider.BIDV, provider.OpBIDVAccount)
	if err != nil {
		return nil, configurationFailure(provider.BIDV, err)
	}

	token, err := b.bidvToken(ctx, creds)
	if err != nil {
		return nil, upstreamFailure(provider.BIDV, err)
	}

	httpReq := &transport.Request{
		Method: http.MethodGet,
		URL:    provider.ExpandEndpoint(endpoint, map[string]string{"accountNumber": accountNumber}),
		Header: http.Header{"Accept": {"application/json"}},
	}
	if _, err := b.authorizeBIDV(httpReq, creds, token); err != nil {
		return nil, configurationFailure(provider.BIDV, err)
	}

	resp, err := b.caller.Do(ctx, httpReq)
	if err != nil {
		return nil, upstreamFailure(provider.BIDV, err)
	}

	var out model.BIDVAccount
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return nil, upstreamFailure(provider.BIDV, fmt.Errorf("decode account response: %w", err))
	}
	if out.AccountNumber == "" {
		out.AccountNumber = accountNumber
	}
	return &out, nil
}

func (b *business) bidvCredentials() (bidvCredentials, error) {
	secret, err := b.registry.ResolveSecret(provider.BIDV)
	if err != nil {
		return bidvCredentials{}, err
	}
	clientID, err := b.registry.ResolveCredential(provider.BIDV, provider.CredClientID)
	if err != nil {
		return bidvCredentials{}, err
	}
	return bidvCredentials{clientID: clientID, secret: secret}, nil
}

// bidvToken runs the OAuth2 client credentials grant.
func (b *business) bidvToken(ctx context.Context, creds bidvCredentials) (string, error) {
	endpoint, err := b.registry.ResolveEndpoint(provider.BIDV, provider.OpBIDVToken)
	if err != nil {
		return "", err
	}

	resp, err := b.caller.Do(ctx, transport.FormRequest(endpoint, url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {creds.clientID},
		"client_secret": {string(creds.secret)},
	}))
	if err != nil {
		return "", fmt.Errorf("token: %w", err)
	}

	var out bidvTokenResponse
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if out.AccessToken == "" {
		return "", errEmptyToken
	}
	return out.AccessToken, nil
}

// authorizeBIDV sets the bearer token and the signed open API headers on req
// and returns the request id it generated.
func (b *business) authorizeBIDV(req *transport.Request, creds bidvCredentials, token string) (string, error) {
	timestamp := strconv.FormatInt(b.now().UnixMilli(), 10)
	raw, err := signing.BIDVRequest(string(req.Body), timestamp, creds.clientID)
	if err != nil {
		return "", err
	}
	signature, err := b.sign(provider.BIDV, raw, creds.secret)
	if err != nil {
		return "", err
	}

	requestID := b.newRequestID()
	if req.Header == nil {
		req.Header = http.Header{}
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-IBM-Client-Id", creds.clientID)
	req.Header.Set("X-Timestamp", timestamp)
	req.Header.Set("X-Signature", signature)
	req.Header.Set("X-Request-ID", requestID)
	return requestID, nil
}
