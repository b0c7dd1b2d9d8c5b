package bill

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"encore.dev/rlog"

	"payoo.app/payment/model"
	"payoo.app/payment/provider"
	"payoo.app/payment/transport"
)

const merchantCode = "PAYOO"

var (
	errMissingParam  = errors.New("missing required parameter")
	errNoSuccessMark = errors.New("response has no success marker")
)

func (b *business) Lookup(ctx context.Context, query model.BillQuery) *model.BillRecord {
	record, err := b.lookupLive(ctx, query)
	if err != nil {
		rlog.Warn("bill lookup fell back to synthetic data",
			"reason", err.Error(),
			"bill_type", query.BillType,
			"provider", query.Provider,
		)
		return b.synthetic(query)
	}
	return record
}

func (b *business) lookupLive(ctx context.Context, query model.BillQuery) (*model.BillRecord, error) {
	op := provider.OperationKind(query.BillType)
	if !provider.IsBillOperation(op) {
		return nil, fmt.Errorf("%w: %s", provider.ErrUnknownOperation, query.BillType)
	}

	res, err := b.registry.Lookup(query.Provider, op)
	if err != nil {
		return nil, err
	}
	if res.FellBack {
		rlog.Info("unknown bill provider, using default", "requested", res.Requested, "provider", res.Config.ID, "bill_type", op)
	}

	params := map[string]string{
		"customerCode": query.CustomerCode,
		"phoneNumber":  query.PhoneNumber,
	}
	for _, name := range res.Config.RequiredParams {
		if params[name] == "" {
			return nil, fmt.Errorf("%w: %s", errMissingParam, name)
		}
	}

	apiKey, err := b.registry.ResolveSecret(res.Config.ID)
	if err != nil {
		return nil, err
	}

	body := lookupRequest{
		CustomerCode: query.CustomerCode,
		BillType:     string(query.BillType),
		Timestamp:    b.now().UnixMilli(),
		PhoneNumber:  query.PhoneNumber,
	}
	req, err := transport.JSONRequest(http.MethodPost, res.Config.Endpoints[op], body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+string(apiKey))
	req.Header.Set("X-Merchant-Code", merchantCode)

	timeouts := b.registry.Timeouts()
	ctx, cancel := context.WithTimeout(ctx, timeouts.Connect+timeouts.Read)
	defer cancel()

	resp, err := b.caller.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	fields, err := parseResponse(resp.Body)
	if err != nil {
		return nil, err
	}
	return b.assemble(query, fields), nil
}

type lookupRequest struct {
	CustomerCode string `json:"customerCode"`
	BillType     string `json:"billType"`
	Timestamp    int64  `json:"timestamp"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
}

// assemble fills every field the provider left out from the synthetic record.
func (b *business) assemble(query model.BillQuery, live parsedFields) *model.BillRecord {
	fallback := b.syntheticFields(query)

	f := model.BillFields{
		CustomerName: live.customerName,
		Address:      live.address,
		Period:       live.period,
		DueDate:      live.dueDate,
		Amount:       fallback.Amount,
	}
	if f.CustomerName == "" {
		f.CustomerName = fallback.CustomerName
	}
	if f.Address == "" {
		f.Address = fallback.Address
	}
	if f.Period == "" {
		f.Period = fallback.Period
	}
	if f.DueDate == "" {
		f.DueDate = fallback.DueDate
	}
	if live.hasAmount {
		f.Amount = live.amount
	}
	return model.NewBillRecord(query, f, model.BillSourceLive)
}
