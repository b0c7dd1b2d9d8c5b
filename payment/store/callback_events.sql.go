package store

import (
	"context"
)

const createCallbackEvent = `-- name: CreateCallbackEvent :one
INSERT INTO callback_events (gateway, order_id, provider_trans_id, result_code, success)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, gateway, order_id, provider_trans_id, result_code, success, received_at
`

type CreateCallbackEventParams struct {
	Gateway         string `json:"gateway"`
	OrderID         string `json:"order_id"`
	ProviderTransID string `json:"provider_trans_id"`
	ResultCode      string `json:"result_code"`
	Success         bool   `json:"success"`
}

func (q *Queries) CreateCallbackEvent(ctx context.Context, arg CreateCallbackEventParams) (CallbackEvent, error) {
	row := q.db.QueryRow(ctx, createCallbackEvent,
		arg.Gateway,
		arg.OrderID,
		arg.ProviderTransID,
		arg.ResultCode,
		arg.Success,
	)
	var i CallbackEvent
	err := row.Scan(
		&i.ID,
		&i.Gateway,
		&i.OrderID,
		&i.ProviderTransID,
		&i.ResultCode,
		&i.Success,
		&i.ReceivedAt,
	)
	return i, err
}
