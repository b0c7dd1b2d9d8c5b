package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createGatewayOrder = `-- name: CreateGatewayOrder :one
INSERT INTO gateway_orders (order_id, gateway, amount, bill_code, status, workflow_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING order_id, gateway, amount, bill_code, status, workflow_id, created_at, updated_at
`

type CreateGatewayOrderParams struct {
	OrderID    string      `json:"order_id"`
	Gateway    string      `json:"gateway"`
	Amount     int64       `json:"amount"`
	BillCode   string      `json:"bill_code"`
	Status     string      `json:"status"`
	WorkflowID pgtype.Text `json:"workflow_id"`
}

func (q *Queries) CreateGatewayOrder(ctx context.Context, arg CreateGatewayOrderParams) (GatewayOrder, error) {
	row := q.db.QueryRow(ctx, createGatewayOrder,
		arg.OrderID,
		arg.Gateway,
		arg.Amount,
		arg.BillCode,
		arg.Status,
		arg.WorkflowID,
	)
	var i GatewayOrder
	err := row.Scan(
		&i.OrderID,
		&i.Gateway,
		&i.Amount,
		&i.BillCode,
		&i.Status,
		&i.WorkflowID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getGatewayOrder = `-- name: GetGatewayOrder :one
SELECT order_id, gateway, amount, bill_code, status, workflow_id, created_at, updated_at
FROM gateway_orders
WHERE order_id = $1
`

func (q *Queries) GetGatewayOrder(ctx context.Context, orderID string) (GatewayOrder, error) {
	row := q.db.QueryRow(ctx, getGatewayOrder, orderID)
	var i GatewayOrder
	err := row.Scan(
		&i.OrderID,
		&i.Gateway,
		&i.Amount,
		&i.BillCode,
		&i.Status,
		&i.WorkflowID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getGatewayOrderForUpdate = `-- name: GetGatewayOrderForUpdate :one
SELECT order_id, gateway, amount, bill_code, status, workflow_id, created_at, updated_at
FROM gateway_orders
WHERE order_id = $1
FOR UPDATE
`

func (q *Queries) GetGatewayOrderForUpdate(ctx context.Context, orderID string) (GatewayOrder, error) {
	row := q.db.QueryRow(ctx, getGatewayOrderForUpdate, orderID)
	var i GatewayOrder
	err := row.Scan(
		&i.OrderID,
		&i.Gateway,
		&i.Amount,
		&i.BillCode,
		&i.Status,
		&i.WorkflowID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateGatewayOrderStatus = `-- name: UpdateGatewayOrderStatus :one
UPDATE gateway_orders
SET status = $2, updated_at = NOW()
WHERE order_id = $1
RETURNING order_id, gateway, amount, bill_code, status, workflow_id, created_at, updated_at
`

type UpdateGatewayOrderStatusParams struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

func (q *Queries) UpdateGatewayOrderStatus(ctx context.Context, arg UpdateGatewayOrderStatusParams) (GatewayOrder, error) {
	row := q.db.QueryRow(ctx, updateGatewayOrderStatus, arg.OrderID, arg.Status)
	var i GatewayOrder
	err := row.Scan(
		&i.OrderID,
		&i.Gateway,
		&i.Amount,
		&i.BillCode,
		&i.Status,
		&i.WorkflowID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
