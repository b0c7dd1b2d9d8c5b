package store

import (
	"context"
)

const createTransaction = `-- name: CreateTransaction :one
INSERT INTO transactions (id, status, amount, masked_card, customer_code, bill_type, signature)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, status, amount, masked_card, customer_code, bill_type, signature, created_at
`

type CreateTransactionParams struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	Amount       int64  `json:"amount"`
	MaskedCard   string `json:"masked_card"`
	CustomerCode string `json:"customer_code"`
	BillType     string `json:"bill_type"`
	Signature    string `json:"signature"`
}

func (q *Queries) CreateTransaction(ctx context.Context, arg CreateTransactionParams) (Transaction, error) {
	row := q.db.QueryRow(ctx, createTransaction,
		arg.ID,
		arg.Status,
		arg.Amount,
		arg.MaskedCard,
		arg.CustomerCode,
		arg.BillType,
		arg.Signature,
	)
	var i Transaction
	err := row.Scan(
		&i.ID,
		&i.Status,
		&i.Amount,
		&i.MaskedCard,
		&i.CustomerCode,
		&i.BillType,
		&i.Signature,
		&i.CreatedAt,
	)
	return i, err
}

const getTransaction = `-- name: GetTransaction :one
SELECT id, status, amount, masked_card, customer_code, bill_type, signature, created_at
FROM transactions
WHERE id = $1
`

func (q *Queries) GetTransaction(ctx context.Context, id string) (Transaction, error) {
	row := q.db.QueryRow(ctx, getTransaction, id)
	var i Transaction
	err := row.Scan(
		&i.ID,
		&i.Status,
		&i.Amount,
		&i.MaskedCard,
		&i.CustomerCode,
		&i.BillType,
		&i.Signature,
		&i.CreatedAt,
	)
	return i, err
}
