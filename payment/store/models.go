package store

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Transaction struct {
	ID           string             `json:"id"`
	Status       string             `json:"status"`
	Amount       int64              `json:"amount"`
	MaskedCard   string             `json:"masked_card"`
	CustomerCode string             `json:"customer_code"`
	BillType     string             `json:"bill_type"`
	Signature    string             `json:"signature"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
}

type GatewayOrder struct {
	OrderID    string             `json:"order_id"`
	Gateway    string             `json:"gateway"`
	Amount     int64              `json:"amount"`
	BillCode   string             `json:"bill_code"`
	Status     string             `json:"status"`
	WorkflowID pgtype.Text        `json:"workflow_id"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
	UpdatedAt  pgtype.Timestamptz `json:"updated_at"`
}

type CallbackEvent struct {
	ID              int64              `json:"id"`
	Gateway         string             `json:"gateway"`
	OrderID         string             `json:"order_id"`
	ProviderTransID string             `json:"provider_trans_id"`
	ResultCode      string             `json:"result_code"`
	Success         bool               `json:"success"`
	ReceivedAt      pgtype.Timestamptz `json:"received_at"`
}
