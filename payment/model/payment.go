package model

import "time"

type PaymentStatus string

const (
	PaymentStatusSuccess PaymentStatus = "SUCCESS"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

type PaymentRequest struct {
	CardNumber   string   `json:"cardNumber"`
	CardHolder   string   `json:"cardHolder"`
	ExpMonth     string   `json:"expMonth"`
	ExpYear      string   `json:"expYear"`
	CVV          string   `json:"cvv"`
	Amount       int64    `json:"amount"`
	CustomerCode string   `json:"customerCode"`
	BillType     BillType `json:"billType"`
}

type PaymentResult struct {
	TransactionID    string        `json:"transactionId"`
	Status           PaymentStatus `json:"status"`
	Message          string        `json:"message"`
	Amount           int64         `json:"amount"`
	MaskedCard       string        `json:"maskedCard"`
	Signature        string        `json:"signature"`
	Timestamp        string        `json:"timestamp"`
	ProcessingTimeMs int64         `json:"processingTimeMs"`
}

// Transaction is a recorded card payment.
type Transaction struct {
	ID           string
	Status       PaymentStatus
	Amount       int64
	MaskedCard   string
	CustomerCode string
	BillType     BillType
	Signature    string
	CreatedAt    time.Time
}

type PaymentStatusResult struct {
	TransactionID string        `json:"transactionId"`
	Status        PaymentStatus `json:"status"`
	Timestamp     string        `json:"timestamp"`
}
