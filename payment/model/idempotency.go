package model

import (
	"encoding/json"
	"time"
)

type IdempotencyKey struct {
	Endpoint string
	Key      string
}

type IdempotencyState string

const (
	IdempotencyProcessing IdempotencyState = "processing"
	IdempotencyCompleted  IdempotencyState = "completed"
)

// IdempotencyEntry is the cached state of one idempotent request.
type IdempotencyEntry struct {
	State     IdempotencyState `json:"state"`
	BodyHash  string           `json:"body_hash"`
	Response  json.RawMessage  `json:"response,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
