package store

import (
	"context"
)

type Querier interface {
	CreateCallbackEvent(ctx context.Context, arg CreateCallbackEventParams) (CallbackEvent, error)
	CreateGatewayOrder(ctx context.Context, arg CreateGatewayOrderParams) (GatewayOrder, error)
	CreateTransaction(ctx context.Context, arg CreateTransactionParams) (Transaction, error)
	GetGatewayOrder(ctx context.Context, orderID string) (GatewayOrder, error)
	GetGatewayOrderForUpdate(ctx context.Context, orderID string) (GatewayOrder, error)
	GetTransaction(ctx context.Context, id string) (Transaction, error)
	UpdateGatewayOrderStatus(ctx context.Context, arg UpdateGatewayOrderStatusParams) (GatewayOrder, error)
}

var _ Querier = (*Queries)(nil)
