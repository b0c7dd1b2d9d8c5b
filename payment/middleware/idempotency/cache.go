package idempotency

import (
	"time"

	"encore.dev/storage/cache"

	"payoo.app/payment/model"
)

const entryExpiry = 24 * time.Hour

// IdempotencyCluster is the cache cluster for idempotency
var IdempotencyCluster = cache.NewCluster("payment-idempotency", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// IdempotencyCache holds one entry per endpoint and idempotency key.
var IdempotencyCache = cache.NewStructKeyspace[model.IdempotencyKey, model.IdempotencyEntry](
	IdempotencyCluster,
	cache.KeyspaceConfig{
		KeyPattern:    "idempotency/:Endpoint/:Key",
		DefaultExpiry: cache.ExpireIn(entryExpiry),
	},
)
