package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"payoo.app/payment/model"
)

const Header = "X-Idempotency-Key"

type entryStore interface {
	Get(ctx context.Context, key model.IdempotencyKey) (model.IdempotencyEntry, error)
	Set(ctx context.Context, key model.IdempotencyKey, val model.IdempotencyEntry) error
	SetIfNotExists(ctx context.Context, key model.IdempotencyKey, val model.IdempotencyEntry) error
	Delete(ctx context.Context, keys ...model.IdempotencyKey) (int, error)
}

var entries entryStore = IdempotencyCache

//encore:middleware target=tag:idempotency
func IdempotencyMiddleware(req middleware.Request, next middleware.Next) middleware.Response {
	return handle(req, next, entries, time.Now)
}

// handle de-duplicates requests that carry an idempotency key. Requests without
// one go straight to next.
func handle(req middleware.Request, next middleware.Next, store entryStore, now func() time.Time) middleware.Response {
	key := extractIdempotencyKey(req)
	if key == "" {
		return next(req)
	}

	ctx := req.Context()
	cacheKey := model.IdempotencyKey{Endpoint: req.Data().Endpoint, Key: key}
	bodyHash := generateBodyHash(req)

	err := store.SetIfNotExists(ctx, cacheKey, model.IdempotencyEntry{
		State:     model.IdempotencyProcessing,
		BodyHash:  bodyHash,
		CreatedAt: now(),
	})
	if err == nil {
		return process(ctx, req, next, store, cacheKey, bodyHash, now)
	}
	if !errors.Is(err, cache.KeyExists) {
		rlog.Error("failed to mark request as processing", "error", err, "endpoint", cacheKey.Endpoint)
		return middleware.Response{Err: model.InternalError()}
	}

	entry, err := store.Get(ctx, cacheKey)
	if err != nil {
		if errors.Is(err, cache.Miss) {
			// Expired or cleared between the two calls.
			return handle(req, next, store, now)
		}
		rlog.Error("failed to check idempotency", "error", err, "endpoint", cacheKey.Endpoint)
		return middleware.Response{Err: model.InternalError()}
	}
	return handleExistingEntry(req, next, entry, bodyHash, key)
}

func process(ctx context.Context, req middleware.Request, next middleware.Next, store entryStore, cacheKey model.IdempotencyKey, bodyHash string, now func() time.Time) middleware.Response {
	resp := next(req)
	if resp.Err != nil {
		// Failed requests may be retried with the same key.
		if _, err := store.Delete(ctx, cacheKey); err != nil {
			rlog.Error("failed to clear failed request from cache", "error", err, "endpoint", cacheKey.Endpoint)
		}
		return resp
	}

	completed := model.IdempotencyEntry{
		State:     model.IdempotencyCompleted,
		BodyHash:  bodyHash,
		UpdatedAt: now(),
	}
	if resp.Payload != nil {
		payload, err := json.Marshal(resp.Payload)
		if err != nil {
			rlog.Error("failed to marshal response payload for caching", "error", err, "endpoint", cacheKey.Endpoint)
			return resp
		}
		completed.Response = payload
	}
	if err := store.Set(ctx, cacheKey, completed); err != nil {
		rlog.Error("failed to cache response", "error", err, "endpoint", cacheKey.Endpoint)
	}
	return resp
}

func extractIdempotencyKey(req middleware.Request) string {
	headers := req.Data().Headers
	if headers == nil {
		return ""
	}
	return strings.TrimSpace(headers.Get(Header))
}

func generateBodyHash(req middleware.Request) string {
	payload := req.Data().Payload
	if payload == nil {
		return ""
	}
	body, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("failed to marshal request body", "error", err)
		return ""
	}
	return hashing(body)
}

func handleExistingEntry(req middleware.Request, next middleware.Next, entry model.IdempotencyEntry, bodyHash, key string) middleware.Response {
	if err := validateBodyHash(entry, bodyHash); err != nil {
		return middleware.Response{Err: err}
	}

	switch entry.State {
	case model.IdempotencyProcessing:
		rlog.Info("concurrent request detected", "key", key)
		return middleware.Response{Err: &errs.Error{Code: errs.Aborted, Message: "request is already being processed"}}
	case model.IdempotencyCompleted:
		return replay(req, next, entry, key)
	default:
		rlog.Warn("unknown idempotency state, processing as new request", "key", key, "state", entry.State)
		return next(req)
	}
}

func validateBodyHash(entry model.IdempotencyEntry, bodyHash string) *errs.Error {
	if bodyHash != "" && entry.BodyHash != "" && bodyHash != entry.BodyHash {
		return model.ValidationError("idempotency key conflict: request body does not match previous request")
	}
	return nil
}

// replay answers with the cached response, decoded into the endpoint's response type.
func replay(req middleware.Request, next middleware.Next, entry model.IdempotencyEntry, key string) middleware.Response {
	if len(entry.Response) > 0 {
		if api := req.Data().API; api != nil && api.ResponseType != nil {
			out := reflect.New(api.ResponseType.Elem()).Interface()
			err := json.Unmarshal(entry.Response, out)
			if err == nil {
				rlog.Info("returning cached response", "key", key)
				return middleware.Response{Payload: out}
			}
			rlog.Error("failed to unmarshal cached response", "error", err, "key", key)
		}
	}
	return next(req)
}

func hashing(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}
