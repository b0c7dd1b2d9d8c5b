package callback

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"slices"
)

var ErrMalformedPayload = errors.New("callback: malformed payload")

// Payload is a flat callback body. Values keep the exact text they were sent with:
// strings are unquoted, numbers and booleans are kept verbatim, nested values are
// kept as raw JSON and null is empty.
type Payload struct {
	keys   []string
	values map[string]string
}

// NewPayload builds a payload from alternating key, value arguments.
func NewPayload(kv ...string) Payload {
	p := Payload{values: make(map[string]string, len(kv)/2)}
	for i := 0; i+1 < len(kv); i += 2 {
		if _, ok := p.values[kv[i]]; !ok {
			p.keys = append(p.keys, kv[i])
		}
		p.values[kv[i]] = kv[i+1]
	}
	return p
}

// ParsePayload decodes a JSON object body. Duplicate keys are rejected.
func ParsePayload(body []byte) (Payload, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return Payload{}, fmt.Errorf("%w: not an object", ErrMalformedPayload)
	}

	p := Payload{values: make(map[string]string)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Payload{}, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
		}
		key := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return Payload{}, fmt.Errorf("%w: field %q: %w", ErrMalformedPayload, key, err)
		}
		if _, dup := p.values[key]; dup {
			return Payload{}, fmt.Errorf("%w: duplicate field %q", ErrMalformedPayload, key)
		}
		value, err := rawText(raw)
		if err != nil {
			return Payload{}, fmt.Errorf("%w: field %q: %w", ErrMalformedPayload, key, err)
		}
		p.keys = append(p.keys, key)
		p.values[key] = value
	}

	if _, err := dec.Token(); err != nil {
		return Payload{}, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	if dec.More() {
		return Payload{}, fmt.Errorf("%w: trailing data", ErrMalformedPayload)
	}
	return p, nil
}

// PayloadFromQuery builds a payload from a query string callback. Keys are kept
// sorted. A key sent more than once is rejected.
func PayloadFromQuery(q url.Values) (Payload, error) {
	p := Payload{values: make(map[string]string, len(q))}
	for key, vs := range q {
		if len(vs) != 1 {
			return Payload{}, fmt.Errorf("%w: duplicate field %q", ErrMalformedPayload, key)
		}
		p.keys = append(p.keys, key)
		p.values[key] = vs[0]
	}
	slices.Sort(p.keys)
	return p, nil
}

func rawText(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	switch {
	case len(raw) == 0:
		return "", nil
	case raw[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	case bytes.Equal(raw, []byte("null")):
		return "", nil
	default:
		return string(raw), nil
	}
}

// Get returns the value of key as received.
func (p Payload) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Value returns the value of key, or "" when absent.
func (p Payload) Value(key string) string {
	return p.values[key]
}

// Keys returns the field names in the order they were received.
func (p Payload) Keys() []string {
	return append([]string(nil), p.keys...)
}

// Query returns the payload as query values.
func (p Payload) Query() url.Values {
	q := make(url.Values, len(p.keys))
	for _, k := range p.keys {
		q.Set(k, p.values[k])
	}
	return q
}

func (p Payload) Len() int {
	return len(p.keys)
}
