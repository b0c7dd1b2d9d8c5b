package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"

	"payoo.app/payment/provider"
)

const maxResponseBytes = 1 << 20

var ErrUpstream = errors.New("transport: upstream call failed")

// Request is one outbound provider call. Body is sent as is.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Caller performs outbound provider calls.
type Caller interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// StatusError is returned for any non-2xx answer.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("transport: upstream answered %d", e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return ErrUpstream
}

// Client is the HTTP Caller. Connecting and waiting for response headers are
// bounded separately; the request context bounds the whole call.
type Client struct {
	http     *http.Client
	timeouts provider.Timeouts
}

func NewClient(timeouts provider.Timeouts) *Client {
	dialer := &net.Dialer{Timeout: timeouts.Connect}
	return &Client{
		http: &http.Client{
			Transport: &http.Transport{
				Proxy:                 http.ProxyFromEnvironment,
				DialContext:           dialer.DialContext,
				TLSHandshakeTimeout:   timeouts.Connect,
				ResponseHeaderTimeout: timeouts.Read,
				MaxIdleConnsPerHost:   10,
			},
		},
		timeouts: timeouts,
	}
}

func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeouts.Connect+c.timeouts.Read)
		defer cancel()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, bytes.NewReader(req.Body))
	if err != nil {
		return nil, fmt.Errorf("transport: build request: %w", err)
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		// url.Error repeats the full URL, query string included.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, fmt.Errorf("%w: %s %s: %w", ErrUpstream, req.Method, redactQuery(req.URL), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrUpstream, err)
	}

	out := &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: body}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return out, &StatusError{StatusCode: resp.StatusCode, Body: body}
	}
	return out, nil
}

// JSONRequest encodes v as the body of a JSON request.
func JSONRequest(method, target string, v any) (*Request, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("transport: encode body: %w", err)
	}
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	h.Set("Accept", "application/json")
	return &Request{Method: method, URL: target, Header: h, Body: body}, nil
}

// FormRequest builds a form-encoded POST.
func FormRequest(target string, form url.Values) *Request {
	h := http.Header{}
	h.Set("Content-Type", "application/x-www-form-urlencoded")
	h.Set("Accept", "application/json")
	return &Request{Method: http.MethodPost, URL: target, Header: h, Body: []byte(form.Encode())}
}

func redactQuery(raw string) string {
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		return raw[:i]
	}
	return raw
}
