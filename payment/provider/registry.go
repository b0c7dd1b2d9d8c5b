package provider

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"
	"time"

	"payoo.app/payment/signing"
)

// OperationKind names one kind of outbound call. Bill lookups use the bill type.
type OperationKind string

const (
	OpElectricBill  OperationKind = "electric"
	OpWaterBill     OperationKind = "water"
	OpTelecomBill   OperationKind = "telecom"
	OpInternetBill  OperationKind = "internet"
	OpMoMoCreate    OperationKind = "momo.create"
	OpZaloPayCreate OperationKind = "zalopay.create"
	OpBIDVToken     OperationKind = "bidv.token"
	OpBIDVTransfer  OperationKind = "bidv.transfer"
	OpBIDVAccount   OperationKind = "bidv.account"
	OpVNPayPay      OperationKind = "vnpay.pay"
)

// Config is one provider's integration contract. Algorithm is the HMAC hash
// of its signatures, SHA-256 unless set.
type Config struct {
	ID                string
	Name              string
	Endpoints         map[OperationKind]string
	SecretRef         string
	CallbackSecretRef string
	CredentialRefs    map[string]string
	RequiredParams    []string
	Encoding          signing.Encoding
	Algorithm         signing.Algorithm
}

// Serves reports whether the provider has an endpoint for op.
func (c Config) Serves(op OperationKind) bool {
	_, ok := c.Endpoints[op]
	return ok
}

func (c Config) clone() Config {
	c.Endpoints = maps.Clone(c.Endpoints)
	c.CredentialRefs = maps.Clone(c.CredentialRefs)
	c.RequiredParams = slices.Clone(c.RequiredParams)
	return c
}

// Timeouts bound every outbound provider call.
type Timeouts struct {
	Connect time.Duration
	Read    time.Duration
}

var DefaultTimeouts = Timeouts{
	Connect: 10 * time.Second,
	Read:    30 * time.Second,
}

// Resolution is the outcome of a provider lookup. Requested differs from
// Config.ID when the lookup fell back to the default provider of the operation.
type Resolution struct {
	Config    Config
	Requested string
	FellBack  bool
}

// Listing is a provider as shown to callers choosing who to pay.
type Listing struct {
	ID      string
	Name    string
	Default bool
}

// Registry is the immutable provider table built once at startup.
// All methods are safe for concurrent use.
type Registry struct {
	providers map[string]Config
	order     []string
	defaults  map[OperationKind]string
	secrets   Secrets
	timeouts  Timeouts
}

// NewRegistry validates the table and returns a registry over it.
func NewRegistry(configs []Config, defaults map[OperationKind]string, secrets Secrets, timeouts Timeouts) (*Registry, error) {
	r := &Registry{
		providers: make(map[string]Config, len(configs)),
		defaults:  make(map[OperationKind]string, len(defaults)),
		secrets:   secrets,
		timeouts:  timeouts,
	}

	for _, c := range configs {
		id := normalizeID(c.ID)
		if id == "" {
			return nil, fmt.Errorf("provider: empty provider id")
		}
		if _, dup := r.providers[id]; dup {
			return nil, fmt.Errorf("provider: duplicate provider id %s", id)
		}
		c = c.clone()
		c.ID = id
		r.providers[id] = c
		r.order = append(r.order, id)
	}

	for op, id := range defaults {
		id = normalizeID(id)
		c, ok := r.providers[id]
		if !ok {
			return nil, fmt.Errorf("provider: default %s for %s is not registered", id, op)
		}
		if !c.Serves(op) {
			return nil, fmt.Errorf("provider: default %s does not serve %s", id, op)
		}
		r.defaults[op] = id
	}

	return r, nil
}

// Lookup returns the provider that serves op for providerID. An unknown provider,
// or one that does not serve op, resolves to the default provider of op.
func (r *Registry) Lookup(providerID string, op OperationKind) (Resolution, error) {
	requested := normalizeID(providerID)
	if c, ok := r.providers[requested]; ok && c.Serves(op) {
		return Resolution{Config: c.clone(), Requested: requested}, nil
	}

	fallback, ok := r.defaults[op]
	if !ok {
		return Resolution{}, fmt.Errorf("%w: %s", ErrUnknownOperation, op)
	}
	return Resolution{
		Config:    r.providers[fallback].clone(),
		Requested: requested,
		FellBack:  true,
	}, nil
}

// ResolveEndpoint returns the URL (possibly a template, see ExpandEndpoint) for
// (providerID, op), falling back to the default provider of op.
func (r *Registry) ResolveEndpoint(providerID string, op OperationKind) (string, error) {
	res, err := r.Lookup(providerID, op)
	if err != nil {
		return "", err
	}
	return res.Config.Endpoints[op], nil
}

// DefaultProvider returns the provider used when a lookup for op falls back.
func (r *Registry) DefaultProvider(op OperationKind) (string, bool) {
	id, ok := r.defaults[op]
	return id, ok
}

// Providers lists, in table order, the providers that serve op. It is empty for
// an operation nobody serves.
func (r *Registry) Providers(op OperationKind) []Listing {
	var out []Listing
	for _, id := range r.order {
		c := r.providers[id]
		if !c.Serves(op) {
			continue
		}
		name := c.Name
		if name == "" {
			name = c.ID
		}
		out = append(out, Listing{ID: c.ID, Name: name, Default: r.defaults[op] == c.ID})
	}
	return out
}

// ResolveSecret returns the signing or API secret of providerID.
func (r *Registry) ResolveSecret(providerID string) (signing.Secret, error) {
	c, err := r.provider(providerID)
	if err != nil {
		return "", err
	}
	return r.secret(c.ID, c.SecretRef)
}

// ResolveCallbackSecret returns the secret used to verify the provider's callbacks.
// Providers without a dedicated callback secret verify with their signing secret.
func (r *Registry) ResolveCallbackSecret(providerID string) (signing.Secret, error) {
	c, err := r.provider(providerID)
	if err != nil {
		return "", err
	}
	ref := c.CallbackSecretRef
	if ref == "" {
		ref = c.SecretRef
	}
	return r.secret(c.ID, ref)
}

// ResolveCredential returns a named non-signing credential such as a partner code.
func (r *Registry) ResolveCredential(providerID, name string) (string, error) {
	c, err := r.provider(providerID)
	if err != nil {
		return "", err
	}
	ref, ok := c.CredentialRefs[name]
	if !ok {
		return "", &ConfigError{Provider: c.ID, Ref: name, Err: ErrMissingSecret}
	}
	v, ok := r.secrets.Get(ref)
	if !ok {
		return "", &ConfigError{Provider: c.ID, Ref: ref, Err: ErrMissingSecret}
	}
	return v, nil
}

// Encoding returns the signature encoding the provider expects.
func (r *Registry) Encoding(providerID string) (signing.Encoding, error) {
	c, err := r.provider(providerID)
	if err != nil {
		return 0, err
	}
	return c.Encoding, nil
}

// Algorithm returns the HMAC hash the provider signs with.
func (r *Registry) Algorithm(providerID string) (signing.Algorithm, error) {
	c, err := r.provider(providerID)
	if err != nil {
		return 0, err
	}
	return c.Algorithm, nil
}

// RequireSecrets checks that every secret and credential of the given providers is
// present. It is meant to run at startup so a missing gateway secret is fatal.
func (r *Registry) RequireSecrets(providerIDs ...string) error {
	for _, id := range providerIDs {
		c, err := r.provider(id)
		if err != nil {
			return err
		}
		refs := []string{c.SecretRef, c.CallbackSecretRef}
		for _, name := range slices.Sorted(maps.Keys(c.CredentialRefs)) {
			refs = append(refs, c.CredentialRefs[name])
		}
		for _, ref := range refs {
			if ref == "" {
				continue
			}
			if _, ok := r.secrets.Get(ref); !ok {
				return &ConfigError{Provider: c.ID, Ref: ref, Err: ErrMissingSecret}
			}
		}
	}
	return nil
}

// Timeouts returns the outbound call bounds.
func (r *Registry) Timeouts() Timeouts {
	return r.timeouts
}

func (r *Registry) provider(providerID string) (Config, error) {
	id := normalizeID(providerID)
	c, ok := r.providers[id]
	if !ok {
		return Config{}, &ConfigError{Provider: id, Err: ErrUnknownProvider}
	}
	return c, nil
}

func (r *Registry) secret(providerID, ref string) (signing.Secret, error) {
	if ref == "" {
		return "", &ConfigError{Provider: providerID, Err: ErrMissingSecret}
	}
	v, ok := r.secrets.Get(ref)
	if !ok {
		return "", &ConfigError{Provider: providerID, Ref: ref, Err: ErrMissingSecret}
	}
	return signing.Secret(v), nil
}

// ExpandEndpoint substitutes {name} placeholders of an endpoint template with
// path-escaped values.
func ExpandEndpoint(template string, params map[string]string) string {
	out := template
	for _, name := range slices.Sorted(maps.Keys(params)) {
		out = strings.ReplaceAll(out, "{"+name+"}", url.PathEscape(params[name]))
	}
	return out
}

func normalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
