package provider

import (
	"maps"
	"slices"
	"strings"
)

// Source looks up the value of a secret reference.
type Source func(ref string) (string, bool)

// MapSource serves secrets from an in-memory map.
func MapSource(m map[string]string) Source {
	return func(ref string) (string, bool) {
		v, ok := m[ref]
		return v, ok
	}
}

// Secrets is the set of secret values loaded once at startup.
type Secrets struct {
	values map[string]string
}

// LoadSecrets reads every ref from source. Empty values count as absent.
func LoadSecrets(source Source, refs []string) Secrets {
	s := Secrets{values: make(map[string]string, len(refs))}
	for _, ref := range refs {
		if v, ok := source(ref); ok && v != "" {
			s.values[ref] = v
		}
	}
	return s
}

// Get returns the value of ref.
func (s Secrets) Get(ref string) (string, bool) {
	v, ok := s.values[ref]
	return v, ok
}

// SecretRefs lists every secret and credential reference the configs use, sorted.
func SecretRefs(configs []Config) []string {
	seen := make(map[string]struct{})
	for _, c := range configs {
		for _, ref := range []string{c.SecretRef, c.CallbackSecretRef} {
			if ref != "" {
				seen[ref] = struct{}{}
			}
		}
		for _, ref := range c.CredentialRefs {
			seen[ref] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}

// BillAPIKeyRef is the secret reference of a bill provider's API key,
// e.g. API_KEY_ELECTRIC_EVN.
func BillAPIKeyRef(op OperationKind, providerID string) string {
	return "API_KEY_" + strings.ToUpper(string(op)) + "_" + normalizeID(providerID)
}
