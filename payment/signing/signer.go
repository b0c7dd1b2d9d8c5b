package signing

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"hash"
)

// Algorithm selects the hash under the HMAC. The zero value is SHA-256.
type Algorithm int

const (
	SHA256 Algorithm = iota
	SHA512
)

func (a Algorithm) String() string {
	switch a {
	case SHA256:
		return "sha256"
	case SHA512:
		return "sha512"
	default:
		return "unknown"
	}
}

func (a Algorithm) hash() (func() hash.Hash, bool) {
	switch a {
	case SHA256:
		return sha256.New, true
	case SHA512:
		return sha512.New, true
	default:
		return nil, false
	}
}

// Encoding selects how a MAC is rendered on the wire.
type Encoding int

const (
	EncodingHex Encoding = iota
	EncodingBase64
)

func (e Encoding) String() string {
	switch e {
	case EncodingHex:
		return "hex"
	case EncodingBase64:
		return "base64"
	default:
		return "unknown"
	}
}

// Secret is a shared HMAC key. It never prints its value.
type Secret string

func (s Secret) String() string {
	if s == "" {
		return "<empty>"
	}
	return "<redacted>"
}

// GoString keeps %#v from leaking the key as well.
func (s Secret) GoString() string {
	return s.String()
}

// Sign computes HMAC-SHA256 over the UTF-8 bytes of canonical and renders it with enc.
func Sign(canonical string, secret Secret, enc Encoding) (string, error) {
	return SignWith(SHA256, canonical, secret, enc)
}

// SignWith is Sign with the HMAC hash chosen by alg.
func SignWith(alg Algorithm, canonical string, secret Secret, enc Encoding) (string, error) {
	if secret == "" {
		return "", ErrMissingSecret
	}
	h, ok := alg.hash()
	if !ok {
		return "", ErrUnknownAlgorithm
	}
	return encode(sum(h, canonical, secret), enc), nil
}

// Verify recomputes the signature of canonical and compares it with provided in
// constant time. Any malformed input yields false.
func Verify(canonical string, secret Secret, provided string, enc Encoding) bool {
	return VerifyWith(SHA256, canonical, secret, provided, enc)
}

// VerifyWith is Verify with the HMAC hash chosen by alg.
func VerifyWith(alg Algorithm, canonical string, secret Secret, provided string, enc Encoding) bool {
	if secret == "" || provided == "" {
		return false
	}
	if enc != EncodingHex && enc != EncodingBase64 {
		return false
	}
	h, ok := alg.hash()
	if !ok {
		return false
	}
	expected := encode(sum(h, canonical, secret), enc)
	return hmac.Equal([]byte(expected), []byte(provided))
}

func sum(h func() hash.Hash, canonical string, secret Secret) []byte {
	mac := hmac.New(h, []byte(secret))
	mac.Write([]byte(canonical))
	return mac.Sum(nil)
}

func encode(b []byte, enc Encoding) string {
	if enc == EncodingBase64 {
		return base64.StdEncoding.EncodeToString(b)
	}
	return hex.EncodeToString(b)
}
