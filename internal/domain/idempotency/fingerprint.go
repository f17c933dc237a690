package idempotency

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"unicode"
)

var (
	ErrKeyEmpty   = errors.New("idempotency key is empty")
	ErrKeyTooLong = errors.New("idempotency key is too long")
	ErrKeyInvalid = errors.New("idempotency key contains invalid characters")
)

func ValidateKey(key string, maxLen int) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrKeyEmpty
	}
	if maxLen > 0 && len(key) > maxLen {
		return ErrKeyTooLong
	}
	for _, r := range key {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return ErrKeyInvalid
		}
	}
	return nil
}

// NormalizeBody canonicalizes a JSON body (key order, whitespace) so semantically equal
// requests fingerprint identically. Non-JSON bodies are only trimmed.
func NormalizeBody(body []byte) []byte {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil || dec.More() {
		return trimmed
	}

	// encoding/json sorts map keys, which is the canonical form we need
	normalized, err := json.Marshal(v)
	if err != nil {
		return trimmed
	}
	return normalized
}

// Fingerprint hashes the request's semantic parts, each length-prefixed so parts cannot bleed into each other.
func Fingerprint(method, path string, body []byte) string {
	h := sha256.New()
	for _, part := range [][]byte{[]byte(strings.ToUpper(method)), []byte(path), NormalizeBody(body)} {
		var lenBuf [8]byte
		n := len(part)
		for i := 7; i >= 0; i-- {
			lenBuf[i] = byte(n)
			n >>= 8
		}
		h.Write(lenBuf[:])
		h.Write(part)
	}
	return hex.EncodeToString(h.Sum(nil))
}
