package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strings"

	"retail-ops-core/internal/pkg/errs"
)

const (
	HeaderHmacSHA256 = "X-Shopify-Hmac-Sha256"
	HeaderTopic      = "X-Shopify-Topic"
)

// Sign returns the base64 HMAC-SHA256 of body, the encoding Shopify sends.
func Sign(secret, body []byte) string {
	return base64.StdEncoding.EncodeToString(mac(secret, body))
}

// VerifySignature fails closed: an empty secret, a missing header or an undecodable
// signature all count as a mismatch. Base64 and hex encodings are accepted.
func VerifySignature(secret, body []byte, signature string) error {
	signature = strings.TrimSpace(signature)
	if len(secret) == 0 {
		return errs.Wrap(errs.ErrWebhookSignatureInvalid, "webhook secret not configured")
	}
	if signature == "" {
		return errs.Wrap(errs.ErrWebhookSignatureInvalid, "signature header missing")
	}

	expected := mac(secret, body)
	for _, decode := range []func(string) ([]byte, error){base64.StdEncoding.DecodeString, hex.DecodeString} {
		got, err := decode(signature)
		if err != nil || len(got) != len(expected) {
			continue
		}
		if hmac.Equal(got, expected) {
			return nil
		}
	}
	return errs.Wrap(errs.ErrWebhookSignatureInvalid, "signature mismatch")
}

func mac(secret, body []byte) []byte {
	h := hmac.New(sha256.New, secret)
	h.Write(body)
	return h.Sum(nil)
}
