package hpp

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSign(t *testing.T) {
	secret := []byte("secret")

	t.Run("setup signature of the reference session", func(t *testing.T) {
		fields := map[string]string{
			"paymentAmount":     "4599",
			"currencyCode":      "EUR",
			"shipBeforeDate":    "2015-02-17",
			"merchantReference": "1",
			"skinCode":          "abc123",
			"merchantAccount":   "account",
			"sessionValidity":   "2015-02-15T14:45:10+00:00",
			"resURL":            "https://my-domain.com/payment-result/order-123/",
		}
		assert.Equal(t, "dRL230J0a3Um9W6YTnBtVYHtFf0=", SetupSignature(fields, secret))
	})

	t.Run("result signature of the mock result", func(t *testing.T) {
		fields := map[string]string{
			"authResult":         "AUTHORISED",
			"pspReference":       "mockreference",
			"merchantReference":  "1",
			"skinCode":           "abc123",
			"merchantReturnData": "",
			"paymentMethod":      "visa",
		}
		assert.Equal(t, "nnOlck0P2obLtH/F/UXce3MG750=", ResultSignature(fields, secret))
	})

	t.Run("absent keys sign as empty strings in order", func(t *testing.T) {
		fields := map[string]string{"b": "2", "c": "3"}
		mac := hmac.New(sha1.New, secret)
		mac.Write([]byte("23"))
		want := base64.StdEncoding.EncodeToString(mac.Sum(nil))
		assert.Equal(t, want, Sign([]string{"a", "b", "zz", "c"}, fields, secret))
	})

	t.Run("deterministic", func(t *testing.T) {
		fields := map[string]string{"authResult": "REFUSED", "merchantReference": "42"}
		assert.Equal(t, ResultSignature(fields, secret), ResultSignature(fields, secret))
	})

	t.Run("key order matters", func(t *testing.T) {
		fields := map[string]string{"a": "x", "b": "y"}
		assert.NotEqual(t, Sign([]string{"a", "b"}, fields, secret), Sign([]string{"b", "a"}, fields, secret))
	})
}

func TestVerify(t *testing.T) {
	secret := []byte("secret")
	fields := map[string]string{
		"authResult":        "AUTHORISED",
		"pspReference":      "8813",
		"merchantReference": "100-7",
		"skinCode":          "abc123",
	}
	sig := ResultSignature(fields, secret)
	require.True(t, Verify(ResultSignatureKeys, fields, secret, sig))

	for i := range sig {
		mutated := []byte(sig)
		if mutated[i] == 'A' {
			mutated[i] = 'B'
		} else {
			mutated[i] = 'A'
		}
		assert.False(t, Verify(ResultSignatureKeys, fields, secret, string(mutated)), "mutation at %d verified", i)
	}

	assert.False(t, Verify(ResultSignatureKeys, fields, []byte("other"), sig))
	assert.False(t, VerifyResultSignature(fields, secret, ""))
}
