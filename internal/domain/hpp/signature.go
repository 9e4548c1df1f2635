package hpp

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"strings"
)

// SetupSignatureKeys is the field order signed on outbound payment sessions.
var SetupSignatureKeys = []string{
	"paymentAmount", "currencyCode", "shipBeforeDate", "merchantReference",
	"skinCode", "merchantAccount", "sessionValidity", "shopperEmail",
	"shopperReference", "recurringContract", "allowedMethods", "blockedMethods",
	"shopperStatement", "merchantReturnData", "billingAddressType",
	"deliveryAddressType", "shopperType", "offset",
}

// ResultSignatureKeys is the field order signed on redirect-back results.
var ResultSignatureKeys = []string{
	"authResult", "pspReference", "merchantReference", "skinCode", "merchantReturnData",
}

// Sign concatenates the values of keys in order, absent keys contributing an
// empty string, and returns the base64 HMAC-SHA1 of the result.
func Sign(keys []string, fields map[string]string, secret []byte) string {
	var plaintext strings.Builder
	for _, k := range keys {
		plaintext.WriteString(fields[k])
	}
	mac := hmac.New(sha1.New, secret)
	mac.Write([]byte(plaintext.String()))
	return strings.TrimSpace(base64.StdEncoding.EncodeToString(mac.Sum(nil)))
}

// Verify compares in constant time.
func Verify(keys []string, fields map[string]string, secret []byte, expected string) bool {
	computed := Sign(keys, fields, secret)
	return hmac.Equal([]byte(computed), []byte(expected))
}

func SetupSignature(fields map[string]string, secret []byte) string {
	return Sign(SetupSignatureKeys, fields, secret)
}

func ResultSignature(fields map[string]string, secret []byte) string {
	return Sign(ResultSignatureKeys, fields, secret)
}

func VerifyResultSignature(fields map[string]string, secret []byte, expected string) bool {
	return Verify(ResultSignatureKeys, fields, secret, expected)
}
