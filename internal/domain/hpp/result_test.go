package hpp

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"hpp_gateway/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedResult(secret string) map[string]string {
	params := map[string]string{
		"authResult":         "REFUSED",
		"pspReference":       "8813760397300101",
		"merchantReference":  "100-7",
		"skinCode":           "abc123",
		"paymentMethod":      "mc",
		"shopperLocale":      "en_GB",
		"merchantReturnData": "basket=9",
	}
	params["merchantSig"] = ResultSignature(params, []byte(secret))
	return params
}

func TestParseResult(t *testing.T) {
	resolver := StaticCredentials{Default: testCredential()}
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		r, err := ParseResult(ctx, signedResult("secret"), resolver)
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentResult{
			AuthResult:         entities.AuthResultRefused,
			PSPReference:       "8813760397300101",
			MerchantReference:  "100-7",
			SkinCode:           "abc123",
			PaymentMethod:      "mc",
			ShopperLocale:      "en_GB",
			MerchantReturnData: "basket=9",
		}, r)
	})

	t.Run("tampered signature exposes nothing", func(t *testing.T) {
		params := signedResult("secret")
		params["merchantSig"] = "x" + params["merchantSig"][1:]
		r, err := ParseResult(ctx, params, resolver)
		assert.True(t, errors.Is(err, ErrBadSignature))
		assert.Equal(t, entities.PaymentResult{}, r)
	})

	t.Run("tampered field", func(t *testing.T) {
		params := signedResult("secret")
		params["authResult"] = "AUTHORISED"
		_, err := ParseResult(ctx, params, resolver)
		assert.True(t, errors.Is(err, ErrBadSignature))
	})

	t.Run("missing signature", func(t *testing.T) {
		params := signedResult("secret")
		delete(params, "merchantSig")
		_, err := ParseResult(ctx, params, resolver)
		assert.True(t, errors.Is(err, ErrBadSignature))
	})

	t.Run("unknown skin", func(t *testing.T) {
		params := signedResult("secret")
		params["skinCode"] = "zzz999"
		_, err := ParseResult(ctx, params, resolver)
		assert.True(t, errors.Is(err, ErrUnknownCredential))
	})

	t.Run("missing skin", func(t *testing.T) {
		params := signedResult("secret")
		delete(params, "skinCode")
		_, err := ParseResult(ctx, params, resolver)
		var missing *MissingRequiredFieldError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, []string{"skinCode"}, missing.Fields)
	})

	t.Run("signed but incomplete", func(t *testing.T) {
		params := map[string]string{"skinCode": "abc123"}
		params["merchantSig"] = ResultSignature(params, []byte("secret"))
		_, err := ParseResult(ctx, params, resolver)
		var missing *MissingRequiredFieldError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, []string{"authResult", "merchantReference"}, missing.Fields)
	})
}

func TestMockResultURL(t *testing.T) {
	resolver := StaticCredentials{Default: testCredential()}
	s := referenceSession()
	s.Options.MerchantReturnData = "cart=3"
	s.Options.ShopperLocale = "de_DE"
	redirect, err := s.RedirectURL(frozenNow, false)
	require.NoError(t, err)

	got, err := MockResultURL(context.Background(), resolver, redirect)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(got, "https://my-domain.com/payment-result/order-123/?"))

	u, err := url.Parse(got)
	require.NoError(t, err)
	params := map[string]string{}
	for k := range u.Query() {
		params[k] = u.Query().Get(k)
	}
	assert.Equal(t, "cart=3", params["merchantReturnData"])
	assert.Equal(t, "de_DE", params["shopperLocale"])

	r, err := ParseResult(context.Background(), params, resolver)
	require.NoError(t, err)
	assert.True(t, r.AuthResult.Accepted())

	_, err = MockResultURL(context.Background(), StaticCredentials{}, redirect)
	assert.True(t, errors.Is(err, ErrUnknownCredential))
}
