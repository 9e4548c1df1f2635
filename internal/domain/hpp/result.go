package hpp

import (
	"context"
	"net/url"

	"hpp_gateway/internal/domain/entities"
)

const (
	MockPSPReference  = "mockreference"
	MockPaymentMethod = "visa"
)

// ParseResult verifies a redirect-back message and returns its fields.
// Nothing is returned unless the signature matches.
func ParseResult(ctx context.Context, params map[string]string, resolver CredentialResolver) (entities.PaymentResult, error) {
	skinCode := params["skinCode"]
	if skinCode == "" {
		return entities.PaymentResult{}, &MissingRequiredFieldError{Fields: []string{"skinCode"}}
	}

	cred, err := resolver.ResolveCredential(ctx, skinCode)
	if err != nil {
		return entities.PaymentResult{}, err
	}

	sig := params["merchantSig"]
	if sig == "" || !VerifyResultSignature(params, cred.Secret, sig) {
		return entities.PaymentResult{}, ErrBadSignature
	}

	var missing []string
	for _, k := range []string{"authResult", "merchantReference"} {
		if params[k] == "" {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return entities.PaymentResult{}, &MissingRequiredFieldError{Fields: missing}
	}

	return entities.PaymentResult{
		AuthResult:         entities.AuthResult(params["authResult"]),
		PSPReference:       params["pspReference"],
		MerchantReference:  params["merchantReference"],
		SkinCode:           skinCode,
		PaymentMethod:      params["paymentMethod"],
		ShopperLocale:      params["shopperLocale"],
		MerchantReturnData: params["merchantReturnData"],
	}, nil
}

// MockResultParams returns a correctly signed AUTHORISED result for a
// redirect URL produced by Session.Build. It is meant for tests and test
// credentials only.
func MockResultParams(ctx context.Context, resolver CredentialResolver, redirectURL string) (map[string]string, error) {
	q, err := redirectQuery(redirectURL)
	if err != nil {
		return nil, err
	}
	skinCode := q.Get("skinCode")
	if skinCode == "" {
		return nil, &MissingRequiredFieldError{Fields: []string{"skinCode"}}
	}
	cred, err := resolver.ResolveCredential(ctx, skinCode)
	if err != nil {
		return nil, err
	}

	params := map[string]string{
		"authResult":         string(entities.AuthResultAuthorised),
		"pspReference":       MockPSPReference,
		"merchantReference":  q.Get("merchantReference"),
		"skinCode":           skinCode,
		"paymentMethod":      MockPaymentMethod,
		"shopperLocale":      q.Get("shopperLocale"),
		"merchantReturnData": q.Get("merchantReturnData"),
	}
	params["merchantSig"] = ResultSignature(params, cred.Secret)
	return params, nil
}

// MockResultURL appends MockResultParams to the session's resURL.
func MockResultURL(ctx context.Context, resolver CredentialResolver, redirectURL string) (string, error) {
	params, err := MockResultParams(ctx, resolver, redirectURL)
	if err != nil {
		return "", err
	}
	q, _ := redirectQuery(redirectURL)
	resURL := q.Get("resURL")
	if resURL == "" {
		return "", &MissingRequiredFieldError{Fields: []string{"resURL"}}
	}
	values := make(url.Values, len(params))
	for k, v := range params {
		values.Set(k, v)
	}
	return resURL + "?" + values.Encode(), nil
}

func redirectQuery(redirectURL string) (url.Values, error) {
	u, err := url.Parse(redirectURL)
	if err != nil {
		return nil, err
	}
	return u.Query(), nil
}
