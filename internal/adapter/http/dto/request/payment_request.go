package request

import (
	"errors"
	"net/url"
	"strings"
)

var (
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")
)

// CreatePaymentRequest starts a hosted payment for an order. Amount is in
// minor units. Options carries optional session fields by their provider
// name (shopperLocale, allowedMethods, offset, ...).
type CreatePaymentRequest struct {
	OrderNumber string            `json:"order_number" binding:"required"`
	Amount      *int64            `json:"amount" binding:"required"`
	Currency    string            `json:"currency" binding:"required"`
	ResURL      string            `json:"res_url"`
	Options     map[string]string `json:"options"`
}

func (r CreatePaymentRequest) ResolveAmount() (int64, error) {
	if r.Amount == nil {
		return 0, ErrInvalidPaymentAmount
	}
	return *r.Amount, nil
}

func (r CreatePaymentRequest) ResolveResURL() (string, error) {
	v := strings.TrimSpace(r.ResURL)
	if v == "" {
		return "", nil
	}
	u, err := url.Parse(v)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", errors.New("res_url must be an absolute http(s) url")
	}
	return v, nil
}

// Flatten keeps the first value of every key. Provider messages never repeat
// a key.
func Flatten(values url.Values) map[string]string {
	out := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) > 0 {
			out[k] = v[0]
		} else {
			out[k] = ""
		}
	}
	return out
}
