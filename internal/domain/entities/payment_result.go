package entities

import "time"

// AuthResult is the outcome reported by the provider on redirect-back.
type AuthResult string

const (
	AuthResultAuthorised AuthResult = "AUTHORISED"
	AuthResultPending    AuthResult = "PENDING"
	AuthResultCancelled  AuthResult = "CANCELLED"
	AuthResultRefused    AuthResult = "REFUSED"
	AuthResultError      AuthResult = "ERROR"
)

// Accepted reports whether checkout may continue with this result.
func (a AuthResult) Accepted() bool {
	return a == AuthResultAuthorised || a == AuthResultPending
}

// PaymentResult is a verified redirect-back message.
//
// Live cannot be read from the message itself. It is copied from the
// matching Payment when one exists and left nil otherwise.

type PaymentResult struct {
	ID                 string     `json:"id"`
	Live               *bool      `json:"live,omitempty"`
	AuthResult         AuthResult `json:"auth_result"`
	PSPReference       string     `json:"psp_reference,omitempty"`
	MerchantReference  string     `json:"merchant_reference"`
	SkinCode           string     `json:"skin_code"`
	PaymentMethod      string     `json:"payment_method,omitempty"`
	ShopperLocale      string     `json:"shopper_locale"`
	MerchantReturnData string     `json:"merchant_return_data,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}
