package response

import (
	"time"

	"hpp_gateway/internal/usecase"
)

type ResultResponse struct {
	ID                 string    `json:"id"`
	AuthResult         string    `json:"auth_result"`
	Accepted           bool      `json:"accepted"`
	PSPReference       string    `json:"psp_reference,omitempty"`
	MerchantReference  string    `json:"merchant_reference"`
	PaymentMethod      string    `json:"payment_method,omitempty"`
	PaymentMethodName  string    `json:"payment_method_name,omitempty"`
	ShopperLocale      string    `json:"shopper_locale,omitempty"`
	MerchantReturnData string    `json:"merchant_return_data,omitempty"`
	Live               *bool     `json:"live,omitempty"`
	PaymentID          string    `json:"payment_id,omitempty"`
	OrderNumber        string    `json:"order_number,omitempty"`
	Amount             string    `json:"amount,omitempty"`
	Currency           string    `json:"currency,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

func FromResultOutcome(out usecase.ResultOutcome) ResultResponse {
	r := out.Result
	resp := ResultResponse{
		ID:                 r.ID,
		AuthResult:         string(r.AuthResult),
		Accepted:           r.AuthResult.Accepted(),
		PSPReference:       r.PSPReference,
		MerchantReference:  r.MerchantReference,
		PaymentMethod:      r.PaymentMethod,
		PaymentMethodName:  out.PaymentMethodName,
		ShopperLocale:      r.ShopperLocale,
		MerchantReturnData: r.MerchantReturnData,
		Live:               r.Live,
		Amount:             out.Amount,
		CreatedAt:          r.CreatedAt,
	}
	if out.Payment != nil {
		resp.PaymentID = out.Payment.ID
		resp.OrderNumber = out.Payment.OrderNumber
		resp.Currency = out.Payment.CurrencyCode
	}
	return resp
}
