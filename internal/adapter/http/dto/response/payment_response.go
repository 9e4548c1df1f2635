package response

import (
	"time"

	"hpp_gateway/internal/domain/entities"
)

type PaymentResponse struct {
	ID                string    `json:"id"`
	OrderNumber       string    `json:"order_number"`
	MerchantReference string    `json:"merchant_reference"`
	Live              bool      `json:"live"`
	Amount            int64     `json:"amount"`
	AmountFormatted   string    `json:"amount_formatted"`
	Currency          string    `json:"currency"`
	SkinCode          string    `json:"skin_code"`
	MerchantAccount   string    `json:"merchant_account"`
	ShipBeforeDate    string    `json:"ship_before_date,omitempty"`
	SessionValidity   string    `json:"session_validity,omitempty"`
	RedirectURL       string    `json:"redirect_url,omitempty"`
	Started           bool      `json:"started"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                p.ID,
		OrderNumber:       p.OrderNumber,
		MerchantReference: p.MerchantReference,
		Live:              p.Live,
		Amount:            p.Amount,
		AmountFormatted:   entities.FormatMinorUnits(p.Amount),
		Currency:          p.CurrencyCode,
		SkinCode:          p.SkinCode,
		MerchantAccount:   p.MerchantAccount,
		ShipBeforeDate:    p.ShipBeforeDate,
		SessionValidity:   p.SessionValidity,
		RedirectURL:       p.RedirectURL,
		Started:           p.Started(),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

type RedirectResponse struct {
	RedirectURL string `json:"redirect_url"`
}

type BackOfficeLinkResponse struct {
	PSPReference string `json:"psp_reference"`
	URL          string `json:"url"`
}
