package entities

import "time"

// Payment is one outbound payment attempt persisted by the service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (merchant_reference-index): merchant_reference
//
// ShipBeforeDate and SessionValidity hold the values resolved when the
// redirect URL was built; they stay empty until then.

type Payment struct {
	ID                string    `json:"id"`
	OrderNumber       string    `json:"order_number"`
	MerchantReference string    `json:"merchant_reference"`
	Live              bool      `json:"live"`
	Amount            int64     `json:"amount"`
	CurrencyCode      string    `json:"currency_code"`
	SkinCode          string    `json:"skin_code"`
	MerchantAccount   string    `json:"merchant_account"`
	ShipBeforeDate    string    `json:"ship_before_date,omitempty"`
	SessionValidity   string    `json:"session_validity,omitempty"`
	ResURL            string    `json:"res_url,omitempty"`
	RedirectURL       string    `json:"redirect_url,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	ShopperLocale      string `json:"shopper_locale,omitempty"`
	OrderData          string `json:"order_data,omitempty"`
	MerchantReturnData string `json:"merchant_return_data,omitempty"`
	CountryCode        string `json:"country_code,omitempty"`
	ShopperEmail       string `json:"shopper_email,omitempty"`
	ShopperReference   string `json:"shopper_reference,omitempty"`
	RecurringContract  string `json:"recurring_contract,omitempty"`
	AllowedMethods     string `json:"allowed_methods,omitempty"`
	BlockedMethods     string `json:"blocked_methods,omitempty"`
	Offset             *int   `json:"offset,omitempty"`
	BrandCode          string `json:"brand_code,omitempty"`
	IssuerID           string `json:"issuer_id,omitempty"`
	ShopperStatement   string `json:"shopper_statement,omitempty"`
	OfferEmail         string `json:"offer_email,omitempty"`
}

// Started reports whether a redirect URL has been produced for the payment.
func (p Payment) Started() bool {
	return p.RedirectURL != ""
}
