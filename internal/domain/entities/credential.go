package entities

// PaymentFlow selects the hosted payment page variant.
type PaymentFlow string

const (
	PaymentFlowOnePage   PaymentFlow = "onepage"
	PaymentFlowMultiPage PaymentFlow = "multipage"
)

// MerchantCredential is one skin configured at the provider.
//
// It is passed by value and never mutated after construction; the secret is
// the raw HMAC key shared with the provider for this skin.

type MerchantCredential struct {
	MerchantAccount string      `json:"merchant_account"`
	SkinCode        string      `json:"skin_code"`
	Secret          []byte      `json:"-"`
	IsLive          bool        `json:"is_live"`
	PaymentFlow     PaymentFlow `json:"payment_flow"`
}

func NewMerchantCredential(merchantAccount, skinCode string, secret []byte, isLive bool, flow PaymentFlow) MerchantCredential {
	if flow == "" {
		flow = PaymentFlowOnePage
	}
	key := make([]byte, len(secret))
	copy(key, secret)
	return MerchantCredential{
		MerchantAccount: merchantAccount,
		SkinCode:        skinCode,
		Secret:          key,
		IsLive:          isLive,
		PaymentFlow:     flow,
	}
}

// SinglePage reports whether the credential uses the one-page flow.
func (c MerchantCredential) SinglePage() bool {
	return c.PaymentFlow == "" || c.PaymentFlow == PaymentFlowOnePage
}
