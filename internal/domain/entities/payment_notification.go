package entities

import (
	"fmt"
	"time"
)

// PaymentNotification is one asynchronous event pushed by the provider.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (psp_reference-index): psp_reference + created_at
//   - GSI (unhandled-index): sparse, only present while Handled is false
//
// The provider retries deliveries, so several items may describe the same
// event. AdditionalParams holds every field the parser did not recognise and
// is nil when there were none.

type PaymentNotification struct {
	ID                  string            `json:"id"`
	Live                bool              `json:"live"`
	EventCode           string            `json:"event_code"`
	PSPReference        string            `json:"psp_reference"`
	OriginalReference   string            `json:"original_reference"`
	MerchantReference   string            `json:"merchant_reference"`
	MerchantAccountCode string            `json:"merchant_account_code"`
	EventDate           time.Time         `json:"event_date"`
	Success             bool              `json:"success"`
	PaymentMethod       string            `json:"payment_method"`
	Operations          string            `json:"operations"`
	Reason              string            `json:"reason"`
	Value               int64             `json:"value"`
	Currency            string            `json:"currency"`
	AdditionalParams    map[string]string `json:"additional_params,omitempty"`
	Handled             bool              `json:"handled"`
	CreatedAt           time.Time         `json:"created_at"`
}

func (n PaymentNotification) String() string {
	return fmt.Sprintf("%s %s", n.EventCode, n.PSPReference)
}
