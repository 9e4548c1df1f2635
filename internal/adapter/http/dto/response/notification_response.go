package response

import (
	"time"

	"hpp_gateway/internal/domain/entities"
	"hpp_gateway/internal/usecase"
)

type NotificationResponse struct {
	ID                  string            `json:"id"`
	Live                bool              `json:"live"`
	EventCode           string            `json:"event_code"`
	PSPReference        string            `json:"psp_reference"`
	OriginalReference   string            `json:"original_reference,omitempty"`
	MerchantReference   string            `json:"merchant_reference"`
	MerchantAccountCode string            `json:"merchant_account_code"`
	EventDate           time.Time         `json:"event_date"`
	Success             bool              `json:"success"`
	PaymentMethod       string            `json:"payment_method,omitempty"`
	PaymentMethodName   string            `json:"payment_method_name,omitempty"`
	Operations          string            `json:"operations,omitempty"`
	Reason              string            `json:"reason,omitempty"`
	Value               int64             `json:"value"`
	Amount              string            `json:"amount"`
	Currency            string            `json:"currency"`
	AdditionalParams    map[string]string `json:"additional_params,omitempty"`
	Handled             bool              `json:"handled"`
	Duplicate           bool              `json:"duplicate"`
	BackOfficeURL       string            `json:"back_office_url"`
	CreatedAt           time.Time         `json:"created_at"`
}

func FromNotificationDetails(d usecase.NotificationDetails) NotificationResponse {
	n := d.Notification
	return NotificationResponse{
		ID:                  n.ID,
		Live:                n.Live,
		EventCode:           n.EventCode,
		PSPReference:        n.PSPReference,
		OriginalReference:   n.OriginalReference,
		MerchantReference:   n.MerchantReference,
		MerchantAccountCode: n.MerchantAccountCode,
		EventDate:           n.EventDate,
		Success:             n.Success,
		PaymentMethod:       n.PaymentMethod,
		PaymentMethodName:   entities.PaymentMethodName(n.PaymentMethod),
		Operations:          n.Operations,
		Reason:              n.Reason,
		Value:               n.Value,
		Amount:              entities.FormatMinorUnits(n.Value),
		Currency:            n.Currency,
		AdditionalParams:    n.AdditionalParams,
		Handled:             n.Handled,
		Duplicate:           d.Duplicate,
		BackOfficeURL:       d.BackOfficeURL,
		CreatedAt:           n.CreatedAt,
	}
}

type ProcessNotificationsResponse struct {
	Published int `json:"published"`
}
