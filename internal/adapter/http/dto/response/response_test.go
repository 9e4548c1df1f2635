package response

import (
	"testing"
	"time"

	"hpp_gateway/internal/domain/entities"
	"hpp_gateway/internal/usecase"
)

func TestFromPayment(t *testing.T) {
	now := time.Now().UTC()
	p := entities.Payment{
		ID:                "pay-1",
		OrderNumber:       "100",
		MerchantReference: "100-pay-1",
		Amount:            4599,
		CurrencyCode:      "EUR",
		RedirectURL:       "https://test.adyen.com/hpp/pay.shtml",
		CreatedAt:         now,
	}

	res := FromPayment(p)
	if res.ID != "pay-1" || res.MerchantReference != "100-pay-1" || res.Currency != "EUR" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.AmountFormatted != "45.99" || !res.Started {
		t.Fatalf("unexpected derived fields: %+v", res)
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected created_at: %v", res.CreatedAt)
	}
}

func TestFromResultOutcome(t *testing.T) {
	live := false
	out := usecase.ResultOutcome{
		Result: entities.PaymentResult{
			ID:                "res-1",
			AuthResult:        entities.AuthResultRefused,
			PSPReference:      "8813760397300101",
			MerchantReference: "100-7",
			PaymentMethod:     "visa",
			Live:              &live,
		},
		PaymentMethodName: "VISA",
		Amount:            "10.00",
	}

	res := FromResultOutcome(out)
	if res.Accepted || res.AuthResult != "REFUSED" || res.PaymentMethodName != "VISA" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.PaymentID != "" || res.OrderNumber != "" {
		t.Fatalf("expected no payment fields without a payment: %+v", res)
	}

	out.Payment = &entities.Payment{ID: "7", OrderNumber: "100", CurrencyCode: "EUR"}
	res = FromResultOutcome(out)
	if res.PaymentID != "7" || res.OrderNumber != "100" || res.Currency != "EUR" {
		t.Fatalf("unexpected payment fields: %+v", res)
	}
}

func TestFromNotificationDetails(t *testing.T) {
	d := usecase.NotificationDetails{
		Notification: entities.PaymentNotification{
			ID:            "n-1",
			PaymentMethod: "mc",
			Value:         -250,
			Currency:      "EUR",
		},
		Duplicate:     true,
		BackOfficeURL: "https://ca-test.adyen.com/ca/ca/accounts/showTxPayment.shtml?pspReference=1&txType=Payment",
	}

	res := FromNotificationDetails(d)
	if res.Amount != "-2.50" || !res.Duplicate || res.BackOfficeURL == "" {
		t.Fatalf("unexpected fields: %+v", res)
	}
}
