package entities

import (
	"fmt"
	"time"
)

// PaymentEvent is published once a notification has been handled.
type PaymentEvent struct {
	EventType      string    `json:"event_type"`
	OrderNumber    string    `json:"order_number"`
	PaymentID      string    `json:"payment_id"`
	Amount         string    `json:"amount"`
	AmountMinor    int64     `json:"amount_minor"`
	Currency       string    `json:"currency"`
	Reference      string    `json:"reference"`
	Success        bool      `json:"success"`
	Live           bool      `json:"live"`
	NotificationID string    `json:"notification_id"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// FormatMinorUnits renders an amount in minor units with two decimals.
func FormatMinorUnits(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
