package interfaces

import (
	"context"

	"hpp_gateway/internal/domain/entities"
)

// IPaymentEventPublisher fans handled notifications out to order processing
// (e.g. an SNS topic).
type IPaymentEventPublisher interface {
	PublishPaymentEvent(ctx context.Context, event entities.PaymentEvent) error
}
