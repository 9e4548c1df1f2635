package interfaces

import (
	"context"
	"hpp_gateway/internal/domain/entities"
)

// IPaymentResultRepository abstracts DynamoDB persistence for PaymentResult.

type IPaymentResultRepository interface {
	Create(ctx context.Context, r entities.PaymentResult) (entities.PaymentResult, error)
	GetByPSPReference(ctx context.Context, pspReference string) (entities.PaymentResult, error)
}
