package interfaces

import (
	"context"
	"hpp_gateway/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// Lookups return a zero Payment and a nil error when nothing matches.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	Update(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	GetByMerchantReference(ctx context.Context, merchantReference string) (entities.Payment, error)
}
