package interfaces

import (
	"context"
	"time"

	"hpp_gateway/internal/domain/entities"
)

// UnhandledCursor is where the next ListUnhandled page starts.
type UnhandledCursor struct {
	ID        string
	CreatedAt time.Time
}

// IPaymentNotificationRepository abstracts DynamoDB persistence for
// PaymentNotification.
//
// The service must be able to:
//   - store every delivery, duplicates included
//   - tell whether an earlier delivery of the same event exists
//   - list and mark notifications that still need handling
type IPaymentNotificationRepository interface {
	Create(ctx context.Context, n entities.PaymentNotification) (entities.PaymentNotification, error)
	GetByID(ctx context.Context, id string) (entities.PaymentNotification, error)
	ListByPSPReference(ctx context.Context, pspReference string) ([]entities.PaymentNotification, error)
	HasEarlier(ctx context.Context, eventCode, pspReference string, before time.Time) (bool, error)
	// ListUnhandled returns one page of unhandled notifications, oldest
	// first, starting after the given cursor (nil for the first page). The
	// returned cursor is nil on the last page.
	ListUnhandled(ctx context.Context, limit int32, after *UnhandledCursor) ([]entities.PaymentNotification, *UnhandledCursor, error)
	MarkHandled(ctx context.Context, id string) error
}
