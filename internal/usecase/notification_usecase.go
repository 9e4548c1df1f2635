package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"hpp_gateway/internal/domain/entities"
	"hpp_gateway/internal/domain/hpp"
	"hpp_gateway/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrNotificationUnauthorized = errors.New("notification credentials rejected")
	ErrNotificationNotFound     = errors.New("notification not found")
	ErrInvalidNotificationID    = errors.New("invalid notification id")
	ErrInvalidMerchantReference = errors.New("invalid merchant reference")
)

const (
	DefaultNotificationBatchSize int32 = 100
	notificationEventPrefix            = "Adyen - "
)

type NotificationDetails struct {
	Notification  entities.PaymentNotification
	Duplicate     bool
	BackOfficeURL string
}

// INotificationUseCase covers the server-to-server half of the flow:
//   - authenticate and store every pushed notification
//   - detect re-deliveries of an event already received
//   - turn unhandled notifications into payment events
type INotificationUseCase interface {
	Authenticate(ctx context.Context, user, password string) error
	Receive(ctx context.Context, params map[string]string) (entities.PaymentNotification, error)
	GetByID(ctx context.Context, id string) (NotificationDetails, error)
	IsDuplicate(ctx context.Context, n entities.PaymentNotification) (bool, error)
	ProcessUnhandled(ctx context.Context) (int, error)
}

type NotificationUseCase struct {
	repo        interfaces.IPaymentNotificationRepository
	credentials hpp.CredentialResolver
	publisher   interfaces.IPaymentEventPublisher
	locker      interfaces.ILocker
	batchSize   int32
	log         *zap.Logger
	now         func() time.Time
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(repo interfaces.IPaymentNotificationRepository, credentials hpp.CredentialResolver, publisher interfaces.IPaymentEventPublisher, locker interfaces.ILocker, batchSize int32, log *zap.Logger) *NotificationUseCase {
	if batchSize <= 0 {
		batchSize = DefaultNotificationBatchSize
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &NotificationUseCase{
		repo:        repo,
		credentials: credentials,
		publisher:   publisher,
		locker:      locker,
		batchSize:   batchSize,
		log:         log,
		now:         time.Now,
	}
}

// Authenticate checks the basic-auth pair sent by the provider. When the
// credential store carries no notification credentials every request is
// rejected.
func (u *NotificationUseCase) Authenticate(ctx context.Context, user, password string) error {
	provider, ok := u.credentials.(hpp.NotificationAuthProvider)
	if !ok {
		return fmt.Errorf("%w: %w", ErrNotificationUnauthorized, hpp.ErrNotificationAuthNotConfigured)
	}
	wantUser, wantPassword, err := provider.NotificationAuthCredentials(ctx)
	if err != nil {
		u.log.Error("[notification][usecase] auth credentials unavailable", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrNotificationUnauthorized, err)
	}
	if wantUser == "" || wantPassword == "" {
		return fmt.Errorf("%w: %w", ErrNotificationUnauthorized, hpp.ErrNotificationAuthNotConfigured)
	}

	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(wantUser)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(wantPassword)) == 1
	if !userOK || !passwordOK {
		u.log.Warn("[notification][usecase] rejected credentials", zap.String("user", user))
		return ErrNotificationUnauthorized
	}
	return nil
}

// Receive stores a notification exactly as delivered. Duplicates are stored
// too; they are told apart when processing.
func (u *NotificationUseCase) Receive(ctx context.Context, params map[string]string) (entities.PaymentNotification, error) {
	n, err := hpp.ParseNotification(params)
	if err != nil {
		u.log.Warn("[notification][usecase] rejected notification", zap.String("psp_reference", params["pspReference"]), zap.Error(err))
		return entities.PaymentNotification{}, err
	}

	n.ID = uuid.NewString()
	n.CreatedAt = u.now().UTC()
	n.Handled = false

	created, err := u.repo.Create(ctx, n)
	if err != nil {
		u.log.Error("[notification][usecase] repository create failed", zap.String("psp_reference", n.PSPReference), zap.Error(err))
		return entities.PaymentNotification{}, err
	}
	u.log.Info("[notification][usecase] notification stored",
		zap.String("notification_id", created.ID),
		zap.String("event_code", created.EventCode),
		zap.String("psp_reference", created.PSPReference),
		zap.Bool("success", created.Success),
	)
	return created, nil
}

func (u *NotificationUseCase) GetByID(ctx context.Context, id string) (NotificationDetails, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return NotificationDetails{}, ErrInvalidNotificationID
	}

	n, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return NotificationDetails{}, err
	}
	if n.ID == "" {
		return NotificationDetails{}, ErrNotificationNotFound
	}

	dup, err := u.IsDuplicate(ctx, n)
	if err != nil {
		return NotificationDetails{}, err
	}
	return NotificationDetails{
		Notification:  n,
		Duplicate:     dup,
		BackOfficeURL: hpp.NotificationBackOfficeURL(n),
	}, nil
}

// IsDuplicate reports whether an earlier notification with the same event
// code and PSP reference was received.
func (u *NotificationUseCase) IsDuplicate(ctx context.Context, n entities.PaymentNotification) (bool, error) {
	return u.repo.HasEarlier(ctx, n.EventCode, n.PSPReference, n.CreatedAt)
}

type processOutcome int

const (
	outcomeSkipped processOutcome = iota
	outcomeSettled
	outcomePublished
	outcomeFailed
)

// ProcessUnhandled publishes a payment event for every unhandled original
// notification and marks it handled. Duplicates are marked handled without
// an event. Notifications whose merchant reference cannot be split stay
// unhandled and are paged past, so they never hold back the ones behind
// them. A run stops after batchSize notifications were settled or failed,
// or when the index is exhausted. It returns how many events were published.
func (u *NotificationUseCase) ProcessUnhandled(ctx context.Context) (int, error) {
	var (
		cursor    *interfaces.UnhandledCursor
		published int
		worked    int32
		skipped   int
		errs      []error
	)
	for page := 0; ; page++ {
		items, next, err := u.repo.ListUnhandled(ctx, u.batchSize, cursor)
		if err != nil {
			u.log.Error("[notification][usecase] list unhandled failed", zap.Int("page", page), zap.Error(err))
			if page == 0 {
				return 0, err
			}
			errs = append(errs, err)
			break
		}
		u.log.Debug("[notification][usecase] unhandled page", zap.Int("page", page), zap.Int("count", len(items)))

		for _, n := range items {
			if worked >= u.batchSize {
				break
			}
			outcome, err := u.process(ctx, n)
			switch outcome {
			case outcomeSkipped:
				skipped++
				continue
			case outcomePublished:
				published++
			case outcomeFailed:
				u.log.Error("[notification][usecase] processing failed", zap.String("notification_id", n.ID), zap.Error(err))
				errs = append(errs, fmt.Errorf("notification %s: %w", n.ID, err))
			}
			worked++
		}

		if next == nil || worked >= u.batchSize {
			break
		}
		cursor = next
	}

	u.log.Info("[notification][usecase] unhandled processed",
		zap.Int("published", published),
		zap.Int32("settled", worked),
		zap.Int("skipped", skipped),
	)
	return published, errors.Join(errs...)
}

func (u *NotificationUseCase) process(ctx context.Context, n entities.PaymentNotification) (processOutcome, error) {
	outcome := outcomeSettled
	err := u.withLock(ctx, "payment-notification:"+n.ID, func(ctx context.Context) error {
		dup, err := u.IsDuplicate(ctx, n)
		if err != nil {
			return err
		}
		if dup {
			u.log.Info("[notification][usecase] duplicate notification", zap.String("notification_id", n.ID), zap.String("event", n.String()))
			return u.repo.MarkHandled(ctx, n.ID)
		}

		orderNumber, paymentID, err := splitMerchantReference(n.MerchantReference)
		if err != nil {
			u.log.Warn("[notification][usecase] no order for notification",
				zap.String("notification_id", n.ID),
				zap.String("merchant_reference", n.MerchantReference),
			)
			outcome = outcomeSkipped
			return nil
		}

		event := entities.PaymentEvent{
			EventType:      notificationEventPrefix + n.EventCode,
			OrderNumber:    orderNumber,
			PaymentID:      paymentID,
			Amount:         entities.FormatMinorUnits(n.Value),
			AmountMinor:    n.Value,
			Currency:       n.Currency,
			Reference:      n.PSPReference,
			Success:        n.Success,
			Live:           n.Live,
			NotificationID: n.ID,
			OccurredAt:     n.EventDate,
		}
		if err := u.publisher.PublishPaymentEvent(ctx, event); err != nil {
			return err
		}
		if err := u.repo.MarkHandled(ctx, n.ID); err != nil {
			return err
		}
		outcome = outcomePublished
		return nil
	})
	if errors.Is(err, interfaces.ErrLockNotAcquired) {
		u.log.Info("[notification][usecase] notification locked elsewhere", zap.String("notification_id", n.ID))
		return outcomeSkipped, nil
	}
	if err != nil {
		return outcomeFailed, err
	}
	return outcome, nil
}

func (u *NotificationUseCase) withLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	if u.locker == nil {
		return fn(ctx)
	}
	return u.locker.WithLock(ctx, key, fn)
}

// splitMerchantReference splits "<order>-<payment id>" at the first dash.
func splitMerchantReference(ref string) (orderNumber, paymentID string, err error) {
	orderNumber, paymentID, ok := strings.Cut(ref, "-")
	if !ok || orderNumber == "" || paymentID == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidMerchantReference, ref)
	}
	return orderNumber, paymentID, nil
}
