package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"hpp_gateway/internal/domain/entities"
	"hpp_gateway/internal/domain/hpp"
	"hpp_gateway/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrPaymentFailed       = errors.New("payment failed")
	ErrInvalidPSPReference = errors.New("invalid psp reference")
)

// ResultOutcome is what the shopper-facing result page needs. Payment is nil
// when no stored payment carries the merchant reference.
type ResultOutcome struct {
	Result            entities.PaymentResult
	Payment           *entities.Payment
	PaymentMethodName string
	Amount            string
}

// IResultUseCase handles the redirect back from the payment page.
type IResultUseCase interface {
	HandleResult(ctx context.Context, params map[string]string) (ResultOutcome, error)
	BackOfficeLink(ctx context.Context, pspReference string) (string, error)
}

type ResultUseCase struct {
	results       interfaces.IPaymentResultRepository
	payments      interfaces.IPaymentRepository
	notifications interfaces.IPaymentNotificationRepository
	credentials   interfaces.ICredentialStore
	log           *zap.Logger
	now           func() time.Time
}

var _ IResultUseCase = (*ResultUseCase)(nil)

func NewResultUseCase(results interfaces.IPaymentResultRepository, payments interfaces.IPaymentRepository, notifications interfaces.IPaymentNotificationRepository, credentials interfaces.ICredentialStore, log *zap.Logger) *ResultUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ResultUseCase{
		results:       results,
		payments:      payments,
		notifications: notifications,
		credentials:   credentials,
		log:           log,
		now:           time.Now,
	}
}

// HandleResult verifies and stores a result. Results that are neither
// AUTHORISED nor PENDING are still stored, and the outcome is returned
// together with ErrPaymentFailed.
func (u *ResultUseCase) HandleResult(ctx context.Context, params map[string]string) (ResultOutcome, error) {
	result, err := hpp.ParseResult(ctx, params, u.credentials)
	if err != nil {
		u.log.Warn("[result][usecase] rejected result", zap.String("skin_code", params["skinCode"]), zap.Error(err))
		return ResultOutcome{}, err
	}

	payment, err := u.payments.GetByMerchantReference(ctx, result.MerchantReference)
	if err != nil {
		u.log.Error("[result][usecase] payment lookup failed", zap.String("merchant_reference", result.MerchantReference), zap.Error(err))
		return ResultOutcome{}, err
	}

	out := ResultOutcome{PaymentMethodName: entities.PaymentMethodName(result.PaymentMethod)}
	if payment.ID != "" {
		live := payment.Live
		result.Live = &live
		out.Payment = &payment
		out.Amount = entities.FormatMinorUnits(payment.Amount)
	} else {
		u.log.Warn("[result][usecase] no payment for merchant reference", zap.String("merchant_reference", result.MerchantReference))
	}

	result.ID = uuid.NewString()
	result.CreatedAt = u.now().UTC()
	created, err := u.results.Create(ctx, result)
	if err != nil {
		u.log.Error("[result][usecase] repository create failed", zap.String("psp_reference", result.PSPReference), zap.Error(err))
		return ResultOutcome{}, err
	}
	out.Result = created

	u.log.Info("[result][usecase] result stored",
		zap.String("result_id", created.ID),
		zap.String("auth_result", string(created.AuthResult)),
		zap.String("psp_reference", created.PSPReference),
	)
	if !created.AuthResult.Accepted() {
		return out, ErrPaymentFailed
	}
	return out, nil
}

// BackOfficeLink builds the customer-area link for a PSP reference. The
// environment comes from the stored result, falling back to the latest
// notification. An empty link means the reference is unknown.
func (u *ResultUseCase) BackOfficeLink(ctx context.Context, pspReference string) (string, error) {
	pspReference = strings.TrimSpace(pspReference)
	if pspReference == "" {
		return "", ErrInvalidPSPReference
	}

	result, err := u.results.GetByPSPReference(ctx, pspReference)
	if err != nil {
		return "", err
	}
	if result.ID != "" && result.Live != nil {
		return hpp.BackOfficeURL(*result.Live, pspReference), nil
	}

	notifications, err := u.notifications.ListByPSPReference(ctx, pspReference)
	if err != nil {
		return "", err
	}
	if len(notifications) == 0 {
		return "", nil
	}
	return hpp.NotificationBackOfficeURL(notifications[len(notifications)-1]), nil
}
