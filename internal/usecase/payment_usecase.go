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
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrInvalidPaymentID     = errors.New("invalid payment id")
	ErrInvalidOrderNumber   = errors.New("invalid order number")
	ErrInvalidCurrency      = errors.New("invalid currency code")
	ErrNoPaymentRequired    = errors.New("no payment required")
	ErrMissingResultURL     = errors.New("result url not configured")
	ErrPaymentNotStarted    = errors.New("payment has no redirect url yet")
	ErrMockResultNotAllowed = errors.New("mock results are not allowed for live payments")
)

// PaymentSettings carries the deployment defaults applied to new sessions.
type PaymentSettings struct {
	PublicBaseURL string
	ResultPath    string
	CountryCode   string
	ShopperLocale string
}

type CreatePaymentInput struct {
	OrderNumber string
	Amount      int64
	Currency    string
	ResURL      string
	Options     hpp.SessionOptions
}

// IPaymentUseCase covers the outbound half of the flow:
//   - create and persist a payment for an order
//   - build the signed redirect to the hosted payment page
//   - produce a signed mock result for test payments
type IPaymentUseCase interface {
	CreatePayment(ctx context.Context, in CreatePaymentInput) (entities.Payment, error)
	Pay(ctx context.Context, id, userAgent string) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	MockResultURL(ctx context.Context, id string) (string, error)
}

type PaymentUseCase struct {
	repo        interfaces.IPaymentRepository
	credentials interfaces.ICredentialStore
	settings    PaymentSettings
	log         *zap.Logger
	now         func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, credentials interfaces.ICredentialStore, settings PaymentSettings, log *zap.Logger) *PaymentUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &PaymentUseCase{repo: repo, credentials: credentials, settings: settings, log: log, now: time.Now}
}

// CreatePayment persists a new payment. The merchant reference is
// "<order>-<payment id>", so order numbers may not contain a dash.
func (u *PaymentUseCase) CreatePayment(ctx context.Context, in CreatePaymentInput) (entities.Payment, error) {
	orderNumber := strings.TrimSpace(in.OrderNumber)
	u.log.Info("[payment][usecase] create start", zap.String("order_number", orderNumber), zap.Int64("amount", in.Amount))
	if orderNumber == "" || strings.Contains(orderNumber, "-") {
		return entities.Payment{}, ErrInvalidOrderNumber
	}
	if in.Amount <= 0 {
		u.log.Info("[payment][usecase] nothing to pay", zap.String("order_number", orderNumber))
		return entities.Payment{}, ErrNoPaymentRequired
	}
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if len(currency) != 3 {
		return entities.Payment{}, ErrInvalidCurrency
	}

	cred, err := u.credentials.DefaultCredential(ctx)
	if err != nil {
		u.log.Error("[payment][usecase] default credential unavailable", zap.Error(err))
		return entities.Payment{}, err
	}

	opts := in.Options
	if opts.CountryCode == "" {
		opts.CountryCode = u.settings.CountryCode
	}
	if opts.ShopperLocale == "" {
		opts.ShopperLocale = u.settings.ShopperLocale
	}

	id := uuid.NewString()
	now := u.now().UTC()
	p := entities.Payment{
		ID:                id,
		OrderNumber:       orderNumber,
		MerchantReference: orderNumber + "-" + id,
		Live:              cred.IsLive,
		Amount:            in.Amount,
		CurrencyCode:      currency,
		SkinCode:          cred.SkinCode,
		MerchantAccount:   cred.MerchantAccount,
		ResURL:            strings.TrimSpace(in.ResURL),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	applySessionOptions(&p, opts)

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		u.log.Error("[payment][usecase] repository create failed", zap.String("payment_id", id), zap.Error(err))
		return entities.Payment{}, err
	}
	u.log.Info("[payment][usecase] create success", zap.String("payment_id", id), zap.String("merchant_reference", created.MerchantReference))
	return created, nil
}

// Pay builds the redirect for a stored payment and records the values that
// were signed. Legacy user agents are sent to the multi-page flow.
func (u *PaymentUseCase) Pay(ctx context.Context, id, userAgent string) (entities.Payment, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}

	cred, err := u.credentials.ResolveCredential(ctx, p.SkinCode)
	if err != nil {
		u.log.Error("[payment][usecase] credential lookup failed", zap.String("payment_id", p.ID), zap.String("skin_code", p.SkinCode), zap.Error(err))
		return entities.Payment{}, err
	}

	if p.ResURL == "" {
		if u.settings.PublicBaseURL == "" {
			return entities.Payment{}, ErrMissingResultURL
		}
		p.ResURL = strings.TrimRight(u.settings.PublicBaseURL, "/") + u.settings.ResultPath
	}

	session := hpp.NewSession(cred, p.MerchantReference, p.Amount, p.CurrencyCode, sessionOptions(p))
	session.ResURL = p.ResURL

	forceMulti := hpp.IsOldBrowser(userAgent)
	now := u.now().UTC()
	redirect, err := session.Build(now, forceMulti)
	if err != nil {
		u.log.Warn("[payment][usecase] redirect build failed", zap.String("payment_id", p.ID), zap.Error(err))
		return entities.Payment{}, err
	}

	p.Live = cred.IsLive
	p.ShipBeforeDate = redirect.Params["shipBeforeDate"]
	p.SessionValidity = redirect.Params["sessionValidity"]
	p.RedirectURL = redirect.URL
	p.UpdatedAt = now

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		u.log.Error("[payment][usecase] repository update failed", zap.String("payment_id", p.ID), zap.Error(err))
		return entities.Payment{}, err
	}
	if updated.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	u.log.Info("[payment][usecase] redirect built", zap.String("payment_id", p.ID), zap.Bool("force_multi", forceMulti), zap.Bool("live", p.Live))
	return updated, nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

// MockResultURL returns the signed redirect-back a successful test payment
// would produce.
func (u *PaymentUseCase) MockResultURL(ctx context.Context, id string) (string, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if p.Live {
		return "", ErrMockResultNotAllowed
	}
	if !p.Started() {
		return "", ErrPaymentNotStarted
	}
	return hpp.MockResultURL(ctx, u.credentials, p.RedirectURL)
}

func sessionOptions(p entities.Payment) hpp.SessionOptions {
	return hpp.SessionOptions{
		ShopperLocale:      p.ShopperLocale,
		OrderData:          p.OrderData,
		MerchantReturnData: p.MerchantReturnData,
		CountryCode:        p.CountryCode,
		ShopperEmail:       p.ShopperEmail,
		ShopperReference:   p.ShopperReference,
		RecurringContract:  p.RecurringContract,
		AllowedMethods:     p.AllowedMethods,
		BlockedMethods:     p.BlockedMethods,
		Offset:             p.Offset,
		BrandCode:          p.BrandCode,
		IssuerID:           p.IssuerID,
		ShopperStatement:   p.ShopperStatement,
		OfferEmail:         p.OfferEmail,
	}
}

func applySessionOptions(p *entities.Payment, o hpp.SessionOptions) {
	p.ShopperLocale = o.ShopperLocale
	p.OrderData = o.OrderData
	p.MerchantReturnData = o.MerchantReturnData
	p.CountryCode = o.CountryCode
	p.ShopperEmail = o.ShopperEmail
	p.ShopperReference = o.ShopperReference
	p.RecurringContract = o.RecurringContract
	p.AllowedMethods = o.AllowedMethods
	p.BlockedMethods = o.BlockedMethods
	p.Offset = o.Offset
	p.BrandCode = o.BrandCode
	p.IssuerID = o.IssuerID
	p.ShopperStatement = o.ShopperStatement
	p.OfferEmail = o.OfferEmail
}
