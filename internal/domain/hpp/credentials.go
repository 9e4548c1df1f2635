package hpp

import (
	"context"
	"errors"
	"fmt"

	"hpp_gateway/internal/domain/entities"
)

var ErrNotificationAuthNotConfigured = errors.New("notification credentials not configured")

// CredentialResolver looks up the merchant credential for a skin code and
// returns an error wrapping ErrUnknownCredential when there is none.
type CredentialResolver interface {
	ResolveCredential(ctx context.Context, skinCode string) (entities.MerchantCredential, error)
}

// NotificationAuthProvider is implemented by resolvers that also know the
// basic-auth credentials the provider uses when pushing notifications.
type NotificationAuthProvider interface {
	NotificationAuthCredentials(ctx context.Context) (user, password string, err error)
}

// StaticCredentials is a resolver backed by values known at startup.
// Default is used for outbound sessions; Skins lists further skins that may
// appear on inbound results.
type StaticCredentials struct {
	Default              entities.MerchantCredential
	Skins                []entities.MerchantCredential
	NotificationUser     string
	NotificationPassword string
}

var (
	_ CredentialResolver       = StaticCredentials{}
	_ NotificationAuthProvider = StaticCredentials{}
)

func (s StaticCredentials) ResolveCredential(_ context.Context, skinCode string) (entities.MerchantCredential, error) {
	if skinCode != "" && s.Default.SkinCode == skinCode {
		return s.Default, nil
	}
	for _, c := range s.Skins {
		if skinCode != "" && c.SkinCode == skinCode {
			return c, nil
		}
	}
	return entities.MerchantCredential{}, fmt.Errorf("%w: %q", ErrUnknownCredential, skinCode)
}

func (s StaticCredentials) DefaultCredential(_ context.Context) (entities.MerchantCredential, error) {
	if s.Default.SkinCode == "" {
		return entities.MerchantCredential{}, fmt.Errorf("%w: no default skin configured", ErrUnknownCredential)
	}
	return s.Default, nil
}

func (s StaticCredentials) NotificationAuthCredentials(_ context.Context) (string, string, error) {
	if s.NotificationUser == "" {
		return "", "", ErrNotificationAuthNotConfigured
	}
	return s.NotificationUser, s.NotificationPassword, nil
}
