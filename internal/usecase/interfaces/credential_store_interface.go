package interfaces

import (
	"context"

	"hpp_gateway/internal/domain/entities"
	"hpp_gateway/internal/domain/hpp"
)

// ICredentialStore resolves skins for inbound messages and provides the skin
// used for new payment sessions. Stores that also implement
// hpp.NotificationAuthProvider protect the notification endpoint.
type ICredentialStore interface {
	hpp.CredentialResolver
	DefaultCredential(ctx context.Context) (entities.MerchantCredential, error)
}
