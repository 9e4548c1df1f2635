package payments

import (
	"context"
	"errors"
	"testing"
	"time"

	"hpp_gateway/internal/domain/entities"
	"hpp_gateway/internal/domain/hpp"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secretJSON = `{
  "default": {"merchant_account": "account", "skin_code": "abc123", "secret": "secret"},
  "skins": [{"merchant_account": "account", "skin_code": "live01", "secret": "other", "is_live": true, "payment_flow": "multipage"}],
  "notification_user": "adyen",
  "notification_password": "s3cret"
}`

type fakeSecrets struct {
	calls int
	value *string
	err   error
}

func (f *fakeSecrets) GetSecretValue(_ context.Context, in *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &secretsmanager.GetSecretValueOutput{Name: in.SecretId, SecretString: f.value}, nil
}

func TestSecretsCredentialStore_Resolve(t *testing.T) {
	fake := &fakeSecrets{value: aws.String(secretJSON)}
	store := NewSecretsCredentialStore(fake, "hpp/credentials", time.Minute)
	now := time.Date(2015, 2, 14, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	def, err := store.DefaultCredential(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc123", def.SkinCode)
	assert.Equal(t, []byte("secret"), def.Secret)
	assert.True(t, def.SinglePage())

	live, err := store.ResolveCredential(ctx, "live01")
	require.NoError(t, err)
	assert.True(t, live.IsLive)
	assert.Equal(t, entities.PaymentFlowMultiPage, live.PaymentFlow)

	_, err = store.ResolveCredential(ctx, "unknown")
	assert.ErrorIs(t, err, hpp.ErrUnknownCredential)

	user, pw, err := store.NotificationAuthCredentials(ctx)
	require.NoError(t, err)
	assert.Equal(t, "adyen", user)
	assert.Equal(t, "s3cret", pw)
	assert.Equal(t, 1, fake.calls, "cached within ttl")

	now = now.Add(2 * time.Minute)
	_, err = store.DefaultCredential(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, fake.calls, "reloaded after ttl")
}

func TestSecretsCredentialStore_Errors(t *testing.T) {
	ctx := context.Background()

	store := NewSecretsCredentialStore(&fakeSecrets{err: errors.New("access denied")}, "hpp/credentials", time.Minute)
	_, err := store.DefaultCredential(ctx)
	assert.ErrorContains(t, err, "failed to get secret hpp/credentials")

	store = NewSecretsCredentialStore(&fakeSecrets{}, "hpp/credentials", time.Minute)
	_, err = store.DefaultCredential(ctx)
	assert.ErrorContains(t, err, "has no string value")

	store = NewSecretsCredentialStore(&fakeSecrets{value: aws.String(`{"skins":[]}`)}, "hpp/credentials", time.Minute)
	_, err = store.DefaultCredential(ctx)
	assert.ErrorContains(t, err, "default skin missing")

	fake := &fakeSecrets{value: aws.String(`not json`)}
	store = NewSecretsCredentialStore(fake, "hpp/credentials", time.Minute)
	_, err = store.DefaultCredential(ctx)
	assert.Error(t, err)
	_, _ = store.DefaultCredential(ctx)
	assert.Equal(t, 2, fake.calls, "failures are not cached")
}
