package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"hpp_gateway/internal/domain/entities"
	"hpp_gateway/internal/domain/hpp"
	"hpp_gateway/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// SecretsAPI is the part of *secretsmanager.Client the store uses.
type SecretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

type skinSecret struct {
	MerchantAccount string `json:"merchant_account"`
	SkinCode        string `json:"skin_code"`
	Secret          string `json:"secret"`
	IsLive          bool   `json:"is_live"`
	PaymentFlow     string `json:"payment_flow"`
}

// credentialsDocument is the JSON stored in the secret:
//
//	{"default": {...}, "skins": [{...}], "notification_user": "", "notification_password": ""}
type credentialsDocument struct {
	Default              skinSecret   `json:"default"`
	Skins                []skinSecret `json:"skins"`
	NotificationUser     string       `json:"notification_user"`
	NotificationPassword string       `json:"notification_password"`
}

// SecretsCredentialStore resolves skins from one Secrets Manager secret and
// caches the decoded document for ttl.
type SecretsCredentialStore struct {
	client   SecretsAPI
	secretID string
	ttl      time.Duration
	now      func() time.Time

	mu       sync.RWMutex
	cached   hpp.StaticCredentials
	loadedAt time.Time
}

var (
	_ interfaces.ICredentialStore  = (*SecretsCredentialStore)(nil)
	_ hpp.NotificationAuthProvider = (*SecretsCredentialStore)(nil)
)

func NewSecretsCredentialStore(client SecretsAPI, secretID string, ttl time.Duration) *SecretsCredentialStore {
	return &SecretsCredentialStore{client: client, secretID: secretID, ttl: ttl, now: time.Now}
}

func NewSecretsCredentialStoreFromConfig(cfg aws.Config, secretID string, ttl time.Duration) *SecretsCredentialStore {
	return NewSecretsCredentialStore(secretsmanager.NewFromConfig(cfg), secretID, ttl)
}

func (s *SecretsCredentialStore) ResolveCredential(ctx context.Context, skinCode string) (entities.MerchantCredential, error) {
	creds, err := s.load(ctx)
	if err != nil {
		return entities.MerchantCredential{}, err
	}
	return creds.ResolveCredential(ctx, skinCode)
}

func (s *SecretsCredentialStore) DefaultCredential(ctx context.Context) (entities.MerchantCredential, error) {
	creds, err := s.load(ctx)
	if err != nil {
		return entities.MerchantCredential{}, err
	}
	return creds.DefaultCredential(ctx)
}

func (s *SecretsCredentialStore) NotificationAuthCredentials(ctx context.Context) (string, string, error) {
	creds, err := s.load(ctx)
	if err != nil {
		return "", "", err
	}
	return creds.NotificationAuthCredentials(ctx)
}

func (s *SecretsCredentialStore) load(ctx context.Context) (hpp.StaticCredentials, error) {
	s.mu.RLock()
	if !s.loadedAt.IsZero() && s.now().Sub(s.loadedAt) < s.ttl {
		creds := s.cached
		s.mu.RUnlock()
		return creds, nil
	}
	s.mu.RUnlock()

	out, err := s.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{SecretId: aws.String(s.secretID)})
	if err != nil {
		return hpp.StaticCredentials{}, fmt.Errorf("failed to get secret %s: %w", s.secretID, err)
	}
	if out.SecretString == nil {
		return hpp.StaticCredentials{}, fmt.Errorf("secret %s has no string value", s.secretID)
	}
	creds, err := decodeCredentials(*out.SecretString)
	if err != nil {
		return hpp.StaticCredentials{}, fmt.Errorf("secret %s: %w", s.secretID, err)
	}

	s.mu.Lock()
	s.cached = creds
	s.loadedAt = s.now()
	s.mu.Unlock()
	return creds, nil
}

func decodeCredentials(raw string) (hpp.StaticCredentials, error) {
	var doc credentialsDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return hpp.StaticCredentials{}, err
	}
	if doc.Default.SkinCode == "" {
		return hpp.StaticCredentials{}, errors.New("default skin missing")
	}
	creds := hpp.StaticCredentials{
		Default:              doc.Default.credential(),
		NotificationUser:     doc.NotificationUser,
		NotificationPassword: doc.NotificationPassword,
	}
	for _, sk := range doc.Skins {
		creds.Skins = append(creds.Skins, sk.credential())
	}
	return creds, nil
}

func (s skinSecret) credential() entities.MerchantCredential {
	return entities.NewMerchantCredential(s.MerchantAccount, s.SkinCode, []byte(s.Secret), s.IsLive, entities.PaymentFlow(s.PaymentFlow))
}
