// Package config loads service settings from the environment, optionally
// layered on top of a YAML file named by CONFIG_PATH.
package config

import (
	"fmt"
	"os"
	"time"

	"hpp_gateway/internal/domain/entities"
	"hpp_gateway/internal/domain/hpp"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env           string `yaml:"env" env:"APP_ENV" env-default:"development"`
	Port          string `yaml:"port" env:"PORT" env-default:"8080"`
	PublicBaseURL string `yaml:"public_base_url" env:"PUBLIC_BASE_URL" env-description:"base URL the provider redirects shoppers back to"`
	// Storefront origins allowed to call the payments API from a browser.
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-separator:","`

	HPP struct {
		MerchantAccount      string        `yaml:"merchant_account" env:"ADYEN_MERCHANT_ACCOUNT"`
		SkinCode             string        `yaml:"skin_code" env:"ADYEN_SKIN_CODE"`
		Secret               string        `yaml:"secret" env:"ADYEN_SKIN_SECRET"`
		IsLive               bool          `yaml:"is_live" env:"ADYEN_IS_LIVE" env-default:"false"`
		PaymentFlow          string        `yaml:"payment_flow" env:"ADYEN_PAYMENT_FLOW" env-default:"onepage"`
		NotificationUser     string        `yaml:"notification_user" env:"ADYEN_NOTIFICATION_USER"`
		NotificationPassword string        `yaml:"notification_password" env:"ADYEN_NOTIFICATION_PASSWORD"`
		CountryCode          string        `yaml:"country_code" env:"ADYEN_COUNTRY_CODE"`
		ShopperLocale        string        `yaml:"shopper_locale" env:"ADYEN_SHOPPER_LOCALE"`
		SecretName           string        `yaml:"secret_name" env:"ADYEN_SKIN_SECRET_ID" env-description:"Secrets Manager id holding the skin credentials; overrides the static values"`
		SecretCacheTTL       time.Duration `yaml:"secret_cache_ttl" env:"ADYEN_SECRET_CACHE_TTL" env-default:"5m"`
	} `yaml:"hpp"`

	Notifications struct {
		BatchSize int    `yaml:"batch_size" env:"NOTIFICATION_BATCH_SIZE" env-default:"100"`
		TopicARN  string `yaml:"topic_arn" env:"PAYMENT_EVENTS_TOPIC_ARN"`
	} `yaml:"notifications"`

	Redis struct {
		Addr     string        `yaml:"addr" env:"REDIS_ADDR"`
		Password string        `yaml:"password" env:"REDIS_PASSWORD"`
		DB       int           `yaml:"db" env:"REDIS_DB" env-default:"0"`
		LockTTL  time.Duration `yaml:"lock_ttl" env:"REDIS_LOCK_TTL" env-default:"30s"`
	} `yaml:"redis"`

	AWS struct {
		Region           string `yaml:"region" env:"AWS_REGION" env-default:"us-east-1"`
		Endpoint         string `yaml:"endpoint" env:"AWS_ENDPOINT"`
		DynamoDBEndpoint string `yaml:"dynamodb_endpoint" env:"DYNAMODB_ENDPOINT"`
		CreateTables     bool   `yaml:"create_tables" env:"DYNAMODB_CREATE_TABLES" env-default:"false"`
	} `yaml:"aws"`
}

// Load reads CONFIG_PATH when it is set and the environment otherwise.
// Environment variables always win over file values.
func Load() (*Config, error) {
	var cfg Config
	var err error
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		desc, _ := cleanenv.GetDescription(&cfg, nil)
		return nil, fmt.Errorf("load config: %w; %s", err, desc)
	}
	return &cfg, nil
}

// StaticCredentials builds the credential store used when no secret name is
// configured.
func (c *Config) StaticCredentials() hpp.StaticCredentials {
	return hpp.StaticCredentials{
		Default: entities.NewMerchantCredential(
			c.HPP.MerchantAccount,
			c.HPP.SkinCode,
			[]byte(c.HPP.Secret),
			c.HPP.IsLive,
			entities.PaymentFlow(c.HPP.PaymentFlow),
		),
		NotificationUser:     c.HPP.NotificationUser,
		NotificationPassword: c.HPP.NotificationPassword,
	}
}
