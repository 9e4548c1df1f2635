package awsconfig

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type Settings struct {
	Region string
	// Endpoint points every client at one URL (e.g. LocalStack).
	Endpoint string
	// DynamoDBEndpoint overrides Endpoint for DynamoDB only.
	DynamoDBEndpoint string
}

// Load builds the shared AWS config.
//
// When an endpoint override is set the SDK still needs credentials, so
// AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY default to "local".
func Load(ctx context.Context, s Settings) (aws.Config, error) {
	region := s.Region
	if region == "" {
		region = "us-east-1"
	}
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}

	if s.Endpoint != "" || s.DynamoDBEndpoint != "" {
		creds := credentials.NewStaticCredentialsProvider(
			getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			"",
		)
		loadOpts = append(loadOpts,
			config.WithCredentialsProvider(creds),
			config.WithEndpointResolverWithOptions(endpointResolver(s)),
		)
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load aws config: %w", err)
	}
	return cfg, nil
}

func endpointResolver(s Settings) aws.EndpointResolverWithOptionsFunc {
	return func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
		url := s.Endpoint
		if service == dynamodb.ServiceID && s.DynamoDBEndpoint != "" {
			url = s.DynamoDBEndpoint
		}
		if url == "" {
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		}
		return aws.Endpoint{URL: url, SigningRegion: region, HostnameImmutable: true}, nil
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
