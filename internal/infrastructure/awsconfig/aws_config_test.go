package awsconfig

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointResolver(t *testing.T) {
	r := endpointResolver(Settings{Endpoint: "http://localstack:4566", DynamoDBEndpoint: "http://dynamodb:8000"})

	ep, err := r(dynamodb.ServiceID, "eu-west-1")
	require.NoError(t, err)
	assert.Equal(t, "http://dynamodb:8000", ep.URL)
	assert.Equal(t, "eu-west-1", ep.SigningRegion)

	ep, err = r(sns.ServiceID, "eu-west-1")
	require.NoError(t, err)
	assert.Equal(t, "http://localstack:4566", ep.URL)

	only := endpointResolver(Settings{DynamoDBEndpoint: "http://dynamodb:8000"})
	_, err = only(sns.ServiceID, "eu-west-1")
	var notFound *aws.EndpointNotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestLoad_LocalCredentials(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")

	cfg, err := Load(context.Background(), Settings{Region: "eu-central-1", DynamoDBEndpoint: "http://dynamodb:8000"})
	require.NoError(t, err)
	assert.Equal(t, "eu-central-1", cfg.Region)

	creds, err := cfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "local", creds.AccessKeyID)
}
