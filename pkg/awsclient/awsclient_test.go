package awsclient

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/raywall/cloud-admin-toolkit/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOptions(t *testing.T) {
	assert.Empty(t, LoadOptions(config.AWSConf{}))

	opts := LoadOptions(config.AWSConf{
		Region:          "us-east-1",
		Endpoint:        "http://localhost:4566",
		AccessKeyID:     "test",
		SecretAccessKey: "test",
	})
	assert.Len(t, opts, 3)

	opts = LoadOptions(config.AWSConf{Profile: "prod"})
	assert.Len(t, opts, 1)
}

func TestLoadConfig_StaticCredentials(t *testing.T) {
	cfg := config.AWSConf{
		Region:          "sa-east-1",
		Endpoint:        "http://localhost:8000",
		AccessKeyID:     "AKIDLOCAL",
		SecretAccessKey: "secret",
	}

	awsCfg, err := LoadConfig(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, "sa-east-1", awsCfg.Region)
	assert.Equal(t, "http://localhost:8000", aws.ToString(awsCfg.BaseEndpoint))

	creds, err := awsCfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "AKIDLOCAL", creds.AccessKeyID)

	clients := New(awsCfg, cfg)
	assert.NotNil(t, clients.DynamoDB)
	assert.NotNil(t, clients.S3)
	assert.True(t, clients.S3.Options().UsePathStyle)
}

func TestLoadConfig_UnknownProfile(t *testing.T) {
	t.Setenv("AWS_CONFIG_FILE", t.TempDir()+"/config")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", t.TempDir()+"/credentials")

	_, err := LoadConfig(context.Background(), config.AWSConf{Profile: "does-not-exist"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "awsclient: load config")
}
