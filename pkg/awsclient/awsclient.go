package awsclient

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/raywall/cloud-admin-toolkit/pkg/config"
)

// LoadOptions converte a configuração do awsadm nas opções do SDK.
func LoadOptions(cfg config.AWSConf) []func(*awsconfig.LoadOptions) error {
	opts := []func(*awsconfig.LoadOptions) error{}
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.Profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(cfg.Profile))
	}
	if cfg.Endpoint != "" {
		opts = append(opts, awsconfig.WithBaseEndpoint(cfg.Endpoint))
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	return opts
}

// LoadConfig carrega a configuração da AWS (env vars, profile, IAM role).
// Nenhuma chamada de rede é feita aqui; credenciais são resolvidas na
// primeira requisição.
func LoadConfig(ctx context.Context, cfg config.AWSConf) (aws.Config, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, LoadOptions(cfg)...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("awsclient: load config: %w", err)
	}
	return awsCfg, nil
}

// Clients agrupa os clientes usados pelo awsadm.
type Clients struct {
	DynamoDB *dynamodb.Client
	S3       *s3.Client
}

// New cria os clientes a partir de um aws.Config já carregado.
func New(awsCfg aws.Config, cfg config.AWSConf) *Clients {
	return &Clients{
		DynamoDB: dynamodb.NewFromConfig(awsCfg),
		S3: s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			// emuladores locais (LocalStack, MinIO) não resolvem bucket via subdomínio
			o.UsePathStyle = cfg.Endpoint != ""
		}),
	}
}
