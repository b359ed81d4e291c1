package awsclient

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/raywall/cloud-admin-toolkit/pkg/config"
	"github.com/raywall/cloud-admin-toolkit/pkg/config/injector"
)

// SSMClient interface para mock
type SSMClient interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// SecretsClient interface para mock
type SecretsClient interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretResolver resolve placeholders ${ssm.*} e ${secret.*} da configuração
type SecretResolver struct {
	ssm     SSMClient
	secrets SecretsClient
}

var _ injector.Resolver = (*SecretResolver)(nil)

// NewSecretResolver cria o resolver sobre clientes já construídos
func NewSecretResolver(ssmClient SSMClient, secretsClient SecretsClient) *SecretResolver {
	return &SecretResolver{ssm: ssmClient, secrets: secretsClient}
}

// SecretResolverFactory carrega a configuração AWS (região/perfil já
// resolvidos) e cria o resolver. Usada pelo config.Loader apenas quando
// algum placeholder remoto aparece.
func SecretResolverFactory(ctx context.Context, cfg config.AWSConf) (injector.Resolver, error) {
	awsCfg, err := LoadConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewSecretResolver(ssm.NewFromConfig(awsCfg), secretsmanager.NewFromConfig(awsCfg)), nil
}

// Parameter lê um parâmetro do SSM, decifrando SecureString
func (r *SecretResolver) Parameter(ctx context.Context, name string) (string, error) {
	out, err := r.ssm.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("awsclient: ssm get parameter: %w", err)
	}
	if out.Parameter == nil {
		return "", fmt.Errorf("awsclient: ssm parameter %s has no value", name)
	}
	return aws.ToString(out.Parameter.Value), nil
}

// Secret lê o SecretString de um segredo; segredos binários não são suportados
func (r *SecretResolver) Secret(ctx context.Context, id string) (string, error) {
	out, err := r.secrets.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(id),
	})
	if err != nil {
		return "", fmt.Errorf("awsclient: get secret value: %w", err)
	}
	if out.SecretString == nil {
		return "", fmt.Errorf("awsclient: secret %s has no string value", id)
	}
	return *out.SecretString, nil
}
