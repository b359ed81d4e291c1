package config

import "net"

// AppConfig representa a estrutura raiz da configuração do awsadm.
//
// A ordem de carga é: envDefault < arquivo YAML < .env < variáveis de
// ambiente < flags de linha de comando (aplicadas pelo pacote cli).
type AppConfig struct {
	AWS     AWSConf     `yaml:"aws"`
	Scan    ScanConf    `yaml:"scan"`
	Logging LoggingConf `yaml:"logging"`
	Metrics MetricsConf `yaml:"metrics"`
}

// AWSConf contém a resolução de região, perfil e endpoint dos clientes.
type AWSConf struct {
	Region   string `yaml:"region" env:"AWS_REGION"`
	Profile  string `yaml:"profile" env:"AWS_PROFILE"`
	Endpoint string `yaml:"endpoint_url" env:"AWSADM_ENDPOINT_URL" validate:"omitempty,url"`

	// Credenciais estáticas, úteis para LocalStack / DynamoDB Local.
	// Quando vazias a cadeia padrão do SDK é usada.
	AccessKeyID     string `yaml:"access_key_id" env:"AWSADM_ACCESS_KEY_ID" validate:"required_with=SecretAccessKey"`
	SecretAccessKey string `yaml:"secret_access_key" env:"AWSADM_SECRET_ACCESS_KEY" validate:"required_with=AccessKeyID"`
}

type ScanConf struct {
	// PageSize limita os itens avaliados por página de Scan (0 = padrão do serviço)
	PageSize int32 `yaml:"page_size" env:"AWSADM_SCAN_PAGE_SIZE" validate:"gte=0"`
}

type LoggingConf struct {
	Level  string `yaml:"level" env:"AWSADM_LOG_LEVEL" envDefault:"warn" validate:"oneof=trace debug info warn error disabled"`
	Format string `yaml:"format" env:"AWSADM_LOG_FORMAT" envDefault:"console" validate:"oneof=json console"`
}

type MetricsConf struct {
	Datadog DatadogConf `yaml:"datadog"`
}

type DatadogConf struct {
	Enabled   bool     `yaml:"enabled" env:"DD_ENABLED"`
	// Addr aceita "host" ou "host:port"; sem porta usa Port
	Addr      string   `yaml:"addr" env:"DD_AGENT_HOST" validate:"required_if=Enabled true"`
	Port      string   `yaml:"port" env:"DD_DOGSTATSD_PORT" envDefault:"8125" validate:"omitempty,numeric"`
	Namespace string   `yaml:"namespace" env:"DD_NAMESPACE" envDefault:"awsadm."`
	Tags      []string `yaml:"tags" env:"DD_TAGS"`
}

// Address devolve o destino do statsd no formato host:port
func (d DatadogConf) Address() string {
	if _, _, err := net.SplitHostPort(d.Addr); err == nil {
		return d.Addr
	}
	port := d.Port
	if port == "" {
		port = "8125"
	}
	return net.JoinHostPort(d.Addr, port)
}
