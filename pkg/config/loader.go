package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/raywall/cloud-admin-toolkit/envloader"
	"github.com/raywall/cloud-admin-toolkit/pkg/config/injector"
	"gopkg.in/yaml.v3"
)

// EnvConfigFile aponta o arquivo YAML quando a flag --config não é usada.
const EnvConfigFile = "AWSADM_CONFIG"

// ResolverFactory cria o resolver de placeholders remotos (${ssm.*},
// ${secret.*}) a partir da seção aws já carregada.
type ResolverFactory func(ctx context.Context, cfg AWSConf) (injector.Resolver, error)

// Loader compõe as fontes de configuração (arquivo, .env e ambiente).
type Loader struct {
	validator *ConfigValidator
	dotenv    []string
	resolver  ResolverFactory
}

// NewLoader cria um Loader. Os arquivos .env informados são carregados se
// existirem; sem argumentos apenas ".env" no diretório corrente é tentado.
func NewLoader(dotenvFiles ...string) *Loader {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	return &Loader{
		validator: NewValidator(),
		dotenv:    dotenvFiles,
	}
}

// WithResolver habilita ${ssm.*} e ${secret.*} nos valores da configuração.
// Sem resolver apenas ${env.*} é aceito.
func (l *Loader) WithResolver(f ResolverFactory) *Loader {
	l.resolver = f
	return l
}

// Load é LoadContext com context.Background()
func (l *Loader) Load(path string) (*AppConfig, error) {
	return l.LoadContext(context.Background(), path)
}

// Override altera a configuração depois do ambiente (ex.: flags de linha de comando).
type Override func(*AppConfig)

// LoadContext lê o arquivo YAML (path ou $AWSADM_CONFIG, ambos opcionais),
// aplica o ambiente e os overrides por cima, resolve os placeholders ${...}
// e só então valida o resultado.
func (l *Loader) LoadContext(ctx context.Context, path string, overrides ...Override) (*AppConfig, error) {
	cfg := &AppConfig{}

	// .env não sobrescreve variáveis já exportadas no processo
	for _, f := range l.dotenv {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := envloader.Load(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	for _, o := range overrides {
		o(cfg)
	}

	var resolver injector.Resolver
	if l.resolver != nil {
		resolver = &lazyResolver{ctx: ctx, cfg: cfg, build: l.resolver}
	}
	if err := injector.New(resolver).Inject(ctx, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := l.validator.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// lazyResolver só cria os clientes AWS no primeiro placeholder remoto.
// A seção aws usada é a do momento da criação: um placeholder dentro da
// própria seção aws ainda não resolvido não afeta a região/perfil usados.
type lazyResolver struct {
	ctx   context.Context
	cfg   *AppConfig
	build ResolverFactory
	inner injector.Resolver
}

func (r *lazyResolver) get() (injector.Resolver, error) {
	if r.inner == nil {
		inner, err := r.build(r.ctx, r.cfg.AWS)
		if err != nil {
			return nil, err
		}
		r.inner = inner
	}
	return r.inner, nil
}

func (r *lazyResolver) Parameter(ctx context.Context, name string) (string, error) {
	inner, err := r.get()
	if err != nil {
		return "", err
	}
	return inner.Parameter(ctx, name)
}

func (r *lazyResolver) Secret(ctx context.Context, id string) (string, error) {
	inner, err := r.get()
	if err != nil {
		return "", err
	}
	return inner.Secret(ctx, id)
}
