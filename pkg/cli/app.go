package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/raywall/cloud-admin-toolkit/dyndb"
	"github.com/raywall/cloud-admin-toolkit/objstore"
	"github.com/raywall/cloud-admin-toolkit/pkg/awsclient"
	"github.com/raywall/cloud-admin-toolkit/pkg/config"
	"github.com/raywall/cloud-admin-toolkit/pkg/logger"
	"github.com/raywall/cloud-admin-toolkit/pkg/metrics"
	"github.com/raywall/cloud-admin-toolkit/pkg/observability"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Backends são os clientes AWS usados pelos comandos
type Backends struct {
	DynamoDB dyndb.DynamoDBClient
	S3       objstore.S3Client
}

// ClientFactory constrói os clientes depois que a configuração foi resolvida
type ClientFactory func(ctx context.Context, cfg config.AWSConf) (Backends, error)

// MetricsFactory constrói o provider de métricas
type MetricsFactory func(cfg config.MetricsConf) (metrics.Provider, error)

// DefaultClients usa a cadeia padrão do SDK (env, profile, IAM role).
func DefaultClients(ctx context.Context, cfg config.AWSConf) (Backends, error) {
	awsCfg, err := awsclient.LoadConfig(ctx, cfg)
	if err != nil {
		return Backends{}, err
	}
	c := awsclient.New(awsCfg, cfg)
	return Backends{DynamoDB: c.DynamoDB, S3: c.S3}, nil
}

// Option configura um App
type Option func(*App)

// WithOutput redireciona stdout/stderr (testes)
func WithOutput(stdout, stderr io.Writer) Option {
	return func(a *App) {
		a.stdout = stdout
		a.stderr = stderr
	}
}

func WithClientFactory(f ClientFactory) Option {
	return func(a *App) {
		a.newClients = f
	}
}

func WithMetricsFactory(f MetricsFactory) Option {
	return func(a *App) {
		a.newMetrics = f
	}
}

// WithLoader troca o carregador de configuração (ex.: sem .env nos testes)
func WithLoader(l *config.Loader) Option {
	return func(a *App) {
		a.loader = l
	}
}

// globalFlags são as flags persistentes, válidas para todos os comandos
type globalFlags struct {
	configPath string
	region     string
	profile    string
	endpoint   string
	pageSize   int32
	logLevel   string
	logFormat  string
}

// App é uma execução do awsadm: flags, configuração resolvida e clientes.
type App struct {
	stdout     io.Writer
	stderr     io.Writer
	loader     *config.Loader
	newClients ClientFactory
	newMetrics MetricsFactory

	flags   globalFlags
	cfg     *config.AppConfig
	log     zerolog.Logger
	tables  *dyndb.TableAdmin
	objects *objstore.Lister
	metrics *metrics.Processor
}

// NewApp cria o App com os padrões de produção
func NewApp(opts ...Option) *App {
	a := &App{
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		loader:     config.NewLoader().WithResolver(awsclient.SecretResolverFactory),
		newClients: DefaultClients,
		newMetrics: observability.SetupMetrics,
		log:        zerolog.Nop(),
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Command monta a árvore de comandos.
//
// O root aceita 1 ou 2 argumentos posicionais: um primeiro token que não é
// subcomando é tratado como bucket, seguido opcionalmente de uma tabela.
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:   "awsadm <command> [args]",
		Short: "Administração de buckets S3 e tabelas DynamoDB",
		Long: `awsadm lista buckets e objetos do S3 e inspeciona, exporta e altera
tabelas do DynamoDB usando a cadeia padrão de credenciais da AWS.

Uso alternativo: awsadm <bucket> [table] lista os objetos do bucket e,
se informada, descreve a tabela.`,
		Args:              rangeArgs(1, 2),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runFallback,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})
	bindGlobalFlags(root.PersistentFlags(), &a.flags)

	root.AddCommand(
		a.listBucketsCmd(),
		a.listObjectsCmd(),
		a.describeTableCmd(),
		a.scanTableCmd(),
		a.scanTableCSVCmd(),
		a.scanTableTSVCmd(),
		a.listTablesCmd(),
		a.deleteAllCmd(),
		a.itemExistsCmd(),
		a.setAttrCmd(),
	)
	return root
}

func bindGlobalFlags(fs *pflag.FlagSet, f *globalFlags) {
	fs.StringVar(&f.configPath, "config", "", "arquivo YAML de configuração (ou $"+config.EnvConfigFile+")")
	fs.StringVar(&f.region, "region", "", "região AWS")
	fs.StringVar(&f.profile, "profile", "", "perfil do arquivo de credenciais compartilhado")
	fs.StringVar(&f.endpoint, "endpoint-url", "", "endpoint alternativo (LocalStack, DynamoDB Local)")
	fs.Int32Var(&f.pageSize, "page-size", 0, "itens por página de Scan (0 = padrão do serviço)")
	fs.StringVar(&f.logLevel, "log-level", "", "nível de log: trace, debug, info, warn, error, disabled")
	fs.StringVar(&f.logFormat, "log-format", "", "formato de log: console ou json")
}

// applyFlags sobrepõe à configuração apenas as flags informadas
func (a *App) applyFlags(fs *pflag.FlagSet, cfg *config.AppConfig) {
	if fs.Changed("region") {
		cfg.AWS.Region = a.flags.region
	}
	if fs.Changed("profile") {
		cfg.AWS.Profile = a.flags.profile
	}
	if fs.Changed("endpoint-url") {
		cfg.AWS.Endpoint = a.flags.endpoint
	}
	if fs.Changed("page-size") {
		cfg.Scan.PageSize = a.flags.pageSize
	}
	if fs.Changed("log-level") {
		cfg.Logging.Level = a.flags.logLevel
	}
	if fs.Changed("log-format") {
		cfg.Logging.Format = a.flags.logFormat
	}
}

// setup roda depois da validação de argumentos e antes de qualquer comando:
// nenhum acesso à rede acontece quando o uso está errado.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := a.loader.LoadContext(cmd.Context(), a.flags.configPath, func(cfg *config.AppConfig) {
		a.applyFlags(cmd.Flags(), cfg)
	})
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log = logger.Configure(cfg.Logging, a.stderr).With().Str("command", commandName(cmd)).Logger()

	backends, err := a.newClients(cmd.Context(), cfg.AWS)
	if err != nil {
		return err
	}
	a.tables = dyndb.New(backends.DynamoDB,
		dyndb.WithLogger(a.log),
		dyndb.WithPageSize(cfg.Scan.PageSize),
		dyndb.WithSkipHandler(a.reportSkipped),
	)
	a.objects = objstore.New(backends.S3, a.log)

	provider, err := a.newMetrics(cfg.Metrics)
	if err != nil {
		return err
	}
	a.metrics = metrics.NewProcessor(nil, provider)

	a.log.Debug().
		Str("region", cfg.AWS.Region).
		Str("profile", cfg.AWS.Profile).
		Str("endpoint", cfg.AWS.Endpoint).
		Int32("page_size", cfg.Scan.PageSize).
		Msg("configuration resolved")
	return nil
}

// Execute roda o comando indicado por args e devolve o exit code.
func (a *App) Execute(ctx context.Context, args []string) int {
	root := a.Command()
	root.SetArgs(args)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	started := time.Now()
	cmd, err := root.ExecuteContextC(ctx)

	if a.metrics != nil {
		if mErr := a.metrics.ObserveCommand(commandName(cmd), started, err); mErr != nil {
			a.log.Debug().Err(mErr).Msg("metrics not sent")
		}
		if cErr := a.metrics.Close(); cErr != nil {
			a.log.Debug().Err(cErr).Msg("metrics close failed")
		}
	}

	if err == nil {
		return 0
	}
	if errors.Is(err, ErrUsage) {
		if cmd == nil {
			cmd = root
		}
		fmt.Fprint(a.stderr, cmd.UsageString())
	} else {
		a.log.Error().Err(err).Msg("command failed")
	}
	fmt.Fprintf(a.stderr, "Error: %v\n", err)
	return 1
}

// commandName identifica o comando nos logs e métricas
func commandName(cmd *cobra.Command) string {
	switch {
	case cmd == nil:
		return "unknown"
	case !cmd.HasParent():
		return "fallback"
	default:
		return cmd.Name()
	}
}

// record envia uma métrica de domínio; falhas de envio não afetam o comando
func (a *App) record(event string, value int, tags ...string) {
	if a.metrics == nil {
		return
	}
	if err := a.metrics.Record(event, float64(value), tags...); err != nil {
		a.log.Debug().Err(err).Str("event", event).Msg("metric not recorded")
	}
}
