package metrics

// Provider define o contrato para envio de métricas.
// Isso permite trocar Datadog por outro backend sem alterar os comandos.
type Provider interface {
	Count(name string, value float64, tags []string) error
	Gauge(name string, value float64, tags []string) error
	Histogram(name string, value float64, tags []string) error
	Close() error
}

// MetricType define os tipos suportados.
type MetricType string

const (
	TypeCount     MetricType = "count"
	TypeGauge     MetricType = "gauge"
	TypeHistogram MetricType = "histogram"
)

// MetricDefinition armazena os metadados da métrica (nome real, tipo).
type MetricDefinition struct {
	Name string
	Type MetricType
}

// Eventos emitidos pelos comandos.
const (
	EventItemsScanned    = "items_scanned"
	EventItemsDeleted    = "items_deleted"
	EventObjectsListed   = "objects_listed"
	EventTablesTotal     = "tables_total"
	EventBucketsTotal    = "buckets_total"
	EventCommandDuration = "command_duration"
	EventCommandError    = "command_error"
)

// DefaultDefinitions liga cada evento ao nome publicado e ao seu tipo.
var DefaultDefinitions = map[string]MetricDefinition{
	EventItemsScanned:    {Name: "dynamodb.items.scanned", Type: TypeCount},
	EventItemsDeleted:    {Name: "dynamodb.items.deleted", Type: TypeCount},
	EventObjectsListed:   {Name: "s3.objects.listed", Type: TypeCount},
	EventTablesTotal:     {Name: "dynamodb.tables", Type: TypeGauge},
	EventBucketsTotal:    {Name: "s3.buckets", Type: TypeGauge},
	EventCommandDuration: {Name: "command.duration_ms", Type: TypeHistogram},
	EventCommandError:    {Name: "command.errors", Type: TypeCount},
}
