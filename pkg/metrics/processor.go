package metrics

import (
	"fmt"
	"time"
)

// Processor traduz eventos dos comandos em chamadas ao Provider.
type Processor struct {
	definitions map[string]MetricDefinition
	provider    Provider
	baseTags    []string
}

// NewProcessor cria um processador linkando eventos aos seus tipos reais.
// Definições nil usam DefaultDefinitions.
func NewProcessor(defs map[string]MetricDefinition, provider Provider, baseTags ...string) *Processor {
	if defs == nil {
		defs = DefaultDefinitions
	}
	return &Processor{
		definitions: defs,
		provider:    provider,
		baseTags:    baseTags,
	}
}

// Record envia um valor para o evento informado.
func (p *Processor) Record(event string, value float64, tags ...string) error {
	def, exists := p.definitions[event]
	if !exists {
		return fmt.Errorf("metrics: undefined event %s", event)
	}

	finalTags := make([]string, 0, len(p.baseTags)+len(tags))
	finalTags = append(finalTags, p.baseTags...)
	finalTags = append(finalTags, tags...)

	switch def.Type {
	case TypeCount:
		return p.provider.Count(def.Name, value, finalTags)
	case TypeGauge:
		return p.provider.Gauge(def.Name, value, finalTags)
	case TypeHistogram:
		return p.provider.Histogram(def.Name, value, finalTags)
	default:
		return fmt.Errorf("metrics: unknown type %s for %s", def.Type, event)
	}
}

// ObserveCommand registra a duração do comando e, se houve falha, o erro.
func (p *Processor) ObserveCommand(command string, started time.Time, err error) error {
	tag := "command:" + command
	if recErr := p.Record(EventCommandDuration, float64(time.Since(started).Milliseconds()), tag); recErr != nil {
		return recErr
	}
	if err != nil {
		return p.Record(EventCommandError, 1, tag)
	}
	return nil
}

// Close libera o provider subjacente.
func (p *Processor) Close() error {
	return p.provider.Close()
}
