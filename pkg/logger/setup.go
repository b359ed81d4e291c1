package logger

import (
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/raywall/cloud-admin-toolkit/pkg/config"
	"github.com/rs/zerolog"
)

// Configure inicializa o logger da execução.
//
// O destino é sempre o writer informado (stderr no binário), nunca stdout:
// stdout carrega a saída dos comandos (CSV/TSV) e precisa ficar limpo.
func Configure(cfg config.LoggingConf, out io.Writer) zerolog.Logger {
	// Define o nível de log (default: warn)
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.WarnLevel
	}

	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
}
