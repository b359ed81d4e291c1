package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ConfigValidator struct {
	validate *validator.Validate
}

// NewValidator cria uma nova instância do validador
func NewValidator() *ConfigValidator {
	return &ConfigValidator{
		validate: validator.New(),
	}
}

// Validate realiza validações estruturais (tags) e semânticas (lógica)
func (cv *ConfigValidator) Validate(cfg *AppConfig) error {
	if err := cv.validate.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var errMsgs []string
			for _, e := range validationErrors {
				errMsgs = append(errMsgs, fmt.Sprintf("field '%s' failed on rule '%s'", e.Namespace(), e.Tag()))
			}
			return fmt.Errorf("config: invalid values:\n- %s", strings.Join(errMsgs, "\n- "))
		}
		return fmt.Errorf("config: validation failed: %w", err)
	}

	return cv.validateSemantics(cfg)
}

func (cv *ConfigValidator) validateSemantics(cfg *AppConfig) error {
	// Perfil nomeado e credenciais estáticas são mutuamente exclusivos
	if cfg.AWS.Profile != "" && cfg.AWS.AccessKeyID != "" {
		return fmt.Errorf("config: aws.profile and aws.access_key_id cannot be used together")
	}

	for _, tag := range cfg.Metrics.Datadog.Tags {
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("config: empty datadog tag")
		}
	}

	return nil
}
