package injector

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"regexp"
	"strings"
)

// Regex para capturar padrões ${tipo.chave}
// Ex: ${env.API_KEY}, ${ssm./awsadm/endpoint}, ${secret.localstack-creds}
var pattern = regexp.MustCompile(`\$\{(env|ssm|secret)\.([^}]+)\}`)

// ErrNoResolver indica um placeholder ssm/secret sem Resolver configurado
var ErrNoResolver = errors.New("injector: no resolver for ssm/secret placeholders")

// Resolver busca valores remotos (SSM Parameter Store e Secrets Manager)
type Resolver interface {
	Parameter(ctx context.Context, name string) (string, error)
	Secret(ctx context.Context, id string) (string, error)
}

type Injector struct {
	resolver Resolver
}

// New cria um Injector; resolver pode ser nil quando só ${env.*} é usado.
func New(resolver Resolver) *Injector {
	return &Injector{resolver: resolver}
}

// Inject substitui os placeholders em todos os campos string da struct,
// inclusive em slices, mapas e ponteiros aninhados.
func (i *Injector) Inject(ctx context.Context, target interface{}) error {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return fmt.Errorf("injector: target must be a non-nil pointer, got %T", target)
	}
	return i.injectRecursive(ctx, v.Elem())
}

func (i *Injector) injectRecursive(ctx context.Context, v reflect.Value) error {
	switch v.Kind() {
	case reflect.Struct:
		for k := 0; k < v.NumField(); k++ {
			if err := i.injectRecursive(ctx, v.Field(k)); err != nil {
				return fmt.Errorf("%s: %w", v.Type().Field(k).Name, err)
			}
		}

	case reflect.String:
		if !v.CanSet() {
			return nil
		}
		newValue, err := i.interpolateString(ctx, v.String())
		if err != nil {
			return err
		}
		v.SetString(newValue)

	case reflect.Map:
		if v.Type().Key().Kind() == reflect.String && !v.IsNil() {
			return i.injectMap(ctx, v)
		}

	case reflect.Ptr:
		if !v.IsNil() {
			return i.injectRecursive(ctx, v.Elem())
		}

	case reflect.Slice:
		for j := 0; j < v.Len(); j++ {
			if err := i.injectRecursive(ctx, v.Index(j)); err != nil {
				return err
			}
		}
	}
	return nil
}

// interpolateString realiza a substituição baseada em Regex
func (i *Injector) interpolateString(ctx context.Context, input string) (string, error) {
	if !strings.Contains(input, "${") {
		return input, nil
	}

	var err error
	result := pattern.ReplaceAllStringFunc(input, func(match string) string {
		if err != nil {
			return match
		}
		// match é algo como "${env.VAR_NAME}"
		sub := pattern.FindStringSubmatch(match)
		val, resolveErr := i.fetchValue(ctx, sub[1], sub[2])
		if resolveErr != nil {
			err = resolveErr
			return match
		}
		return val
	})

	return result, err
}

// injectMap lida com mapas de valores string ou interface{}
func (i *Injector) injectMap(ctx context.Context, v reflect.Value) error {
	iter := v.MapRange()
	updates := make(map[string]reflect.Value)

	for iter.Next() {
		elem := iter.Value()
		if elem.Kind() == reflect.Interface {
			elem = elem.Elem()
		}
		if !elem.IsValid() || elem.Kind() != reflect.String {
			continue
		}
		newVal, err := i.interpolateString(ctx, elem.String())
		if err != nil {
			return err
		}
		updates[iter.Key().String()] = reflect.ValueOf(newVal).Convert(v.Type().Elem())
	}

	for k, val := range updates {
		v.SetMapIndex(reflect.ValueOf(k).Convert(v.Type().Key()), val)
	}
	return nil
}

// fetchValue centraliza a busca de dados
func (i *Injector) fetchValue(ctx context.Context, sourceType, key string) (string, error) {
	switch sourceType {
	case "env":
		// variável ausente resulta em vazio
		return os.Getenv(key), nil

	case "ssm":
		if i.resolver == nil {
			return "", ErrNoResolver
		}
		val, err := i.resolver.Parameter(ctx, key)
		if err != nil {
			return "", fmt.Errorf("injector: ssm %s: %w", key, err)
		}
		return val, nil

	case "secret":
		if i.resolver == nil {
			return "", ErrNoResolver
		}
		val, err := i.resolver.Secret(ctx, key)
		if err != nil {
			return "", fmt.Errorf("injector: secret %s: %w", key, err)
		}
		return val, nil
	}

	return "", fmt.Errorf("injector: unknown source %q", sourceType)
}
