// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package envloader

import (
	"fmt"
	"reflect"
	"strings"
)

// InvalidConfigError: Load recebeu algo que não é ponteiro para struct.
type InvalidConfigError struct {
	Value reflect.Type
}

func (e *InvalidConfigError) Error() string {
	kind := e.Value.Kind().String()
	if e.Value.Kind() == reflect.Ptr {
		kind = "pointer to " + e.Value.Elem().Kind().String()
	}
	return "envloader: config must be a pointer to struct, got " + kind
}

// FieldError indica que o valor de EnvVar não pôde ser convertido para o
// tipo do campo. Err costuma ser um *strconv.NumError ou UnsupportedTypeError.
type FieldError struct {
	FieldName string
	EnvVar    string
	Value     string
	Err       error
}

// sensitiveMarkers identificam variáveis cujo valor não aparece em mensagens
var sensitiveMarkers = []string{"SECRET", "PASSWORD", "TOKEN", "ACCESS_KEY"}

func (e *FieldError) Error() string {
	return fmt.Sprintf("envloader: error setting field %s from env %s=%s: %v",
		e.FieldName, e.EnvVar, e.displayValue(), e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func (e *FieldError) displayValue() string {
	name := strings.ToUpper(e.EnvVar)
	for _, m := range sensitiveMarkers {
		if strings.Contains(name, m) {
			return "***"
		}
	}
	return e.Value
}

// UnsupportedTypeError: o tipo do campo não tem conversão a partir de texto.
type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("envloader: unsupported type %s", e.Type)
}

// MissingEnvError: campo com envRequired:"true" ficou sem valor.
type MissingEnvError struct {
	FieldName string
	EnvVar    string
}

func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("envloader: required env %s for field %s is not set", e.EnvVar, e.FieldName)
}
