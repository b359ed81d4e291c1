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
//
// Package envloader carrega variáveis de ambiente diretamente para campos de
// uma struct Go usando as tags `env`, `envDefault` e `envRequired`.
//
// Visão Geral:
// O `envloader` é a última camada de configuração do awsadm antes das flags de
// linha de comando. A struct normalmente já chega preenchida a partir do
// arquivo YAML; por isso o `envDefault` só é aplicado a campos ainda zerados,
// enquanto uma variável de ambiente definida sempre sobrescreve o valor atual.
//
// Funcionalidades Principais:
//   - Mapeamento por Tag: `env:"AWS_REGION"`.
//   - Valores Padrão: `envDefault:"warn"` para campos não preenchidos.
//   - Obrigatoriedade: `envRequired:"true"` retorna *MissingEnvError.
//   - Tipos: string, int*, uint*, bool, float*, time.Duration e []string
//     (separado por vírgulas).
//   - Aninhamento: structs e ponteiros para structs.
//
// Exemplo:
//
//	type AWSConf struct {
//		Region   string `yaml:"region" env:"AWS_REGION"`
//		Endpoint string `yaml:"endpoint_url" env:"AWSADM_ENDPOINT_URL"`
//	}
//
//	var cfg AWSConf
//	if err := envloader.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
package envloader
