// Package cloud_admin_toolkit reúne o awsadm, uma CLI de administração para
// buckets S3 e tabelas DynamoDB, e os pacotes que a compõem.
//
// Visão Geral:
// Cada invocação executa um único comando e termina; nenhum estado é mantido
// entre execuções. Os clientes AWS usam a cadeia padrão de credenciais, com
// região, perfil e endpoint ajustáveis por arquivo YAML, ambiente ou flags.
//
// Sub-Pacotes Principais:
//
// 1. dyndb:
//   - TableAdmin: describe, list-tables, scan paginado (iter.Seq2), delete-all.
//   - Operações por chave: Exists, SetAttribute, ParseKey e InferValue.
//
// 2. render:
//   - FormatValue, blocos YAML (Verbose) e exportação CSV/TSV.
//
// 3. objstore:
//   - Listagem de buckets e objetos com tokens de continuação.
//
// 4. envloader e pkg/config:
//   - Tags "env", "envDefault" e "envRequired"; arquivo YAML, .env e validação.
//
// 5. pkg/cli e cmd/awsadm:
//   - Comandos cobra, flags globais, exit codes e o modo <bucket> [table].
//
// Exemplo de Uso:
//
//	awsadm list-tables
//	awsadm --region sa-east-1 scan-table-csv orders > orders.csv
//	awsadm --endpoint-url http://localhost:8000 delete-all sessions
//	awsadm set-attr users active true id=42
//	awsadm my-bucket orders
package cloud_admin_toolkit
