// Package render converte itens do DynamoDB em texto: a forma estruturada de
// `FormatValue`, blocos YAML (`Verbose`) e as tabelas `CSV` e `TSV`, cujo
// cabeçalho é a união ordenada dos atributos de todos os itens.
package render
