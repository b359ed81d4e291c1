// Package dyndb reúne as operações administrativas sobre tabelas do AWS
// DynamoDB usadas pela CLI, sobre o AWS SDK Go v2.
//
// Visão Geral:
// O tipo `TableAdmin` encapsula um `DynamoDBClient` (satisfeito por
// `*dynamodb.Client`) e expõe operações de tabela inteira: describe, listagem,
// scan paginado, remoção de todos os itens e operações pontuais por chave.
//
// Funcionalidades Principais:
// - Scan Preguiçoso: `Pages` devolve um `iter.Seq2[Page, error]` sobre o
// paginator do SDK; cada range recomeça do início.
// - Delete-All: lê o key schema, varre projetando só a chave e emite um
// DeleteItem por registro. Registros sem a chave completa são ignorados.
// - Not Found Estruturado: `IsTableNotFound` reconhece ResourceNotFoundException
// pelo tipo ou pelo código da API.
// - Mocks Integrados: `MockDynamoClient` e `PagedScan` para testes de outros pacotes.
//
// Exemplo:
//
//	admin := dyndb.New(client, dyndb.WithPageSize(100), dyndb.WithLogger(log))
//
//	for page, err := range admin.Pages(ctx, "orders") {
//		if err != nil {
//			return err
//		}
//		fmt.Println(page.Number, len(page.Items))
//	}
//
//	deleted, err := admin.DeleteAll(ctx, "orders")
//	if dyndb.IsTableNotFound(err) { /* ... */ }
package dyndb
