// dyndb/query.go
package dyndb

import (
	"context"
	"fmt"
	"iter"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// scanInput monta o ScanInput; projection vazia lê todos os atributos.
func (a *TableAdmin) scanInput(table string, projection []string) (*dynamodb.ScanInput, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(table),
	}
	if a.pageSize > 0 {
		input.Limit = aws.Int32(a.pageSize)
	}
	if len(projection) == 0 {
		return input, nil
	}

	names := make([]expression.NameBuilder, 0, len(projection))
	for _, p := range projection {
		names = append(names, expression.Name(p))
	}
	proj := expression.NamesList(names[0], names[1:]...)

	expr, err := expression.NewBuilder().WithProjection(proj).Build()
	if err != nil {
		return nil, fmt.Errorf("dyndb: build projection: %w", err)
	}
	input.ProjectionExpression = expr.Projection()
	input.ExpressionAttributeNames = expr.Names()
	return input, nil
}

// Pages devolve a sequência preguiçosa de páginas de um Scan completo.
//
// Cada range cria um paginator novo, então a sequência pode ser percorrida
// de novo desde o início. Um erro de página é entregue uma única vez e
// encerra a sequência.
func (a *TableAdmin) Pages(ctx context.Context, table string, projection ...string) iter.Seq2[Page, error] {
	return func(yield func(Page, error) bool) {
		input, err := a.scanInput(table, projection)
		if err != nil {
			yield(Page{}, err)
			return
		}

		paginator := dynamodb.NewScanPaginator(a.client, input)
		for n := 1; paginator.HasMorePages(); n++ {
			out, err := paginator.NextPage(ctx)
			if err != nil {
				yield(Page{}, tableErr("scan", err))
				return
			}
			a.log.Debug().
				Str("table", table).
				Int("page", n).
				Int("items", len(out.Items)).
				Bool("last", out.LastEvaluatedKey == nil).
				Msg("scan page fetched")

			if !yield(Page{Number: n, Items: out.Items, LastKey: out.LastEvaluatedKey}, nil) {
				return
			}
		}
	}
}

// Scan entrega cada item a fn assim que sua página chega e retorna quantos
// itens foram entregues. Um erro interrompe o scan; o que já foi entregue
// não é desfeito.
func (a *TableAdmin) Scan(ctx context.Context, table string, fn func(Item) error) (int, error) {
	count := 0
	for page, err := range a.Pages(ctx, table) {
		if err != nil {
			return count, err
		}
		for _, item := range page.Items {
			if err := fn(item); err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}

// ScanAll acumula a tabela inteira em memória (necessário para CSV/TSV, cujo
// cabeçalho depende de todos os itens).
func (a *TableAdmin) ScanAll(ctx context.Context, table string) ([]Item, error) {
	var items []Item
	for page, err := range a.Pages(ctx, table) {
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}
	return items, nil
}
