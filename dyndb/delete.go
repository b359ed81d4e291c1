package dyndb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DeleteAll remove todos os itens da tabela e retorna quantos foram apagados.
//
// O key schema é lido primeiro (ErrTableNotFound / ErrNoKeySchema retornam 0
// sem nenhum scan). Em seguida a tabela é varrida projetando apenas a chave e
// cada item vira um DeleteItem independente: uma falha no meio deixa a
// tabela parcialmente vazia e o contador reflete o que já foi apagado.
func (a *TableAdmin) DeleteAll(ctx context.Context, table string) (int, error) {
	desc, err := a.Describe(ctx, table)
	if err != nil {
		return 0, err
	}
	if len(desc.KeySchema) == 0 {
		return 0, fmt.Errorf("dyndb: delete-all %s: %w", table, ErrNoKeySchema)
	}

	keyNames := desc.KeyNames()
	deleted := 0

	for page, err := range a.Pages(ctx, table, keyNames...) {
		if err != nil {
			return deleted, err
		}
		for _, item := range page.Items {
			key, ok := ExtractKey(item, keyNames)
			if !ok {
				a.log.Warn().
					Str("table", table).
					Strs("key_schema", keyNames).
					Int("attributes", len(item)).
					Msg("skipping item missing full key")
				if a.onSkip != nil {
					a.onSkip(item)
				}
				continue
			}

			_, err := a.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
				TableName: aws.String(table),
				Key:       key,
			})
			if err != nil {
				return deleted, fmt.Errorf("dyndb: delete failed: %w", err)
			}
			deleted++
		}
		a.log.Debug().Str("table", table).Int("page", page.Number).Int("deleted", deleted).Msg("page deleted")
	}

	return deleted, nil
}
