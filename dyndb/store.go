// dyndb/store.go
package dyndb

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"
)

// Option configura um TableAdmin
type Option func(*TableAdmin)

// WithLogger define o logger usado para progresso de páginas e deletes
func WithLogger(log zerolog.Logger) Option {
	return func(a *TableAdmin) {
		a.log = log
	}
}

// WithPageSize limita os itens avaliados por página de Scan (0 = padrão do serviço)
func WithPageSize(n int32) Option {
	return func(a *TableAdmin) {
		a.pageSize = n
	}
}

// WithSkipHandler recebe os registros ignorados pelo DeleteAll por não
// trazerem a chave completa
func WithSkipHandler(fn func(Item)) Option {
	return func(a *TableAdmin) {
		a.onSkip = fn
	}
}

// TableAdmin executa operações administrativas sobre tabelas DynamoDB.
// Não guarda estado entre chamadas; cada operação vai ao serviço.
type TableAdmin struct {
	client   DynamoDBClient
	log      zerolog.Logger
	pageSize int32
	onSkip   func(Item)
}

// New cria um TableAdmin reutilizável
func New(client DynamoDBClient, opts ...Option) *TableAdmin {
	a := &TableAdmin{
		client: client,
		log:    zerolog.Nop(),
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Describe busca o key schema e as definições de atributos da tabela.
// Uma tabela inexistente retorna um erro que satisfaz IsTableNotFound.
func (a *TableAdmin) Describe(ctx context.Context, table string) (*TableDescription, error) {
	out, err := a.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(table),
	})
	if err != nil {
		return nil, tableErr("describe", err)
	}
	if out.Table == nil {
		return nil, fmt.Errorf("dyndb: describe %s: %w", table, ErrTableNotFound)
	}

	t := out.Table
	desc := &TableDescription{
		Name:      aws.ToString(t.TableName),
		Status:    t.TableStatus,
		ItemCount: aws.ToInt64(t.ItemCount),
	}
	if desc.Name == "" {
		desc.Name = table
	}
	for _, ad := range t.AttributeDefinitions {
		desc.Attributes = append(desc.Attributes, AttributeDefinition{
			Name: aws.ToString(ad.AttributeName),
			Type: ad.AttributeType,
		})
	}
	for _, ks := range t.KeySchema {
		desc.KeySchema = append(desc.KeySchema, KeyAttribute{
			Name: aws.ToString(ks.AttributeName),
			Role: ks.KeyType,
		})
	}
	return desc, nil
}

// ListTables lista todos os nomes de tabela, seguindo LastEvaluatedTableName
func (a *TableAdmin) ListTables(ctx context.Context) ([]string, error) {
	var names []string
	paginator := dynamodb.NewListTablesPaginator(a.client, &dynamodb.ListTablesInput{})
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("dyndb: list tables failed: %w", err)
		}
		names = append(names, out.TableNames...)
	}
	return names, nil
}

// Exists faz um GetItem pela chave exata; ausência não é erro
func (a *TableAdmin) Exists(ctx context.Context, table string, key Item) (bool, error) {
	out, err := a.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key:       key,
	})
	if err != nil {
		return false, fmt.Errorf("dyndb: get failed: %w", err)
	}
	return out.Item != nil, nil
}

// SetAttribute define um único atributo do item identificado por key.
// Placeholders evitam conflito com palavras reservadas do DynamoDB.
func (a *TableAdmin) SetAttribute(ctx context.Context, table string, key Item, name string, value types.AttributeValue) error {
	_, err := a.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(table),
		Key:                       key,
		UpdateExpression:          aws.String("SET #attr = :val"),
		ExpressionAttributeNames:  map[string]string{"#attr": name},
		ExpressionAttributeValues: map[string]types.AttributeValue{":val": value},
	})
	if err != nil {
		return fmt.Errorf("dyndb: update failed: %w", err)
	}
	return nil
}

// ParseKey converte argumentos "nome=valor" em uma chave de atributos string.
// Tokens sem "=" são ignorados; apenas o primeiro "=" separa nome e valor.
func ParseKey(args []string) (Item, error) {
	raw := make(map[string]string, len(args))
	for _, kv := range args {
		if k, v, ok := strings.Cut(kv, "="); ok {
			raw[k] = v
		}
	}
	key, err := attributevalue.MarshalMap(raw)
	if err != nil {
		return nil, fmt.Errorf("dyndb: marshal key: %w", err)
	}
	return key, nil
}

// InferValue deduz o tipo a partir do texto, nesta ordem:
// "true"/"false" (sem caixa) -> BOOL, número decimal válido -> N, senão -> S.
func InferValue(text string) types.AttributeValue {
	if strings.EqualFold(text, "true") || strings.EqualFold(text, "false") {
		return &types.AttributeValueMemberBOOL{Value: strings.EqualFold(text, "true")}
	}
	if !decimalLiteral(text) {
		return &types.AttributeValueMemberS{Value: text}
	}
	// overflow ("1e400") ainda é um número
	if _, err := strconv.ParseFloat(text, 64); err == nil || errors.Is(err, strconv.ErrRange) {
		return &types.AttributeValueMemberN{Value: text}
	}
	return &types.AttributeValueMemberS{Value: text}
}

// decimalLiteral rejeita a sintaxe de literal Go que ParseFloat aceita mas o
// DynamoDB não: separador "_" e mantissa hexadecimal ("0x1p4").
func decimalLiteral(text string) bool {
	if strings.Contains(text, "_") {
		return false
	}
	digits := strings.TrimLeft(text, "+-")
	return !strings.HasPrefix(digits, "0x") && !strings.HasPrefix(digits, "0X")
}

// ExtractKey copia de item apenas os atributos de chave.
// ok é false se algum deles estiver ausente.
func ExtractKey(item Item, keyNames []string) (key Item, ok bool) {
	key = make(Item, len(keyNames))
	for _, name := range keyNames {
		v, found := item[name]
		if !found {
			return nil, false
		}
		key[name] = v
	}
	return key, true
}
