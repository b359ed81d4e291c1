// dyndb/types.go
package dyndb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoDBClient interface para abstrair o cliente DynamoDB
type DynamoDBClient interface {
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	ListTables(ctx context.Context, params *dynamodb.ListTablesInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ListTablesOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

var _ DynamoDBClient = (*dynamodb.Client)(nil)

// Item é um registro da tabela: nome do atributo -> valor tipado
type Item = map[string]types.AttributeValue

// KeyAttribute é uma entrada do key schema (HASH ou RANGE)
type KeyAttribute struct {
	Name string
	Role types.KeyType
}

// AttributeDefinition declara o tipo escalar de um atributo de chave/índice
type AttributeDefinition struct {
	Name string
	Type types.ScalarAttributeType
}

// TableDescription é a visão somente-leitura de DescribeTable
type TableDescription struct {
	Name       string
	Status     types.TableStatus
	ItemCount  int64
	Attributes []AttributeDefinition
	KeySchema  []KeyAttribute
}

// KeyNames retorna os nomes dos atributos de chave na ordem do schema.
func (d *TableDescription) KeyNames() []string {
	names := make([]string, 0, len(d.KeySchema))
	for _, k := range d.KeySchema {
		names = append(names, k.Name)
	}
	return names
}

// Page é um lote de itens retornado por uma chamada de Scan.
// LastKey é nil na última página.
type Page struct {
	Number  int
	Items   []Item
	LastKey Item
}
