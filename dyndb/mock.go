// dyndb/mock.go
package dyndb

import (
	"context"
	"errors"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ErrNotMocked é retornado quando o campo de função correspondente não foi definido.
var ErrNotMocked = errors.New("dyndb: mock function not set")

// MockDynamoClient é um mock para a interface DynamoDBClient de baixo nível.
//
// Expõe campos de função (`ScanFn`, `DeleteItemFn`, etc.) para simular o
// DynamoDB em testes de outros pacotes sem tocar no AWS SDK.
type MockDynamoClient struct {
	DescribeTableFn func(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	ListTablesFn    func(ctx context.Context, params *dynamodb.ListTablesInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ListTablesOutput, error)
	ScanFn          func(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	GetItemFn       func(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItemFn    func(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItemFn    func(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

var _ DynamoDBClient = (*MockDynamoClient)(nil)

func (m *MockDynamoClient) DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if m.DescribeTableFn != nil {
		return m.DescribeTableFn(ctx, params, optFns...)
	}
	return nil, ErrNotMocked
}

func (m *MockDynamoClient) ListTables(ctx context.Context, params *dynamodb.ListTablesInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ListTablesOutput, error) {
	if m.ListTablesFn != nil {
		return m.ListTablesFn(ctx, params, optFns...)
	}
	return &dynamodb.ListTablesOutput{}, nil
}

func (m *MockDynamoClient) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if m.ScanFn != nil {
		return m.ScanFn(ctx, params, optFns...)
	}
	return &dynamodb.ScanOutput{}, nil
}

func (m *MockDynamoClient) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if m.GetItemFn != nil {
		return m.GetItemFn(ctx, params, optFns...)
	}
	return &dynamodb.GetItemOutput{}, nil
}

func (m *MockDynamoClient) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	if m.UpdateItemFn != nil {
		return m.UpdateItemFn(ctx, params, optFns...)
	}
	return &dynamodb.UpdateItemOutput{}, nil
}

func (m *MockDynamoClient) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	if m.DeleteItemFn != nil {
		return m.DeleteItemFn(ctx, params, optFns...)
	}
	return &dynamodb.DeleteItemOutput{}, nil
}

// PagedScan devolve um ScanFn que entrega as páginas em ordem, encadeando
// LastEvaluatedKey pelo índice da próxima página.
func PagedScan(pages ...[]Item) func(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	return func(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
		idx := 0
		if params.ExclusiveStartKey != nil {
			if err := attributeInt(params.ExclusiveStartKey, &idx); err != nil {
				return nil, err
			}
		}
		if idx >= len(pages) {
			return &dynamodb.ScanOutput{}, nil
		}
		out := &dynamodb.ScanOutput{Items: pages[idx], Count: int32(len(pages[idx]))}
		if idx+1 < len(pages) {
			out.LastEvaluatedKey = pageCursor(idx + 1)
		}
		return out, nil
	}
}

const mockCursorAttr = "__mock_page"

func pageCursor(idx int) Item {
	return Item{mockCursorAttr: &types.AttributeValueMemberN{Value: strconv.Itoa(idx)}}
}

func attributeInt(key Item, dst *int) error {
	n, ok := key[mockCursorAttr].(*types.AttributeValueMemberN)
	if !ok {
		return errors.New("dyndb: unexpected ExclusiveStartKey in mock")
	}
	v, err := strconv.Atoi(n.Value)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
