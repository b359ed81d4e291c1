package dyndb_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/raywall/cloud-admin-toolkit/dyndb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteAll_CompositeKey(t *testing.T) {
	t.Parallel()

	client := &mockClient{}
	client.On("DescribeTable", mock.Anything, mock.Anything).Return(compositeTable("orders"), nil)
	client.On("Scan", mock.Anything, scanFor("orders")).Return(&dynamodb.ScanOutput{
		Items: []dyndb.Item{
			{"pk": s("a"), "sk": n("1"), "status": s("open")},
			{"pk": s("a"), "sk": n("2"), "total": n("9.5"), "tags": &types.AttributeValueMemberSS{Value: []string{"x"}}},
			{"pk": s("b"), "sk": n("1")},
		},
	}, nil)

	var keys []dyndb.Item
	client.On("DeleteItem", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { keys = append(keys, args.Get(1).(*dynamodb.DeleteItemInput).Key) }).
		Return(&dynamodb.DeleteItemOutput{}, nil)

	deleted, err := newTestAdmin(client).DeleteAll(context.Background(), "orders")

	require.NoError(t, err)
	assert.Equal(t, 3, deleted)
	require.Len(t, keys, 3)
	for _, k := range keys {
		assert.Len(t, k, 2)
		assert.Contains(t, k, "pk")
		assert.Contains(t, k, "sk")
	}
	assert.Equal(t, dyndb.Item{"pk": s("a"), "sk": n("2")}, keys[1])
}

func TestDeleteAll_KeysIgnoreExtraAttributesAcrossPages(t *testing.T) {
	t.Parallel()

	var keys []dyndb.Item
	client := &dyndb.MockDynamoClient{
		DescribeTableFn: func(context.Context, *dynamodb.DescribeTableInput, ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
			return compositeTable("orders"), nil
		},
		ScanFn: dyndb.PagedScan(
			[]dyndb.Item{{"pk": s("a"), "sk": n("1"), "extra": s("x")}},
			[]dyndb.Item{{"pk": s("b"), "sk": n("2"), "other": &types.AttributeValueMemberBOOL{Value: true}}},
		),
		DeleteItemFn: func(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
			keys = append(keys, in.Key)
			return &dynamodb.DeleteItemOutput{}, nil
		},
	}

	deleted, err := dyndb.New(client).DeleteAll(context.Background(), "orders")

	require.NoError(t, err)
	assert.Equal(t, 2, deleted)
	assert.Equal(t, []dyndb.Item{
		{"pk": s("a"), "sk": n("1")},
		{"pk": s("b"), "sk": n("2")},
	}, keys)
}

func TestDeleteAll_ProjectsKeyOnly(t *testing.T) {
	t.Parallel()

	client := &mockClient{}
	client.On("DescribeTable", mock.Anything, mock.Anything).Return(compositeTable("orders"), nil)

	var scan *dynamodb.ScanInput
	client.On("Scan", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { scan = args.Get(1).(*dynamodb.ScanInput) }).
		Return(&dynamodb.ScanOutput{}, nil)

	deleted, err := newTestAdmin(client).DeleteAll(context.Background(), "orders")

	require.NoError(t, err)
	assert.Zero(t, deleted)
	require.NotNil(t, scan)
	require.NotNil(t, scan.ProjectionExpression)

	var names []string
	for _, v := range scan.ExpressionAttributeNames {
		names = append(names, v)
	}
	assert.ElementsMatch(t, []string{"pk", "sk"}, names)
	client.AssertNotCalled(t, "DeleteItem", mock.Anything, mock.Anything)
}

func TestDeleteAll_SkipsItemsMissingKey(t *testing.T) {
	t.Parallel()

	client := &mockClient{}
	client.On("DescribeTable", mock.Anything, mock.Anything).Return(compositeTable("orders"), nil)
	client.On("Scan", mock.Anything, mock.Anything).Return(&dynamodb.ScanOutput{
		Items: []dyndb.Item{
			{"pk": s("a"), "sk": n("1")},
			{"pk": s("orphan")},
		},
	}, nil)
	client.On("DeleteItem", mock.Anything, mock.Anything).Return(&dynamodb.DeleteItemOutput{}, nil).Once()

	var skipped []dyndb.Item
	admin := newTestAdmin(client, dyndb.WithSkipHandler(func(item dyndb.Item) {
		skipped = append(skipped, item)
	}))

	deleted, err := admin.DeleteAll(context.Background(), "orders")

	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
	require.Len(t, skipped, 1)
	assert.Equal(t, s("orphan"), skipped[0]["pk"])
	client.AssertExpectations(t)
}

func TestDeleteAll_TableNotFound(t *testing.T) {
	t.Parallel()

	client := &mockClient{}
	client.On("DescribeTable", mock.Anything, mock.Anything).
		Return(nil, &types.ResourceNotFoundException{})

	deleted, err := newTestAdmin(client).DeleteAll(context.Background(), "ghost")

	assert.Zero(t, deleted)
	assert.ErrorIs(t, err, dyndb.ErrTableNotFound)
	client.AssertNotCalled(t, "Scan", mock.Anything, mock.Anything)
}

func TestDeleteAll_NoKeySchema(t *testing.T) {
	t.Parallel()

	client := &mockClient{}
	out := compositeTable("odd")
	out.Table.KeySchema = nil
	client.On("DescribeTable", mock.Anything, mock.Anything).Return(out, nil)

	deleted, err := newTestAdmin(client).DeleteAll(context.Background(), "odd")

	assert.Zero(t, deleted)
	assert.ErrorIs(t, err, dyndb.ErrNoKeySchema)
	client.AssertNotCalled(t, "Scan", mock.Anything, mock.Anything)
}

func TestDeleteAll_StopsOnDeleteFailure(t *testing.T) {
	t.Parallel()

	client := &mockClient{}
	client.On("DescribeTable", mock.Anything, mock.Anything).Return(compositeTable("orders"), nil)
	client.On("Scan", mock.Anything, mock.Anything).Return(&dynamodb.ScanOutput{
		Items: []dyndb.Item{
			{"pk": s("a"), "sk": n("1")},
			{"pk": s("a"), "sk": n("2")},
			{"pk": s("a"), "sk": n("3")},
		},
	}, nil)
	client.On("DeleteItem", mock.Anything, mock.Anything).Return(&dynamodb.DeleteItemOutput{}, nil).Once()
	client.On("DeleteItem", mock.Anything, mock.Anything).Return(nil, errors.New("access denied")).Once()

	deleted, err := newTestAdmin(client).DeleteAll(context.Background(), "orders")

	assert.Equal(t, 1, deleted)
	assert.ErrorContains(t, err, "access denied")
	client.AssertNumberOfCalls(t, "DeleteItem", 2)
}
