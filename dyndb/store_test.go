// dyndb/store_test.go
package dyndb_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/raywall/cloud-admin-toolkit/dyndb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDescribe_Success(t *testing.T) {
	t.Parallel()

	client := &mockClient{}
	admin := newTestAdmin(client)

	client.On("DescribeTable", mock.Anything, &dynamodb.DescribeTableInput{
		TableName: aws.String("orders"),
	}).Return(compositeTable("orders"), nil)

	desc, err := admin.Describe(context.Background(), "orders")

	require.NoError(t, err)
	assert.Equal(t, "orders", desc.Name)
	assert.Equal(t, types.TableStatusActive, desc.Status)
	assert.Equal(t, int64(3), desc.ItemCount)
	assert.Equal(t, []string{"pk", "sk"}, desc.KeyNames())
	assert.Equal(t, []dyndb.AttributeDefinition{
		{Name: "pk", Type: types.ScalarAttributeTypeS},
		{Name: "sk", Type: types.ScalarAttributeTypeN},
	}, desc.Attributes)
	assert.Equal(t, types.KeyTypeRange, desc.KeySchema[1].Role)
	client.AssertExpectations(t)
}

func TestDescribe_NotFound(t *testing.T) {
	t.Parallel()

	t.Run("service exception", func(t *testing.T) {
		client := &mockClient{}
		client.On("DescribeTable", mock.Anything, mock.Anything).
			Return(nil, &types.ResourceNotFoundException{Message: aws.String("Requested resource not found")})

		_, err := newTestAdmin(client).Describe(context.Background(), "ghost")

		require.Error(t, err)
		assert.ErrorIs(t, err, dyndb.ErrTableNotFound)
		assert.True(t, dyndb.IsTableNotFound(err))
	})

	t.Run("nil table", func(t *testing.T) {
		client := &mockClient{}
		client.On("DescribeTable", mock.Anything, mock.Anything).
			Return(&dynamodb.DescribeTableOutput{}, nil)

		_, err := newTestAdmin(client).Describe(context.Background(), "ghost")

		assert.ErrorIs(t, err, dyndb.ErrTableNotFound)
	})

	t.Run("other failure", func(t *testing.T) {
		client := &mockClient{}
		client.On("DescribeTable", mock.Anything, mock.Anything).
			Return(nil, errors.New("throttled"))

		_, err := newTestAdmin(client).Describe(context.Background(), "orders")

		require.Error(t, err)
		assert.False(t, dyndb.IsTableNotFound(err))
		assert.Contains(t, err.Error(), "throttled")
	})
}

func TestListTables_FollowsPagination(t *testing.T) {
	t.Parallel()

	client := &mockClient{}
	client.On("ListTables", mock.Anything, mock.MatchedBy(func(in *dynamodb.ListTablesInput) bool {
		return in.ExclusiveStartTableName == nil
	})).Return(&dynamodb.ListTablesOutput{
		TableNames:             []string{"a", "b"},
		LastEvaluatedTableName: aws.String("b"),
	}, nil).Once()
	client.On("ListTables", mock.Anything, mock.MatchedBy(func(in *dynamodb.ListTablesInput) bool {
		return aws.ToString(in.ExclusiveStartTableName) == "b"
	})).Return(&dynamodb.ListTablesOutput{
		TableNames: []string{"c"},
	}, nil).Once()

	names, err := newTestAdmin(client).ListTables(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, names)
	client.AssertExpectations(t)
}

func TestListTables_Empty(t *testing.T) {
	t.Parallel()

	client := &mockClient{}
	client.On("ListTables", mock.Anything, mock.Anything).Return(&dynamodb.ListTablesOutput{}, nil)

	names, err := newTestAdmin(client).ListTables(context.Background())

	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestExists(t *testing.T) {
	t.Parallel()

	key := dyndb.Item{"id": s("1")}

	t.Run("found", func(t *testing.T) {
		client := &mockClient{}
		client.On("GetItem", mock.Anything, &dynamodb.GetItemInput{
			TableName: aws.String("users"),
			Key:       key,
		}).Return(&dynamodb.GetItemOutput{Item: dyndb.Item{"id": s("1"), "name": s("ana")}}, nil)

		ok, err := newTestAdmin(client).Exists(context.Background(), "users", key)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("missing is not an error", func(t *testing.T) {
		client := &mockClient{}
		client.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil)

		ok, err := newTestAdmin(client).Exists(context.Background(), "users", key)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("service error", func(t *testing.T) {
		client := &mockClient{}
		client.On("GetItem", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

		_, err := newTestAdmin(client).Exists(context.Background(), "users", key)

		assert.ErrorContains(t, err, "boom")
	})
}

func TestSetAttribute_BuildsUpdate(t *testing.T) {
	t.Parallel()

	client := &mockClient{}
	key := dyndb.Item{"id": s("1")}

	client.On("UpdateItem", mock.Anything, &dynamodb.UpdateItemInput{
		TableName:                 aws.String("users"),
		Key:                       key,
		UpdateExpression:          aws.String("SET #attr = :val"),
		ExpressionAttributeNames:  map[string]string{"#attr": "status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":val": &types.AttributeValueMemberBOOL{Value: true}},
	}).Return(&dynamodb.UpdateItemOutput{}, nil)

	err := newTestAdmin(client).SetAttribute(context.Background(), "users", key, "status", dyndb.InferValue("TRUE"))

	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestSetAttribute_Error(t *testing.T) {
	t.Parallel()

	client := &mockClient{}
	client.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, errors.New("conditional check"))

	err := newTestAdmin(client).SetAttribute(context.Background(), "users", dyndb.Item{"id": s("1")}, "a", s("b"))

	assert.ErrorContains(t, err, "update failed")
}

func TestParseKey(t *testing.T) {
	t.Parallel()

	key, err := dyndb.ParseKey([]string{"pk=user#1", "sk=a=b", "junk"})

	require.NoError(t, err)
	assert.Equal(t, dyndb.Item{
		"pk": s("user#1"),
		"sk": s("a=b"),
	}, key)
}

func TestParseKey_NoPairs(t *testing.T) {
	t.Parallel()

	key, err := dyndb.ParseKey([]string{"nothing", "here"})

	require.NoError(t, err)
	assert.Empty(t, key)
}

func TestInferValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want types.AttributeValue
	}{
		{"true", &types.AttributeValueMemberBOOL{Value: true}},
		{"TRUE", &types.AttributeValueMemberBOOL{Value: true}},
		{"False", &types.AttributeValueMemberBOOL{Value: false}},
		{"42", n("42")},
		{"3.14", n("3.14")},
		{"-7e3", n("-7e3")},
		{"1e400", n("1e400")},
		{"hello", s("hello")},
		{"42a", s("42a")},
		{"1_000", s("1_000")},
		{"0x1p4", s("0x1p4")},
		{"-0X10", s("-0X10")},
		{"+1.5", n("+1.5")},
		{"", s("")},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, dyndb.InferValue(tt.in))
		})
	}
}

func TestExtractKey(t *testing.T) {
	t.Parallel()

	item := dyndb.Item{"pk": s("a"), "sk": n("1"), "payload": s("x")}

	key, ok := dyndb.ExtractKey(item, []string{"pk", "sk"})
	require.True(t, ok)
	assert.Equal(t, dyndb.Item{"pk": s("a"), "sk": n("1")}, key)

	_, ok = dyndb.ExtractKey(dyndb.Item{"pk": s("a")}, []string{"pk", "sk"})
	assert.False(t, ok)
}
