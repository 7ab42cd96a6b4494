package repository

import (
	"context"
	"fmt"

	"lims_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCountersTableName = "counters"

type counterItem struct {
	Seq int64 `dynamodbav:"seq"`
}

// InvoiceCounterDynamoRepository hands out invoice sequence numbers with an atomic ADD.
//
// Table requirements:
//   - PK: id (string), one item per year: "invoice-2024"
type InvoiceCounterDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IInvoiceNumberGenerator = (*InvoiceCounterDynamoRepository)(nil)

func NewInvoiceCounterDynamoRepository(ddb DynamoAPI, tableName string) *InvoiceCounterDynamoRepository {
	return &InvoiceCounterDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultCountersTableName)}
}

func (r *InvoiceCounterDynamoRepository) Next(ctx context.Context, year int) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.tableName),
		Key:              stringKey(fmt.Sprintf("invoice-%d", year)),
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, fmt.Errorf("increment invoice counter %d: %w", year, err)
	}

	var it counterItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return 0, fmt.Errorf("decode invoice counter: %w", err)
	}
	if it.Seq <= 0 {
		return 0, fmt.Errorf("invoice counter %d returned %d", year, it.Seq)
	}
	return it.Seq, nil
}
