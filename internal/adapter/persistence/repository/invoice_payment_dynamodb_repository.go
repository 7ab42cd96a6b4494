package repository

import (
	"context"
	"sort"

	"lims_service/internal/domain/entities"
	"lims_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

const (
	defaultInvoicePaymentsTableName = "invoice_payments"
	paymentsInvoiceIDIndex          = "invoice_id-index"
)

type invoicePaymentItem struct {
	ID           string                 `dynamodbav:"id"`
	InvoiceID    string                 `dynamodbav:"invoice_id"`
	Amount       float64                `dynamodbav:"amount"`
	Date         string                 `dynamodbav:"date"`
	Status       string                 `dynamodbav:"status"`
	MPPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// InvoicePaymentDynamoRepository persists InvoicePayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: invoice_id-index (PK: invoice_id)
type InvoicePaymentDynamoRepository struct {
	ddb   DynamoAPI
	table *dynamoTable[invoicePaymentItem, entities.InvoicePayment]
}

var _ interfaces.IInvoicePaymentRepository = (*InvoicePaymentDynamoRepository)(nil)

func NewInvoicePaymentDynamoRepository(ddb DynamoAPI, tableName string, logger *zap.Logger) *InvoicePaymentDynamoRepository {
	return &InvoicePaymentDynamoRepository{
		ddb: ddb,
		table: newDynamoTable(ddb, tableOrDefault(tableName, defaultInvoicePaymentsTableName),
			fromInvoicePaymentItem, toInvoicePaymentItem, logger),
	}
}

func (r *InvoicePaymentDynamoRepository) Create(ctx context.Context, p entities.InvoicePayment) (entities.InvoicePayment, error) {
	if err := r.table.Put(ctx, p, true); err != nil {
		return entities.InvoicePayment{}, err
	}
	return p, nil
}

func (r *InvoicePaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.InvoicePayment, error) {
	p, _, err := r.table.Get(ctx, stringKey(id))
	return p, err
}

// ListByInvoiceID returns the payments of one invoice, oldest first.
func (r *InvoicePaymentDynamoRepository) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.InvoicePayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.table.name),
		IndexName:              aws.String(paymentsInvoiceIDIndex),
		KeyConditionExpression: aws.String("invoice_id = :iid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":iid": &types.AttributeValueMemberS{Value: invoiceID},
		},
	})
	if err != nil {
		return nil, err
	}

	items, err := r.table.decodeAll(out.Items)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Date.Before(items[j].Date) })
	return items, nil
}

func toInvoicePaymentItem(p entities.InvoicePayment) invoicePaymentItem {
	return invoicePaymentItem{
		ID:           p.ID,
		InvoiceID:    p.InvoiceID,
		Amount:       p.Amount,
		Date:         formatTimestamp(p.Date),
		Status:       string(p.Status),
		MPPayload:    p.MPPayload,
		MPPayloadRaw: string(p.MPPayloadRaw),
	}
}

func fromInvoicePaymentItem(it invoicePaymentItem) entities.InvoicePayment {
	return entities.InvoicePayment{
		ID:           it.ID,
		InvoiceID:    it.InvoiceID,
		Amount:       it.Amount,
		Date:         parseTimestamp(it.Date),
		Status:       entities.PaymentStatus(it.Status),
		MPPayload:    it.MPPayload,
		MPPayloadRaw: []byte(it.MPPayloadRaw),
	}
}
