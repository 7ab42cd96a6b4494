package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"lims_service/internal/domain/entities"
	"lims_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

const (
	defaultInvoicesTableName = "invoices"

	// DynamoDB caps a transaction at 100 actions; one is the invoice put.
	maxTransactItems = 100
)

type invoiceItem struct {
	ID             string  `dynamodbav:"id"`
	InvoiceNumber  string  `dynamodbav:"invoice_number"`
	CompanyID      int64   `dynamodbav:"company_id"`
	CompanyName    string  `dynamodbav:"company_name"`
	CompanyEmail   string  `dynamodbav:"company_email"`
	WorkOrderIDs   []int64 `dynamodbav:"work_order_ids"`
	Subtotal       float64 `dynamodbav:"subtotal"`
	AdditionalFees float64 `dynamodbav:"additional_fees"`
	Total          float64 `dynamodbav:"total"`
	Status         string  `dynamodbav:"status"`
	Notes          string  `dynamodbav:"notes,omitempty"`
	IssuedBy       string  `dynamodbav:"issued_by"`
	IssuedAt       string  `dynamodbav:"issued_at"`
	UpdatedAt      string  `dynamodbav:"updated_at,omitempty"`
}

// InvoiceDynamoRepository persists issued invoices in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Issuing also writes the work order headers table, in the same transaction.
type InvoiceDynamoRepository struct {
	ddb        DynamoAPI
	table      *dynamoTable[invoiceItem, entities.Invoice]
	workOrders string
	logger     *zap.Logger
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb DynamoAPI, tableName, workOrderHeadersTable string, logger *zap.Logger) *InvoiceDynamoRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvoiceDynamoRepository{
		ddb: ddb,
		table: newDynamoTable(ddb, tableOrDefault(tableName, defaultInvoicesTableName),
			fromInvoiceItem, toInvoiceItem, logger, validateInvoice),
		workOrders: tableOrDefault(workOrderHeadersTable, defaultWorkOrderHeadersTableName),
		logger:     logger,
	}
}

// Issue writes inv and flips every header in inv.WorkOrderIDs to Invoiced in one transaction.
// A header that is missing or already Invoiced cancels the whole write and the error wraps
// interfaces.ErrWorkOrderNotInvoiceable; a taken invoice id wraps ErrRecordExists.
func (r *InvoiceDynamoRepository) Issue(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	if err := r.table.validate(inv); err != nil {
		return entities.Invoice{}, err
	}
	if len(inv.WorkOrderIDs)+1 > maxTransactItems {
		return entities.Invoice{}, invalid("invoice %s has %d work orders, at most %d fit one transaction",
			inv.ID, len(inv.WorkOrderIDs), maxTransactItems-1)
	}
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return entities.Invoice{}, fmt.Errorf("encode %s item: %w", r.table.name, err)
	}

	items := make([]types.TransactWriteItem, 0, len(inv.WorkOrderIDs)+1)
	items = append(items, types.TransactWriteItem{Put: &types.Put{
		TableName:                aws.String(r.table.name),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}})
	for _, id := range inv.WorkOrderIDs {
		items = append(items, types.TransactWriteItem{Update: invoicedHeaderUpdate(r.workOrders, id)})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err == nil {
		return inv, nil
	}

	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return entities.Invoice{}, fmt.Errorf("issue invoice %s: %w", inv.ID, err)
	}
	for i, reason := range tce.CancellationReasons {
		if aws.ToString(reason.Code) != "ConditionalCheckFailed" {
			continue
		}
		if i == 0 {
			return entities.Invoice{}, fmt.Errorf("invoice %s: %w", inv.ID, ErrRecordExists)
		}
		if i-1 < len(inv.WorkOrderIDs) {
			id := inv.WorkOrderIDs[i-1]
			r.logger.Warn("[invoice][repository] work order changed under issuance",
				zap.String("invoice_id", inv.ID), zap.Int64("work_order_id", id))
			return entities.Invoice{}, fmt.Errorf("work order %d: %w", id, interfaces.ErrWorkOrderNotInvoiceable)
		}
	}
	return entities.Invoice{}, fmt.Errorf("issue invoice %s: %w", inv.ID, err)
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	inv, _, err := r.table.Get(ctx, stringKey(id))
	return inv, err
}

// List returns every invoice, newest first.
func (r *InvoiceDynamoRepository) List(ctx context.Context) ([]entities.Invoice, error) {
	invoices, err := r.table.ScanAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(invoices, func(i, j int) bool {
		return invoices[i].IssuedAt.After(invoices[j].IssuedAt)
	})
	return invoices, nil
}

// UpdateStatus returns a zero Invoice when id does not exist.
func (r *InvoiceDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.table.name),
		Key:                 stringKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Invoice{}, nil
		}
		return entities.Invoice{}, fmt.Errorf("update invoice %s status: %w", id, err)
	}
	if len(out.Attributes) == 0 {
		return entities.Invoice{}, nil
	}
	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func validateInvoice(inv entities.Invoice) error {
	switch {
	case inv.ID == "":
		return invalid("invoice without id")
	case inv.InvoiceNumber == "":
		return invalid("invoice %s without number", inv.ID)
	case len(inv.WorkOrderIDs) == 0:
		return invalid("invoice %s without work orders", inv.ID)
	}
	return nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	return invoiceItem{
		ID:             inv.ID,
		InvoiceNumber:  inv.InvoiceNumber,
		CompanyID:      inv.CompanyID,
		CompanyName:    inv.CompanyName,
		CompanyEmail:   inv.CompanyEmail,
		WorkOrderIDs:   inv.WorkOrderIDs,
		Subtotal:       inv.Totals.Subtotal,
		AdditionalFees: inv.Totals.AdditionalFees,
		Total:          inv.Totals.Total,
		Status:         string(inv.Status),
		Notes:          inv.Notes,
		IssuedBy:       inv.IssuedBy,
		IssuedAt:       formatTimestamp(inv.IssuedAt),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	return entities.Invoice{
		ID:            it.ID,
		InvoiceNumber: it.InvoiceNumber,
		CompanyID:     it.CompanyID,
		CompanyName:   it.CompanyName,
		CompanyEmail:  it.CompanyEmail,
		WorkOrderIDs:  it.WorkOrderIDs,
		Totals: entities.InvoiceTotals{
			Subtotal:       it.Subtotal,
			AdditionalFees: it.AdditionalFees,
			Total:          it.Total,
		},
		Status:   entities.InvoiceStatus(it.Status),
		Notes:    it.Notes,
		IssuedBy: it.IssuedBy,
		IssuedAt: parseTimestamp(it.IssuedAt),
	}
}
