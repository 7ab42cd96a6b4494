package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lims_service/internal/domain/entities"
	"lims_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

const defaultWorkOrderHeadersTableName = "work_order_headers"

// SourceTables names the tables owned by the intake side of the lab.
type SourceTables struct {
	WorkOrderHeaders string
	WorkOrderLines   string
	CheckIns         string
	CheckOuts        string
	Imports          string
	Companies        string
}

type workOrderHeaderItem struct {
	ID                   int64   `dynamodbav:"id"`
	WorkOrderNumber      string  `dynamodbav:"work_order_number"`
	CompanyID            int64   `dynamodbav:"company_id"`
	Date                 string  `dynamodbav:"date"`
	Status               string  `dynamodbav:"status"`
	MileageFee           float64 `dynamodbav:"mileage_fee"`
	MiscellaneousCharges float64 `dynamodbav:"miscellaneous_charges"`
	HourlyFee            float64 `dynamodbav:"hourly_fee"`
	CreatedBy            string  `dynamodbav:"created_by,omitempty"`
}

type workOrderLineItem struct {
	ID                     int64   `dynamodbav:"id"`
	HeaderID               int64   `dynamodbav:"header_id"`
	CylinderNumber         string  `dynamodbav:"cylinder_number"`
	AnalysisNumber         string  `dynamodbav:"analysis_number"`
	AnalysisType           string  `dynamodbav:"analysis_type"`
	MeterNumber            string  `dynamodbav:"meter_number"`
	WellName               string  `dynamodbav:"well_name"`
	Rushed                 bool    `dynamodbav:"rushed"`
	Price                  float64 `dynamodbav:"price"`
	BillingReferenceType   string  `dynamodbav:"billing_reference_type,omitempty"`
	BillingReferenceNumber string  `dynamodbav:"billing_reference_number,omitempty"`
	CreatedBy              string  `dynamodbav:"created_by,omitempty"`
}

type checkInItem struct {
	ID           int64  `dynamodbav:"id"`
	CompanyID    int64  `dynamodbav:"company_id"`
	AnalysisType string `dynamodbav:"analysis_type"`
	CheckInTime  string `dynamodbav:"check_in_time"`
	Rushed       bool   `dynamodbav:"rushed"`
}

type checkOutItem struct {
	ID        int64  `dynamodbav:"id"`
	CompanyID int64  `dynamodbav:"company_id"`
	Barcode   string `dynamodbav:"barcode"`
	CreatedAt string `dynamodbav:"created_at"`
}

type importItem struct {
	ID         int64  `dynamodbav:"id"`
	FileName   string `dynamodbav:"file_name"`
	Status     string `dynamodbav:"status"`
	ImportedAt string `dynamodbav:"imported_at"`
}

type companyItem struct {
	ID          int64  `dynamodbav:"id"`
	CompanyName string `dynamodbav:"company_name"`
	Email       string `dynamodbav:"email"`
	Active      bool   `dynamodbav:"active"`
}

// SourceDynamoRepository reads the lab entities that feed the dashboard, reports and invoices.
//
// Table requirements (all PK: id, number).
// Intake owns these tables; this service only seeds local data here. Headers are flipped to
// Invoiced by InvoiceDynamoRepository.Issue.
type SourceDynamoRepository struct {
	headers   *dynamoTable[workOrderHeaderItem, entities.WorkOrderHeader]
	lines     *dynamoTable[workOrderLineItem, entities.WorkOrderLine]
	checkIns  *dynamoTable[checkInItem, entities.CheckInRecord]
	checkOuts *dynamoTable[checkOutItem, entities.CheckOutRecord]
	imports   *dynamoTable[importItem, entities.ImportRecord]
	companies *dynamoTable[companyItem, entities.Company]
}

var _ interfaces.IWorkOrderHeaderReader = (*SourceDynamoRepository)(nil)

func NewSourceDynamoRepository(ddb DynamoAPI, tables SourceTables, logger *zap.Logger) *SourceDynamoRepository {
	return &SourceDynamoRepository{
		headers: newDynamoTable(ddb, tableOrDefault(tables.WorkOrderHeaders, defaultWorkOrderHeadersTableName),
			fromWorkOrderHeaderItem, toWorkOrderHeaderItem, logger, ValidateWorkOrderHeader),
		lines: newDynamoTable(ddb, tableOrDefault(tables.WorkOrderLines, "work_order_lines"),
			fromWorkOrderLineItem, toWorkOrderLineItem, logger, ValidateWorkOrderLine),
		checkIns: newDynamoTable(ddb, tableOrDefault(tables.CheckIns, "check_ins"),
			fromCheckInItem, toCheckInItem, logger, ValidateCheckIn),
		checkOuts: newDynamoTable(ddb, tableOrDefault(tables.CheckOuts, "check_outs"),
			fromCheckOutItem, toCheckOutItem, logger, ValidateCheckOut),
		imports: newDynamoTable(ddb, tableOrDefault(tables.Imports, "imports"),
			fromImportItem, toImportItem, logger, ValidateImport),
		companies: newDynamoTable(ddb, tableOrDefault(tables.Companies, "companies"),
			fromCompanyItem, toCompanyItem, logger, ValidateCompany),
	}
}

func (r *SourceDynamoRepository) WorkOrderHeaders(ctx context.Context) ([]entities.WorkOrderHeader, error) {
	return r.headers.ScanAll(ctx)
}

func (r *SourceDynamoRepository) WorkOrderLines(ctx context.Context) ([]entities.WorkOrderLine, error) {
	return r.lines.ScanAll(ctx)
}

func (r *SourceDynamoRepository) CheckIns(ctx context.Context) ([]entities.CheckInRecord, error) {
	return r.checkIns.ScanAll(ctx)
}

func (r *SourceDynamoRepository) CheckOuts(ctx context.Context) ([]entities.CheckOutRecord, error) {
	return r.checkOuts.ScanAll(ctx)
}

func (r *SourceDynamoRepository) Imports(ctx context.Context) ([]entities.ImportRecord, error) {
	return r.imports.ScanAll(ctx)
}

func (r *SourceDynamoRepository) Companies(ctx context.Context) ([]entities.Company, error) {
	return r.companies.ScanAll(ctx)
}

// GetWorkOrderHeader reads one header straight from the table, bypassing any cache.
func (r *SourceDynamoRepository) GetWorkOrderHeader(ctx context.Context, id int64) (entities.WorkOrderHeader, bool, error) {
	return r.headers.Get(ctx, numberKey(id))
}

// invoicedHeaderUpdate flips a header to Invoiced. The condition refuses missing headers and
// headers that are already Invoiced, so two issuances can never claim the same order.
func invoicedHeaderUpdate(table string, headerID int64) *types.Update {
	return &types.Update{
		TableName:           aws.String(table),
		Key:                 numberKey(headerID),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status <> :invoiced"),
		UpdateExpression:    aws.String("SET #status = :invoiced"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":invoiced": &types.AttributeValueMemberS{Value: string(entities.WorkOrderStatusInvoiced)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
	}
}

// SeedData is a batch of source records written by the seeding tool.
type SeedData struct {
	Companies []entities.Company
	Headers   []entities.WorkOrderHeader
	Lines     []entities.WorkOrderLine
	CheckIns  []entities.CheckInRecord
	CheckOuts []entities.CheckOutRecord
	Imports   []entities.ImportRecord
}

// Seed upserts every record, stopping at the first failure.
func (r *SourceDynamoRepository) Seed(ctx context.Context, data SeedData) error {
	if err := putAll(ctx, r.companies, data.Companies); err != nil {
		return err
	}
	if err := putAll(ctx, r.headers, data.Headers); err != nil {
		return err
	}
	if err := putAll(ctx, r.lines, data.Lines); err != nil {
		return err
	}
	if err := putAll(ctx, r.checkIns, data.CheckIns); err != nil {
		return err
	}
	if err := putAll(ctx, r.checkOuts, data.CheckOuts); err != nil {
		return err
	}
	return putAll(ctx, r.imports, data.Imports)
}

func putAll[I any, E any](ctx context.Context, t *dynamoTable[I, E], items []E) error {
	for i, e := range items {
		if err := t.Put(ctx, e, false); err != nil {
			return fmt.Errorf("seed %s[%d]: %w", t.name, i, err)
		}
	}
	return nil
}

func ValidateWorkOrderHeader(h entities.WorkOrderHeader) error {
	switch {
	case h.ID <= 0:
		return invalid("work order header id %d", h.ID)
	case strings.TrimSpace(h.WorkOrderNumber) == "":
		return invalid("work order header %d has no number", h.ID)
	case h.MileageFee < 0 || h.MiscellaneousCharges < 0 || h.HourlyFee < 0:
		return invalid("work order header %d has a negative fee", h.ID)
	}
	switch h.Status {
	case entities.WorkOrderStatusPending, entities.WorkOrderStatusInProgress,
		entities.WorkOrderStatusCompleted, entities.WorkOrderStatusInvoiced:
		return nil
	default:
		return invalid("work order header %d status %q", h.ID, h.Status)
	}
}

func ValidateWorkOrderLine(l entities.WorkOrderLine) error {
	switch {
	case l.ID <= 0:
		return invalid("work order line id %d", l.ID)
	case l.HeaderID <= 0:
		return invalid("work order line %d has no header", l.ID)
	case l.Price < 0:
		return invalid("work order line %d has a negative price", l.ID)
	}
	return nil
}

func ValidateCheckIn(c entities.CheckInRecord) error {
	if c.ID <= 0 {
		return invalid("check-in id %d", c.ID)
	}
	if c.CheckInTime.IsZero() {
		return invalid("check-in %d has no time", c.ID)
	}
	return nil
}

func ValidateCheckOut(c entities.CheckOutRecord) error {
	if c.ID <= 0 {
		return invalid("check-out id %d", c.ID)
	}
	if strings.TrimSpace(c.Barcode) == "" {
		return invalid("check-out %d has no barcode", c.ID)
	}
	return nil
}

func ValidateImport(i entities.ImportRecord) error {
	if i.ID <= 0 {
		return invalid("import id %d", i.ID)
	}
	switch i.Status {
	case entities.ImportStatusImported, entities.ImportStatusValidated,
		entities.ImportStatusError, entities.ImportStatusArchived:
		return nil
	default:
		return invalid("import %d status %q", i.ID, i.Status)
	}
}

func ValidateCompany(c entities.Company) error {
	if c.ID <= 0 {
		return invalid("company id %d", c.ID)
	}
	return nil
}

func fromWorkOrderHeaderItem(it workOrderHeaderItem) entities.WorkOrderHeader {
	return entities.WorkOrderHeader{
		ID:                   it.ID,
		WorkOrderNumber:      it.WorkOrderNumber,
		CompanyID:            it.CompanyID,
		Date:                 it.Date,
		Status:               entities.WorkOrderStatus(it.Status),
		MileageFee:           it.MileageFee,
		MiscellaneousCharges: it.MiscellaneousCharges,
		HourlyFee:            it.HourlyFee,
		CreatedBy:            it.CreatedBy,
	}
}

func toWorkOrderHeaderItem(h entities.WorkOrderHeader) workOrderHeaderItem {
	return workOrderHeaderItem{
		ID:                   h.ID,
		WorkOrderNumber:      h.WorkOrderNumber,
		CompanyID:            h.CompanyID,
		Date:                 h.Date,
		Status:               string(h.Status),
		MileageFee:           h.MileageFee,
		MiscellaneousCharges: h.MiscellaneousCharges,
		HourlyFee:            h.HourlyFee,
		CreatedBy:            h.CreatedBy,
	}
}

func fromWorkOrderLineItem(it workOrderLineItem) entities.WorkOrderLine {
	return entities.WorkOrderLine(it)
}

func toWorkOrderLineItem(l entities.WorkOrderLine) workOrderLineItem {
	return workOrderLineItem(l)
}

func fromCheckInItem(it checkInItem) entities.CheckInRecord {
	return entities.CheckInRecord{
		ID:           it.ID,
		CompanyID:    it.CompanyID,
		AnalysisType: it.AnalysisType,
		CheckInTime:  parseTimestamp(it.CheckInTime),
		Rushed:       it.Rushed,
	}
}

func toCheckInItem(c entities.CheckInRecord) checkInItem {
	return checkInItem{
		ID:           c.ID,
		CompanyID:    c.CompanyID,
		AnalysisType: c.AnalysisType,
		CheckInTime:  formatTimestamp(c.CheckInTime),
		Rushed:       c.Rushed,
	}
}

func fromCheckOutItem(it checkOutItem) entities.CheckOutRecord {
	return entities.CheckOutRecord{
		ID:        it.ID,
		CompanyID: it.CompanyID,
		Barcode:   it.Barcode,
		CreatedAt: parseTimestamp(it.CreatedAt),
	}
}

func toCheckOutItem(c entities.CheckOutRecord) checkOutItem {
	return checkOutItem{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		Barcode:   c.Barcode,
		CreatedAt: formatTimestamp(c.CreatedAt),
	}
}

func fromImportItem(it importItem) entities.ImportRecord {
	return entities.ImportRecord{
		ID:         it.ID,
		FileName:   it.FileName,
		Status:     entities.ImportStatus(it.Status),
		ImportedAt: parseTimestamp(it.ImportedAt),
	}
}

func toImportItem(i entities.ImportRecord) importItem {
	return importItem{
		ID:         i.ID,
		FileName:   i.FileName,
		Status:     string(i.Status),
		ImportedAt: formatTimestamp(i.ImportedAt),
	}
}

func fromCompanyItem(it companyItem) entities.Company {
	return entities.Company(it)
}

func toCompanyItem(c entities.Company) companyItem {
	return companyItem(c)
}

// parseTimestamp accepts RFC3339 (with or without fractions) or a bare date.
func parseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
