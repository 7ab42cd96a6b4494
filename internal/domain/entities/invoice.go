package entities

import "time"

// InvoiceStatus represents the lifecycle of an issued invoice.
type InvoiceStatus string

const (
	InvoiceStatusIssued InvoiceStatus = "issued"
	InvoiceStatusPaid   InvoiceStatus = "paid"
)

// InvoiceTotals are computed on demand from the selected orders and never stored on their own.
type InvoiceTotals struct {
	Subtotal       float64 `json:"subtotal"`
	AdditionalFees float64 `json:"additional_fees"`
	Total          float64 `json:"total"`
}

// Invoice is a single-company billing document covering one or more work orders.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (invoice_number-index): invoice_number
//
// Monetary representation:
//   - Totals are stored at full precision; rounding to cents happens when rendering.
type Invoice struct {
	ID            string        `json:"id"`
	InvoiceNumber string        `json:"invoice_number"`
	CompanyID     int64         `json:"company_id"`
	CompanyName   string        `json:"company_name"`
	CompanyEmail  string        `json:"company_email"`
	WorkOrderIDs  []int64       `json:"work_order_ids"`
	Totals        InvoiceTotals `json:"totals"`
	Status        InvoiceStatus `json:"status"`
	Notes         string        `json:"notes,omitempty"`
	IssuedBy      string        `json:"issued_by"`
	IssuedAt      time.Time     `json:"issued_at"`
}
