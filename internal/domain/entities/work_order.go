package entities

// WorkOrderStatus represents where a work order sits in the lab pipeline.
//
// Domain notes:
//   - Intake creates orders as Pending; the lab moves them through In Progress and Completed.
//   - Invoiced is terminal. The billing side filters Invoiced orders out instead of guarding writes.
type WorkOrderStatus string

const (
	WorkOrderStatusPending    WorkOrderStatus = "Pending"
	WorkOrderStatusInProgress WorkOrderStatus = "In Progress"
	WorkOrderStatusCompleted  WorkOrderStatus = "Completed"
	WorkOrderStatusInvoiced   WorkOrderStatus = "Invoiced"
)

// WorkOrderHeader groups one or more analysis lines requested by a company.
//
// Storage model (DynamoDB):
//   - PK: id (number)
//
// Date is a calendar date in ISO form (2006-01-02).
type WorkOrderHeader struct {
	ID                   int64           `json:"id"`
	WorkOrderNumber      string          `json:"work_order_number"`
	CompanyID            int64           `json:"company_id"`
	Date                 string          `json:"date"`
	Status               WorkOrderStatus `json:"status"`
	MileageFee           float64         `json:"mileage_fee"`
	MiscellaneousCharges float64         `json:"miscellaneous_charges"`
	HourlyFee            float64         `json:"hourly_fee"`
	CreatedBy            string          `json:"created_by"`
}

// Fees is the sum of the three per-order fee fields.
func (h WorkOrderHeader) Fees() float64 {
	return h.MileageFee + h.MiscellaneousCharges + h.HourlyFee
}

// WorkOrderLine is one billable analysis performed on one cylinder.
//
// Storage model (DynamoDB):
//   - PK: id (number)
//   - GSI1 (header_id-index): header_id
type WorkOrderLine struct {
	ID                     int64   `json:"id"`
	HeaderID               int64   `json:"header_id"`
	CylinderNumber         string  `json:"cylinder_number"`
	AnalysisNumber         string  `json:"analysis_number"`
	AnalysisType           string  `json:"analysis_type"`
	MeterNumber            string  `json:"meter_number"`
	WellName               string  `json:"well_name"`
	Rushed                 bool    `json:"rushed"`
	Price                  float64 `json:"price"`
	BillingReferenceType   string  `json:"billing_reference_type"`
	BillingReferenceNumber string  `json:"billing_reference_number"`
	CreatedBy              string  `json:"created_by"`
}

// WorkOrder is a header joined with its lines.
type WorkOrder struct {
	Header WorkOrderHeader `json:"header"`
	Lines  []WorkOrderLine `json:"lines"`
}
