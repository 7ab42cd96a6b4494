package request

import "lims_service/internal/usecase"

// InvoiceOrdersQuery selects invoice candidates. Dates are MM-DD-YYYY and only apply as a pair.
type InvoiceOrdersQuery struct {
	CompanyID int64  `form:"company_id" binding:"omitempty,min=0"`
	DateFrom  string `form:"date_from"`
	DateTo    string `form:"date_to"`
}

func (q InvoiceOrdersQuery) ToFilter() usecase.InvoiceFilter {
	return usecase.InvoiceFilter{CompanyID: q.CompanyID, DateFrom: q.DateFrom, DateTo: q.DateTo}
}

// InvoicePreviewRequest previews WorkOrderIDs when any are given, otherwise every
// candidate that passes the filter.
type InvoicePreviewRequest struct {
	CompanyID    int64   `json:"company_id" binding:"omitempty,min=0"`
	DateFrom     string  `json:"date_from"`
	DateTo       string  `json:"date_to"`
	WorkOrderIDs []int64 `json:"work_order_ids"`
}

func (r InvoicePreviewRequest) ToFilter() usecase.InvoiceFilter {
	return usecase.InvoiceFilter{CompanyID: r.CompanyID, DateFrom: r.DateFrom, DateTo: r.DateTo}
}

type InvoiceValidateRequest struct {
	WorkOrderIDs []int64 `json:"work_order_ids"`
}

type IssueInvoiceRequest struct {
	WorkOrderIDs []int64 `json:"work_order_ids"`
	IssuedBy     string  `json:"issued_by" binding:"required,notblank"`
	Notes        string  `json:"notes" binding:"max=500"`
}

func (r IssueInvoiceRequest) ToCommand() usecase.IssueInvoiceCommand {
	return usecase.IssueInvoiceCommand{WorkOrderIDs: r.WorkOrderIDs, IssuedBy: r.IssuedBy, Notes: r.Notes}
}
