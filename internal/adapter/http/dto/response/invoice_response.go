package response

import (
	"time"

	"lims_service/internal/domain/entities"
	"lims_service/internal/usecase"
)

type InvoiceTotalsResponse struct {
	Subtotal       float64 `json:"subtotal"`
	AdditionalFees float64 `json:"additional_fees"`
	Total          float64 `json:"total"`
}

func FromInvoiceTotals(t entities.InvoiceTotals) InvoiceTotalsResponse {
	return InvoiceTotalsResponse{
		Subtotal:       roundMoney(t.Subtotal),
		AdditionalFees: roundMoney(t.AdditionalFees),
		Total:          roundMoney(t.Total),
	}
}

type WorkOrderLineResponse struct {
	ID             int64   `json:"id"`
	CylinderNumber string  `json:"cylinder_number"`
	AnalysisNumber string  `json:"analysis_number"`
	AnalysisType   string  `json:"analysis_type"`
	WellName       string  `json:"well_name"`
	MeterNumber    string  `json:"meter_number"`
	Rushed         bool    `json:"rushed"`
	Price          float64 `json:"price"`
}

// WorkOrderResponse is one invoice candidate with its own totals.
type WorkOrderResponse struct {
	ID              int64                   `json:"id"`
	WorkOrderNumber string                  `json:"work_order_number"`
	CompanyID       int64                   `json:"company_id"`
	Date            string                  `json:"date"`
	Status          string                  `json:"status"`
	Lines           []WorkOrderLineResponse `json:"lines"`
	Totals          InvoiceTotalsResponse   `json:"totals"`
}

func FromWorkOrder(o entities.WorkOrder) WorkOrderResponse {
	lines := make([]WorkOrderLineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, WorkOrderLineResponse{
			ID:             l.ID,
			CylinderNumber: l.CylinderNumber,
			AnalysisNumber: l.AnalysisNumber,
			AnalysisType:   l.AnalysisType,
			WellName:       l.WellName,
			MeterNumber:    l.MeterNumber,
			Rushed:         l.Rushed,
			Price:          roundMoney(l.Price),
		})
	}
	return WorkOrderResponse{
		ID:              o.Header.ID,
		WorkOrderNumber: o.Header.WorkOrderNumber,
		CompanyID:       o.Header.CompanyID,
		Date:            o.Header.Date,
		Status:          string(o.Header.Status),
		Lines:           lines,
		Totals:          FromInvoiceTotals(usecase.CalculateInvoiceTotals([]entities.WorkOrder{o})),
	}
}

func FromWorkOrders(orders []entities.WorkOrder) []WorkOrderResponse {
	out := make([]WorkOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromWorkOrder(o))
	}
	return out
}

type InvoicePreviewResponse struct {
	Orders       []WorkOrderResponse   `json:"orders"`
	Totals       InvoiceTotalsResponse `json:"totals"`
	CompanyID    int64                 `json:"company_id,omitempty"`
	CompanyName  string                `json:"company_name,omitempty"`
	CompanyEmail string                `json:"company_email,omitempty"`
	Valid        bool                  `json:"valid"`
	Reason       string                `json:"reason,omitempty"`
}

func FromInvoicePreview(p usecase.InvoicePreview) InvoicePreviewResponse {
	return InvoicePreviewResponse{
		Orders:       FromWorkOrders(p.Orders),
		Totals:       FromInvoiceTotals(p.Totals),
		CompanyID:    p.CompanyID,
		CompanyName:  p.CompanyName,
		CompanyEmail: p.CompanyEmail,
		Valid:        p.Valid,
		Reason:       p.Reason,
	}
}

type InvoiceValidationResponse struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

type InvoiceNumberResponse struct {
	InvoiceNumber string `json:"invoice_number"`
}

type InvoiceResponse struct {
	ID            string                `json:"id"`
	InvoiceNumber string                `json:"invoice_number"`
	CompanyID     int64                 `json:"company_id"`
	CompanyName   string                `json:"company_name"`
	CompanyEmail  string                `json:"company_email,omitempty"`
	WorkOrderIDs  []int64               `json:"work_order_ids"`
	Totals        InvoiceTotalsResponse `json:"totals"`
	Status        string                `json:"status"`
	Notes         string                `json:"notes,omitempty"`
	IssuedBy      string                `json:"issued_by"`
	IssuedAt      time.Time             `json:"issued_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		CompanyID:     inv.CompanyID,
		CompanyName:   inv.CompanyName,
		CompanyEmail:  inv.CompanyEmail,
		WorkOrderIDs:  inv.WorkOrderIDs,
		Totals:        FromInvoiceTotals(inv.Totals),
		Status:        string(inv.Status),
		Notes:         inv.Notes,
		IssuedBy:      inv.IssuedBy,
		IssuedAt:      inv.IssuedAt,
	}
}

func FromInvoices(list []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, FromInvoice(inv))
	}
	return out
}

// CompanyResponse is one entry of the invoicing company picker.
type CompanyResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

func FromCompanies(list []entities.Company) []CompanyResponse {
	out := make([]CompanyResponse, 0, len(list))
	for _, c := range list {
		out = append(out, CompanyResponse{ID: c.ID, Name: c.CompanyName, Email: c.Email})
	}
	return out
}
