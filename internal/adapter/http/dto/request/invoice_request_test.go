package request

import (
	"testing"

	"lims_service/internal/usecase"
)

func TestInvoiceRequests_ToUseCase(t *testing.T) {
	q := InvoiceOrdersQuery{CompanyID: 3, DateFrom: "06-01-2024", DateTo: "06-30-2024"}
	if got := q.ToFilter(); got != (usecase.InvoiceFilter{CompanyID: 3, DateFrom: "06-01-2024", DateTo: "06-30-2024"}) {
		t.Fatalf("unexpected filter: %+v", got)
	}

	p := InvoicePreviewRequest{CompanyID: 1, DateFrom: "06-01-2024", WorkOrderIDs: []int64{7}}
	if got := p.ToFilter(); got.CompanyID != 1 || got.DateFrom != "06-01-2024" || got.DateTo != "" {
		t.Fatalf("unexpected filter: %+v", got)
	}

	cmd := IssueInvoiceRequest{WorkOrderIDs: []int64{1, 2}, IssuedBy: "maria", Notes: "june"}.ToCommand()
	if len(cmd.WorkOrderIDs) != 2 || cmd.IssuedBy != "maria" || cmd.Notes != "june" {
		t.Fatalf("unexpected command: %+v", cmd)
	}
}

func TestDashboardAndReportQueries(t *testing.T) {
	f := DashboardQuery{DateFrom: "2024-06-01", DateTo: "2024-06-30", AnalysisType: "GPA 2261"}.ToFilter()
	if f != (usecase.DashboardFilter{DateFrom: "2024-06-01", DateTo: "2024-06-30", AnalysisType: "GPA 2261"}) {
		t.Fatalf("unexpected filter: %+v", f)
	}

	r := ReportQuery{Search: "north", Status: "all", Customer: "Acme"}.ToQuery()
	if r != (usecase.ReportQuery{Search: "north", Status: "all", Customer: "Acme"}) {
		t.Fatalf("unexpected query: %+v", r)
	}
}
