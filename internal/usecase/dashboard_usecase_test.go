package usecase

import (
	"reflect"
	"testing"
	"time"

	"lims_service/internal/domain/entities"
)

var dashboardNow = time.Date(2024, 6, 12, 12, 0, 0, 0, time.UTC)

func at(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func dashboardFixture() *fakeAccessor {
	return &fakeAccessor{
		companies: []entities.Company{
			{ID: 1, CompanyName: "Acme Gas", Active: true},
			{ID: 2, CompanyName: "Borealis", Active: true},
		},
		headers: []entities.WorkOrderHeader{
			{ID: 1, WorkOrderNumber: "WO-1", CompanyID: 1, Date: "2024-06-12", Status: entities.WorkOrderStatusPending, MileageFee: 5, MiscellaneousCharges: 5, HourlyFee: 5},
			{ID: 2, WorkOrderNumber: "WO-2", CompanyID: 2, Date: "2024-06-11", Status: entities.WorkOrderStatusInProgress},
			{ID: 3, WorkOrderNumber: "WO-3", CompanyID: 1, Date: "2024-06-09", Status: entities.WorkOrderStatusPending},
			{ID: 4, WorkOrderNumber: "WO-4", CompanyID: 3, Date: "2024-06-10", Status: entities.WorkOrderStatusPending},
			{ID: 5, WorkOrderNumber: "WO-5", CompanyID: 1, Date: "2024-06-01", Status: entities.WorkOrderStatusCompleted},
		},
		lines: []entities.WorkOrderLine{
			{ID: 10, HeaderID: 1, AnalysisType: "GPA 2261", Price: 100, Rushed: true},
			{ID: 11, HeaderID: 1, AnalysisType: "GPA 2261", Price: 50},
			{ID: 20, HeaderID: 2, AnalysisType: "GPA 2261", Price: 150},
			{ID: 21, HeaderID: 2, AnalysisType: "GPA 2172", Price: 200},
			{ID: 40, HeaderID: 4, AnalysisType: "BTU Analysis", Price: 150},
			{ID: 50, HeaderID: 5, AnalysisType: "GPA 2261", Price: 150},
		},
		checkIns: []entities.CheckInRecord{
			{ID: 1, CompanyID: 1, AnalysisType: "GPA 2261", CheckInTime: at(2024, 6, 12, 9), Rushed: true},
			{ID: 2, CompanyID: 1, AnalysisType: "GPA 2172", CheckInTime: at(2024, 6, 11, 10)},
			{ID: 3, CompanyID: 2, AnalysisType: "GPA 2261", CheckInTime: at(2024, 5, 20, 10)},
			{ID: 4, CompanyID: 3, AnalysisType: "Extended Analysis", CheckInTime: at(2023, 12, 15, 10)},
		},
		checkOuts: []entities.CheckOutRecord{
			{ID: 1, CompanyID: 1, Barcode: "CYL-1", CreatedAt: at(2024, 6, 12, 8)},
			{ID: 5, CompanyID: 1, Barcode: "CYL-1", CreatedAt: at(2024, 6, 6, 8)},
			{ID: 3, CompanyID: 2, Barcode: "CYL-2", CreatedAt: at(2024, 6, 11, 8)},
		},
		imports: []entities.ImportRecord{
			{ID: 1, Status: entities.ImportStatusValidated, ImportedAt: at(2024, 6, 10, 9)},
			{ID: 2, Status: entities.ImportStatusError, ImportedAt: at(2024, 6, 10, 9)},
			{ID: 3, Status: entities.ImportStatusValidated, ImportedAt: at(2024, 5, 1, 9)},
		},
	}
}

func newDashboard() *DashboardUseCase {
	return NewDashboardUseCase(dashboardFixture(), nil).WithClock(func() time.Time { return dashboardNow })
}

func TestDashboardUseCase_GetStats(t *testing.T) {
	uc := newDashboard()

	got := uc.GetStats(DashboardFilter{})
	want := entities.DashboardStats{TotalCheckOuts: 3, TotalCheckIns: 4, RushedSamples: 1, ValidatedImports: 2}
	if got != want {
		t.Fatalf("unfiltered stats = %+v, want %+v", got, want)
	}

	got = uc.GetStats(DashboardFilter{DateFrom: "2024-06-01", DateTo: "2024-06-13"})
	want = entities.DashboardStats{TotalCheckOuts: 3, TotalCheckIns: 2, RushedSamples: 1, ValidatedImports: 1}
	if got != want {
		t.Fatalf("june stats = %+v, want %+v", got, want)
	}

	got = uc.GetStats(DashboardFilter{AnalysisType: "GPA 2261"})
	if got.TotalCheckIns != 2 || got.TotalCheckOuts != 3 {
		t.Fatalf("type filter must narrow check-ins only, got %+v", got)
	}
}

func TestDashboardUseCase_DateBoundsAreMidnight(t *testing.T) {
	uc := newDashboard()

	got := uc.GetStats(DashboardFilter{DateFrom: "2024-06-11", DateTo: "2024-06-12"})
	if got.TotalCheckOuts != 1 {
		t.Fatalf("records later on the to-day fall outside the window, got %d check-outs", got.TotalCheckOuts)
	}

	got = uc.GetStats(DashboardFilter{DateFrom: "not-a-date", DateTo: "2024-06-13"})
	if got.TotalCheckIns != 4 {
		t.Fatalf("unparseable from bound must be ignored, got %d check-ins", got.TotalCheckIns)
	}
}

func TestDashboardUseCase_GetAnalysisTypeDistribution(t *testing.T) {
	got := newDashboard().GetAnalysisTypeDistribution(DashboardFilter{AnalysisType: AnalysisTypeAll})
	want := []entities.AnalysisTypeBucket{
		{AnalysisType: "GPA 2261", Count: 2, Revenue: 300, Color: chartPalette[0]},
		{AnalysisType: "GPA 2172", Count: 1, Revenue: 200, Color: chartPalette[1]},
		{AnalysisType: "Extended Analysis", Count: 1, Revenue: 250, Color: chartPalette[2]},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("distribution = %+v, want %+v", got, want)
	}
}

func TestDashboardUseCase_GetMonthlyTrend(t *testing.T) {
	got := newDashboard().GetMonthlyTrend(DashboardFilter{})
	if len(got) != 6 {
		t.Fatalf("expected 6 months, got %d", len(got))
	}

	months := make([]string, 0, len(got))
	for _, p := range got {
		months = append(months, p.Month)
	}
	if !reflect.DeepEqual(months, []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}) {
		t.Fatalf("months = %v", months)
	}
	if got[5].Samples != 2 || got[5].Revenue != 350 {
		t.Fatalf("june = %+v", got[5])
	}
	if got[4].Samples != 1 || got[4].Revenue != 150 {
		t.Fatalf("may = %+v", got[4])
	}
	if got[0].Samples != 0 {
		t.Fatalf("december check-in leaked into january: %+v", got[0])
	}
}

func TestDashboardUseCase_GetPendingWorkOrders(t *testing.T) {
	got := newDashboard().GetPendingWorkOrders(DashboardFilter{})

	numbers := make([]string, 0, len(got))
	for _, p := range got {
		numbers = append(numbers, p.WorkOrderNumber)
	}
	if !reflect.DeepEqual(numbers, []string{"WO-4", "WO-2", "WO-1"}) {
		t.Fatalf("pending order = %v; WO-3 has no lines and must be dropped", numbers)
	}

	for i := 1; i < len(got); i++ {
		if got[i-1].HoursInQueue < got[i].HoursInQueue {
			t.Fatalf("queue must be sorted by hours descending: %d before %d", got[i-1].HoursInQueue, got[i].HoursInQueue)
		}
	}

	wo4, wo2, wo1 := got[0], got[1], got[2]
	if wo4.HoursInQueue != 60 || wo4.QueueTime != "2d 12h" || wo4.Priority.Level != entities.PriorityUrgent {
		t.Fatalf("WO-4 = %+v", wo4)
	}
	if wo4.CompanyName != "Company 3" {
		t.Fatalf("unknown company placeholder = %q", wo4.CompanyName)
	}
	if wo2.AnalysisType != AnalysisTypeMixed || wo2.Priority.Level != entities.PriorityAttention {
		t.Fatalf("WO-2 = %+v", wo2)
	}
	if wo1.LineTotal != 150 || wo1.Fees != 15 || wo1.TotalValue != 165 || !wo1.Rushed || wo1.SampleCount != 2 {
		t.Fatalf("WO-1 = %+v", wo1)
	}
	if wo1.QueueTime != "12h" || wo1.Priority.Level != entities.PriorityNormal || wo1.CompanyName != "Acme Gas" {
		t.Fatalf("WO-1 = %+v", wo1)
	}
}

func TestDashboardUseCase_GetPendingWorkOrders_Filters(t *testing.T) {
	uc := newDashboard()

	got := uc.GetPendingWorkOrders(DashboardFilter{AnalysisType: "GPA 2172"})
	if len(got) != 1 || got[0].WorkOrderNumber != "WO-2" || got[0].AnalysisType != "GPA 2172" || got[0].SampleCount != 1 {
		t.Fatalf("type filtered queue = %+v", got)
	}

	got = uc.GetPendingWorkOrders(DashboardFilter{DateFrom: "2024-06-11", DateTo: "2024-06-12"})
	if len(got) != 2 || got[0].WorkOrderNumber != "WO-2" || got[1].WorkOrderNumber != "WO-1" {
		t.Fatalf("date filtered queue = %+v", got)
	}
}

func TestDashboardUseCase_GetPendingWorkOrders_FutureDateClampsToZero(t *testing.T) {
	acc := &fakeAccessor{
		headers: []entities.WorkOrderHeader{
			{ID: 9, WorkOrderNumber: "WO-9", CompanyID: 1, Date: "2024-06-20", Status: entities.WorkOrderStatusPending},
		},
		lines: []entities.WorkOrderLine{{ID: 90, HeaderID: 9, AnalysisType: "GPA 2261", Price: 10}},
	}
	got := NewDashboardUseCase(acc, nil).WithClock(func() time.Time { return dashboardNow }).
		GetPendingWorkOrders(DashboardFilter{})

	if len(got) != 1 {
		t.Fatalf("expected the future-dated order in the queue, got %+v", got)
	}
	if got[0].HoursInQueue != 0 || got[0].QueueTime != "0h" || got[0].Priority.Level != entities.PriorityNormal {
		t.Fatalf("future-dated order = %+v", got[0])
	}
}

func TestDashboardUseCase_GetTopCustomers(t *testing.T) {
	got := newDashboard().GetTopCustomers(DashboardFilter{})
	want := []entities.TopCustomer{
		{CompanyID: 1, CompanyName: "Acme Gas", Samples: 2, Revenue: 350},
		{CompanyID: 2, CompanyName: "Borealis", Samples: 1, Revenue: 150},
		{CompanyID: 3, CompanyName: "Company 3", Samples: 1, Revenue: 250},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("top customers = %+v", got)
	}
}

func TestDashboardUseCase_GetTopCustomers_LimitsToFive(t *testing.T) {
	acc := &fakeAccessor{}
	for company := int64(1); company <= 7; company++ {
		for i := int64(0); i < company; i++ {
			acc.checkIns = append(acc.checkIns, entities.CheckInRecord{
				ID: company*100 + i, CompanyID: company, AnalysisType: "GPA 2261", CheckInTime: dashboardNow,
			})
		}
	}

	got := NewDashboardUseCase(acc, nil).GetTopCustomers(DashboardFilter{})
	if len(got) != 5 {
		t.Fatalf("expected top 5, got %d", len(got))
	}
	if got[0].CompanyID != 7 || got[4].CompanyID != 3 {
		t.Fatalf("top customers = %+v", got)
	}
}

func TestDashboardUseCase_GetDailyActivity(t *testing.T) {
	uc := newDashboard()

	got := uc.GetDailyActivity(DashboardFilter{DateFrom: "2030-01-01"})
	if len(got) != 7 {
		t.Fatalf("expected 7 days, got %d", len(got))
	}
	if got[0].Date != "2024-06-06" || got[0].Day != "Thu" || got[6].Date != "2024-06-12" || got[6].Day != "Wed" {
		t.Fatalf("window = %+v .. %+v", got[0], got[6])
	}
	if got[6].CheckIns != 1 || got[6].CheckOuts != 1 || got[5].CheckIns != 1 || got[5].CheckOuts != 1 || got[0].CheckOuts != 1 {
		t.Fatalf("activity ignores the date filter, got %+v", got)
	}

	got = uc.GetDailyActivity(DashboardFilter{AnalysisType: "GPA 2172"})
	if got[6].CheckIns != 0 || got[5].CheckIns != 1 || got[6].CheckOuts != 1 {
		t.Fatalf("type filter narrows check-ins only, got %+v", got)
	}
}

func TestDashboardUseCase_GetLatestCheckOut(t *testing.T) {
	uc := newDashboard()

	co, ok := uc.GetLatestCheckOut("CYL-1")
	if !ok || co.ID != 5 {
		t.Fatalf("latest checkout is the highest id, got %+v ok=%v", co, ok)
	}
	if _, ok := uc.GetLatestCheckOut("CYL-404"); ok {
		t.Fatal("expected miss for unknown cylinder")
	}
}

func TestDashboardUseCase_GetDashboard(t *testing.T) {
	d := newDashboard().GetDashboard(DashboardFilter{})
	if d.Stats.TotalCheckIns != 4 || len(d.PendingWorkOrders) != 3 || len(d.MonthlyTrend) != 6 || len(d.DailyActivity) != 7 {
		t.Fatalf("dashboard = %+v", d)
	}
}

func TestEstimateRevenue(t *testing.T) {
	cases := map[string]float64{"GPA 2261": 150, "GPA 2172": 200, "BTU Analysis": 150, "Extended Analysis": 250, "Sulfur": 150}
	for typ, want := range cases {
		if got := EstimateRevenue(typ); got != want {
			t.Fatalf("EstimateRevenue(%q) = %v, want %v", typ, got, want)
		}
	}
}
