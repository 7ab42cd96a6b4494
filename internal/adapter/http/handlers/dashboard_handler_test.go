package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lims_service/internal/adapter/http/handlers/mocks"
	"lims_service/internal/domain/entities"
	"lims_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newDashboardRouter(t *testing.T) (*gin.Engine, *mocks.MockIDashboardUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIDashboardUseCase(ctrl)
	h := NewDashboardHandler(uc, nil)

	r := gin.New()
	r.GET("/v1/dashboard", h.GetDashboard)
	r.GET("/v1/dashboard/stats", h.GetStats)
	r.GET("/v1/dashboard/analysis-types", h.GetAnalysisTypes)
	r.GET("/v1/dashboard/monthly-trend", h.GetMonthlyTrend)
	r.GET("/v1/dashboard/pending-work-orders", h.GetPendingWorkOrders)
	r.GET("/v1/dashboard/top-customers", h.GetTopCustomers)
	r.GET("/v1/dashboard/daily-activity", h.GetDailyActivity)
	r.GET("/v1/dashboard/priority/:hours", h.GetPriority)
	r.GET("/v1/cylinders/:cylinder_number/latest-checkout", h.GetLatestCheckOut)
	return r, uc
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDashboardHandler_PassesFilter(t *testing.T) {
	r, uc := newDashboardRouter(t)

	want := usecase.DashboardFilter{DateFrom: "2024-06-01", DateTo: "2024-06-30", AnalysisType: "GPA 2261"}
	uc.EXPECT().GetStats(want).Return(entities.DashboardStats{TotalCheckIns: 4, RushedSamples: 1})

	w := get(r, "/v1/dashboard/stats?date_from=2024-06-01&date_to=2024-06-30&analysis_type=GPA+2261")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body entities.DashboardStats
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body.TotalCheckIns != 4 || body.RushedSamples != 1 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestDashboardHandler_Panels(t *testing.T) {
	r, uc := newDashboardRouter(t)
	f := usecase.DashboardFilter{}

	uc.EXPECT().GetDashboard(f).Return(entities.Dashboard{Stats: entities.DashboardStats{TotalCheckOuts: 2}})
	uc.EXPECT().GetAnalysisTypeDistribution(f).Return([]entities.AnalysisTypeBucket{{AnalysisType: "GPA 2261", Count: 2}})
	uc.EXPECT().GetMonthlyTrend(f).Return([]entities.MonthlyTrendPoint{{Month: "Jun", Samples: 2}})
	uc.EXPECT().GetPendingWorkOrders(f).Return([]entities.PendingWorkOrder{{WorkOrderNumber: "WO-4", HoursInQueue: 60}})
	uc.EXPECT().GetTopCustomers(f).Return([]entities.TopCustomer{{CompanyID: 1, Samples: 2}})
	uc.EXPECT().GetDailyActivity(f).Return([]entities.DailyActivity{{Date: "2024-06-12", CheckIns: 1}})

	paths := []string{
		"/v1/dashboard",
		"/v1/dashboard/analysis-types",
		"/v1/dashboard/monthly-trend",
		"/v1/dashboard/pending-work-orders",
		"/v1/dashboard/top-customers",
		"/v1/dashboard/daily-activity",
	}
	for _, p := range paths {
		if w := get(r, p); w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", p, w.Code)
		}
	}
}

func TestDashboardHandler_GetPriority(t *testing.T) {
	r, _ := newDashboardRouter(t)

	w := get(r, "/v1/dashboard/priority/30")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["queue_time"] != "1d 6h" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	priority := body["priority"].(map[string]any)
	if priority["label"] != "Attention" || priority["color"] != "yellow" {
		t.Fatalf("unexpected priority: %v", priority)
	}

	for _, bad := range []string{"/v1/dashboard/priority/-1", "/v1/dashboard/priority/abc"} {
		if w := get(r, bad); w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", bad, w.Code)
		}
	}
}

func TestDashboardHandler_GetLatestCheckOut(t *testing.T) {
	r, uc := newDashboardRouter(t)

	uc.EXPECT().GetLatestCheckOut("CYL-1").Return(entities.CheckOutRecord{ID: 5, Barcode: "CYL-1"}, true)
	uc.EXPECT().GetLatestCheckOut("CYL-404").Return(entities.CheckOutRecord{}, false)

	w := get(r, "/v1/cylinders/CYL-1/latest-checkout")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["check_out"].(map[string]any)["id"] != float64(5) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}

	if w := get(r, "/v1/cylinders/CYL-404/latest-checkout"); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
