package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lims_service/internal/adapter/http/handlers"
	"lims_service/internal/adapter/http/handlers/mocks"
	"lims_service/internal/domain/entities"
	"lims_service/internal/infrastructure/metrics"
	"lims_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockIDashboardUseCase, *mocks.MockIInvoiceUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	dashboard := mocks.NewMockIDashboardUseCase(ctrl)
	invoices := mocks.NewMockIInvoiceUseCase(ctrl)
	log := zap.NewNop()

	h := Handlers{
		Dashboard: handlers.NewDashboardHandler(dashboard, log),
		Report:    handlers.NewReportHandler(mocks.NewMockIReportUseCase(ctrl), log),
		Invoice:   handlers.NewInvoiceHandler(invoices, log),
		Payment:   handlers.NewInvoicePaymentHandler(mocks.NewMockIInvoicePaymentUseCase(ctrl), false, log),
		System:    handlers.NewSystemHandler(nil, nil, log),
	}
	return NewRouter(h, metrics.New(), log), dashboard, invoices
}

func serve(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNewRouter_Ping(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := serve(r, http.MethodGet, PathAPI+PathPing)
	if w.Code != http.StatusOK || w.Body.String() != `{"message":"pong"}` {
		t.Fatalf("unexpected ping %d %s", w.Code, w.Body.String())
	}
}

func TestNewRouter_MountsDashboardAndInvoices(t *testing.T) {
	r, dashboard, invoices := newTestRouter(t)

	dashboard.EXPECT().GetStats(usecase.DashboardFilter{}).Return(entities.DashboardStats{TotalCheckIns: 3})
	if w := serve(r, http.MethodGet, "/v1/dashboard/stats"); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	dashboard.EXPECT().GetLatestCheckOut("CYL-1").Return(entities.CheckOutRecord{}, false)
	if w := serve(r, http.MethodGet, "/v1/cylinders/CYL-1/latest-checkout"); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	invoices.EXPECT().ListInvoices(gomock.Any()).Return(nil, nil)
	if w := serve(r, http.MethodGet, "/v1/invoices"); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestNewRouter_UnknownRoute(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := serve(r, http.MethodGet, "/v1/unknown")
	if w.Code != http.StatusNotFound || !strings.Contains(w.Body.String(), "NOT_FOUND") {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestNewRouter_ExposesMetrics(t *testing.T) {
	r, _, _ := newTestRouter(t)

	serve(r, http.MethodGet, PathAPI+PathPing)
	w := serve(r, http.MethodGet, PathMetrics)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `lims_http_requests_total{code="200",route="/v1/ping"} 1`) {
		t.Fatalf("request counter missing:\n%s", w.Body.String())
	}
}
