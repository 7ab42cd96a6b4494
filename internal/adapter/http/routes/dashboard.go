package routes

import (
	"lims_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDashboard = "/dashboard"
	PathCylinders = "/cylinders"
	PathReports   = "/reports"
)

func addDashboardRoutes(rg *gin.RouterGroup, h *handlers.DashboardHandler) {
	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("", h.GetDashboard)
		dashboard.GET("/stats", h.GetStats)
		dashboard.GET("/analysis-types", h.GetAnalysisTypes)
		dashboard.GET("/monthly-trend", h.GetMonthlyTrend)
		dashboard.GET("/pending-work-orders", h.GetPendingWorkOrders)
		dashboard.GET("/top-customers", h.GetTopCustomers)
		dashboard.GET("/daily-activity", h.GetDailyActivity)
		dashboard.GET("/priority/:hours", h.GetPriority)
	}

	rg.GET(PathCylinders+"/:cylinder_number/latest-checkout", h.GetLatestCheckOut)
}

func addReportRoutes(rg *gin.RouterGroup, h *handlers.ReportHandler) {
	reports := rg.Group(PathReports)
	{
		reports.GET("/analysis", h.GetAnalysisReport)
		reports.GET("/analysis/export", h.ExportAnalysisReport)
		reports.POST("/analysis/archive", h.ArchiveAnalysisReport)
	}
}
