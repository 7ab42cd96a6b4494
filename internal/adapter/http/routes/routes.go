package routes

import (
	"net/http"

	_ "lims_service/docs"
	"lims_service/internal/adapter/http/handlers"
	"lims_service/internal/infrastructure/logger"
	"lims_service/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	PathAPI     = "/v1"
	PathMetrics = "/metrics"
	PathSwagger = "/swagger/*any"
)

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Dashboard *handlers.DashboardHandler
	Report    *handlers.ReportHandler
	Invoice   *handlers.InvoiceHandler
	Payment   *handlers.InvoicePaymentHandler
	System    *handlers.SystemHandler
}

// NewRouter builds the gin engine with logging, recovery and request metrics.
func NewRouter(h Handlers, m *metrics.Metrics, log *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, m, log)

	router.GET(PathSwagger, ginSwagger.WrapHandler(swaggerFiles.Handler))
	if m != nil {
		router.GET(PathMetrics, gin.WrapH(m.Handler()))
	}

	v1 := router.Group(PathAPI)
	addSystemRoutes(v1, h.System)
	addDashboardRoutes(v1, h.Dashboard)
	addReportRoutes(v1, h.Report)
	addInvoiceRoutes(v1, h.Invoice, h.Payment)

	router.NoRoute(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "Route not found"}})
	})
	return router
}

func setMiddlewares(router *gin.Engine, m *metrics.Metrics, log *zap.Logger) {
	router.Use(logger.Recovery(log))
	router.Use(logger.GinMiddleware(log))
	if m != nil {
		router.Use(m.GinMiddleware())
	}
}
