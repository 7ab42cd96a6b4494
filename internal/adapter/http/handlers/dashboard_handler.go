package handlers

import (
	"net/http"
	"strconv"
	"strings"

	request "lims_service/internal/adapter/http/dto/request"
	response "lims_service/internal/adapter/http/dto/response"
	"lims_service/internal/usecase"
	"lims_service/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler serves the dashboard panels. Every route accepts the same
// date_from/date_to/analysis_type query filter.
type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
	logger  *zap.Logger
}

func NewDashboardHandler(uc usecase.IDashboardUseCase, logger *zap.Logger) *DashboardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardHandler{usecase: uc, logger: logger}
}

func (h *DashboardHandler) filter(c *gin.Context) (usecase.DashboardFilter, bool) {
	var q request.DashboardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.logger.Warn("[dashboard][handler] invalid query", zap.Error(err))
		abortWithError(c, errInvalidQuery)
		return usecase.DashboardFilter{}, false
	}
	return q.ToFilter(), true
}

// GetDashboard godoc
// @Summary      Full dashboard
// @Tags         dashboard
// @Produce      json
// @Param        date_from      query  string  false  "YYYY-MM-DD"
// @Param        date_to        query  string  false  "YYYY-MM-DD"
// @Param        analysis_type  query  string  false  "analysis type or all"
// @Success      200  {object}  entities.Dashboard
// @Router       /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	f, ok := h.filter(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.usecase.GetDashboard(f))
}

// GetStats godoc
// @Summary  Headline counters
// @Tags     dashboard
// @Success  200  {object}  entities.DashboardStats
// @Router   /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	f, ok := h.filter(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.usecase.GetStats(f))
}

// @Summary  Check-ins per analysis type
// @Tags     dashboard
// @Success  200  {array}  entities.AnalysisTypeBucket
// @Router   /dashboard/analysis-types [get]
func (h *DashboardHandler) GetAnalysisTypes(c *gin.Context) {
	f, ok := h.filter(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.usecase.GetAnalysisTypeDistribution(f))
}

// @Summary  Trailing six month trend
// @Tags     dashboard
// @Success  200  {array}  entities.MonthlyTrendPoint
// @Router   /dashboard/monthly-trend [get]
func (h *DashboardHandler) GetMonthlyTrend(c *gin.Context) {
	f, ok := h.filter(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.usecase.GetMonthlyTrend(f))
}

// @Summary  Pending queue, oldest first
// @Tags     dashboard
// @Success  200  {array}  entities.PendingWorkOrder
// @Router   /dashboard/pending-work-orders [get]
func (h *DashboardHandler) GetPendingWorkOrders(c *gin.Context) {
	f, ok := h.filter(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.usecase.GetPendingWorkOrders(f))
}

// @Summary  Top five customers by samples
// @Tags     dashboard
// @Success  200  {array}  entities.TopCustomer
// @Router   /dashboard/top-customers [get]
func (h *DashboardHandler) GetTopCustomers(c *gin.Context) {
	f, ok := h.filter(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.usecase.GetTopCustomers(f))
}

// @Summary  Check-ins and check-outs over the last seven days
// @Tags     dashboard
// @Success  200  {array}  entities.DailyActivity
// @Router   /dashboard/daily-activity [get]
func (h *DashboardHandler) GetDailyActivity(c *gin.Context) {
	f, ok := h.filter(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.usecase.GetDailyActivity(f))
}

// GetPriority renders the badge for a queue age given in whole hours.
//
// @Summary  Priority badge for a queue age
// @Tags     dashboard
// @Param    hours  path  int  true  "hours in queue"
// @Success  200  {object}  response.PriorityResponse
// @Failure  400  {object}  pkg.HTTPError
// @Router   /dashboard/priority/{hours} [get]
func (h *DashboardHandler) GetPriority(c *gin.Context) {
	hours, err := strconv.Atoi(c.Param("hours"))
	if err != nil || hours < 0 {
		abortWithError(c, errInvalidRequest)
		return
	}
	c.JSON(http.StatusOK, response.PriorityResponse{
		Hours:     hours,
		QueueTime: usecase.FormatQueueTime(hours),
		Priority:  usecase.GetPriority(hours),
	})
}

// @Summary  Most recent check-out of a cylinder
// @Tags     cylinders
// @Param    cylinder_number  path  string  true  "cylinder number"
// @Success  200  {object}  response.LatestCheckOutResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /cylinders/{cylinder_number}/latest-checkout [get]
func (h *DashboardHandler) GetLatestCheckOut(c *gin.Context) {
	cylinder := strings.TrimSpace(c.Param("cylinder_number"))
	if cylinder == "" {
		abortWithError(c, errInvalidRequest)
		return
	}
	co, ok := h.usecase.GetLatestCheckOut(cylinder)
	if !ok {
		abortWithError(c, pkg.NewDomainErrorSimple("CHECKOUT_NOT_FOUND", "No check-out recorded for this cylinder", http.StatusNotFound))
		return
	}
	c.JSON(http.StatusOK, response.LatestCheckOutResponse{CylinderNumber: cylinder, CheckOut: co})
}
