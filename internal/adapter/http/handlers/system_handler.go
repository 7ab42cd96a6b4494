package handlers

import (
	"context"
	"net/http"

	response "lims_service/internal/adapter/http/dto/response"
	"lims_service/internal/usecase/interfaces"
	"lims_service/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EntityRefresher is the part of the entity store the admin routes need.
type EntityRefresher interface {
	RefreshAll(ctx context.Context) error
	Ready() bool
}

// SystemHandler serves liveness, readiness and the manual cache refresh.
type SystemHandler struct {
	store    EntityRefresher
	notifier interfaces.IRefreshNotifier
	logger   *zap.Logger
}

// NewSystemHandler wires the refresh route. With a notifier, a refresh is broadcast to
// every instance; without one, only this instance reloads.
func NewSystemHandler(store EntityRefresher, notifier interfaces.IRefreshNotifier, logger *zap.Logger) *SystemHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SystemHandler{store: store, notifier: notifier, logger: logger}
}

// @Summary  Liveness
// @Tags     system
// @Success  200
// @Router   /ping [get]
func (h *SystemHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// @Summary  Readiness: every entity cache loaded at least once
// @Tags     system
// @Success  200  {object}  response.RefreshResponse
// @Failure  503  {object}  pkg.HTTPError
// @Router   /ready [get]
func (h *SystemHandler) Ready(c *gin.Context) {
	if h.store == nil || !h.store.Ready() {
		abortWithError(c, pkg.NewDomainErrorSimple("NOT_READY", "Entity caches are still loading", http.StatusServiceUnavailable))
		return
	}
	c.JSON(http.StatusOK, response.RefreshResponse{Status: "ready"})
}

// @Summary  Reload the entity caches
// @Tags     system
// @Success  202  {object}  response.RefreshResponse
// @Router   /admin/refresh [post]
func (h *SystemHandler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()
	if h.notifier != nil {
		if err := h.notifier.Publish(ctx, "manual refresh"); err != nil {
			h.logger.Error("[refresh][handler] publish failed", zap.Error(err))
			abortWithError(c, internalError(err))
			return
		}
		c.JSON(http.StatusAccepted, response.RefreshResponse{Status: "refresh requested"})
		return
	}

	if err := h.store.RefreshAll(ctx); err != nil {
		h.logger.Error("[refresh][handler] refresh failed", zap.Error(err))
		abortWithError(c, internalError(err))
		return
	}
	c.JSON(http.StatusOK, response.RefreshResponse{Status: "refreshed"})
}
