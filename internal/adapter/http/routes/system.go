package routes

import (
	"lims_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing    = "/ping"
	PathReady   = "/ready"
	PathRefresh = "/admin/refresh"
)

func addSystemRoutes(rg *gin.RouterGroup, h *handlers.SystemHandler) {
	rg.GET(PathPing, h.Ping)
	rg.GET(PathReady, h.Ready)
	rg.POST(PathRefresh, h.Refresh)
}
