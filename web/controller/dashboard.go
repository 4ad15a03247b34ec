package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsprime/prime-cms/logger"
	"github.com/jsprime/prime-cms/web/service"
)

// DashboardController serves collection counts for the admin home page.
type DashboardController struct {
	BaseController

	dashboardService service.DashboardService
}

func NewDashboardController(g *gin.RouterGroup) *DashboardController {
	a := &DashboardController{}
	a.initRouter(g)
	return a
}

func (a *DashboardController) initRouter(g *gin.RouterGroup) {
	g.GET("/api/dashboard", a.counts)
}

func (a *DashboardController) counts(c *gin.Context) {
	counts, err := a.dashboardService.Counts()
	if err != nil {
		logger.Warning("failed to fetch dashboard data:", err)
		jsonError(c, http.StatusInternalServerError, "Failed to fetch dashboard data")
		return
	}
	c.JSON(http.StatusOK, counts)
}
