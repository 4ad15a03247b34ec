package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsprime/prime-cms/database/model"
	"github.com/jsprime/prime-cms/logger"
	"github.com/jsprime/prime-cms/web/entity"
	"github.com/jsprime/prime-cms/web/service"
)

// MilestoneController handles the company-history milestone endpoints.
type MilestoneController struct {
	BaseController

	milestoneService service.MilestoneService
}

func NewMilestoneController(g *gin.RouterGroup) *MilestoneController {
	a := &MilestoneController{}
	a.initRouter(g)
	return a
}

func (a *MilestoneController) initRouter(g *gin.RouterGroup) {
	r := g.Group("/api/milestones")
	r.GET("", a.list)
	r.POST("", a.create)
	r.PATCH("/:id", a.update)
	r.DELETE("/:id", a.delete)
}

func (a *MilestoneController) list(c *gin.Context) {
	milestones, err := a.milestoneService.GetAll()
	if err != nil {
		logger.Warning("failed to fetch milestones:", err)
		jsonError(c, http.StatusInternalServerError, "Failed to fetch milestones")
		return
	}
	c.JSON(http.StatusOK, milestones)
}

func (a *MilestoneController) create(c *gin.Context) {
	var milestone model.Milestone
	if err := c.ShouldBindJSON(&milestone); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := a.milestoneService.Create(&milestone); err != nil {
		jsonFail(c, err, "Milestone not found", "Failed to create milestone")
		return
	}
	c.JSON(http.StatusCreated, milestone)
}

func (a *MilestoneController) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var milestone model.Milestone
	if err := c.ShouldBindJSON(&milestone); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := a.milestoneService.Update(id, &milestone)
	if err != nil {
		jsonFail(c, err, "Milestone not found", "Failed to update milestone")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (a *MilestoneController) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := a.milestoneService.Delete(id); err != nil {
		jsonFail(c, err, "Milestone not found", "Failed to delete milestone")
		return
	}
	c.JSON(http.StatusOK, entity.MessageResp{Message: "Milestone deleted successfully"})
}
