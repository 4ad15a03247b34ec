package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsprime/prime-cms/database/model"
	"github.com/jsprime/prime-cms/logger"
	"github.com/jsprime/prime-cms/web/entity"
	"github.com/jsprime/prime-cms/web/service"
)

// CoreValueController handles the core-value endpoints.
type CoreValueController struct {
	BaseController

	coreValueService service.CoreValueService
}

func NewCoreValueController(g *gin.RouterGroup) *CoreValueController {
	a := &CoreValueController{}
	a.initRouter(g)
	return a
}

func (a *CoreValueController) initRouter(g *gin.RouterGroup) {
	r := g.Group("/api/core-values")
	r.GET("", a.list)
	r.POST("", a.create)
	r.PATCH("/:id", a.update)
	r.DELETE("/:id", a.delete)
}

func (a *CoreValueController) list(c *gin.Context) {
	values, err := a.coreValueService.GetAll()
	if err != nil {
		logger.Warning("failed to fetch core values:", err)
		jsonError(c, http.StatusInternalServerError, "Failed to fetch core-values")
		return
	}
	c.JSON(http.StatusOK, values)
}

func (a *CoreValueController) create(c *gin.Context) {
	var value model.CoreValue
	if err := c.ShouldBindJSON(&value); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := a.coreValueService.Create(&value); err != nil {
		jsonFail(c, err, "Core value not found", "Failed to create core-value")
		return
	}
	c.JSON(http.StatusCreated, value)
}

func (a *CoreValueController) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var value model.CoreValue
	if err := c.ShouldBindJSON(&value); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := a.coreValueService.Update(id, &value)
	if err != nil {
		jsonFail(c, err, "Core value not found", "Failed to update core-value")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (a *CoreValueController) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := a.coreValueService.Delete(id); err != nil {
		jsonFail(c, err, "Core value not found", "Failed to delete core-value")
		return
	}
	c.JSON(http.StatusOK, entity.MessageResp{Message: "Core value deleted successfully"})
}
