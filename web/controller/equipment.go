package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsprime/prime-cms/logger"
	"github.com/jsprime/prime-cms/web/entity"
	"github.com/jsprime/prime-cms/web/service"
)

// EquipmentController handles the rental equipment endpoints.
type EquipmentController struct {
	BaseController

	equipmentService *service.EquipmentService
}

func NewEquipmentController(g *gin.RouterGroup, equipmentService *service.EquipmentService) *EquipmentController {
	a := &EquipmentController{equipmentService: equipmentService}
	a.initRouter(g)
	return a
}

func (a *EquipmentController) initRouter(g *gin.RouterGroup) {
	r := g.Group("/api/equipments")
	r.GET("", a.list)
	r.POST("", a.create)
	r.PATCH("/:id", a.update)
	r.DELETE("/:id", a.delete)
}

func (a *EquipmentController) list(c *gin.Context) {
	equipments, err := a.equipmentService.GetAll()
	if err != nil {
		logger.Warning("failed to fetch equipments:", err)
		jsonError(c, http.StatusInternalServerError, "Failed to fetch equipments")
		return
	}
	c.JSON(http.StatusOK, equipments)
}

func (a *EquipmentController) create(c *gin.Context) {
	name := c.PostForm("equipment_name")
	description := c.PostForm("description")
	file, err := c.FormFile("equipment_img")
	if err != nil || name == "" || description == "" {
		jsonError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	equipment, err := a.equipmentService.Create(c.Request.Context(), name, description, file)
	if err != nil {
		jsonFail(c, err, "Equipment not found", "Failed to create equipment")
		return
	}
	c.JSON(http.StatusCreated, equipment)
}

func (a *EquipmentController) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	name := c.PostForm("equipment_name")
	description := c.PostForm("description")
	oldKey := c.PostForm("old_equipment_img")
	file, err := c.FormFile("equipment_img_file")
	if err != nil {
		file = nil
	}

	equipment, err := a.equipmentService.Update(c.Request.Context(), id, name, description, file, oldKey)
	if err != nil {
		jsonFail(c, err, "Equipment not found", "Failed to update equipment")
		return
	}
	c.JSON(http.StatusOK, equipment)
}

func (a *EquipmentController) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := a.equipmentService.Delete(c.Request.Context(), id); err != nil {
		jsonFail(c, err, "Equipment not found", "Failed to delete equipment")
		return
	}
	c.JSON(http.StatusOK, entity.MessageResp{Message: "Equipment deleted successfully"})
}
