package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsprime/prime-cms/logger"
	"github.com/jsprime/prime-cms/web/service"
)

type missionVisionForm struct {
	FormData struct {
		Mission string `json:"mission"`
		Vision  string `json:"vision"`
	} `json:"formData"`
}

// MissionVisionController handles the singleton mission/vision document.
type MissionVisionController struct {
	BaseController

	missionVisionService service.MissionVisionService
}

func NewMissionVisionController(g *gin.RouterGroup) *MissionVisionController {
	a := &MissionVisionController{}
	a.initRouter(g)
	return a
}

func (a *MissionVisionController) initRouter(g *gin.RouterGroup) {
	r := g.Group("/api/mission-vision")
	r.GET("", a.get)
	r.PUT("", a.upsert)
}

func (a *MissionVisionController) get(c *gin.Context) {
	mv, err := a.missionVisionService.Get()
	if err != nil {
		logger.Warning("failed to fetch mission-vision:", err)
		jsonError(c, http.StatusInternalServerError, "Failed to fetch mission-vision")
		return
	}
	if mv == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, mv)
}

func (a *MissionVisionController) upsert(c *gin.Context) {
	var form missionVisionForm
	if err := c.ShouldBindJSON(&form); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid form data")
		return
	}
	if form.FormData.Mission == "" || form.FormData.Vision == "" {
		jsonError(c, http.StatusBadRequest, "Invalid form data")
		return
	}

	mv, err := a.missionVisionService.Upsert(form.FormData.Mission, form.FormData.Vision)
	if err != nil {
		logger.Warning("failed to update mission-vision:", err)
		jsonError(c, http.StatusInternalServerError, "Failed to update mission-vision")
		return
	}
	c.JSON(http.StatusOK, mv)
}
