package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsprime/prime-cms/logger"
	"github.com/jsprime/prime-cms/web/entity"
	"github.com/jsprime/prime-cms/web/service"
)

// ProjectController handles the project endpoints. Projects carry two
// images; on update each slot can be replaced independently.
type ProjectController struct {
	BaseController

	projectService *service.ProjectService
}

func NewProjectController(g *gin.RouterGroup, projectService *service.ProjectService) *ProjectController {
	a := &ProjectController{projectService: projectService}
	a.initRouter(g)
	return a
}

func (a *ProjectController) initRouter(g *gin.RouterGroup) {
	r := g.Group("/api/projects")
	r.GET("", a.list)
	r.POST("", a.create)
	r.PATCH("/:id", a.update)
	r.DELETE("/:id", a.delete)
}

func (a *ProjectController) list(c *gin.Context) {
	projects, err := a.projectService.GetAll()
	if err != nil {
		logger.Warning("failed to fetch projects:", err)
		jsonError(c, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (a *ProjectController) create(c *gin.Context) {
	title := c.PostForm("title")
	location := c.PostForm("location")
	image1, err1 := c.FormFile("image1")
	image2, err2 := c.FormFile("image2")
	if err1 != nil || err2 != nil || title == "" || location == "" {
		jsonError(c, http.StatusBadRequest, "All fields are required including 2 images")
		return
	}

	project, err := a.projectService.Create(c.Request.Context(), title, location, image1, image2)
	if err != nil {
		jsonFail(c, err, "Project not found", "Failed to create project")
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (a *ProjectController) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	title := c.PostForm("title")
	location := c.PostForm("location")
	oldImage1 := c.PostForm("oldImage1")
	oldImage2 := c.PostForm("oldImage2")
	// A slot without a new file keeps its old key.
	image1, err := c.FormFile("image1")
	if err != nil {
		image1 = nil
	}
	image2, err := c.FormFile("image2")
	if err != nil {
		image2 = nil
	}

	project, err := a.projectService.Update(c.Request.Context(), id, title, location,
		image1, image2, oldImage1, oldImage2)
	if err != nil {
		jsonFail(c, err, "Project not found", "Failed to update project")
		return
	}
	c.JSON(http.StatusOK, project)
}

func (a *ProjectController) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := a.projectService.Delete(c.Request.Context(), id); err != nil {
		jsonFail(c, err, "Project not found", "Failed to delete project")
		return
	}
	c.JSON(http.StatusOK, entity.MessageResp{Message: "Project deleted successfully"})
}
