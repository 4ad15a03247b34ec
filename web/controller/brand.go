package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsprime/prime-cms/logger"
	"github.com/jsprime/prime-cms/web/entity"
	"github.com/jsprime/prime-cms/web/service"
)

// BrandController handles the brand endpoints. Create and update are
// multipart because they can carry a logo image.
type BrandController struct {
	BaseController

	brandService *service.BrandService
}

func NewBrandController(g *gin.RouterGroup, brandService *service.BrandService) *BrandController {
	a := &BrandController{brandService: brandService}
	a.initRouter(g)
	return a
}

func (a *BrandController) initRouter(g *gin.RouterGroup) {
	r := g.Group("/api/brands")
	r.GET("", a.list)
	r.POST("", a.create)
	r.PATCH("/:id", a.update)
	r.DELETE("/:id", a.delete)
}

func (a *BrandController) list(c *gin.Context) {
	brands, err := a.brandService.GetAll()
	if err != nil {
		logger.Warning("failed to fetch brands:", err)
		jsonError(c, http.StatusInternalServerError, "Failed to fetch brands")
		return
	}
	c.JSON(http.StatusOK, brands)
}

func (a *BrandController) create(c *gin.Context) {
	name := c.PostForm("brand_name")
	file, err := c.FormFile("brand_img")
	if err != nil || name == "" {
		jsonError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	brand, err := a.brandService.Create(c.Request.Context(), name, file)
	if err != nil {
		jsonFail(c, err, "Brand not found", "Failed to create brand")
		return
	}
	c.JSON(http.StatusCreated, brand)
}

func (a *BrandController) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	name := c.PostForm("brand_name")
	oldKey := c.PostForm("old_brand_img")
	// No file means the existing image reference is kept; the client
	// passes the current key through as old_brand_img.
	file, err := c.FormFile("brand_img_file")
	if err != nil {
		file = nil
	}

	brand, err := a.brandService.Update(c.Request.Context(), id, name, file, oldKey)
	if err != nil {
		jsonFail(c, err, "Brand not found", "Failed to update brand")
		return
	}
	c.JSON(http.StatusOK, brand)
}

func (a *BrandController) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := a.brandService.Delete(c.Request.Context(), id); err != nil {
		jsonFail(c, err, "Brand not found", "Failed to delete brand")
		return
	}
	c.JSON(http.StatusOK, entity.MessageResp{Message: "Brand deleted successfully"})
}
