package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsprime/prime-cms/database/model"
	"github.com/jsprime/prime-cms/logger"
	"github.com/jsprime/prime-cms/web/service"
)

type contactForm struct {
	FormData model.Contact `json:"formData"`
}

// ContactController handles the singleton contact-info document.
type ContactController struct {
	BaseController

	contactService service.ContactService
}

func NewContactController(g *gin.RouterGroup) *ContactController {
	a := &ContactController{}
	a.initRouter(g)
	return a
}

func (a *ContactController) initRouter(g *gin.RouterGroup) {
	r := g.Group("/api/contact")
	r.GET("", a.get)
	r.PUT("", a.upsert)
}

// get returns the contact document, seeding the default on first read.
func (a *ContactController) get(c *gin.Context) {
	contact, err := a.contactService.Get()
	if err != nil {
		logger.Warning("failed to fetch contact:", err)
		jsonError(c, http.StatusInternalServerError, "Failed to fetch contact")
		return
	}
	c.JSON(http.StatusOK, contact)
}

func (a *ContactController) upsert(c *gin.Context) {
	var form contactForm
	if err := c.ShouldBindJSON(&form); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid form data")
		return
	}

	contact, err := a.contactService.Upsert(&form.FormData)
	if err != nil {
		logger.Warning("failed to update contact:", err)
		jsonError(c, http.StatusInternalServerError, "Failed to update contact")
		return
	}
	c.JSON(http.StatusOK, contact)
}
