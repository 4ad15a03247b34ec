package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsprime/prime-cms/logger"
	"github.com/jsprime/prime-cms/web/entity"
	"github.com/jsprime/prime-cms/web/service"
	"github.com/jsprime/prime-cms/web/token"
)

type passwordChangeForm struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// SettingsController handles admin account settings. The password
// change re-reads the session cookie and re-verifies the current
// password instead of trusting the session gate alone.
type SettingsController struct {
	BaseController

	userService service.UserService
	secret      []byte
}

func NewSettingsController(g *gin.RouterGroup, secret []byte) *SettingsController {
	a := &SettingsController{secret: secret}
	a.initRouter(g)
	return a
}

func (a *SettingsController) initRouter(g *gin.RouterGroup) {
	g.PATCH("/api/settings", a.changePassword)
	g.GET("/api/logs", a.getLogs)
}

// getLogs returns recent entries from the in-memory log buffer for the
// admin log view, newest first.
func (a *SettingsController) getLogs(c *gin.Context) {
	if _, err := token.FromRequest(c, a.secret); err != nil {
		jsonError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	count, err := strconv.Atoi(c.DefaultQuery("count", "50"))
	if err != nil || count < 1 || count > 10000 {
		jsonError(c, http.StatusBadRequest, "Invalid count parameter")
		return
	}
	level := c.DefaultQuery("level", "info")

	c.JSON(http.StatusOK, logger.GetLogs(count, level))
}

func (a *SettingsController) changePassword(c *gin.Context) {
	var form passwordChangeForm
	if err := c.ShouldBindJSON(&form); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if form.CurrentPassword == "" || form.NewPassword == "" {
		jsonError(c, http.StatusBadRequest, "Current password and new password are required")
		return
	}

	claims, err := token.FromRequest(c, a.secret)
	if err != nil {
		jsonError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	err = a.userService.UpdatePassword(claims.Username, form.CurrentPassword, form.NewPassword)
	if errors.Is(err, service.ErrInvalidCredentials) {
		jsonError(c, http.StatusBadRequest, "Current password is incorrect")
		return
	} else if err != nil {
		logger.Warning("failed to update password:", err)
		jsonError(c, http.StatusInternalServerError, "Failed to update password")
		return
	}

	logger.Infof("%s changed their password", claims.Username)
	c.JSON(http.StatusOK, entity.MessageResp{Message: "Password updated successfully"})
}
