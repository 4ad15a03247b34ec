package controller

import (
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsprime/prime-cms/logger"
	"github.com/jsprime/prime-cms/web/entity"
	"github.com/jsprime/prime-cms/web/service"
)

// getRemoteIp extracts the real client IP from proxy headers or the
// remote address.
func getRemoteIp(c *gin.Context) string {
	value := c.GetHeader("X-Real-IP")
	if value != "" {
		return value
	}
	value = c.GetHeader("X-Forwarded-For")
	if value != "" {
		ips := strings.Split(value, ",")
		return ips[0]
	}
	addr := c.Request.RemoteAddr
	ip, _, _ := net.SplitHostPort(addr)
	return ip
}

// jsonError sends the uniform error envelope.
func jsonError(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, entity.ErrorResp{Error: msg})
}

// jsonFail maps a service error to a response: validation reasons pass
// through with a 400, not-found becomes a 404 with the given noun, and
// anything else is logged and reported with the generic fallback.
func jsonFail(c *gin.Context, err error, notFoundMsg string, fallbackMsg string) {
	switch {
	case service.IsValidation(err):
		jsonError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		jsonError(c, http.StatusNotFound, notFoundMsg)
	default:
		logger.Warning(fallbackMsg+":", err)
		jsonError(c, http.StatusInternalServerError, fallbackMsg)
	}
}

// pathID parses the numeric :id route parameter.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
