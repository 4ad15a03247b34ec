package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsprime/prime-cms/config"
	"github.com/jsprime/prime-cms/logger"
	"github.com/jsprime/prime-cms/web/entity"
	"github.com/jsprime/prime-cms/web/service"
	"github.com/jsprime/prime-cms/web/token"
)

// LoginForm is the login request body.
type LoginForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// IndexController handles the public entry page and the session
// endpoints: login, logout and profile.
type IndexController struct {
	BaseController

	userService service.UserService
	secret      []byte
}

func NewIndexController(g *gin.RouterGroup, secret []byte) *IndexController {
	a := &IndexController{secret: secret}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.GET("/admin", a.admin)

	g.POST("/api/login", a.login)
	g.POST("/api/logout", a.logout)
	g.GET("/api/profile", a.profile)
}

// index serves the public entry page; logged-in admins are sent
// straight to the admin area.
func (a *IndexController) index(c *gin.Context) {
	if _, err := token.FromRequest(c, a.secret); err == nil {
		c.Redirect(http.StatusTemporaryRedirect, "/admin")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{"title": "Login"})
}

// admin serves the admin shell. The session gate has already verified
// the cookie by the time this handler runs.
func (a *IndexController) admin(c *gin.Context) {
	c.HTML(http.StatusOK, "admin.html", gin.H{
		"title":       "Admin",
		"blobBaseURL": config.GetBlobPublicBaseURL(),
	})
}

// login verifies credentials and mints the session cookie. Unknown
// usernames and wrong passwords answer identically.
func (a *IndexController) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if form.Username == "" || form.Password == "" {
		jsonError(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := a.userService.CheckUser(form.Username, form.Password)
	if err != nil {
		logger.Warningf("failed login for %q from %s", form.Username, getRemoteIp(c))
		jsonError(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	signed, err := token.Generate(user.Id, user.Username, a.secret)
	if err != nil {
		logger.Error("failed to sign session token:", err)
		jsonError(c, http.StatusInternalServerError, "Failed to log in")
		return
	}

	token.SetCookie(c, signed)
	logger.Infof("%s logged in from %s", user.Username, getRemoteIp(c))
	c.JSON(http.StatusOK, entity.SuccessResp{Success: true})
}

// logout blanks the session cookie. There is no server-side session to
// revoke.
func (a *IndexController) logout(c *gin.Context) {
	if claims, err := token.FromRequest(c, a.secret); err == nil {
		logger.Infof("%s logged out", claims.Username)
	}
	token.ClearCookie(c)
	c.JSON(http.StatusOK, entity.SuccessResp{Success: true})
}

// profile returns the identity embedded in the session token.
func (a *IndexController) profile(c *gin.Context) {
	claims, err := token.FromRequest(c, a.secret)
	if err != nil {
		jsonError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	c.JSON(http.StatusOK, entity.Profile{Username: claims.Username})
}
