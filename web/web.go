// Package web provides the prime-cms web server: routing, middleware,
// embedded templates and graceful startup/shutdown.
package web

import (
	"context"
	"embed"
	"html/template"
	"io"
	"net"
	"net/http"
	"strconv"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	"github.com/jsprime/prime-cms/config"
	"github.com/jsprime/prime-cms/logger"
	"github.com/jsprime/prime-cms/storage"
	"github.com/jsprime/prime-cms/util/common"
	"github.com/jsprime/prime-cms/web/controller"
	"github.com/jsprime/prime-cms/web/job"
	"github.com/jsprime/prime-cms/web/middleware"
	"github.com/jsprime/prime-cms/web/service"
)

//go:embed html/*
var htmlFS embed.FS

// protectedPrefixes are the paths behind the session gate. API
// endpoints that need an identity re-verify the cookie themselves.
var protectedPrefixes = []string{"/admin", "/profile"}

// Server is the prime-cms web server. The blob store client is built
// once at startup and handed to the services that need it.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	index *controller.IndexController

	cron *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new web server instance with a cancellable context.
func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{ctx: ctx, cancel: cancel}
}

func (s *Server) getHtmlTemplate() (*template.Template, error) {
	return template.New("").ParseFS(htmlFS, "html/*.html")
}

// initRouter initializes Gin, registers middleware, templates and
// controllers and returns the configured engine.
func (s *Server) initRouter(blob storage.ObjectStore, secret []byte) (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()

	if webDomain := config.GetWebDomain(); webDomain != "" {
		engine.Use(middleware.DomainValidatorMiddleware(webDomain))
	}

	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(middleware.SessionGate(secret, protectedPrefixes...))

	tpl, err := s.getHtmlTemplate()
	if err != nil {
		return nil, err
	}
	engine.SetHTMLTemplate(tpl)

	uploads := service.NewUploadService(blob)

	g := engine.Group("/")
	s.index = controller.NewIndexController(g, secret)
	controller.NewSettingsController(g, secret)
	controller.NewDashboardController(g)
	controller.NewBrandController(g, service.NewBrandService(uploads))
	controller.NewEquipmentController(g, service.NewEquipmentService(uploads))
	controller.NewProjectController(g, service.NewProjectService(uploads))
	controller.NewMilestoneController(g)
	controller.NewCoreValueController(g)
	controller.NewMissionVisionController(g)
	controller.NewContactController(g)

	engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	return engine, nil
}

// startTask schedules the background maintenance jobs.
func (s *Server) startTask() {
	s.cron.AddJob("@hourly", job.NewCheckpointDbJob())
}

// Start initializes the blob client and starts serving.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	secret := config.GetJWTSecret()
	if secret == "" {
		return common.NewError("PCMS_JWT_SECRET is not set")
	}

	blob, err := storage.NewS3Store(s.ctx)
	if err != nil {
		return err
	}

	engine, err := s.initRouter(blob, []byte(secret))
	if err != nil {
		return err
	}

	listenAddr := net.JoinHostPort(config.GetListen(), strconv.Itoa(config.GetPort()))
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}
	logger.Info("Web server running HTTP on", listener.Addr())

	s.cron = cron.New()
	s.cron.Start()
	s.startTask()

	s.listener = listener
	s.httpServer = &http.Server{Handler: engine}

	go func() {
		_ = s.httpServer.Serve(listener)
	}()

	return nil
}

// Stop gracefully shuts down the web server.
func (s *Server) Stop() error {
	s.cancel()
	if s.cron != nil {
		s.cron.Stop()
	}
	var err1, err2 error
	if s.httpServer != nil {
		err1 = s.httpServer.Shutdown(s.ctx)
	}
	if s.listener != nil {
		err2 = s.listener.Close()
	}
	return common.Combine(err1, err2)
}

// GetCtx returns the server's context.
func (s *Server) GetCtx() context.Context { return s.ctx }
