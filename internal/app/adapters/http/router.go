package http

import (
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"pitwall/internal/app/adapters/http/handlers"
	"pitwall/internal/app/infrastructure/config"
	"pitwall/internal/app/ports"
	"pitwall/pkg/logger"
)

type Router struct {
	router   *gin.Engine
	handlers *handlers.Handlers

	log     logger.Logger
	manager *config.Manager
}

func NewRouter(log logger.Logger, manager *config.Manager, seen ports.SeenPort) *Router {
	r := &Router{
		router:   gin.Default(),
		handlers: handlers.New(log, manager, seen),
		log:      log,
		manager:  manager,
	}
	cfg := manager.Get()

	if cfg.App.AuthToken != "" {
		accounts := gin.Accounts{"admin": cfg.App.AuthToken}

		pprofGroup := r.router.Group("/", gin.BasicAuth(accounts))
		pprof.Register(pprofGroup)

		r.router.GET("/metrics", gin.BasicAuth(accounts), gin.WrapH(promhttp.Handler()))
	} else {
		r.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	r.router.GET("/", r.handlers.StatusHandler)
	return r
}

func (r *Router) Run() error {
	return r.router.Run(r.manager.Get().App.ListenAddr)
}
