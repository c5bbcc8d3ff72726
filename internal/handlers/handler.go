package handlers

import (
	"ilo_monitor/internal/logger"
	"ilo_monitor/internal/service"

	_ "ilo_monitor/docs"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	// Snapshot stream on the same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIdMiddleware)
	{
		h.registerPowerRoutes(api)
		h.registerControllerRoutes(api)
		h.registerServerRoutes(api)
		h.registerUIDRoutes(api)
		api.GET("/eventlog", h.getEventLog)
		api.GET("/state", h.getState)
		h.registerLogRoutes(api)
	}
}

func (h *Handler) registerPowerRoutes(api *gin.RouterGroup) {
	power := api.Group("/power")
	{
		power.GET("/status", h.powerStatus)
		// on|off|press|reset|warmboot|coldboot|forceoff, ?wait=true
		power.POST("/:action", h.powerAction)
	}
}

func (h *Handler) registerControllerRoutes(api *gin.RouterGroup) {
	ilo := api.Group("/ilo")
	{
		ilo.POST("/reset", h.resetController)
		ilo.GET("/firmware", h.getFirmware)
		ilo.GET("/network", h.getNetwork)
	}
}

func (h *Handler) registerServerRoutes(api *gin.RouterGroup) {
	srv := api.Group("/server")
	{
		srv.GET("/health", h.getHealth)
		srv.GET("/temperatures", h.getTemperatures)
		srv.GET("/fans", h.getFans)
		srv.GET("/power-supplies", h.getPowerSupplies)
		srv.GET("/name", h.getServerName)
	}
}

func (h *Handler) registerUIDRoutes(api *gin.RouterGroup) {
	uid := api.Group("/uid")
	{
		uid.GET("", h.uidStatus)
		uid.POST("/toggle", h.toggleUID)
	}
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")
	{
		logs.GET("", h.getLogs)
	}
}
