package handlers

import (
	"pixel_bistro/internal/logger"
	"pixel_bistro/internal/service"

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

	h.registerAPIRoutes(router)

	// Presentation stream and the co-op guest link share the API port.
	// The stream accepts actions, so it sits behind the same token check as /api/v1.
	router.GET("/ws", wsTokenFromQuery, h.chefIDMiddleware, h.wsConnect)
	router.GET("/peer/:room", h.peerConnect)

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
	api := r.Group("/api/v1", h.chefIDMiddleware)
	{
		h.registerGameRoutes(api)
		h.registerRankingRoutes(api)
		h.registerLogRoutes(api)
	}
}

func (h *Handler) registerGameRoutes(api *gin.RouterGroup) {
	game := api.Group("/game")
	{
		game.POST("/solo", h.newSolo)
		game.POST("/continue", h.continueGame)
		game.GET("/save", h.hasSave)
		game.POST("/host", h.hostGame)
		// Body example: {"room":"AB12"}
		game.POST("/join", h.joinGame)
		// Body example: {"type":"KEY_PRESS","key":"P"}
		game.POST("/actions", h.emitAction)
		game.GET("/state", h.getState)
		game.GET("/menu", h.getMenu)
		game.GET("/review", h.getReview)
		game.GET("/status", h.getStatus)
		game.POST("/mute", h.toggleMute)
	}
}

func (h *Handler) registerRankingRoutes(api *gin.RouterGroup) {
	api.GET("/ranking", h.getRanking)
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")
	{
		logs.GET("/", h.getLogs)
	}
}
