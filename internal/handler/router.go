package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"vtv-turnos/internal/domain/user"
	"vtv-turnos/internal/handler/api"
	"vtv-turnos/internal/handler/middleware"
	"vtv-turnos/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Op      user.Operation
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, authHandler *api.AuthHandler, adminHandler *api.AdminHandler, slotHandler *api.SlotHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, adminHandler, slotHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, authHandler *api.AuthHandler, adminHandler *api.AdminHandler, slotHandler *api.SlotHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	engine.POST("/auth/login", authHandler.Login)

	admin := engine.Group("/admin")
	admin.Use(authMiddleware.RequireAuth())
	addRoutes(admin, authMiddleware, []route{
		{Method: http.MethodPost, Path: "/users", Op: user.OpCreateUser, Handler: adminHandler.CreateUser},
		{Method: http.MethodGet, Path: "/users", Op: user.OpListUsers, Handler: adminHandler.ListUsers},
		{Method: http.MethodPost, Path: "/slots/bulk-create", Op: user.OpGenerateSlots, Handler: adminHandler.BulkCreateSlots},
	})

	slots := engine.Group("/slots")
	slots.Use(authMiddleware.RequireAuth())
	addRoutes(slots, authMiddleware, []route{
		{Method: http.MethodGet, Path: "/availability", Op: user.OpQueryAvailability, Handler: slotHandler.Availability},
		{Method: http.MethodGet, Path: "/pending", Op: user.OpListPending, Handler: slotHandler.Pending},
		{Method: http.MethodPost, Path: "/reserve", Op: user.OpReserveSlot, Handler: slotHandler.Reserve},
		{Method: http.MethodGet, Path: "/:id", Op: user.OpGetSlot, Handler: slotHandler.Get},
		{Method: http.MethodPost, Path: "/:id/finalize", Op: user.OpFinalize, Handler: slotHandler.Finalize},
	})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, authMiddleware *middleware.AuthMiddleware, rs []route) {
	for _, r := range rs {
		g.Handle(r.Method, r.Path, authMiddleware.Authorize(r.Op), r.Handler)
	}
}
