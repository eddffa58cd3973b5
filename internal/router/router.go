package router

import (
	"blog/internal/handlers"
	"blog/internal/middleware"
	"blog/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// New builds the gin engine with logging, recovery and all routes.
func New(s *store.Store, log *zap.SugaredLogger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(log), gin.Recovery())
	RegisterRoutes(r, s, log)
	return r
}

func RegisterRoutes(r *gin.Engine, s *store.Store, log *zap.SugaredLogger) {
	seedHandler := handlers.NewSeedHandler(s, log)
	userHandler := handlers.NewUserHandler(s, log)
	articleHandler := handlers.NewArticleHandler(s, log)

	r.GET("/healthz", handlers.Healthz)

	api := r.Group("/api/test")
	{
		api.POST("/seed", seedHandler.Seed)

		api.GET("/users", userHandler.List)
		api.DELETE("/users/:id", userHandler.Delete)

		api.GET("/articles", articleHandler.List)
		api.GET("/articles/:id", articleHandler.Detail)
		api.POST("/articles/:id/publish", articleHandler.Publish)
	}
}
