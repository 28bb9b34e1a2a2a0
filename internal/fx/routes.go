package fx

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/iclubstoree/iclub-financeiro/config"
	"github.com/iclubstoree/iclub-financeiro/internal/middleware"
	"github.com/iclubstoree/iclub-financeiro/internal/routes"
)

var RoutesModule = fx.Options(
	fx.Provide(
		routes.NewHandler,
		newRouter,
	),
)

func newRouter(cfg *config.Config, handler *routes.Handler) *gin.Engine {
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())

	limiter := middleware.NewRateLimiter(100, time.Minute)
	router.Use(limiter.Middleware())

	handler.RegisterRoutes(router)
	return router
}
