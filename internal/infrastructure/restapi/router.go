package restapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// SetupRouter builds the gin engine with the chain routes, /health and /metrics.
func SetupRouter(chainHandler *ChainHandler, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsConfig))

	router.Use(ZapLoggerMiddleware(logger))
	router.Use(gin.Recovery())

	router.GET("/health", chainHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", chainHandler.Health)
		v1.GET("/chains", chainHandler.ListChains)
		v1.GET("/chains/:id", chainHandler.GetChain)
		v1.GET("/chains/:id/contracts/:name", chainHandler.GetContract)
		v1.GET("/chains/:id/rpc", chainHandler.GetRPCStatus)
		v1.GET("/networks/:slug", chainHandler.GetNetwork)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "route not found"})
	})

	return router
}
