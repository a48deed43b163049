package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"mybiglambda/internal/config"
	"mybiglambda/internal/middleware"
)

// maxEventSize caps local invoke payloads at the synchronous Lambda limit
const maxEventSize = 6 * 1024 * 1024

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	SampleHandler *SampleHandler
	Config        *config.Config
	SecretNames   []string
}

// SetupRoutes configures all routes
func SetupRoutes(router *gin.Engine, rc *RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"service":   rc.Config.FunctionName,
			"mode":      config.GetDeploymentMode(),
			"secrets":   len(rc.SecretNames),
			"timestamp": time.Now().UTC(),
		})
	})

	router.GET("/sample", rc.SampleHandler.GetSample)
	router.POST("/invoke", rc.SampleHandler.Invoke)
}

// SetupMiddleware configures global middleware
func SetupMiddleware(router *gin.Engine, logger *logrus.Logger, cfg *config.Config) {
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RequestSizeLimit(maxEventSize))
	router.Use(middleware.RateLimiter(logger, cfg.HTTP.RateLimit, cfg.HTTP.RateBurst))
	router.Use(middleware.StructuredLogger(logger))
	router.Use(middleware.ErrorHandler(logger))
}
