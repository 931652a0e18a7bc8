/**
* Name: 			router.go
* Description: 		Gin 라우터 구성
* Workflow: 		CORS, 요청 ID, 로깅, 요청 한도, 라우트 등록
 */
package handler

import (
	"net/http"

	"DocVerifier_BluestockProject/docs"
	"DocVerifier_BluestockProject/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterConfig struct {
	VerifyPath     string
	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int
	Gatherer       prometheus.Gatherer
}

// NewRouter 미들웨어와 전체 라우트 등록
func NewRouter(h *Handler, cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(h.log))

	config := cors.DefaultConfig()
	if len(cfg.CORSOrigins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = cfg.CORSOrigins
	}
	config.AllowHeaders = append(config.AllowHeaders, "Authorization", middleware.RequestIDHeader)
	router.Use(cors.New(config))

	limiter := middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst)

	router.GET(cfg.VerifyPath, limiter, h.VerifyFromLink)
	router.POST("/login", h.Login)
	router.GET("/ws/verify", limiter, h.HandleVerifySocket(cfg.RateLimitRPS, cfg.RateLimitBurst))

	api := router.Group("/api")
	{
		api.POST("/verify", limiter, h.VerifyDocument)
		api.GET("/share/:id", h.GetShareLink)
		api.GET("/share/:id/qr.png", h.GetShareQR)
	}

	protected := router.Group("/api").Use(middleware.AuthMiddleware(h.tokens))
	{
		protected.POST("/documents", h.AddDocument)
		protected.GET("/history", h.GetVerificationHistory)
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
