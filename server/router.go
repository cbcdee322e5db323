package server

import (
	"time"

	httpHandler "content-pipeline/interfaces/http"
	"content-pipeline/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitiateRouter(
	pipelineHandler httpHandler.IPipelineHandler,
	healthHandler httpHandler.IHealthHandler,
	secretKey string,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	router.GET("/healthz", healthHandler.Healthz)

	api := router.Group("api")
	api.Use(middleware.Auth(secretKey))

	accounts := api.Group("/accounts")
	{
		accounts.POST("", pipelineHandler.CreateAccount)
		accounts.GET("", pipelineHandler.ListAccounts)
		accounts.GET("/:id", pipelineHandler.GetAccount)
		accounts.PATCH("/:id/status", pipelineHandler.UpdateAccountStatus)
		accounts.GET("/:id/videos", pipelineHandler.ListAccountVideos)
	}

	trends := api.Group("/trends")
	{
		trends.POST("", pipelineHandler.CreateTrend)
		trends.GET("/top", pipelineHandler.TopTrends)
	}

	videos := api.Group("/videos")
	{
		videos.POST("", pipelineHandler.CreateVideo)
		videos.GET("/:id", pipelineHandler.GetVideo)
		videos.PATCH("/:id/status", pipelineHandler.UpdateVideoStatus)
		videos.POST("/:id/uploaded", pipelineHandler.MarkVideoUploaded)

		// Analytics snapshots
		videos.POST("/:id/analytics", pipelineHandler.RecordAnalytics)
		videos.GET("/:id/analytics", pipelineHandler.ListAnalytics)
		videos.GET("/:id/analytics/summary", pipelineHandler.AnalyticsSummary)
	}

	sounds := api.Group("/sounds")
	{
		sounds.POST("", pipelineHandler.CreateSound)
		sounds.GET("", pipelineHandler.ListSounds)
		sounds.POST("/:soundId/use", pipelineHandler.UseSound)
	}

	return router
}
