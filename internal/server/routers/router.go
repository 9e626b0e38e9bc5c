package routers

import (
	"github.com/gin-gonic/gin"

	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/server/handlers/batch"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/server/handlers/reports"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/server/handlers/trends"
	"github.com/mahirr476/Paragon-procurement-App-sub000/internal/server/middlewares"
)

// SetupRoutes 配置所有路由，使用 Route Group 分类
func SetupRoutes(
	batchHandler *batch.BatchHandler,
	trendHandler *trends.TrendHandler,
	reportHandler *reports.ReportHandler,
) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.CORS())
	r.Use(middlewares.Logger())
	r.Use(middlewares.ErrorHandler())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "po-analysis",
			"message": "Service is running",
		})
	})

	v1 := r.Group("/api/v1")
	{
		batches := v1.Group("/batches")
		{
			batches.POST("", batchHandler.Create)
			batches.GET("/:id", batchHandler.Get)
		}

		trendGroup := v1.Group("/trends")
		{
			trendGroup.GET("/periods", trendHandler.Periods)
			trendGroup.GET("/suppliers", trendHandler.Suppliers)
			trendGroup.GET("/anomalies", trendHandler.Anomalies)
		}

		reportGroup := v1.Group("/reports")
		{
			reportGroup.GET("/spend/categories", reportHandler.SpendByCategory)
			reportGroup.GET("/spend/suppliers", reportHandler.SpendBySupplier)
			reportGroup.GET("/spend/trend", reportHandler.SpendTrend)
			reportGroup.GET("/performance", reportHandler.Performance)
			reportGroup.GET("/volume", reportHandler.Volume)
			reportGroup.GET("/concentration", reportHandler.Concentration)
			reportGroup.GET("/average-value", reportHandler.AverageValue)
		}
	}

	return r
}
