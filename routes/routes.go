package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/crisvieira/satisfaction-server/config"
	"github.com/crisvieira/satisfaction-server/controllers"
	"github.com/crisvieira/satisfaction-server/middleware"
	"github.com/crisvieira/satisfaction-server/store"
)

// SetupRoutes wires every endpoint against the given store.
func SetupRoutes(r *gin.Engine, s store.ResponseStore) {
	responseCtl := controllers.NewResponseController(s, config.DefaultCatalog())
	adminCtl := controllers.NewAdminController(s)
	exportCtl := controllers.NewExportController(s, "")
	healthCtl := controllers.NewHealthController(s)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", healthCtl.HealthCheck)

	api := r.Group("/api")
	{
		api.GET("/branches", controllers.GetBranches)
		api.GET("/contexts", controllers.GetContexts)

		responses := api.Group("/responses")
		{
			responses.POST("", middleware.RateLimitSubmit(), responseCtl.Submit)
			responses.GET("", responseCtl.List)
			responses.GET("/stats", responseCtl.Stats)
			responses.GET("/export", responseCtl.Export)
			responses.GET("/:id", responseCtl.GetByID)
		}

		admin := api.Group("/admin")
		{
			admin.POST("/login", adminCtl.Login)

			protected := admin.Group("/")
			protected.Use(middleware.AuthAdmin())
			{
				protected.GET("/dashboard", adminCtl.Dashboard)
				protected.POST("/export", exportCtl.Create)
				protected.GET("/exports/:job_id", exportCtl.Get)
			}
		}
	}
}
