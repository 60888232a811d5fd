package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/thws/management/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	universityController *controllers.UniversityController,
	moduleController *controllers.ModuleController,
	adminController *controllers.AdminController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Partner university routes
	universities := v1.Group("/partner-universities")
	{
		universities.GET("", universityController.GetUniversities)
		universities.POST("", universityController.CreateUniversity)
		universities.GET("/:universityId", universityController.GetUniversity)
		universities.PUT("/:universityId", universityController.UpdateUniversity)
		universities.DELETE("/:universityId", universityController.DeleteUniversity)

		// Module routes nested under their owning university
		modules := universities.Group("/:universityId/modules")
		{
			modules.GET("", moduleController.GetModules)
			modules.POST("", moduleController.CreateModule)
			modules.GET("/:id", moduleController.GetModule)
			modules.PUT("/:id", moduleController.UpdateModule)
			modules.DELETE("/:id", moduleController.DeleteModule)
		}
	}

	// Maintenance routes
	v1.POST("/reset-database", adminController.ResetDatabase)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
