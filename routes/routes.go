package routes

import (
	"github.com/evnalsb-cloud/protein-tracker/controllers"
	"github.com/evnalsb-cloud/protein-tracker/middlewares"
	"github.com/evnalsb-cloud/protein-tracker/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Shared capabilities: the classifier initializes lazily on first
	// recognition request, the hub lives for the process lifetime.
	hub := services.NewRealtimeHub()
	foodSvc := services.NewFoodService(
		services.DefaultCuratedSet(),
		services.NewOpenFoodFactsService(),
		services.NewRekognitionClassifier(),
	)
	entrySvc := services.NewEntryService(hub)

	foodCtl := controllers.NewFoodController(foodSvc)
	entryCtl := controllers.NewEntryController(entrySvc)
	goalCtl := controllers.NewGoalController(entrySvc)
	realtimeCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected routes
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/food/search", foodCtl.Search)
		api.GET("/food/barcode/:code", foodCtl.Barcode)
		api.POST("/food/recognize", foodCtl.Recognize)

		api.POST("/entries", entryCtl.LogEntry)
		api.GET("/entries", entryCtl.ListEntries)
		api.DELETE("/entries/:id", entryCtl.DeleteEntry)

		api.PUT("/goal", goalCtl.UpsertGoal)
		api.GET("/goal/progress", goalCtl.GetProgress)

		api.GET("/ws/progress", realtimeCtl.ProgressWS)
	}

	return r
}
