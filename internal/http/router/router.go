package router

import (
	"github.com/gin-gonic/gin"

	"linguagraph.app/insight/internal/http/handler"
	"linguagraph.app/insight/internal/service"
)

func SetupRoutes(router *gin.Engine, services *service.Services) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		grammarHandler := handler.NewGrammarHandler(services.Graph())
		GrammarRouter(v1.Group("/grammar"), grammarHandler)

		coverageHandler := handler.NewCoverageHandler(services.Coverage())
		CoverageRouter(v1.Group("/coverage"), coverageHandler)

		contentHandler := handler.NewContentHandler(services.Content())
		ContentRouter(v1.Group("/content"), contentHandler)

		telemetryHandler := handler.NewTelemetryHandler(services.Telemetry())
		TelemetryRouter(v1, telemetryHandler)

		exerciseHandler := handler.NewExerciseHandler(services.Exercises())
		ExerciseRouter(v1.Group("/exercises"), exerciseHandler)

		schemaHandler := handler.NewSchemaHandler(services.Schema())
		SchemaRouter(v1, schemaHandler)
	}
}
