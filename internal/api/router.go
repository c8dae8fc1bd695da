package api

import (
	"github.com/dimensions-ai/brandbot-api/internal/api/handlers"
	apimiddleware "github.com/dimensions-ai/brandbot-api/internal/api/middleware"
	"github.com/dimensions-ai/brandbot-api/internal/config"
	"github.com/dimensions-ai/brandbot-api/internal/dna"
	"github.com/dimensions-ai/brandbot-api/internal/metrics"
	"github.com/dimensions-ai/brandbot-api/internal/services"
	"github.com/dimensions-ai/brandbot-api/internal/store"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires all endpoints onto a gin engine.
func SetupRouter(cfg *config.Config, st *store.Store, loader *dna.Loader,
	svc *services.GenerationService, cloudwatch *metrics.Client) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())
	router.Use(apimiddleware.SentryMiddleware())
	router.Use(apimiddleware.RequestTracking(cloudwatch))
	router.Use(apimiddleware.CORS())

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.HealthCheck)

	// Legacy business DNA endpoints
	businessHandler := handlers.NewBusinessHandler(loader)
	router.GET("/business", businessHandler.List)
	router.GET("/business/:business_id", businessHandler.Get)

	// Content generation
	generateHandler := handlers.NewGenerateHandler(svc)
	router.POST("/generate", generateHandler.Generate)

	// Admin endpoints
	admin := router.Group("/admin")
	{
		clientsHandler := handlers.NewClientsHandler(st)
		admin.GET("/clients", clientsHandler.List)
		admin.POST("/clients", clientsHandler.Create)
		admin.GET("/clients/:id", clientsHandler.Get)
		admin.PUT("/clients/:id", clientsHandler.Update)
		admin.DELETE("/clients/:id", clientsHandler.Delete)

		documentsHandler := handlers.NewDocumentsHandler(st)
		admin.POST("/clients/:id/document", documentsHandler.Upload)
		admin.GET("/clients/:id/document", documentsHandler.Get)

		rulesHandler := handlers.NewRulesHandler(st, svc)
		admin.GET("/content-rules", rulesHandler.Get)
		admin.PUT("/content-rules/global", rulesHandler.UpdateGlobal)
		admin.PUT("/content-rules/client/:id", rulesHandler.UpdateClient)
		admin.POST("/content-preview", rulesHandler.Preview)
	}

	return router
}
