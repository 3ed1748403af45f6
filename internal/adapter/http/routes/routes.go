package routes

import (
	"log"

	"solosync/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers bundles the constructed handlers the router mounts. Dependencies
// (store client, NATS connection, logger) are owned by the process entry
// point and injected there; nothing in this package holds shared state.
type Handlers struct {
	Intake    *handlers.IntakeHandler
	Project   *handlers.ProjectHandler
	Invoice   *handlers.InvoiceHandler
	Dashboard *handlers.DashboardHandler
	Events    *handlers.EventsHandler
}

// NewRouter builds the gin engine with middlewares, swagger, and all /v1
// routes mounted.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.Default()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addIntakeRoutes(v1, h.Intake, h.Events)
	addDashboardRoutes(v1, h.Project, h.Invoice, h.Dashboard)

	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
