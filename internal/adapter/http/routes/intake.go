package routes

import (
	"solosync/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathIntake = "/intake"
	PathEvents = "/events"
)

func addIntakeRoutes(rg *gin.RouterGroup, intakeHandler *handlers.IntakeHandler, eventsHandler *handlers.EventsHandler) {
	rg.POST(PathIntake, intakeHandler.Sync)

	// SSE stream of sync-complete broadcasts.
	rg.GET(PathEvents, eventsHandler.Stream)
}
