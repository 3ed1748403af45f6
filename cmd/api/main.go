package main

import (
	"context"
	"log"
	"os"

	_ "solosync/docs"
	"solosync/internal/adapter/events"
	"solosync/internal/adapter/http/handlers"
	"solosync/internal/adapter/http/routes"
	repository "solosync/internal/adapter/persistence/repository"
	"solosync/internal/infrastructure/database"
	"solosync/internal/infrastructure/extraction"
	"solosync/internal/infrastructure/messaging"
	"solosync/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           SoloSync API
// @version         1.0
// @description     Solo-operator dashboard backend: intake, projects, invoices, real-time sync events.

// @host localhost:8080

// @BasePath  /v1
func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx := context.Background()

	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		logger.Fatal("failed to create dynamodb client", zap.Error(err))
	}

	nc, err := messaging.ConnectNATS()
	if err != nil {
		logger.Fatal("failed to connect to NATS", zap.Error(err))
	}
	defer nc.Close()

	clientRepo := repository.NewClientDynamoRepository(ddb)
	projectRepo := repository.NewProjectDynamoRepository(ddb)
	invoiceRepo := repository.NewInvoiceDynamoRepository(ddb)
	commRepo := repository.NewCommunicationDynamoRepository(ddb)

	extractor := extraction.NewStaticExtractor(logger)
	publisher := events.NewSyncEventPublisher(nc)

	intakeUseCase := usecase.NewIntakeUseCase(commRepo, clientRepo, projectRepo, invoiceRepo, extractor, publisher, logger)
	projectUseCase := usecase.NewProjectUseCase(projectRepo)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, projectRepo, logger)
	dashboardUseCase := usecase.NewDashboardUseCase(clientRepo, commRepo, projectRepo, invoiceRepo)

	router := routes.NewRouter(routes.Handlers{
		Intake:    handlers.NewIntakeHandler(intakeUseCase),
		Project:   handlers.NewProjectHandler(projectUseCase),
		Invoice:   handlers.NewInvoiceHandler(invoiceUseCase),
		Dashboard: handlers.NewDashboardHandler(dashboardUseCase),
		Events:    handlers.NewEventsHandler(nc, publisher.Subject(), logger),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info("starting server", zap.String("port", port))
	if err := router.Run(":" + port); err != nil {
		logger.Fatal("failed to start the application", zap.Error(err))
	}
}
