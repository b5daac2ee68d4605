package main

import (
	"log"
	"os"

	"creditapp-backend/config"
	"creditapp-backend/controllers"
	"creditapp-backend/models"
	"creditapp-backend/repository"
	"creditapp-backend/routes"
	"creditapp-backend/services"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	db, err := config.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Credit{},
	); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	customerRepo := repository.NewCustomerRepository(db)
	creditRepo := repository.NewCreditRepository(db)

	customerService := services.NewCustomerService(customerRepo, logger)
	creditService := services.NewCreditService(creditRepo, customerService, logger)

	r := routes.SetupRouter(cfg, logger, routes.Controllers{
		Auth:     controllers.NewAuthController(customerService, cfg),
		Customer: controllers.NewCustomerController(customerService),
		Credit:   controllers.NewCreditController(creditService),
	})

	logger.Infof("Listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("Server stopped: %v", err)
	}
}
