package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"lms/access"
	"lms/config"
	adminController "lms/controllers/admin"
	authController "lms/controllers/auth"
	catalogController "lms/controllers/catalog"
	"lms/database"
	"lms/routers/adminRoutes"
	"lms/routers/authRoutes"
	"lms/routers/catalogRoutes"
	"lms/services"
	"lms/utils"
)

func main() {
	config.LoadConfig()

	db, err := database.Connect(config.AppConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	policy := access.Policy{PublicCode: config.AppConfig.PublicDepartmentCode}

	progressService := services.NewProgressService(db)
	catalogService := services.NewCatalogService(db, policy)
	quizService := services.NewQuizService(db, progressService)
	authService := services.NewAuthService(db, config.AppConfig.SaltRound)
	adminService := services.NewAdminService(db, config.AppConfig.SaltRound)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app, authController.New(authService))
	catalogRoutes.SetupCatalogRoutes(app, catalogController.New(catalogService, progressService, quizService))
	adminRoutes.SetupAdminRoutes(app, adminController.New(adminService))

	reportScheduler := utils.InitializeReportScheduler(db)
	defer reportScheduler.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
