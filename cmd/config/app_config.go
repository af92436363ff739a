package config

import (
	"Bakehouse-Backend/internal/api/handlers"
	"Bakehouse-Backend/internal/api/routes"
	"Bakehouse-Backend/internal/middleware"
	"Bakehouse-Backend/internal/utils"
	"Bakehouse-Backend/internal/utils/storage"
	"Bakehouse-Backend/pkg/audit"
	"Bakehouse-Backend/pkg/ingredient"
	"Bakehouse-Backend/pkg/issuance"
	"Bakehouse-Backend/pkg/jwt"
	"Bakehouse-Backend/pkg/product"
	"Bakehouse-Backend/pkg/production"
	"Bakehouse-Backend/pkg/staff"
	"Bakehouse-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "America/Sao_Paulo",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	staffRepository := staff.NewStaffRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)
	issuanceRepository := issuance.NewIssuanceRepository(db)
	productRepository := product.NewProductRepository(db)
	productionRepository := production.NewProductionRepository(db)
	auditRepository := audit.NewAuditRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, staffRepository, jwtService)
	staffService := staff.NewStaffService(staffRepository, s3)
	ingredientService := ingredient.NewIngredientService(ingredientRepository)
	issuanceService := issuance.NewIssuanceService(issuanceRepository, ingredientRepository)
	productService := product.NewProductService(productRepository)
	productionService := production.NewProductionService(
		productionRepository,
		issuanceRepository,
		productRepository,
		userRepository,
	)
	auditService := audit.NewAuditService(auditRepository, ingredientRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	staffHandler := handlers.NewStaffHandler(staffService, validator)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, validator)
	issuanceHandler := handlers.NewIssuanceHandler(issuanceService, validator)
	productHandler := handlers.NewProductHandler(productService, validator)
	productionHandler := handlers.NewProductionHandler(productionService, validator)
	auditHandler := handlers.NewAuditHandler(auditService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		StaffHandler:      staffHandler,
		IngredientHandler: ingredientHandler,
		IssuanceHandler:   issuanceHandler,
		ProductHandler:    productHandler,
		ProductionHandler: productionHandler,
		AuditHandler:      auditHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
