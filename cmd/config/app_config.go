package config

import (
	"buddyfridge/internal/api/handlers"
	"buddyfridge/internal/api/routes"
	"buddyfridge/internal/middleware"
	"buddyfridge/internal/utils"
	"buddyfridge/pkg/batch"
	"buddyfridge/pkg/jwt"
	"buddyfridge/pkg/lookup"
	"buddyfridge/pkg/memory"
	"buddyfridge/pkg/reminder"
	"buddyfridge/pkg/shopping"
	"buddyfridge/pkg/user"
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

const reminderWorkerInterval = time.Minute

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	timezone := utils.GetConfig("TIMEZONE")
	if timezone == "" {
		timezone = "UTC"
	}
	location, err := time.LoadLocation(timezone)
	if err != nil {
		log.Fatalf("invalid timezone %q: %v", timezone, err)
	}

	// setting up logging and limiter
	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
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
		TimeZone:   timezone,
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	clock := utils.SystemClock()

	// Repository
	userRepository := user.NewUserRepository(db)
	batchRepository := batch.NewBatchRepository(db)
	shoppingRepository := shopping.NewShoppingRepository(db)
	frequentRepository := memory.NewFrequentRepository(db)
	reminderRepository := reminder.NewReminderRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	reminderService := reminder.NewReminderService(reminderRepository, clock, location)
	frequentService := memory.NewFrequentService(frequentRepository, clock)
	batchService := batch.NewBatchService(batchRepository, reminderService, frequentService, clock)
	shoppingService := shopping.NewShoppingService(shoppingRepository, batchService, clock)
	userService := user.NewUserService(userRepository, frequentRepository, jwtService, clock)
	lookupService := lookup.NewLookupService(utils.GetConfig("LOOKUP_BASE_URL"))

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	batchHandler := handlers.NewBatchHandler(batchService, validator)
	shoppingHandler := handlers.NewShoppingHandler(shoppingService, validator)
	memoryHandler := handlers.NewMemoryHandler(frequentService)
	settingsHandler := handlers.NewSettingsHandler(reminderService, validator)
	buddyHandler := handlers.NewBuddyHandler(batchService)
	lookupHandler := handlers.NewLookupHandler(lookupService)

	// background reminder dispatch
	worker := reminder.NewWorker(reminderRepository, reminder.NewMailDispatcher(), clock)
	go worker.Start(context.Background(), reminderWorkerInterval)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		BatchHandler:    batchHandler,
		ShoppingHandler: shoppingHandler,
		MemoryHandler:   memoryHandler,
		SettingsHandler: settingsHandler,
		BuddyHandler:    buddyHandler,
		LookupHandler:   lookupHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
