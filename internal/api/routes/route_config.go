package routes

import (
	"buddyfridge/internal/api/handlers"
	"buddyfridge/internal/middleware"
	"buddyfridge/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	BatchHandler    handlers.BatchHandler
	ShoppingHandler handlers.ShoppingHandler
	MemoryHandler   handlers.MemoryHandler
	SettingsHandler handlers.SettingsHandler
	BuddyHandler    handlers.BuddyHandler
	LookupHandler   handlers.LookupHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Batches()
	c.Shopping()
	c.Memories()
	c.Settings()
	c.Buddy()
	c.Lookup()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Batches() {
	batches := c.App.Group("/api/v1/batches", c.Middleware.AuthMiddleware(c.JWTService))

	// Basic CRUD operations
	batches.Post("", c.BatchHandler.CreateBatch)
	batches.Get("", c.BatchHandler.GetBatches)
	batches.Get("/:id", c.BatchHandler.GetBatchDetails)
	batches.Patch("/:id", c.BatchHandler.UpdateBatch)
	batches.Delete("/:id", c.BatchHandler.DeleteBatch)

	// Consumption and the open flow
	batches.Post("/:id/consume", c.BatchHandler.ConsumeOne)
	batches.Post("/:id/consume-partial", c.BatchHandler.ConsumePartial)
	batches.Post("/:id/open", c.BatchHandler.RequestOpen)
	batches.Post("/:id/open/confirm", c.BatchHandler.ConfirmOpen)
}

func (c *Config) Shopping() {
	shopping := c.App.Group("/api/v1/shopping", c.Middleware.AuthMiddleware(c.JWTService))

	shopping.Post("", c.ShoppingHandler.AddEntry)
	shopping.Get("", c.ShoppingHandler.GetEntries)
	shopping.Post("/:id/toggle", c.ShoppingHandler.ToggleEntry)
	shopping.Delete("/:id", c.ShoppingHandler.DeleteEntry)
	shopping.Post("/:id/move-to-inventory", c.ShoppingHandler.MoveToInventory)
}

func (c *Config) Memories() {
	memory := c.App.Group("/api/v1/memory", c.Middleware.AuthMiddleware(c.JWTService))

	memory.Get("", c.MemoryHandler.GetMemories)
	memory.Get("/suggest", c.MemoryHandler.Suggest)
	memory.Delete("/:name", c.MemoryHandler.ForgetMemory)
}

func (c *Config) Settings() {
	settings := c.App.Group("/api/v1/settings", c.Middleware.AuthMiddleware(c.JWTService))

	settings.Get("/notifications", c.SettingsHandler.GetPreferences)
	settings.Patch("/notifications", c.SettingsHandler.UpdatePreferences)
}

func (c *Config) Buddy() {
	c.App.Get("/api/v1/buddy", c.Middleware.AuthMiddleware(c.JWTService), c.BuddyHandler.GetBuddy)
}

func (c *Config) Lookup() {
	lookup := c.App.Group("/api/v1/lookup", c.Middleware.AuthMiddleware(c.JWTService))

	lookup.Get("", c.LookupHandler.SearchProducts)
	lookup.Get("/barcode/:barcode", c.LookupHandler.FetchByBarcode)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
