package routes

import (
	"Bakehouse-Backend/domain"
	"Bakehouse-Backend/internal/api/handlers"
	"Bakehouse-Backend/internal/middleware"
	"Bakehouse-Backend/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	StaffHandler      handlers.StaffHandler
	IngredientHandler handlers.IngredientHandler
	IssuanceHandler   handlers.IssuanceHandler
	ProductHandler    handlers.ProductHandler
	ProductionHandler handlers.ProductionHandler
	AuditHandler      handlers.AuditHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Staff()
	c.Ingredients()
	c.Issuances()
	c.Catalog()
	c.Production()
	c.Audit()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Post("/register",
			c.Middleware.AuthMiddleware(c.JWTService),
			c.Middleware.RoleMiddleware(domain.RoleAdmin),
			c.UserHandler.Register,
		)
		user.Get("",
			c.Middleware.AuthMiddleware(c.JWTService),
			c.Middleware.RoleMiddleware(domain.RoleAdmin),
			c.UserHandler.GetUsers,
		)
		user.Delete("/:id",
			c.Middleware.AuthMiddleware(c.JWTService),
			c.Middleware.RoleMiddleware(domain.RoleAdmin),
			c.UserHandler.DeleteUser,
		)
	}
}

func (c *Config) Staff() {
	staff := c.App.Group("/api/v1/staff",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.RoleMiddleware(domain.RoleHR),
	)

	staff.Post("", c.StaffHandler.CreateStaff)
	staff.Get("", c.StaffHandler.GetStaff)
	staff.Get("/:id", c.StaffHandler.GetStaffDetails)
	staff.Put("/:id", c.StaffHandler.UpdateStaff)
	staff.Delete("/:id", c.StaffHandler.DeleteStaff)
	staff.Post("/:id/photo", c.StaffHandler.UploadStaffPhoto)
}

func (c *Config) Ingredients() {
	ingredients := c.App.Group("/api/v1/ingredients",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.RoleMiddleware(domain.RoleInventory),
	)

	ingredients.Post("", c.IngredientHandler.CreateIngredient)
	ingredients.Get("", c.IngredientHandler.GetIngredients)
	ingredients.Get("/:id", c.IngredientHandler.GetIngredientDetails)
	ingredients.Put("/:id", c.IngredientHandler.UpdateIngredient)
	ingredients.Delete("/:id", c.IngredientHandler.DeleteIngredient)
	ingredients.Post("/:id/adjust", c.IngredientHandler.AdjustStock)
	ingredients.Get("/:id/movements", c.IngredientHandler.GetStockMovements)
}

func (c *Config) Issuances() {
	issuances := c.App.Group("/api/v1/issuances",
		c.Middleware.AuthMiddleware(c.JWTService),
	)

	// pastry reads the open remainders when composing a sheet; everything
	// else on issuances belongs to inventory
	issuances.Get("/available",
		c.Middleware.RoleMiddleware(domain.RoleInventory, domain.RolePastry),
		c.IssuanceHandler.GetAvailableIssuances,
	)

	issuances.Post("", c.Middleware.RoleMiddleware(domain.RoleInventory), c.IssuanceHandler.CreateIssuance)
	issuances.Get("", c.Middleware.RoleMiddleware(domain.RoleInventory), c.IssuanceHandler.GetIssuances)
	issuances.Delete("/:id", c.Middleware.RoleMiddleware(domain.RoleInventory), c.IssuanceHandler.DeleteIssuance)
}

func (c *Config) Catalog() {
	catalog := c.App.Group("/api/v1/catalog",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.RoleMiddleware(domain.RoleAdmin),
	)

	catalog.Post("", c.ProductHandler.CreateCatalogEntry)
	catalog.Get("", c.ProductHandler.GetCatalogEntries)
	catalog.Put("/:id", c.ProductHandler.UpdateCatalogEntry)
	catalog.Delete("/:id", c.ProductHandler.DeleteCatalogEntry)

	products := c.App.Group("/api/v1/products",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.RoleMiddleware(domain.RolePastry),
	)

	products.Post("", c.ProductHandler.CreateProduct)
	products.Get("", c.ProductHandler.GetProducts)
	products.Get("/:id", c.ProductHandler.GetProductDetails)
	products.Put("/:id", c.ProductHandler.UpdateProduct)
	products.Delete("/:id", c.ProductHandler.DeleteProduct)
}

func (c *Config) Production() {
	sheets := c.App.Group("/api/v1/production-sheets",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.RoleMiddleware(domain.RolePastry),
	)

	sheets.Post("", c.ProductionHandler.CreateSheet)
	sheets.Get("", c.ProductionHandler.GetSheets)
	sheets.Get("/:id", c.ProductionHandler.GetSheetDetails)

	// removing a signed sheet is an administrative action
	sheets.Delete("/:id", c.Middleware.RoleMiddleware(), c.ProductionHandler.DeleteSheet)
}

func (c *Config) Audit() {
	audit := c.App.Group("/api/v1/audit",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.RoleMiddleware(domain.RoleInventory),
	)

	audit.Get("/report", c.AuditHandler.GetVarianceReport)
	audit.Post("/checklists", c.AuditHandler.RecordAudit)
	audit.Get("/checklists", c.AuditHandler.GetChecklistDates)
	audit.Get("/checklists/:date", c.AuditHandler.GetChecklist)
	audit.Get("/checklists/:date/export", c.AuditHandler.ExportChecklist)
	audit.Delete("/checklists/:date", c.AuditHandler.DeleteChecklist)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
