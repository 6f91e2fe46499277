package api

import (
	"time"

	"savium/docs"
	"savium/internal/api/handlers"
	"savium/internal/apperr"
	"savium/internal/models"
	"savium/pkg/auth"
	"savium/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

type RouterDeps struct {
	AuthHandler        *handlers.AuthHandler
	UserHandler        *handlers.UserHandler
	GoalHandler        *handlers.GoalHandler
	TransactionHandler *handlers.TransactionHandler
	DashboardHandler   *handlers.DashboardHandler
	JWTManager         *auth.JWTManager
	Users              middleware.UserLoader
	UploadDir          string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	Logger             *zap.Logger
}

func SetupRouter(deps RouterDeps) *fiber.App {
	appLogger := deps.Logger

	app := fiber.New(fiber.Config{
		ReadTimeout:  deps.ReadTimeout,
		WriteTimeout: deps.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if appErr, ok := apperr.From(err); ok {
				return c.Status(appErr.Status).JSON(appErr)
			}
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
			}
			appLogger.Error("Unhandled error", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal server error.",
			})
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	_ = docs.SwaggerInfo // import registers the swagger spec via init()
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Static("/uploads", deps.UploadDir)

	requireAuth := middleware.RequireAuth(deps.JWTManager, deps.Users, appLogger)
	requireAdmin := middleware.RequireAuth(deps.JWTManager, deps.Users, appLogger, models.RoleAdmin)

	api := app.Group("/api")

	authRoutes := api.Group("/auth")
	authRoutes.Post("/register", deps.AuthHandler.Register)
	authRoutes.Post("/login", deps.AuthHandler.Login)
	authRoutes.Get("/google", deps.AuthHandler.GoogleLogin)
	authRoutes.Post("/avatar", deps.AuthHandler.UploadAvatar)
	authRoutes.Get("/me", requireAuth, deps.AuthHandler.Me)

	goals := api.Group("/goals", requireAuth)
	goals.Get("", deps.GoalHandler.List)
	goals.Post("", deps.GoalHandler.Create)
	goals.Get("/:id", deps.GoalHandler.Get)
	goals.Put("/:id", deps.GoalHandler.Update)
	goals.Delete("/:id", deps.GoalHandler.Delete)
	goals.Post("/:id/transactions", deps.GoalHandler.AddSavings)

	transactions := api.Group("/transactions", requireAuth)
	transactions.Get("", deps.TransactionHandler.List)
	transactions.Post("", deps.TransactionHandler.Create)
	transactions.Get("/:id", deps.TransactionHandler.Get)
	transactions.Put("/:id", deps.TransactionHandler.Update)
	transactions.Delete("/:id", deps.TransactionHandler.Delete)

	api.Get("/dashboard", requireAuth, deps.DashboardHandler.Get)
	api.Get("/finances", requireAuth, deps.TransactionHandler.Finances)

	users := api.Group("/users")
	users.Get("", requireAdmin, deps.UserHandler.List)
	users.Get("/:id", requireAdmin, deps.UserHandler.Get)
	users.Put("/:id", requireAuth, deps.UserHandler.Update)
	users.Delete("/:id", requireAdmin, deps.UserHandler.Delete)

	return app
}
