package FiberConfig

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"TaskBoard/Config"
	"TaskBoard/Controllers"
	"TaskBoard/Models"
	"TaskBoard/Views"
	"TaskBoard/middleware"
)

// SetupRoutes registers the API and page routes.
func SetupRoutes(app *fiber.App, store Models.SnapshotStore, cfg Config.Config) {
	// Initialize handlers
	datasetController := Controllers.NewDatasetController(store)
	dashboardController := Controllers.NewDashboardController(store)
	taskController := Controllers.NewTaskController(store, cfg.DefaultPageSize)
	requestLogController := Controllers.NewRequestLogController(cfg.RequestLogPath)

	app.Get("/api/health", Controllers.Health)
	app.Get("/api/logs/stats", requestLogController.Stats)

	sessions := middleware.Session(middleware.SessionConfig{
		Secret: []byte(cfg.SessionSecret),
		TTL:    cfg.SessionTTL,
		Secure: cfg.SessionSecure,
	})

	// API group
	api := app.Group("/api", sessions)
	api.Post("/upload", datasetController.Upload)
	api.Get("/dataset", datasetController.Dataset)
	api.Delete("/dataset", datasetController.Clear)
	api.Get("/dashboard", dashboardController.Dashboard)

	// Export must be registered before the index route to avoid conflicts
	tasks := api.Group("/tasks")
	tasks.Get("/", taskController.List)
	tasks.Get("/export", taskController.Export)
	tasks.Get("/:index", taskController.Detail)

	app.Get("/tasks/print", sessions, taskController.Print)
}

// New builds the application with its middleware and routes.
func New(cfg Config.Config, store Models.SnapshotStore) *fiber.App {
	app := fiber.New(fiber.Config{
		Views:     Views.Engine(),
		BodyLimit: cfg.BodyLimit(),
	})
	app.Use(recover.New())
	app.Use(middleware.RequestLogger(cfg.RequestLogPath, cfg.LogToFile, cfg.LogFormat))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression, // 2
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*", // Allow all origins
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		MaxAge:       300, // Max age for preflight requests caching (5 minutes)
	}))

	SetupRoutes(app, store, cfg)
	return app
}

// FiberConfig starts the server and blocks until it stops.
func FiberConfig(cfg Config.Config, store Models.SnapshotStore) error {
	fmt.Println("Server Up...")
	app := New(cfg, store)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Printf("Server stopped: %v\n", err)
		return err
	}
	return nil
}
