package main

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/kyamane/remote-work-api/internal/config"
	"github.com/kyamane/remote-work-api/internal/database"
	"github.com/kyamane/remote-work-api/internal/handlers"
	"github.com/kyamane/remote-work-api/internal/logging"
	"github.com/kyamane/remote-work-api/internal/middleware"
	"github.com/kyamane/remote-work-api/internal/repository"
	"github.com/kyamane/remote-work-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log := logging.New(cfg.LogLevel)

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()

	// Connect the persistent store
	var repos repository.Set
	switch cfg.StoreBackend {
	case "mongo":
		store, err := repository.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to MongoDB")
		}
		defer store.Close(ctx)
		repos = store.Repositories()
		log.Info().Str("uri", cfg.MongoURI).Str("db", cfg.MongoDB).Msg("connected to MongoDB")
	default:
		db, err := database.Connect(cfg)
		if err != nil {
			log.Fatal().Err(err).Str("backend", cfg.StoreBackend).Msg("failed to connect to database")
		}
		if err := database.Migrate(db); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
		repos = repository.Set{
			Employees: repository.NewGormEmployeeRepository(db),
			Projects:  repository.NewGormProjectRepository(db),
			Tasks:     repository.NewGormTaskRepository(db),
		}
		log.Info().Str("backend", cfg.StoreBackend).Msg("connected to SQL store")
	}

	// Build the application core and warm the indexes from a full store scan
	workspace := services.NewWorkspaceService(repos, cfg.HistoryCap, log)
	if err := workspace.Warmup(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to warm indexes from store")
	}

	// Initialize handlers
	employeeHandler := handlers.NewEmployeeHandler(workspace)
	projectHandler := handlers.NewProjectHandler(workspace)
	taskHandler := handlers.NewTaskHandler(workspace)
	systemHandler := handlers.NewSystemHandler(workspace)

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "ok",
			"divergent": workspace.Divergent(),
		})
	})

	// API routes
	api := r.Group("/api")
	{
		employees := api.Group("/employees")
		{
			employees.POST("", employeeHandler.AddEmployee)
			employees.GET("", employeeHandler.ListEmployees)
			employees.GET("/search", employeeHandler.SearchEmployees)
		}

		projects := api.Group("/projects")
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("", projectHandler.ListProjects)
		}

		tasks := api.Group("/tasks")
		{
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("/:id/assign", taskHandler.AssignTask)
			tasks.POST("/:id/complete", taskHandler.CompleteTask)
		}

		api.GET("/history", systemHandler.ShowHistory)
		api.POST("/admin/resync", systemHandler.Resync)
	}

	// Start server
	log.Info().Str("addr", cfg.HTTPAddr).Msg("server starting")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
