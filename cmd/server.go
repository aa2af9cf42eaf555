// server.go
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/talenta-pe/talenta/pkg/config"
	"github.com/talenta-pe/talenta/pkg/errx"
	"github.com/talenta-pe/talenta/pkg/logx"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		logx.Fatalf("Failed to load configuration: %v", err)
	}

	// 2. Initialize Logger with config
	switch cfg.Server.LogLevel {
	case "debug":
		logx.SetLevel(logx.LevelDebug)
	case "warn":
		logx.SetLevel(logx.LevelWarn)
	case "error":
		logx.SetLevel(logx.LevelError)
	default:
		logx.SetLevel(logx.LevelInfo)
	}

	logx.Info("🚀 Starting Talenta API Server...")
	logx.Infof("Environment: %s", cfg.Server.Environment)

	// 3. Initialize Dependency Container
	container := NewContainer(cfg)
	defer container.Cleanup()

	// 4. Create Fiber App with Config
	app := fiber.New(fiber.Config{
		AppName:               "Talenta API",
		DisableStartupMessage: true,
		ErrorHandler:          globalErrorHandler(cfg),
		BodyLimit:             10 * 1024 * 1024, // 10MB for resume uploads
		IdleTimeout:           120 * time.Second,
		EnablePrintRoutes:     false,
	})

	// 5. Global Middleware
	setupMiddleware(app, cfg)

	// 6. Health Check & Info Endpoints
	app.Get("/health", healthCheckHandler(container))
	app.Get("/", infoHandler(cfg))

	// 7. Register Routes
	registerRoutes(app, container)

	// 8. 404 Handler
	app.Use(notFoundHandler)

	// 9. Start Server with Graceful Shutdown
	startServer(app, cfg)
}

// ============================================================================
// Setup Functions
// ============================================================================

func setupMiddleware(app *fiber.App, cfg *config.Config) {
	// Panic recovery
	app.Use(recover.New(recover.Config{
		EnableStackTrace: cfg.IsDevelopment(),
	}))

	// Request ID
	app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return uuid.New().String()
		},
	}))

	// CORS
	corsOrigins := "*"
	if len(cfg.Server.CORSOrigins) > 0 {
		corsOrigins = ""
		for i, origin := range cfg.Server.CORSOrigins {
			if i > 0 {
				corsOrigins += ","
			}
			corsOrigins += origin
		}
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowMethods:     "GET, POST, PUT, DELETE, PATCH, HEAD, OPTIONS",
		AllowCredentials: true,
		ExposeHeaders:    "X-Request-ID",
	}))

	// Request logger
	logFormat := "${time} | ${status} | ${latency} | ${method} ${path}"
	if cfg.IsDevelopment() {
		logFormat += " | ${ip} | ${reqHeader:X-Request-ID}\n"
	} else {
		logFormat += "\n"
	}

	app.Use(logger.New(logger.Config{
		Format:     logFormat,
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Local",
	}))
}

func registerRoutes(app *fiber.App, container *Container) {
	logx.Info("📝 Registering routes...")

	api := app.Group("/api/v1")

	// Authentication: /api/v1/auth/*
	container.AuthHandlers.RegisterRoutes(api, container.AuthMiddleware)
	logx.Info("✓ Auth routes registered")

	// Recruiting pipeline: /api/v1/positions/*, /api/v1/candidates/*,
	// /api/v1/interviews/*, /api/v1/applications/:id/interviews
	container.PositionHandlers.RegisterRoutes(api, container.AuthMiddleware)
	container.CandidateHandlers.RegisterRoutes(api, container.AuthMiddleware)
	container.InterviewHandlers.RegisterRoutes(api, container.AuthMiddleware)
	logx.Info("✓ Recruiting routes registered")

	// Hiring: /api/v1/candidates/:id/hire-eligibility, /api/v1/candidates/:id/hire
	container.HiringHandlers.RegisterRoutes(api, container.AuthMiddleware)
	logx.Info("✓ Hiring routes registered")

	// Employees: /api/v1/employees/*
	container.EmployeeHandlers.RegisterRoutes(api, container.AuthMiddleware)
	logx.Info("✓ Employee routes registered")

	logx.Info("✅ All routes registered")
}

// ============================================================================
// Handler Functions
// ============================================================================

// healthCheckHandler returns a health check handler
func healthCheckHandler(container *Container) fiber.Handler {
	return func(c *fiber.Ctx) error {
		health := fiber.Map{
			"status":      "healthy",
			"service":     "talenta-api",
			"environment": container.Config.Server.Environment,
			"timestamp":   fmt.Sprintf("%d", c.Context().Time().Unix()),
		}

		// Check database
		if err := container.DB.Ping(); err != nil {
			health["db"] = "unhealthy"
			health["db_error"] = err.Error()
			health["status"] = "degraded"
		} else {
			health["db"] = "healthy"
		}

		// Check Redis
		if _, err := container.Redis.Ping(c.Context()).Result(); err != nil {
			health["redis"] = "unhealthy"
			health["redis_error"] = err.Error()
			health["status"] = "degraded"
		} else {
			health["redis"] = "healthy"
		}

		// Check storage (optional - can be slow on S3)
		checkStorage := c.QueryBool("check_storage", false)
		if checkStorage {
			if exists, err := container.FileSystem.Exists(c.Context(), ".health-check"); err != nil {
				health["storage"] = "unhealthy"
				health["storage_error"] = err.Error()
			} else {
				health["storage"] = "healthy"
				health["storage_accessible"] = exists
			}
		}

		status := fiber.StatusOK
		if health["status"] == "degraded" {
			status = fiber.StatusServiceUnavailable
		}

		return c.Status(status).JSON(health)
	}
}

// infoHandler returns basic API information
func infoHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service":     "Talenta API",
			"version":     "1.0.0",
			"description": "Recruitment pipeline and HR onboarding platform",
			"environment": cfg.Server.Environment,
			"features": []string{
				"Position management",
				"Candidate pipeline tracking",
				"Interview scheduling and feedback",
				"Hiring eligibility gate",
				"Employee onboarding",
				"Role-based access control (scopes)",
			},
			"endpoints": fiber.Map{
				"health": "/health",
				"api":    "/api/v1",
			},
		})
	}
}

// notFoundHandler handles 404 errors
func notFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error":      "Route not found",
		"code":       "NOT_FOUND",
		"path":       c.Path(),
		"method":     c.Method(),
		"message":    "The requested endpoint does not exist.",
		"request_id": c.Get("X-Request-ID"),
	})
}

// ============================================================================
// Error Handler
// ============================================================================

// globalErrorHandler converts internal errors to standard HTTP responses
func globalErrorHandler(cfg *config.Config) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		// Log the error with context
		logx.WithFields(logx.Fields{
			"path":       c.Path(),
			"method":     c.Method(),
			"ip":         c.IP(),
			"request_id": c.Get("X-Request-ID"),
			"user_agent": c.Get("User-Agent"),
		}).Errorf("Request error: %v", err)

		// If it's a Fiber error
		if e, ok := err.(*fiber.Error); ok {
			return c.Status(e.Code).JSON(fiber.Map{
				"error":      e.Message,
				"code":       "FIBER_ERROR",
				"status":     e.Code,
				"request_id": c.Get("X-Request-ID"),
			})
		}

		// If it's our custom errx.Error
		if e, ok := err.(*errx.Error); ok {
			response := fiber.Map{
				"error":      e.Message,
				"code":       e.Code,
				"type":       string(e.Type),
				"status":     e.HTTPStatus,
				"request_id": c.Get("X-Request-ID"),
			}

			// Include details if present
			if len(e.Details) > 0 {
				response["details"] = e.Details
			}

			// Include underlying error in debug mode
			if cfg.IsDevelopment() && e.Err != nil {
				response["underlying_error"] = e.Err.Error()
			}

			return c.Status(e.HTTPStatus).JSON(response)
		}

		// Default unknown error
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":      "Internal Server Error",
			"type":       "INTERNAL",
			"code":       "INTERNAL_ERROR",
			"message":    "An unexpected error occurred. Please contact support if the issue persists.",
			"request_id": c.Get("X-Request-ID"),
		})
	}
}

// ============================================================================
// Server Lifecycle
// ============================================================================

// startServer starts the server with graceful shutdown
func startServer(app *fiber.App, cfg *config.Config) {
	port := fmt.Sprintf("%d", cfg.Server.Port)

	go func() {
		logx.Infof("🚀 Server listening on port %s", port)
		logx.Infof("💚 Health Check: http://localhost:%s/health", port)
		logx.Infof("🔒 Environment: %s", cfg.Server.Environment)

		if err := app.Listen(":" + port); err != nil {
			logx.Fatalf("Server error: %v", err)
		}
	}()

	gracefulShutdown(app)
}

// gracefulShutdown handles graceful server shutdown
func gracefulShutdown(app *fiber.App) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	logx.Infof("🛑 Received signal: %v", sig)
	logx.Info("Shutting down gracefully...")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		logx.Errorf("Server forced to shutdown: %v", err)
	}

	logx.Info("✅ Server exited successfully")
}
