package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	apimod "github.com/example/task-manager/modules/api"
	taskmod "github.com/example/task-manager/modules/task"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

// Config holds process configuration, built once at startup and passed
// into module constructors.
type Config struct {
	DatabaseURL     string
	HTTPPort        int
	ShutdownTimeout time.Duration
}

// loadConfig builds the configuration from the environment.
func loadConfig() Config {
	return Config{
		DatabaseURL:     getEnv("DATABASE_URL", "./tasks.db"),
		HTTPPort:        getEnvInt("HTTP_PORT", 8000),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
	}
}

func main() {
	cfg := loadConfig()

	log.Println("=== Task Manager API ===")
	log.Printf("Database: %s", cfg.DatabaseURL)
	log.Printf("HTTP Port: %d", cfg.HTTPPort)

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(cfg.ShutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Register modules with the framework
	// Order: independent modules first, then dependent modules
	app.Register(taskmod.NewModule(cfg.DatabaseURL)) // provides task services
	app.Register(apimod.NewModule(cfg.HTTPPort))     // depends on task module

	// Start application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo(cfg)

	// Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo(cfg Config) {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Printf("REST API Endpoints (http://localhost:%d):", cfg.HTTPPort)
	log.Println("")
	log.Println("  GET    /                - Service info")
	log.Println("  GET    /health          - Health check")
	log.Println("  GET    /tasks           - List tasks (skip/limit query params)")
	log.Println("  GET    /tasks/:id       - Get task by ID")
	log.Println("  POST   /tasks           - Create a task")
	log.Println("  PUT    /tasks/:id       - Partially update a task")
	log.Println("  DELETE /tasks/:id       - Delete a task")
	log.Println("")
	log.Println("Task services are also available via NATS request-reply:")
	log.Println("  nats request services.task.create '{\"title\":\"Buy milk\"}'")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}

// getEnv returns environment variable value or default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns environment variable as int or default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Printf("Warning: invalid int value for %s: %s, using default: %d", key, value, defaultValue)
	}
	return defaultValue
}

// getEnvDuration returns environment variable as duration or default.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		log.Printf("Warning: invalid duration value for %s: %s, using default: %s", key, value, defaultValue)
	}
	return defaultValue
}
