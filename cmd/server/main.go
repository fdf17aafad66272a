package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "edutech/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"edutech/internal/cache"
	"edutech/internal/config"
	"edutech/internal/db"
	"edutech/internal/handler"
	"edutech/internal/repository"
	"edutech/internal/router"
	"edutech/internal/seed"
	"edutech/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title CodeEduHub API
// @version 1.0
// @description Course catalog, blog, research and student project showcase with a contact form.
// @host localhost:5000
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()
	ctx := context.Background()

	repos, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatalf("store init: %v", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Printf("close store: %v", err)
		}
	}()

	res, err := seed.Load(ctx, repos)
	if err != nil {
		log.Fatalf("seed: %v", err)
	}
	log.Printf("Seed data loaded (%s store): %d created, %d already present", cfg.StoreDriver, res.Created, res.Skipped)

	cacheClient := cache.New(cfg)
	if closer, ok := cacheClient.(io.Closer); ok {
		defer closer.Close()
	}

	// Initialize services
	services := service.New(repos, cacheClient, cfg.CacheTTL)

	if cfg.AdminUsername != "" {
		if _, created, err := services.Users.EnsureUser(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			log.Printf("Warning: admin user %q not created: %v", cfg.AdminUsername, err)
		} else if created {
			log.Printf("Admin user %q created", cfg.AdminUsername)
		}
	}

	e := echo.New()
	e.HideBanner = true

	// Register routes
	router.Register(
		e,
		cfg,
		handler.NewCourseHandler(services.Courses),
		handler.NewBlogHandler(services.Blog),
		handler.NewResearchHandler(services.Research),
		handler.NewProjectHandler(services.Projects),
		handler.NewContactHandler(services.Contacts),
	)

	log.Printf("Swagger documentation available at: %s", swaggerURL(cfg))

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case <-sigCtx.Done():
		log.Printf("Received shutdown signal, initiating graceful shutdown...")
	case err := <-serverErr:
		log.Fatalf("server start: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	log.Printf("Graceful shutdown completed")
}

// openStore builds the repositories selected by STORE_DRIVER. SQL stores are
// migrated first, dropping their tables when RESET_DB is set.
func openStore(cfg *config.Config) (*repository.Repositories, func() error, error) {
	if cfg.StoreDriver == config.StoreMemory {
		return repository.NewMemory(), func() error { return nil }, nil
	}

	gormDB, err := db.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	if cfg.ResetDB {
		log.Println("RESET_DB=true detected, dropping all tables...")
	}
	if err := db.Migrate(gormDB, cfg.ResetDB); err != nil {
		return nil, nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, err
	}
	return repository.NewGorm(gormDB), sqlDB.Close, nil
}

// swaggerURL builds the UI address from SWAGGER_HOST, which may carry a scheme.
func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return strings.TrimSuffix(host, "/") + "/swagger/index.html"
}
