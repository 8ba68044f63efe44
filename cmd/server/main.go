package main

import (
	"fmt"
	"log"

	"sarabun/internal/config"
	"sarabun/internal/handler"
	"sarabun/internal/repository/postgres"
	"sarabun/internal/router"
	"sarabun/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	sequenceRepo := postgres.NewSequenceRepo(db, cfg.Registry.LockTimeout)
	projectRepo := postgres.NewProjectRepo(db)
	revisionRepo := postgres.NewRevisionRepo(db, cfg.Registry.LockTimeout)
	userRepo := postgres.NewUserRepo(db)
	reportRepo := postgres.NewReportRepo(db)

	// Initialize services
	allocatorSvc := service.NewAllocatorService(sequenceRepo)
	revisionSvc := service.NewRevisionService(revisionRepo, projectRepo, cfg.Registry)
	projectSvc := service.NewProjectService(projectRepo, revisionRepo, allocatorSvc, cfg.Registry)
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	userSvc := service.NewUserService(userRepo)
	reportSvc := service.NewReportService(reportRepo)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	projectH := handler.NewProjectHandler(projectSvc, revisionSvc)
	numberH := handler.NewNumberHandler(allocatorSvc)
	reportH := handler.NewReportHandler(reportSvc)
	userH := handler.NewUserHandler(userSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, authSvc, authH, projectH, numberH, reportH, userH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
