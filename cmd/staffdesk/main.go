package main

import (
	"fmt"
	"os"

	"github.com/nurpe/staffdesk/internal/auth"
	"github.com/nurpe/staffdesk/internal/config"
	"github.com/nurpe/staffdesk/internal/db"
	"github.com/nurpe/staffdesk/internal/excel"
	httphandler "github.com/nurpe/staffdesk/internal/http"
	"github.com/nurpe/staffdesk/internal/http/middleware"
	"github.com/nurpe/staffdesk/internal/logger"
	"github.com/nurpe/staffdesk/internal/pdf"
	"github.com/nurpe/staffdesk/internal/repository"
	"github.com/nurpe/staffdesk/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	snapshotRepo := repository.NewSnapshotRepository(database)
	staffingRepo := repository.NewStaffingRepository(database)
	factoryRepo := repository.NewFactoryRepository(database)
	taxonomyRepo := repository.NewTaxonomyRepository(database)

	excelGenerator := excel.NewGenerator()
	pdfGenerator := pdf.NewGenerator()

	insightsService := service.NewInsightsService(snapshotRepo, excelGenerator, pdfGenerator)
	staffingService := service.NewStaffingService(staffingRepo, factoryRepo, taxonomyRepo)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(insightsService, staffingService, log)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment, cfg.HTTP.AllowedOrigins)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting staffdesk service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
