package main

import (
	"fmt"
	"net/http"

	"github.com/shiftlens/shiftlens-backend-go/internal/config"
	appHTTP "github.com/shiftlens/shiftlens-backend-go/internal/handler/http"
	"github.com/shiftlens/shiftlens-backend-go/internal/pkg/drive"
	"github.com/shiftlens/shiftlens-backend-go/internal/pkg/session"
	"github.com/shiftlens/shiftlens-backend-go/internal/pkg/spreadsheet"
	adminConfigService "github.com/shiftlens/shiftlens-backend-go/internal/service/adminconfig"
	analyticsService "github.com/shiftlens/shiftlens-backend-go/internal/service/analytics"
	rosterService "github.com/shiftlens/shiftlens-backend-go/internal/service/roster"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	store := session.NewStore()
	reader := spreadsheet.NewReader()
	fetcher := drive.NewFetcher(cfg.MaxUploadBytes())
	normalizer := rosterService.NewNormalizer(cfg.GridLayout(), cfg.Roster.AnchorYear)

	rosterSvc := rosterService.NewRosterService(store, reader, fetcher, normalizer)
	analyticsSvc := analyticsService.NewAnalyticsService(store)
	adminConfigSvc := adminConfigService.NewAdminConfigService(store)

	rosterHandler := appHTTP.NewRosterHandler(rosterSvc, cfg.MaxUploadBytes())
	analyticsHandler := appHTTP.NewAnalyticsHandler(analyticsSvc)
	adminConfigHandler := appHTTP.NewAdminConfigHandler(adminConfigSvc)

	router := appHTTP.NewRouter(
		cfg,
		rosterHandler,
		analyticsHandler,
		adminConfigHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
