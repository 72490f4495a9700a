package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/shiftsense/shiftsense-backend-go/internal/config"
	appHTTP "github.com/shiftsense/shiftsense-backend-go/internal/handler/http"
	"github.com/shiftsense/shiftsense-backend-go/internal/pkg/sse"
	"github.com/shiftsense/shiftsense-backend-go/internal/pkg/webhook"
	fileRepo "github.com/shiftsense/shiftsense-backend-go/internal/repository/file"
	"github.com/shiftsense/shiftsense-backend-go/internal/repository/memory"
	analysisService "github.com/shiftsense/shiftsense-backend-go/internal/service/analysis"
	batchService "github.com/shiftsense/shiftsense-backend-go/internal/service/batch"
	dashboardService "github.com/shiftsense/shiftsense-backend-go/internal/service/dashboard"
	predictionService "github.com/shiftsense/shiftsense-backend-go/internal/service/prediction"
	settingsService "github.com/shiftsense/shiftsense-backend-go/internal/service/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	predictionStore := memory.NewPredictionStore(cfg.Seed.SyntheticCount)
	settingsStore, err := fileRepo.NewSettingsStore(cfg.Settings.Path)
	if err != nil {
		log.Fatal("Failed to initialize settings store: ", err)
	}

	hub := sse.NewHub()
	webhookClient := webhook.NewClient(cfg.Webhook.Timeout)

	settingsSvc := settingsService.NewSettingsService(settingsStore, cfg.Webhook.DefaultURL)
	predictionSvc := predictionService.NewPredictionService(predictionStore)
	analysisSvc := analysisService.NewAnalysisService(predictionStore, settingsSvc, webhookClient)
	dashboardSvc := dashboardService.NewDashboardService(
		predictionStore,
		cfg.Dashboard.TotalEmployees,
		cfg.Dashboard.AvgTeamAdherence,
	)
	batchSvc := batchService.NewBatchService(predictionStore, hub, cfg.Batch.RowDelay)

	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	predictionHandler := appHTTP.NewPredictionHandler(predictionSvc)
	analysisHandler := appHTTP.NewAnalysisHandler(analysisSvc)
	batchHandler := appHTTP.NewBatchHandler(batchSvc, hub)
	settingsHandler := appHTTP.NewSettingsHandler(settingsSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:            cfg.App.Env,
			AllowedOrigins: cfg.App.AllowedOrigins,
		},
		dashboardHandler,
		predictionHandler,
		analysisHandler,
		batchHandler,
		settingsHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
