package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"roombook/config"
	"roombook/constants"
	"roombook/jobs"
	"roombook/routes"
	"roombook/services"
	"roombook/services/notification"
	"roombook/types"

	"github.com/prometheus/client_golang/prometheus"
)

// @title                      Room Book API
// @version                    1.0
// @description                Sổ cái đặt phòng khách sạn: phòng, hợp đồng thuê và thanh toán.
// @BasePath                   /api/v1
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	if err := run(context.Background()); err != nil {
		log.Printf("❌ %v", err)
		os.Exit(1)
	}
}

// run trả lỗi thay vì thoát để các defer (Sync log, dừng cron) luôn được gọi
func run(ctx context.Context) error {
	app, err := config.InitApp(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	defer app.Logger.Sync()

	landlord, err := services.InitHotel(app.DB, types.AccountID(app.Config.LandlordAccount))
	if err != nil {
		app.Logger.Error("❌ Failed to initialize hotel ledger: %v", err)
		return fmt.Errorf("failed to initialize hotel ledger: %w", err)
	}
	app.Logger.Info("Landlord: %s", landlord)

	notifier := notification.MultiService{notification.NewMelodyService(app.Melody)}
	var cache services.RoomCache
	if app.Redis != nil {
		notifier = append(notifier, notification.NewRedisService(app.Redis, constants.EventChannel))
		cache = services.NewRedisRoomCache(app.Redis, app.Config.RoomCacheTTL)
	}

	registry := prometheus.NewRegistry()
	service := services.NewRoomBookService(services.RoomBookServiceOptions{
		DB:       app.DB,
		Logger:   app.Logger,
		Landlord: landlord,
		Notifier: notifier,
		Cache:    cache,
		Metrics:  services.NewMetrics(registry),
	})

	auditor := services.NewLedgerAuditor(app.DB, app.Logger)
	if _, err := jobs.InitCronJobs(app.Cron, app.Config.AuditSchedule, auditor); err != nil {
		app.Logger.Error("❌ Failed to initialize cron jobs: %v", err)
		return fmt.Errorf("failed to initialize cron jobs: %w", err)
	}
	defer app.Cron.Stop()

	config.InitWebSocket(app.Router, app.Melody)
	routes.SetupRoutes(app.Router, service, app.Config.JWTSecret, registry)

	app.Logger.Info("Server starting on port %s...", app.Config.Port)
	if err := app.Router.Run(":" + app.Config.Port); err != nil {
		app.Logger.Error("❌ Failed to start server: %v", err)
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
