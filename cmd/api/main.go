package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/MrJamesThe3rd/conectando/internal/admin"
	"github.com/MrJamesThe3rd/conectando/internal/calendar"
	"github.com/MrJamesThe3rd/conectando/internal/config"
	"github.com/MrJamesThe3rd/conectando/internal/database"
	"github.com/MrJamesThe3rd/conectando/internal/donor"
	donorStore "github.com/MrJamesThe3rd/conectando/internal/donor/store"
	"github.com/MrJamesThe3rd/conectando/internal/funding"
	conectandoHttp "github.com/MrJamesThe3rd/conectando/internal/http"
	donationHandler "github.com/MrJamesThe3rd/conectando/internal/http/donation"
	donorHandler "github.com/MrJamesThe3rd/conectando/internal/http/donor"
	locationHandler "github.com/MrJamesThe3rd/conectando/internal/http/location"
	managerHandler "github.com/MrJamesThe3rd/conectando/internal/http/manager"
	projectHandler "github.com/MrJamesThe3rd/conectando/internal/http/project"
	"github.com/MrJamesThe3rd/conectando/internal/importer"
	ledgerStore "github.com/MrJamesThe3rd/conectando/internal/ledger/store"
	"github.com/MrJamesThe3rd/conectando/internal/location"
	locationStore "github.com/MrJamesThe3rd/conectando/internal/location/store"
	"github.com/MrJamesThe3rd/conectando/internal/lock"
	"github.com/MrJamesThe3rd/conectando/internal/logging"
	"github.com/MrJamesThe3rd/conectando/internal/manager"
	"github.com/MrJamesThe3rd/conectando/internal/project"
	projectStore "github.com/MrJamesThe3rd/conectando/internal/project/store"
	"github.com/MrJamesThe3rd/conectando/internal/report"
	"github.com/MrJamesThe3rd/conectando/internal/seed"
)

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Setup(os.Stdout, cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.New(cfg.ConnectionString(), database.Pool{
		MaxOpen:     cfg.DB.MaxOpenConns,
		MaxIdle:     cfg.DB.MaxIdleConns,
		MaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	administrator := admin.User{Name: cfg.Admin.Name, Mail: cfg.Admin.Mail}
	ledgerRepo := ledgerStore.New(db)

	var (
		locationService = location.NewService(locationStore.New(db))
		projectService  = project.NewService(projectStore.New(db))
		donorService    = donor.NewService(donorStore.New(db))
		adminService    = admin.NewService(ledgerRepo, administrator)
		fundingService  = funding.NewService(ledgerRepo)
		managerService  = manager.NewService(ledgerRepo, projectService, donorService, locationService)
		reportService   = report.NewService(managerService)
		importService   = importer.NewService()
	)

	if cfg.Seed.Enabled {
		seed.New(locationService, donorService, adminService, fundingService).Run(ctx, calendar.Today())
	}

	var scheduler *manager.Scheduler

	if cfg.Sweep.Enabled {
		var locker manager.Locker

		if cfg.Redis.Addr != "" {
			client := redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			defer client.Close()

			if err := client.Ping(ctx).Err(); err != nil {
				slog.Error("failed to connect to redis", "error", err)
				os.Exit(1)
			}

			locker = lock.NewRedis(client)
		}

		scheduler = manager.NewScheduler(managerService, locker, cfg.Sweep.LockTTL)
		if err := scheduler.Start(cfg.Sweep.Schedule); err != nil {
			slog.Error("failed to start scheduler", "error", err)
			os.Exit(1)
		}
	}

	var (
		locationH = locationHandler.NewHandler(locationService, importService)
		projectH  = projectHandler.NewHandler(projectService, adminService)
		donorH    = donorHandler.NewHandler(donorService)
		donationH = donationHandler.NewHandler(fundingService, managerService)
		managerH  = managerHandler.NewHandler(managerService, reportService)
	)

	router := conectandoHttp.New(conectandoHttp.Options{
		AllowedOrigins: cfg.Server.CORSOrigins,
		Timeout:        cfg.Server.Timeout,
	}, locationH, projectH, donorH, donationH, managerH)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		slog.Info("starting server", "app", cfg.App.Name, "port", srv.Addr)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if scheduler != nil {
		scheduler.Stop(shutdownCtx)
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}
