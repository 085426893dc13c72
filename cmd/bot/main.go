package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrRicesun777/PriceOfEth/internal/chart"
	"github.com/MrRicesun777/PriceOfEth/internal/config"
	"github.com/MrRicesun777/PriceOfEth/internal/fetcher"
	"github.com/MrRicesun777/PriceOfEth/internal/health"
	"github.com/MrRicesun777/PriceOfEth/internal/model"
	"github.com/MrRicesun777/PriceOfEth/internal/notifier"
	"github.com/MrRicesun777/PriceOfEth/internal/recorder"
	"github.com/MrRicesun777/PriceOfEth/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] PriceOfEth starting...")

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] load .env: %v", err)
	}

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	loc, err := time.LoadLocation(cfg.Schedule.Timezone)
	if err != nil {
		log.Printf("[WARN] load timezone %q failed, using local: %v", cfg.Schedule.Timezone, err)
		loc = time.Local
	}

	// Init fetcher
	src := fetcher.NewCoinGeckoFetcher(cfg.PriceSource.BaseURL, cfg.PriceSource.Asset, loc)
	log.Printf("[INFO] price source: %s (%s)", src.Name(), cfg.PriceSource.Asset)

	// Init chart renderer
	rend := chart.NewRenderer(cfg.Chart.Path)

	// Init Telegram notifier
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init scheduler
	sched := scheduler.NewScheduler(src, rend, tn, rec, scheduler.Options{
		Thresholds: model.AlertThresholds{Low: cfg.Alerts.Low, High: cfg.Alerts.High},
		Interval:   cfg.Schedule.Interval,
		DailyHour:  cfg.Schedule.DailyHour,
		WindowDays: cfg.Chart.WindowDays,
		Location:   loc,
	})
	if err := sched.Register(); err != nil {
		log.Fatalf("[FATAL] register schedule: %v", err)
	}

	// Start health endpoint for uptime monitors
	hs := health.NewServer(cfg.Server.Port)
	go func() {
		if err := hs.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[ERROR] health endpoint: %v", err)
		}
	}()

	sched.Start()
	defer sched.Stop()

	// Initial full update on start
	log.Println("[INFO] sending initial update with chart")
	sched.RunStartupUpdate()

	log.Println("[INFO] PriceOfEth is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	if err := hs.Shutdown(); err != nil {
		log.Printf("[WARN] health endpoint shutdown: %v", err)
	}
	log.Println("[INFO] PriceOfEth stopped")
}
