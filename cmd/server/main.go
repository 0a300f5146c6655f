package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"creature-server/internal/agent"
	"creature-server/internal/engine"
	"creature-server/internal/server"
	"creature-server/internal/version"
	"creature-server/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	var tickLimit int
	var journalPath string
	var interval time.Duration
	var keeper bool
	// Читаем флаг -seed. По умолчанию 0 (значит сгенерировать случайно).
	flag.Int64Var(&seed, "seed", 0, "Initial world seed (0 for random)")
	flag.BoolVar(&keeper, "keeper", false, "Run the keeper agent that calms creatures hunting too long")
	flag.IntVar(&tickLimit, "ticks", 0, "Stop the simulation after N ticks (0 for endless)")
	flag.StringVar(&journalPath, "journal", "decisions.db", "Path to the SQLite decision journal")
	flag.DurationVar(&interval, "interval", 500*time.Millisecond, "Real time between simulation ticks")
	flag.Parse()

	logger.Log.Info("Starting Creature Server...")
	logger.Log.Info(version.String())

	// Формируем конфиг
	cfg := engine.NewConfig()
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit Master Seed: %d", seed)
	} else {
		logger.Log.Infof("🎲 Using random Master Seed: %d", cfg.Seed)
	}
	cfg.TickLimit = tickLimit
	cfg.JournalPath = journalPath
	cfg.TickInterval = interval

	port := os.Getenv("CS_PORT")
	if port == "" {
		port = "8080"
	}

	// 2. Инициализация ядра с конфигом
	gameService, err := engine.NewService(cfg)
	if err != nil {
		logger.Log.Fatal("Engine init error:", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go gameService.Run(ctx)

	if keeper {
		go agent.NewBot(gameService).Run()
	}

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Запуск сервера
	srv := server.New(gameService, port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")

	cancel()
	if err := gameService.Close(); err != nil {
		logger.Log.WithError(err).Warn("Journal close failed")
	}

	logger.Log.Info("Done.")
}
