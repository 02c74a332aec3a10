package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"delve-server/internal/agent"
	"delve-server/internal/engine"
	"delve-server/internal/server"
	"delve-server/internal/version"
	"delve-server/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	var autoplay int
	flag.Int64Var(&seed, "seed", 0, "World seed (0 for random)")
	flag.IntVar(&autoplay, "autoplay", 0, "Run a headless bot for N turns and exit")
	flag.Parse()

	logger.Log.Info("Starting Endless Delve...")
	logger.Log.Info(version.String())

	cfg := engine.NewConfig()
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("Using explicit world seed: %d", cfg.Seed)
	} else {
		logger.Log.Infof("Using random world seed: %d", cfg.Seed)
	}

	// 2. Инициализация ядра
	session := engine.NewSession(cfg)

	// РЕЖИМ АВТОИГРЫ: прогоняем бота и выходим
	if autoplay > 0 {
		agent.NewBot(session).Run(autoplay)
		return
	}

	port := os.Getenv("DELVE_PORT")
	if port == "" {
		port = "8080"
	}

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Запуск сервера
	srv := server.New(session, port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")
}
