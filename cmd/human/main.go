package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Bhavyaa-T/FiggieBot/agents"
	"github.com/Bhavyaa-T/FiggieBot/client"
	"github.com/Bhavyaa-T/FiggieBot/config"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "config.yaml", "path to the config file")
	startRound := flag.Bool("start-round", false, "signal the server to start the round after joining")
	flag.Parse()

	log := newLogger()
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("load config", zap.Error(err))
	}
	if *startRound {
		cfg.Human.StartRound = true
	}

	// fmt.Scanln reads stdin unbuffered, leaving the rest of the stream for
	// the agent's prompt loop.
	fmt.Print("Enter your username: ")
	var name string
	if _, err := fmt.Scanln(&name); err != nil {
		log.Fatal("read username", zap.Error(err))
	}
	playerID := "Human Player " + strings.TrimSpace(name)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cl, err := client.Dial(ctx, cfg.ServerURL, log)
	if err != nil {
		log.Fatal("connect", zap.Error(err))
	}
	defer func() { _ = cl.Close() }()

	human := agents.NewHuman(agents.HumanConfig{
		PlayerID:     playerID,
		PollInterval: cfg.PollInterval(),
		StartRound:   cfg.Human.StartRound,
	}, log)

	if err := human.Run(ctx, cl); err != nil && ctx.Err() == nil {
		log.Fatal("session failed", zap.Error(err))
	}
	log.Info("session complete")
}

func newLogger() *zap.Logger {
	var log *zap.Logger
	var err error
	if os.Getenv("FIGGIE_ENV") == "production" {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	return log
}
