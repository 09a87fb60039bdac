package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
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
	name := flag.String("name", "", "override the bot's player name")
	startRound := flag.Bool("start-round", false, "signal the server to start the round after joining")
	flag.Parse()

	log := newLogger()
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("load config", zap.Error(err))
	}
	if *name != "" {
		cfg.Bot.Name = *name
	}
	if *startRound {
		cfg.Bot.StartRound = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cl, err := client.Dial(ctx, cfg.ServerURL, log)
	if err != nil {
		log.Fatal("connect", zap.Error(err))
	}
	defer func() { _ = cl.Close() }()

	bot := agents.NewRandom(agents.RandomConfig{
		PlayerID:     cfg.Bot.Name,
		BidLow:       cfg.Bot.BidRange.Low,
		BidHigh:      cfg.Bot.BidRange.High,
		OfferLow:     cfg.Bot.OfferRange.Low,
		OfferHigh:    cfg.Bot.OfferRange.High,
		TickInterval: cfg.Bot.TickInterval(),
		PollInterval: cfg.PollInterval(),
		StartRound:   cfg.Bot.StartRound,
		Seed:         cfg.Bot.Seed,
	}, log)

	if err := bot.Run(ctx, cl); err != nil && ctx.Err() == nil {
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
