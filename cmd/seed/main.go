package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/mx-space/portfolio/internal/config"
	"github.com/mx-space/portfolio/internal/database"
	"github.com/mx-space/portfolio/internal/seed"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "Path to YAML config file")
	envFile := flag.String("env-file", ".env", "Optional dotenv file loaded before the config")
	fixturePath := flag.String("fixture", "fixtures/portfolio.yml", "Path to the YAML fixture")
	clearFirst := flag.Bool("clear", false, "Clear existing data before loading fixtures")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("skip env file %s: %v", *envFile, err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	fx, err := seed.LoadFile(*fixturePath)
	if err != nil {
		logger.Fatal("fixture", zap.Error(err))
	}

	db, err := database.Connect(cfg, true)
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}

	logger.Info("starting portfolio data loading", zap.String("fixture", *fixturePath), zap.Bool("clear", *clearFirst))
	summary, err := seed.NewLoader(db, logger).Load(fx, seed.Options{Clear: *clearFirst})
	if err != nil {
		logger.Fatal("error loading data", zap.Error(err))
	}
	logger.Info("successfully loaded portfolio data")
	summary.Print(os.Stdout)
}
