package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/Cyrus-spc-tech/Pal-Ai/cli"
	"github.com/Cyrus-spc-tech/Pal-Ai/config"
	"github.com/Cyrus-spc-tech/Pal-Ai/services"
	"github.com/Cyrus-spc-tech/Pal-Ai/store"
)

func main() {
	cfg := config.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
	})
	log.SetLevel(logrus.InfoLevel)

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("failed to create data directory: %v", err)
		}
	}

	st, err := store.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to initialize storage: %v", err)
	}
	defer st.Close()

	profiles := services.NewProfileService(st, cfg.DailyCalGoal, log)
	activities := services.NewActivityService(st, log)
	nutrition := services.NewNutritionService(cfg.NutritionAPIURL, cfg.NutritionAPIKey)

	app := cli.New(profiles, activities, nutrition, log, os.Stdin, os.Stdout)

	// Exit cleanly on Ctrl-C instead of dumping a stack trace.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		<-sig
		fmt.Println("\n\nCaught ya! Exiting gracefully...")
		st.Close()
		os.Exit(0)
	}()

	if err := app.Run(); err != nil {
		log.Fatalf("session error: %v", err)
	}
}
