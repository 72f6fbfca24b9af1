package main

// Periodic retraining job. One-shot by default; with -cron it keeps running
// on the given schedule:
//   go run ./cmd/retrain                     # retrain once and exit
//   go run ./cmd/retrain -cron "0 3 * * *"   # retrain daily at 03:00

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/robfig/cron/v3"

	"hardware-advisor/internal/bootstrap"
	"hardware-advisor/internal/shared/config"
)

func main() {
	cfg := config.Load()

	cronSpec := flag.String("cron", "", "cron schedule; empty runs a single retraining pass")
	flag.Parse()
	cfg.TrainOnBoot = false

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Printf("bootstrap error: %v", err)
		os.Exit(1)
	}

	run := func() {
		meta, err := app.Trainer.Run(context.Background())
		if err != nil {
			log.Printf("retraining failed: %v", err)
			return
		}
		log.Printf("published model %s (rows=%d)", meta.Version, meta.TrainingRows)
	}

	if *cronSpec == "" {
		meta, err := app.Trainer.Run(context.Background())
		if err != nil {
			log.Printf("retraining failed: %v", err)
			os.Exit(1)
		}
		log.Printf("published model %s (rows=%d)", meta.Version, meta.TrainingRows)
		return
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	if _, err := c.AddFunc(*cronSpec, run); err != nil {
		log.Printf("invalid cron schedule %q: %v", *cronSpec, err)
		os.Exit(1)
	}
	log.Printf("retraining on schedule %q", *cronSpec)
	c.Run()
}
