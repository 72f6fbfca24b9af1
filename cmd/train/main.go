package main

// Train a model from the corpus plus accumulated feedback and publish it as
// the active version:
//   go run ./cmd/train [-corpus data/corpus.csv]

import (
	"context"
	"flag"
	"log"
	"os"

	"hardware-advisor/internal/bootstrap"
	"hardware-advisor/internal/shared/config"
)

func main() {
	cfg := config.Load()

	corpusPath := flag.String("corpus", cfg.CorpusPath, "path to the labeled training corpus")
	flag.Parse()
	cfg.CorpusPath = *corpusPath
	// Build must not train implicitly; this command does it explicitly.
	cfg.TrainOnBoot = false

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Printf("bootstrap error: %v", err)
		os.Exit(1)
	}

	meta, err := app.Trainer.Run(context.Background())
	if err != nil {
		log.Printf("training failed: %v", err)
		os.Exit(1)
	}
	log.Printf("published model %s (rows=%d vocabulary=%d)", meta.Version, meta.TrainingRows, meta.VocabularySize)
}
