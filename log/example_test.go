package log_test

import (
	"context"
	"log/slog"
	"os"

	"github.com/sparqlet/sparqlet/log"
)

func Example_basic() {
	logger := log.Make(os.Stdout)
	logger.Info("result document loaded", slog.Int("rows", 128))
}

func Example_configuration() {
	logger := log.Make(os.Stdout,
		log.WithLevel(log.LevelTrace),
		log.WithFormat(log.FormatText),
		log.WithTimeLayout("none"))

	logger.Trace("token accepted", slog.String("kind", "IRIREF"))
}

func Example_levels() {
	logger := log.Make(os.Stdout, log.WithLevel(log.LevelWarn))

	logger.Debug("discarded below the configured level")
	logger.Warn("unbound variable", slog.String("var", "?name"))
	logger.Error("parse failed", slog.Int("offset", 42))
}

func Example_withAttributes() {
	logger := log.Make(os.Stdout).With(slog.String("component", "grammar"))

	logger.Info("rule compiled")
	logger.Debug("rule detail", slog.String("rule", "ResultRow"))
}

func Example_withContext() {
	type documentKey struct{}

	ctx := context.WithValue(context.Background(), documentKey{}, "results.tsv")

	logger := log.Make(os.Stdout)
	logger.InfoContext(ctx, "parsing document")
}

func Example_defaultLogger() {
	log.Config(log.WithFormat(log.FormatText), log.WithPretty(false))
	log.Info("using the package default logger")
}
