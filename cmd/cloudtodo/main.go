package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/Zaugg-M/Cloud-ToDo/internal/cli"
	"github.com/Zaugg-M/Cloud-ToDo/internal/config"
	"github.com/Zaugg-M/Cloud-ToDo/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	// Menu output goes to stdout; structured logs stay on stderr.
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	app.Run(ctx)
}
