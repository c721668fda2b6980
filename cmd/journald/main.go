// Command journald runs the voice-journal backend: it applies migrations,
// wires the transcription/analysis/storage services and stays up until
// interrupted. Transport layers (bot frontends) attach to the app's service
// surface.
//
// Flags:
//
//	--env  path to a .env file loaded before configuration (default: .env)
//
// Exit codes: 0 = clean shutdown, 1 = startup error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/voicejournal/voicejournal-backend/internal/app"
)

func main() {
	envFile := flag.String("env", ".env", "path to .env file")
	flag.Parse()

	// Missing .env is fine; real deployments set env vars directly.
	if err := godotenv.Load(*envFile); err != nil && !os.IsNotExist(err) {
		log.Fatalf("load env file: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx)
	if err != nil {
		log.Fatalf("startup: %v", err)
	}
	defer a.Close()

	a.Log.Info("ready")

	<-ctx.Done()
	a.Log.Info("shutting down", slog.String("reason", "signal"))
}
