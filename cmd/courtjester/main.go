package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/kangalioo/CourtJester/internal/config"
	"github.com/kangalioo/CourtJester/internal/discord"
	"github.com/kangalioo/CourtJester/internal/storage"
	"github.com/kangalioo/CourtJester/internal/version"
)

func main() {
	log.Printf("[INFO] Starting %v bot...", version.AppName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	errCh := make(chan error, 1)
	go func() {
		if err := discord.StartBot(ctx, cfg, store); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...", s)
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] Discord bot error:", err)
		}
		cancel()
	}

	log.Println("[INFO] Discord bot exited cleanly")
}
