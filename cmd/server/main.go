package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/talkeu/chat-server/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	fmt.Println("Starting Talkeu chat server...")

	config := server.NewConfigFromEnv()
	server.SetConfig(config)

	hub := server.NewHub()
	router := server.NewRouter(hub)
	httpServer := server.CreateServer(config.Port, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		hub.Run()
		return nil
	})

	g.Go(func() error {
		if err := server.StartServer(httpServer); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		if err := server.ShutdownServer(httpServer, shutdownTimeout); err != nil {
			log.Printf("HTTP shutdown error: %v", err)
		}
		return hub.Shutdown(shutdownTimeout)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
	log.Println("Server exited cleanly")
}
