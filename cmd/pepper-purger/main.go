package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pepper-purger/internal/logger"
)

const (
	AppName    = "pepper-purger"
	AppVersion = "1.0.0"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	setupSignalHandling(cancel)

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func setupSignalHandling(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "Signal received, shutting down...")
		cancel()
	}()
}

func newLogger(level string) logger.Logger {
	return logger.NewConsoleLogger(logger.ParseLevel(level))
}
