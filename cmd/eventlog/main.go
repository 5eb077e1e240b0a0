// Command eventlog consumes directory events from RabbitMQ and appends one
// line per event to a log file.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/fyyur/internal/config"
	"github.com/iliyamo/fyyur/internal/logging"
	"github.com/iliyamo/fyyur/internal/queue"
)

func main() {
	_ = godotenv.Load()

	log := logging.New(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))

	path := os.Getenv("EVENT_LOG_PATH")
	if path == "" {
		path = filepath.Join("logs", "directory.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.WithError(err).Fatal("failed to create log directory")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.WithError(err).Fatal("failed to open event log")
	}
	defer f.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(logrus.Fields{"queue": queue.EventsQueue, "file": path}).Info("consuming directory events")
	c := queue.NewConsumer(config.RabbitURL(), f, log)
	if err := c.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Error("consumer stopped")
	}
}
