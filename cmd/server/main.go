package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/iliyamo/fyyur/internal/config"
	"github.com/iliyamo/fyyur/internal/database"
	"github.com/iliyamo/fyyur/internal/handler"
	"github.com/iliyamo/fyyur/internal/logging"
	"github.com/iliyamo/fyyur/internal/middleware"
	"github.com/iliyamo/fyyur/internal/queue"
	"github.com/iliyamo/fyyur/internal/repository"
	"github.com/iliyamo/fyyur/internal/repository/memory"
	"github.com/iliyamo/fyyur/internal/router"
	"github.com/iliyamo/fyyur/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, ping, closeStore := openStore(ctx, cfg, log)
	defer closeStore()

	var pub service.Publisher = queue.NopPublisher{}
	if cfg.EventsEnabled {
		pub = queue.NewAMQPPublisher(cfg.RabbitURL)
		log.WithField("queue", queue.EventsQueue).Info("publishing directory events")
	}

	svc := service.New(store, service.WithPublisher(pub), service.WithLogger(log))

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	// Recover sits inside the request logger so that panics are logged
	// as 500s with their request id.
	e.Use(middleware.RequestLogger(log))
	e.Use(echomw.Recover())

	rl := cfg.RateLimit
	if rl.Enabled {
		if rdb := config.NewRedisClient(cfg.Redis); rdb != nil {
			defer rdb.Close()
			e.Use(middleware.NewTokenBucket(rl, rdb, log))
		} else {
			log.Warn("redis unreachable; using per-process rate limiter")
			e.Use(middleware.NewLocalLimiter(rl))
		}
	}

	router.RegisterRoutes(e, ping)
	router.RegisterDirectory(e, handler.NewDirectoryHandler(svc, log))

	addr := ":" + cfg.Port
	g, runCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithFields(logrus.Fields{"addr": addr, "env": cfg.Env, "store": cfg.StoreDriver}).Info("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("starting http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-runCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("server stopped")
	}
}

// openStore returns the configured store, a ping function for the health
// check and a cleanup function.
func openStore(ctx context.Context, cfg config.Config, log logrus.FieldLogger) (repository.Store, func(context.Context) error, func()) {
	if cfg.StoreDriver == config.StoreMemory {
		log.Warn("using in-memory store; data is lost on exit")
		return memory.NewStore(), nil, func() {}
	}

	db, err := database.Open(database.Options{
		User: cfg.DBUser,
		Pass: cfg.DBPass,
		Host: cfg.DBHost,
		Port: cfg.DBPort,
		Name: cfg.DBName,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	if cfg.AutoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			log.WithError(err).Fatal("failed to migrate database")
		}
	}
	return repository.NewSQLStore(db), db.PingContext, func() { _ = db.Close() }
}
