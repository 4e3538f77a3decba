package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/faridmohammadi00/entrypoint-app/internal/api"
	"github.com/faridmohammadi00/entrypoint-app/internal/clients/haladesk"
	"github.com/faridmohammadi00/entrypoint-app/internal/service"
	"github.com/faridmohammadi00/entrypoint-app/internal/store"
	"github.com/faridmohammadi00/entrypoint-app/pkg/broker"
	"github.com/faridmohammadi00/entrypoint-app/pkg/config"
	"github.com/faridmohammadi00/entrypoint-app/pkg/job"
	"github.com/faridmohammadi00/entrypoint-app/pkg/logger"
	"github.com/faridmohammadi00/entrypoint-app/pkg/securestore"
)

const (
	ReadTimeout  = 20 * time.Second
	WriteTimeout = 20 * time.Second
)

//nolint:funlen
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	slog.SetDefault(logger.New(cfg.Logger.Level))

	var backend securestore.Backend

	switch cfg.Storage.Driver {
	case config.StorageDriverRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		err = rdb.Ping(ctx).Err()
		panicOnErr("ping redis", err)

		backend = securestore.NewRedisBackend(rdb)
	default:
		backend = securestore.NewFileBackend(cfg.Storage.Path)
	}

	storage, err := securestore.New(cfg.Storage.Secret, backend)
	panicOnErr("open secure storage", err)

	s := store.New(haladesk.New(cfg.API), storage)
	s.Rehydrate(ctx)
	<-s.Ready()

	if cfg.KafkaEnabled() {
		producer := broker.NewProducer(slog.Default(), cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer producer.Close()

		unsubscribe := s.Subscribe(service.Feed(producer))
		defer unsubscribe()
	}

	desk := service.NewDesk(s)

	if !desk.Authenticated() && cfg.Account.Email != "" {
		_, err = desk.Login(ctx, cfg.Account.Email, cfg.Account.Password)
		if err != nil {
			slog.ErrorContext(ctx, "auto login", "error", err)
		} else {
			slog.InfoContext(ctx, "logged in", "email", cfg.Account.Email)
		}
	}

	js := desk.RegisterSyncJobs(job.NewService(), cfg.Sync.Interval)
	js = desk.RegisterAdminSyncJobs(js, cfg.Sync.Users, cfg.Sync.Interval)
	js.Start(ctx)

	handler := api.NewHandler(desk, js)
	mw := api.NewMiddleware()

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		slog.InfoContext(ctx, "http server started", "port", cfg.HTTP.Port)

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}

		slog.DebugContext(ctx, "http server stopped")
	}()

	waitSignal(cancel, server)

	js.Stop()
	wg.Wait()
}

func waitSignal(cancel context.CancelFunc, server *http.Server) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	slog.Info("got OS signal", "signal", sig.String())

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
	defer shutdownCancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		slog.ErrorContext(shutdownCtx, "server shutdown", "error", err)
	}
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
