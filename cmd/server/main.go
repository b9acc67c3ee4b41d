package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/finboard/dashboard-service/internal/api"
	"github.com/finboard/dashboard-service/internal/config"
	"github.com/finboard/dashboard-service/internal/database"
	"github.com/finboard/dashboard-service/internal/kafka"
	"github.com/finboard/dashboard-service/internal/quote"
)

func main() {
	_ = godotenv.Load()

	logrus.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logrus.SetLevel(level)
	}

	cfg := config.Load()

	db, err := database.New(cfg.Database.ConnectionString())
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var quoter quote.Quoter = quote.NewYahooClient(cfg.Quote.BaseURL)
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		quoter = quote.NewCache(quoter, rdb, time.Minute)
		logrus.WithField("addr", cfg.Redis.Addr).Info("quote cache enabled")
	}

	var producer *kafka.Producer
	if cfg.Kafka.Enabled() {
		producer = kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.IngestedTopic)
		defer producer.Close()

		consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.GroupID, db)
		go func() {
			if err := consumer.Start(ctx); err != nil {
				logrus.WithError(err).Error("kafka consumer stopped")
			}
		}()
	}

	handler := api.NewHandler(db, producer, quoter)
	router := api.SetupRoutes(handler)

	srv := &http.Server{
		Addr:    net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logrus.WithField("addr", srv.Addr).Info("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logrus.Info("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("graceful shutdown failed")
	}
}
