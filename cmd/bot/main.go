package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"max.ks1230/expense-dashboard/internal/clients/cache"
	"max.ks1230/expense-dashboard/internal/clients/expenses"
	"max.ks1230/expense-dashboard/internal/clients/kafka"
	"max.ks1230/expense-dashboard/internal/clients/tg"
	"max.ks1230/expense-dashboard/internal/config"
	"max.ks1230/expense-dashboard/internal/logger"
	"max.ks1230/expense-dashboard/internal/model/messages"
	"max.ks1230/expense-dashboard/internal/model/reports"
	"max.ks1230/expense-dashboard/internal/model/store"
	"max.ks1230/expense-dashboard/internal/tracing"
)

func main() {
	logger.Info("Bot init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	if err = tracing.Init("expense-dashboard-bot"); err != nil {
		logger.Fatal("failed to init tracing:", zap.Error(err))
	}

	tgClient, err := tg.New(conf.Telegram())
	if err != nil {
		logger.Fatal("failed to init telegram client:", zap.Error(err))
	}

	mc, err := cache.NewMemcache(conf.Memcached())
	if err != nil {
		logger.Fatal("failed to init memcached:", zap.Error(err))
	}

	producer, err := kafka.NewProducer(conf.Kafka().Brokers(), conf.Kafka().RequestsTopic())
	if err != nil {
		logger.Fatal("failed to init kafka producer:", zap.Error(err))
	}
	defer producer.Close()

	apiClient := expenses.New(conf.Expenses())
	expenseStore := store.New(apiClient, conf.App())
	msgService := messages.NewService(tgClient, expenseStore, reports.NewRequester(producer), mc)

	acceptor := reports.NewAcceptor(tgClient)
	resultsConsumer, err := kafka.NewConsumer(conf.Kafka(), conf.Kafka().ResultsTopic(), acceptor)
	if err != nil {
		logger.Fatal("failed to init kafka consumer:", zap.Error(err))
	}

	logger.Info("Bot init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	go func() {
		if consumeErr := resultsConsumer.StartConsuming(ctx); consumeErr != nil {
			logger.Error("failed to consume chart results", zap.Error(consumeErr))
		}
	}()

	go serveMetrics(conf.App().MetricsPort())

	tgClient.ListenUpdates(ctx, msgService)
}

func serveMetrics(port int) {
	if port == 0 {
		return
	}
	http.Handle("/metrics", promhttp.Handler())
	err := http.ListenAndServe(fmt.Sprintf(":%d", port), nil)
	if err != nil {
		logger.Error("metrics listener stopped", zap.Error(err))
	}
}
