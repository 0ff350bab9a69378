package main

import (
	"context"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"max.ks1230/expense-dashboard/internal/clients/expenses"
	"max.ks1230/expense-dashboard/internal/clients/kafka"
	"max.ks1230/expense-dashboard/internal/config"
	"max.ks1230/expense-dashboard/internal/logger"
	"max.ks1230/expense-dashboard/internal/model/reports"
	"max.ks1230/expense-dashboard/internal/tracing"
)

func main() {
	logger.Info("Reporter init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	if err = tracing.Init("expense-dashboard-reporter"); err != nil {
		logger.Fatal("failed to init tracing:", zap.Error(err))
	}

	producer, err := kafka.NewProducer(conf.Kafka().Brokers(), conf.Kafka().ResultsTopic())
	if err != nil {
		logger.Fatal("failed to init kafka producer:", zap.Error(err))
	}
	defer producer.Close()

	generator := reports.NewGenerator(conf.App(), expenses.New(conf.Expenses()), producer)

	consumer, err := kafka.NewConsumer(conf.Kafka(), conf.Kafka().RequestsTopic(), generator)
	if err != nil {
		logger.Fatal("failed to init kafka consumer:", zap.Error(err))
	}

	logger.Info("Reporter init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err = consumer.StartConsuming(ctx); err != nil {
		logger.Fatal("failed to start consuming", zap.Error(err))
	}
}
