package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"max.ks1230/slots-tracker/internal/clients/kafka"
	"max.ks1230/slots-tracker/internal/clients/tg"
	"max.ks1230/slots-tracker/internal/config"
	"max.ks1230/slots-tracker/internal/logger"
	"max.ks1230/slots-tracker/internal/model/notifications"
	"max.ks1230/slots-tracker/internal/tracing"
)

const serviceName = "slots-tracker-notifier"

func main() {
	defer logger.Sync()
	logger.Info("Notifier init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	closer, err := tracing.Init(conf.Tracing(), serviceName)
	if err != nil {
		logger.Fatal("failed to init tracing:", zap.Error(err))
	}
	defer closer.Close()

	tgClient, err := tg.New(conf.Telegram())
	if err != nil {
		logger.Fatal("failed to init telegram client:", zap.Error(err))
	}
	notifier := notifications.New(conf.Telegram(), tgClient)

	consumer, err := kafka.NewConsumer(conf.Kafka(), notifier)
	if err != nil {
		logger.Fatal("failed to init kafka consumer", zap.Error(err))
	}
	defer consumer.Close()

	logger.Info("Notifier init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err = consumer.StartConsuming(ctx); err != nil {
		logger.Error("consuming stopped", zap.Error(err))
	}
}
