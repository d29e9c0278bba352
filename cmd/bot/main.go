package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"max.ks1230/slots-tracker/internal/clients/api"
	"max.ks1230/slots-tracker/internal/clients/cache"
	"max.ks1230/slots-tracker/internal/clients/tg"
	"max.ks1230/slots-tracker/internal/config"
	"max.ks1230/slots-tracker/internal/logger"
	"max.ks1230/slots-tracker/internal/model/messages"
	"max.ks1230/slots-tracker/internal/model/reports"
	"max.ks1230/slots-tracker/internal/model/screens"
	"max.ks1230/slots-tracker/internal/tracing"
)

const serviceName = "slots-tracker-bot"

func main() {
	defer logger.Sync()
	logger.Info("Bot init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	closer, err := tracing.Init(conf.Tracing(), serviceName)
	if err != nil {
		logger.Fatal("failed to init tracing:", zap.Error(err))
	}
	defer closer.Close()

	var opts []api.Option
	if conf.Memcached().Enabled() {
		mc, err := cache.NewMemcache(conf.Memcached())
		if err != nil {
			logger.Error("memcached is unavailable, lists are not cached", zap.Error(err))
		} else {
			opts = append(opts, api.WithCache(mc))
		}
	}

	apiClient, err := api.New(conf.API(), opts...)
	if err != nil {
		logger.Fatal("failed to init api client:", zap.Error(err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if email, password := conf.API().Credentials(); email != "" {
		if err = apiClient.Login(ctx, email, password); err != nil {
			logger.Fatal("failed to log in to api:", zap.Error(err))
		}
	}

	forms := screens.New(apiClient)
	if err = forms.Init(ctx); err != nil {
		logger.Warn("initial load failed, lists are fetched on demand", zap.Error(err))
	}
	if interval := conf.App().RefreshInterval(); interval > 0 {
		go forms.Poll(ctx, interval)
	}

	tgClient, err := tg.New(conf.Telegram())
	if err != nil {
		logger.Fatal("failed to init telegram client:", zap.Error(err))
	}

	reporter := reports.NewGenerator(conf.App(), apiClient)
	msgService := messages.NewService(tgClient, forms, reporter)

	if addr := conf.App().MetricsAddr(); addr != "" {
		go serveMetrics(addr)
	}

	logger.Info("Bot init - end")
	tgClient.ListenUpdates(ctx, msgService)
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("metrics server stopped", zap.Error(err))
	}
}
