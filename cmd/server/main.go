package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"max.ks1230/slots-tracker/internal/clients/kafka"
	"max.ks1230/slots-tracker/internal/config"
	"max.ks1230/slots-tracker/internal/entity/record"
	"max.ks1230/slots-tracker/internal/entity/user"
	"max.ks1230/slots-tracker/internal/logger"
	"max.ks1230/slots-tracker/internal/model/storage"
	"max.ks1230/slots-tracker/internal/server"
	"max.ks1230/slots-tracker/internal/tracing"
)

const serviceName = "slots-tracker-server"

type recordStorage interface {
	List(ctx context.Context, collection string, filter storage.Filter) ([]record.Record, error)
	Get(ctx context.Context, collection, id string) (record.Record, error)
	Insert(ctx context.Context, collection string, doc record.Record) (record.Record, error)
	Update(ctx context.Context, collection, id string, doc record.Record) (record.Record, error)
	Deactivate(ctx context.Context, collection, id string) error
	GetUserByEmail(ctx context.Context, email string) (user.Record, error)
	SaveUser(ctx context.Context, u user.Record) error
}

func main() {
	defer logger.Sync()
	logger.Info("Server init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	closer, err := tracing.Init(conf.Tracing(), serviceName)
	if err != nil {
		logger.Fatal("failed to init tracing:", zap.Error(err))
	}
	defer closer.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var store recordStorage
	if conf.Postgres().Enabled() {
		db, err := storage.NewPostgresStorage(conf.Postgres())
		if err != nil {
			logger.Fatal("failed to init postgres:", zap.Error(err))
		}
		defer db.Close()
		if err = db.Migrate(ctx); err != nil {
			logger.Fatal("failed to migrate postgres:", zap.Error(err))
		}
		store = db
	} else {
		logger.Warn("postgres is not configured, records are kept in memory")
		store = storage.NewInMemStorage()
	}

	if err = seedAdmin(ctx, store, conf.Server()); err != nil {
		logger.Fatal("failed to create admin:", zap.Error(err))
	}

	var opts []server.Option
	if conf.Kafka().Enabled() {
		producer, err := kafka.NewProducer(conf.Kafka())
		if err != nil {
			logger.Fatal("failed to init kafka producer:", zap.Error(err))
		}
		defer producer.Close()
		opts = append(opts, server.WithPublisher(producer))
	}

	gin.SetMode(gin.ReleaseMode)
	srv, err := server.New(conf.Server(), store, opts...)
	if err != nil {
		logger.Fatal("failed to init server:", zap.Error(err))
	}

	logger.Info("Server init - end")
	if err = srv.Run(ctx, conf.Server().ListenAddr()); err != nil {
		logger.Error("server stopped", zap.Error(err))
	}
}

type adminConfig interface {
	Admin() (email, password string)
}

// seedAdmin creates or resets the configured account, keeping its id.
func seedAdmin(ctx context.Context, store recordStorage, cfg adminConfig) error {
	email, password := cfg.Admin()
	if email == "" {
		return nil
	}

	id := uuid.NewString()
	if existing, err := store.GetUserByEmail(ctx, email); err == nil {
		id = existing.ID
	}
	u, err := user.New(id, email, password)
	if err != nil {
		return err
	}
	return store.SaveUser(ctx, u)
}
