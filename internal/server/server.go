// Package server is the REST backend of the expense tracker: documents of the
// expenses, pay_methods and categories collections behind a JWT login.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"max.ks1230/slots-tracker/internal/entity/event"
	"max.ks1230/slots-tracker/internal/entity/record"
	"max.ks1230/slots-tracker/internal/entity/user"
	"max.ks1230/slots-tracker/internal/logger"
	"max.ks1230/slots-tracker/internal/model/storage"
)

const shutdownTimeout = 5 * time.Second

type recordStorage interface {
	List(ctx context.Context, collection string, filter storage.Filter) ([]record.Record, error)
	Get(ctx context.Context, collection, id string) (record.Record, error)
	Insert(ctx context.Context, collection string, doc record.Record) (record.Record, error)
	Update(ctx context.Context, collection, id string, doc record.Record) (record.Record, error)
	Deactivate(ctx context.Context, collection, id string) error
	GetUserByEmail(ctx context.Context, email string) (user.Record, error)
}

type publisher interface {
	Publish(ctx context.Context, e event.Event) error
}

type config interface {
	JWTSecret() string
	TokenTTL() time.Duration
	AllowedOrigins() []string
}

type Server struct {
	storage   recordStorage
	publisher publisher
	tokens    *tokenIssuer
	origins   []string
	router    *gin.Engine
}

type Option func(s *Server)

// WithPublisher makes every successful write publish a change event.
func WithPublisher(p publisher) Option {
	return func(s *Server) {
		s.publisher = p
	}
}

func New(cfg config, storage recordStorage, opts ...Option) (*Server, error) {
	if cfg.JWTSecret() == "" {
		return nil, errors.New("server: jwt secret is not configured")
	}

	s := &Server{
		storage: storage,
		tokens:  newTokenIssuer(cfg.JWTSecret(), cfg.TokenTTL()),
		origins: cfg.AllowedOrigins(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), accessLog(), observeRequests())
	r.Use(cors.New(s.corsConfig()))

	r.GET("/", s.index)
	r.POST("/login/", s.login)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/", s.authenticate())
	api.GET("/:collection/", s.list)
	api.POST("/:collection/", s.create)
	api.GET("/:collection/:id", s.get)
	api.PUT("/:collection/:id", s.update)
	api.DELETE("/:collection/:id", s.remove)

	return r
}

func (s *Server) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length", requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(s.origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = s.origins
	}
	return cfg
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "listen")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Info("server stopping")
	return errors.Wrap(srv.Shutdown(shutdownCtx), "shutdown")
}

func (s *Server) index(c *gin.Context) {
	c.String(http.StatusOK, "API index page")
}
