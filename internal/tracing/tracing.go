package tracing

import (
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	jaegerzap "github.com/uber/jaeger-client-go/log/zap"
	"max.ks1230/slots-tracker/internal/logger"
)

type config interface {
	ServiceName() string
	AgentHostPort() string
}

// Init installs a jaeger tracer as the global opentracing tracer. Close the
// returned closer to flush spans on exit.
func Init(cfg config, defaultService string) (io.Closer, error) {
	service := cfg.ServiceName()
	if service == "" {
		service = defaultService
	}

	jcfg := jaegercfg.Configuration{
		ServiceName: service,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: 1,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LocalAgentHostPort: cfg.AgentHostPort(),
		},
	}

	tracer, closer, err := jcfg.NewTracer(jaegercfg.Logger(jaegerzap.NewLogger(logger.Named("jaeger"))))
	if err != nil {
		return nil, errors.Wrap(err, "init tracer")
	}
	opentracing.SetGlobalTracer(tracer)
	return closer, nil
}
