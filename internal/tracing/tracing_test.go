package tracing

import (
	"testing"

	"github.com/opentracing/opentracing-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tracingConfig struct{}

func (tracingConfig) ServiceName() string   { return "" }
func (tracingConfig) AgentHostPort() string { return "127.0.0.1:6831" }

func Test_Init_ShouldInstallGlobalTracer(t *testing.T) {
	defer opentracing.SetGlobalTracer(opentracing.NoopTracer{})

	closer, err := Init(tracingConfig{}, "slots-tracker-test")
	require.NoError(t, err)
	defer closer.Close()

	_, isNoop := opentracing.GlobalTracer().(opentracing.NoopTracer)
	assert.False(t, isNoop)
	span := opentracing.StartSpan("test")
	span.Finish()
}
