package app

import (
	"context"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/storefront/config"
	"github.com/Gunvolt24/storefront/internal/kafka"
	"github.com/Gunvolt24/storefront/internal/session/memory"
	"github.com/Gunvolt24/storefront/internal/usecase"
)

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

func TestApplyGinMode(t *testing.T) {
	defer gin.SetMode(gin.TestMode)

	cases := map[string]string{
		"release": gin.ReleaseMode,
		" TEST ":  gin.TestMode,
		"":        gin.DebugMode,
		"weird":   gin.DebugMode,
	}
	for in, want := range cases {
		applyGinMode(context.Background(), in, nopLogger{})
		assert.Equal(t, want, gin.Mode(), "mode %q", in)
	}
}

func TestNewSessionStore(t *testing.T) {
	ctx := context.Background()

	store, closeFn, err := newSessionStore(ctx, config.Session{Backend: "memory", Capacity: 10})
	require.NoError(t, err)
	defer closeFn()
	assert.IsType(t, &memory.Store{}, store)

	_, _, err = newSessionStore(ctx, config.Session{Backend: "etcd"})
	require.Error(t, err)
}

func TestNewOrderRecorder(t *testing.T) {
	direct := usecase.NewOrderService(nil, nopLogger{}, nil)
	cfg := &config.Config{Kafka: config.Kafka{Brokers: []string{"127.0.0.1:9092"}, Topic: "orders"}}

	cfg.Orders.Sink = SinkDirect
	rec, closeFn, err := newOrderRecorder(cfg, direct, nopLogger{})
	require.NoError(t, err)
	closeFn()
	assert.Same(t, direct, rec)

	cfg.Orders.Sink = SinkNone
	rec, _, err = newOrderRecorder(cfg, direct, nopLogger{})
	require.NoError(t, err)
	assert.Nil(t, rec)

	cfg.Orders.Sink = SinkKafka
	rec, closeFn, err = newOrderRecorder(cfg, direct, nopLogger{})
	require.NoError(t, err)
	assert.IsType(t, &kafka.Publisher{}, rec)
	closeFn()

	cfg.Orders.Sink = "smtp"
	_, _, err = newOrderRecorder(cfg, direct, nopLogger{})
	require.Error(t, err)
}

func TestNewMetricsServer(t *testing.T) {
	assert.Nil(t, newMetricsServer("", ":8080"))
	assert.Nil(t, newMetricsServer(":8080", ":8080"))

	srv := newMetricsServer(":2112", ":8080")
	require.NotNil(t, srv)
	assert.Equal(t, ":2112", srv.Addr)
}
