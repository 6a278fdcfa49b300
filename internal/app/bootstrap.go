package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/storefront/config"
	"github.com/Gunvolt24/storefront/internal/auth"
	"github.com/Gunvolt24/storefront/internal/cart"
	"github.com/Gunvolt24/storefront/internal/checkout"
	"github.com/Gunvolt24/storefront/internal/kafka"
	"github.com/Gunvolt24/storefront/internal/notify"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/internal/pricing"
	"github.com/Gunvolt24/storefront/internal/relay"
	"github.com/Gunvolt24/storefront/internal/repo/postgres"
	"github.com/Gunvolt24/storefront/internal/session/memory"
	"github.com/Gunvolt24/storefront/internal/session/redisstore"
	"github.com/Gunvolt24/storefront/internal/storage/cloudinary"
	rest "github.com/Gunvolt24/storefront/internal/transport/http"
	"github.com/Gunvolt24/storefront/internal/usecase"
	"github.com/Gunvolt24/storefront/pkg/logger"
	"github.com/Gunvolt24/storefront/pkg/metrics"
	"github.com/Gunvolt24/storefront/pkg/telemetry"
	"github.com/Gunvolt24/storefront/pkg/validate"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

// Режимы приёмника заказов.
const (
	SinkKafka  = "kafka"
	SinkDirect = "direct"
	SinkNone   = "none"
)

// Бэкенды хранилища корзин.
const (
	SessionMemory = "memory"
	SessionRedis  = "redis"
)

// App — собранное приложение и его внешние интерфейсы (HTTP, метрики, consumer).
type App struct {
	Logger          ports.Logger          // логгер
	HTTPServer      *http.Server          // HTTP-сервер
	MetricsServer   *http.Server          // отдельный сервер /metrics (nil — только на основном)
	KafkaConsumer   ports.MessageConsumer // консьюмер заказов (nil — выключен)
	gracefulTimeout time.Duration         // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// closers — стек функций освобождения, выполняется в обратном порядке.
type closers []func()

func (c *closers) add(fn func()) { *c = append(*c, fn) }

func (c closers) run() {
	for i := len(c) - 1; i >= 0; i-- {
		c[i]()
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим и уровень задаются конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLoggerWithLevel(cfg.Logger.IsProd, cfg.Logger.Level)
	if err != nil {
		return nil, func() {}, err
	}

	var cs closers
	cs.add(func() {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
	})
	fail := func(err error) (*App, Cleanup, error) {
		cs.run()
		return nil, func() {}, err
	}

	// Деньги в JSON — числами.
	decimal.MarshalJSONWithoutQuotes = true

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	if cfg.Tracing.Enabled {
		shutdownTrace, tErr := telemetry.SetupTracing(ctx, telemetry.Options{
			ServiceName: cfg.Tracing.ServiceName,
			Environment: cfg.Tracing.Environment,
			Endpoint:    cfg.Tracing.Endpoint,
			SampleRatio: cfg.Tracing.SampleRatio,
		})
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			cs.add(func() {
				if terr := shutdownTrace(context.Background()); terr != nil {
					logg.Warnf(ctx, "shutdown tracing: %v", terr)
				}
			})
		}
	}

	// Миграции и пул Postgres.
	if cfg.Postgres.Migrate {
		if err := postgres.Migrate(cfg.Postgres.DSN); err != nil {
			return fail(fmt.Errorf("migrate: %w", err))
		}
	}
	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		return fail(err)
	}
	cs.add(pool.Close)

	// Каталог и заказы.
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	catalogService := usecase.NewCatalogService(productRepo, validate.NewProductValidator(), logg)
	orderService := usecase.NewOrderService(orderRepo, logg, validate.NewOrderValidator())

	// Корзина.
	store, closeStore, err := newSessionStore(ctx, cfg.Session)
	if err != nil {
		return fail(err)
	}
	cs.add(closeStore)
	engine := cart.NewEngine(store, logg)
	engine.OnChange(cart.MetricsListener)
	logg.Infof(ctx, "cart session store backend=%s ttl=%s", cfg.Session.Backend, cfg.Session.TTL)

	// Оформление заказа.
	recorder, closeRecorder, err := newOrderRecorder(cfg, orderService, logg)
	if err != nil {
		return fail(err)
	}
	cs.add(closeRecorder)

	calc := pricing.NewCalculator(pricing.DefaultRegions())
	sink := notify.NewSink(logg)
	orchestrator := checkout.NewOrchestrator(
		engine,
		calc,
		relay.NewClient(cfg.Checkout.RelayURL, cfg.Checkout.Timeout, logg),
		recorder,
		sink,
		logg,
		checkout.WithBusinessPhone(cfg.Checkout.BusinessPhone),
		checkout.WithRedirect(cfg.Checkout.Redirect),
	)

	// Админка.
	secret := cfg.Admin.JWTSecret
	if secret == "" {
		secret = uuid.NewString()
		logg.Warnf(ctx, "admin jwt secret is not set: using ephemeral secret, tokens die with the process")
	}
	adminService := usecase.NewAdminService(cfg.Admin.PasswordHash, auth.NewTokenIssuer(secret, cfg.Admin.TokenTTL), logg)

	deps := rest.Deps{
		Catalog:      catalogService,
		Products:     catalogService,
		Orders:       orderService,
		Cart:         engine,
		Pricing:      calc,
		Checkout:     orchestrator,
		Admin:        adminService,
		Notifier:     sink,
		Log:          logg,
		SecureCookie: cfg.HTTP.SecureCookie,
	}
	if cfg.Cloudinary.URL != "" {
		images, cErr := cloudinary.New(cfg.Cloudinary.URL, cfg.Cloudinary.Folder, logg)
		if cErr != nil {
			return fail(cErr)
		}
		deps.Images = images
	} else {
		logg.Warnf(ctx, "cloudinary is not configured: image upload disabled")
	}

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	router := rest.NewRouter(rest.NewHandler(deps, cfg.HTTP.HandlerTimeout), cfg.HTTP.StaticDir, otelServiceName)
	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		MetricsServer:   newMetricsServer(cfg.Metrics.Addr, cfg.HTTP.Addr),
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Консьюмер заказов back-office (Kafka → Postgres).
	if cfg.Orders.Consumer {
		app.KafkaConsumer = kafka.NewConsumer(&kafka.ConsumerConfig{
			Brokers:        cfg.Kafka.Brokers,
			GroupID:        cfg.Kafka.GroupID,
			Topic:          cfg.Kafka.Topic,
			StartOffset:    cfg.Kafka.StartOffset,
			ProcessTimeout: cfg.Kafka.ProcessTimeout,
			RetryInitial:   cfg.Kafka.RetryInitial,
			RetryMax:       cfg.Kafka.RetryMax,
		}, orderService, logg)
	}

	return app, Cleanup(cs.run), nil
}

// newSessionStore — memory (LRU + скользящий TTL) или redis.
func newSessionStore(ctx context.Context, cfg config.Session) (ports.SessionStore, func(), error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case "", SessionMemory:
		return memory.NewStore(cfg.Capacity, cfg.TTL), func() {}, nil
	case SessionRedis:
		rdb, err := redisstore.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, func() {}, fmt.Errorf("redis session store: %w", err)
		}
		return redisstore.New(rdb, cfg.TTL), func() { _ = rdb.Close() }, nil
	default:
		return nil, func() {}, fmt.Errorf("unknown session backend %q", cfg.Backend)
	}
}

// newOrderRecorder — куда пишутся оформленные COD-заказы. none — никуда (nil).
func newOrderRecorder(cfg *config.Config, direct *usecase.OrderService, log ports.Logger) (ports.OrderRecorder, func(), error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Orders.Sink)) {
	case SinkKafka:
		pub := kafka.NewPublisher(&kafka.PublisherConfig{
			Brokers:      cfg.Kafka.Brokers,
			Topic:        cfg.Kafka.Topic,
			WriteTimeout: cfg.Kafka.WriteTimeout,
			RequiredAcks: cfg.Kafka.RequiredAcks,
		}, log)
		return pub, func() {
			if err := pub.Close(); err != nil {
				log.Warnf(context.Background(), "kafka publisher close error: %v", err)
			}
		}, nil
	case "", SinkDirect:
		return direct, func() {}, nil
	case SinkNone:
		return nil, func() {}, nil
	default:
		return nil, func() {}, fmt.Errorf("unknown orders sink %q", cfg.Orders.Sink)
	}
}

// newMetricsServer — отдельный listener для /metrics, если адрес задан и не совпадает с основным.
func newMetricsServer(addr, httpAddr string) *http.Server {
	if addr == "" || addr == httpAddr {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// Run — запускает HTTP-сервер(ы) и консьюмера; ждёт отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 3)

	// Запуск консьюмера.
	if a.KafkaConsumer != nil {
		go func() {
			a.Logger.Infof(ctx, "kafka consumer starting")
			if err := a.KafkaConsumer.Run(ctx); err != nil {
				errCh <- err
			}
		}()
	}

	// Запуск HTTP-серверов.
	for _, srv := range []*http.Server{a.HTTPServer, a.MetricsServer} {
		if srv == nil {
			continue
		}
		go func(srv *http.Server) {
			a.Logger.Infof(ctx, "http server starting (addr=%s)", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}(srv)
	}

	// Ожидание сигнала остановки или фоновой ошибки.
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Warnf(ctx, "background error: %v", err)
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-серверов.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	for _, srv := range []*http.Server{a.HTTPServer, a.MetricsServer} {
		if srv == nil {
			continue
		}
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.Logger.Warnf(ctx, "http server shutdown failed addr=%s: %v", srv.Addr, err)
		} else {
			a.Logger.Infof(ctx, "http server stopped gracefully addr=%s", srv.Addr)
		}
	}

	// Остановка Kafka-консьюмера
	if a.KafkaConsumer != nil {
		if err := a.KafkaConsumer.Close(); err != nil {
			a.Logger.Warnf(ctx, "kafka consumer close error: %v", err)
		}
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
