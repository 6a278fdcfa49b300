//go:build integration

package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/storefront/internal/auth"
	"github.com/Gunvolt24/storefront/internal/cart"
	"github.com/Gunvolt24/storefront/internal/checkout"
	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/notify"
	"github.com/Gunvolt24/storefront/internal/pricing"
	"github.com/Gunvolt24/storefront/internal/relay"
	pgrepo "github.com/Gunvolt24/storefront/internal/repo/postgres"
	"github.com/Gunvolt24/storefront/internal/session/redisstore"
	"github.com/Gunvolt24/storefront/internal/testutil"
	rest "github.com/Gunvolt24/storefront/internal/transport/http"
	"github.com/Gunvolt24/storefront/internal/usecase"
	"github.com/Gunvolt24/storefront/pkg/logger"
	"github.com/Gunvolt24/storefront/pkg/validate"
)

// Полный путь: каталог в Postgres, корзина в Redis, COD через form-relay,
// заказ попадает в БД и виден в админке.
func TestHTTP_StorefrontFlow_TC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	pg, stopPG, err := testutil.StartPostgresTC(ctx)
	require.NoError(t, err)
	defer func() { _ = stopPG(context.Background()) }()
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	rd, stopRedis, err := testutil.StartRedisTC(ctx)
	require.NoError(t, err)
	defer func() { _ = stopRedis(context.Background()) }()

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	// form-relay: принимает всё, считает вызовы
	var relayCalls atomic.Int32
	relaySrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		relayCalls.Add(1)
		_, _ = io.Copy(io.Discard, r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":"true"}`))
	}))
	defer relaySrv.Close()

	// сборка зависимостей
	productRepo := pgrepo.NewProductRepository(pg.Pool)
	orderRepo := pgrepo.NewOrderRepository(pg.Pool)
	catalog := usecase.NewCatalogService(productRepo, validate.NewProductValidator(), logg)
	orders := usecase.NewOrderService(orderRepo, logg, validate.NewOrderValidator())

	rdb, err := redisstore.NewClient(ctx, rd.URL)
	require.NoError(t, err)
	defer func() { _ = rdb.Close() }()

	engine := cart.NewEngine(redisstore.New(rdb, time.Hour), logg)
	calc := pricing.NewCalculator(pricing.DefaultRegions())
	sink := notify.NewSink(logg)
	orch := checkout.NewOrchestrator(engine, calc, relay.NewClient(relaySrv.URL, 5*time.Second, logg), orders, sink, logg)

	hash, err := auth.HashPassword(adminPassword)
	require.NoError(t, err)
	admin := usecase.NewAdminService(hash, auth.NewTokenIssuer("it-secret", time.Hour), logg)

	h := rest.NewHandler(rest.Deps{
		Catalog:  catalog,
		Products: catalog,
		Orders:   orders,
		Cart:     engine,
		Pricing:  calc,
		Checkout: orch,
		Admin:    admin,
		Notifier: sink,
		Log:      logg,
	}, 5*time.Second)
	ts := httptest.NewServer(rest.NewRouter(h, "", ""))
	defer ts.Close()

	// seed
	p := testutil.MakeProduct()
	require.NoError(t, productRepo.Create(ctx, &p))

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{Jar: jar, Timeout: 10 * time.Second}

	call := func(method, path string, body any, token string) *http.Response {
		t.Helper()
		var rdr io.Reader = http.NoBody
		if body != nil {
			raw, mErr := json.Marshal(body)
			require.NoError(t, mErr)
			rdr = bytes.NewReader(raw)
		}
		req, rErr := http.NewRequestWithContext(ctx, method, ts.URL+path, rdr)
		require.NoError(t, rErr)
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		resp, dErr := client.Do(req)
		require.NoError(t, dErr)
		t.Cleanup(func() { _ = resp.Body.Close() })
		return resp
	}

	// 1) товар виден на витрине
	resp := call(http.MethodGet, "/api/products/"+p.ID, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// 2) корзина: две единицы одного варианта
	for i := 0; i < 2; i++ {
		resp = call(http.MethodPost, "/api/cart/items", map[string]any{
			"productId": p.ID, "size": "M", "color": p.Colors[0], "quantity": 1,
		}, "")
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}
	resp = call(http.MethodGet, "/api/cart?region=cairo", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cv cartResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cv))
	require.Len(t, cv.Items, 1)
	require.Equal(t, 2, cv.Count)
	require.True(t, cv.Totals.Total.Equal(decimal.NewFromInt(950)), cv.Totals.Total.String())

	// 3) COD
	resp = call(http.MethodPost, "/api/checkout/cod", validForm(), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var receipt domain.Receipt
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&receipt))
	require.NotEmpty(t, receipt.OrderID)
	require.EqualValues(t, 1, relayCalls.Load())

	resp = call(http.MethodGet, "/api/cart", nil, "")
	cv = cartResponse{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cv))
	require.Empty(t, cv.Items)

	// 4) админка: заказ в списке, смена статуса
	resp = call(http.MethodPost, "/api/admin/login", map[string]string{"password": adminPassword}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var session usecase.AdminSession
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&session))

	resp = call(http.MethodGet, "/api/admin/orders", nil, session.Token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []domain.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1)
	require.Equal(t, receipt.OrderID, list[0].ID)
	require.Equal(t, domain.StatusPending, list[0].Status)
	require.Equal(t, domain.ChannelCOD, list[0].Channel)

	resp = call(http.MethodPatch, "/api/admin/orders/"+receipt.OrderID, map[string]string{"status": "shipped"}, session.Token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got, err := orderRepo.List(ctx, 10, 0)
	require.NoError(t, err)
	require.Equal(t, domain.StatusShipped, got[0].Status)
}

// Сбой relay — 502, корзина в Redis не тронута, заказ не записан.
func TestHTTP_CODRelayDown_TC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	rd, stopRedis, err := testutil.StartRedisTC(ctx)
	require.NoError(t, err)
	defer func() { _ = stopRedis(context.Background()) }()

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	relaySrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer relaySrv.Close()

	rdb, err := redisstore.NewClient(ctx, rd.URL)
	require.NoError(t, err)
	defer func() { _ = rdb.Close() }()

	engine := cart.NewEngine(redisstore.New(rdb, time.Hour), logg)
	calc := pricing.NewCalculator(pricing.DefaultRegions())
	sink := notify.NewSink(logg)
	orch := checkout.NewOrchestrator(engine, calc, relay.NewClient(relaySrv.URL, 2*time.Second, logg), nil, sink, logg)

	h := rest.NewHandler(rest.Deps{
		Cart:     engine,
		Pricing:  calc,
		Checkout: orch,
		Notifier: sink,
		Log:      logg,
	}, 5*time.Second)
	ts := httptest.NewServer(rest.NewRouter(h, "", ""))
	defer ts.Close()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{Jar: jar, Timeout: 10 * time.Second}

	// sid из первого запроса, корзину наполняем напрямую через движок
	resp, err := client.Get(ts.URL + "/api/cart")
	require.NoError(t, err)
	_ = resp.Body.Close()
	var sid string
	for _, c := range resp.Cookies() {
		if c.Name == "sid" {
			sid = c.Value
		}
	}
	require.NotEmpty(t, sid)
	_, err = engine.Add(ctx, sid, shirt(), 1, "M", "Red")
	require.NoError(t, err)

	raw, err := json.Marshal(validForm())
	require.NoError(t, err)
	resp, err = client.Post(ts.URL+"/api/checkout/cod", "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)

	items, err := engine.All(ctx, sid)
	require.NoError(t, err)
	require.Len(t, items, 1)
}
