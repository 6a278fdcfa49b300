package rest

import (
	"context"
	"net/http"
	"path/filepath"
	"time"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/notify"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/internal/usecase"
	"github.com/Gunvolt24/storefront/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// CartService — операции корзины, нужные HTTP-слою.
type CartService interface {
	Add(ctx context.Context, sid string, product *domain.Product, quantity int, size, color string) (domain.LineItem, error)
	SetQuantity(ctx context.Context, sid, id string, n int) ([]domain.LineItem, error)
	AdjustQuantity(ctx context.Context, sid, id string, delta int) ([]domain.LineItem, error)
	Remove(ctx context.Context, sid, id string) ([]domain.LineItem, error)
	Clear(ctx context.Context, sid string) error
	All(ctx context.Context, sid string) ([]domain.LineItem, error)
}

// Pricing — справочник регионов и итоги корзины.
type Pricing interface {
	Regions() []domain.Region
	Region(key string) (domain.Region, error)
	Summarize(items []domain.LineItem, regionKey string) (domain.Totals, error)
}

// CheckoutService — оформление заказа.
type CheckoutService interface {
	State(sid string) domain.SubmitState
	MessageLink(ctx context.Context, sid string, form domain.CheckoutForm) (string, error)
	CashOnDelivery(ctx context.Context, sid string, form domain.CheckoutForm) (domain.Receipt, error)
}

// AdminAuth — вход в админку и проверка токена.
type AdminAuth interface {
	Login(ctx context.Context, password string) (*usecase.AdminSession, error)
	Authorize(ctx context.Context, token string) error
}

// Deps — зависимости HTTP-слоя.
type Deps struct {
	Catalog  ports.CatalogReader
	Products ports.CatalogWriter
	Orders   ports.OrderAdmin
	Cart     CartService
	Pricing  Pricing
	Checkout CheckoutService
	Admin    AdminAuth
	Images   ports.ImageStore // nil — загрузка картинок выключена
	Notifier ports.Notifier
	Log      ports.Logger

	SecureCookie bool
}

type Handler struct {
	Deps
	timeout time.Duration // таймаут на обработку запроса (0 — без таймаута)
}

func NewHandler(deps Deps, timeout time.Duration) *Handler {
	return &Handler{Deps: deps, timeout: timeout}
}

// NewRouter — gin-роутер витрины и админки.
// otelServiceName == "" — без трейсинга запросов.
func NewRouter(h *Handler, staticDir, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.SessionMiddleware(h.SecureCookie))
	r.Use(toastCollector())
	r.Use(httpx.RequestLogger(h.Log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/products", h.listProducts)
		api.GET("/products/:id", h.getProduct)
		api.GET("/products/label/:label", h.getProductByLabel)
		api.GET("/categories", h.listCategories)
		api.GET("/regions", h.listRegions)

		api.GET("/cart", h.getCart)
		api.POST("/cart/items", h.addCartItem)
		api.PUT("/cart/items/:id", h.setCartItemQuantity)
		api.PATCH("/cart/items/:id", h.adjustCartItemQuantity)
		api.DELETE("/cart/items/:id", h.removeCartItem)
		api.DELETE("/cart", h.clearCart)

		api.GET("/checkout/state", h.checkoutState)
		api.POST("/checkout/message-link", h.checkoutMessageLink)
		api.POST("/checkout/cod", h.checkoutCOD)

		api.POST("/admin/login", h.adminLogin)
	}

	admin := api.Group("/admin", h.requireAdmin())
	{
		admin.GET("/products", h.adminListProducts)
		admin.POST("/products", h.adminCreateProduct)
		admin.PUT("/products/:id", h.adminUpdateProduct)
		admin.DELETE("/products/:id", h.adminDeleteProduct)
		admin.POST("/images", h.adminUploadImage)
		admin.GET("/orders", h.adminListOrders)
		admin.PATCH("/orders/:id", h.adminUpdateOrderStatus)
	}

	if staticDir != "" {
		r.Static("/static", staticDir)
		r.StaticFile("/", filepath.Join(staticDir, "index.html"))
	}

	return r
}

// toastCollector — буфер уведомлений на время запроса.
func toastCollector() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(notify.WithCollector(c.Request.Context()))
		c.Next()
	}
}

// requestContext — контекст запроса с таймаутом обработчика.
func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}
