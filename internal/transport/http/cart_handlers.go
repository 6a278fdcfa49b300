package rest

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/notify"
	"github.com/Gunvolt24/storefront/pkg/httpx"
	"github.com/Gunvolt24/storefront/pkg/validate"
	"github.com/gin-gonic/gin"
)

// Уведомления корзины.
const (
	MsgItemAdded   = "تمت إضافة المنتج للسلة بنجاح"
	MsgItemRemoved = "تم حذف المنتج من السلة"
)

// cartView — корзина для отрисовки: позиции, счётчик для бейджа, итоги.
type cartView struct {
	Items  []domain.LineItem `json:"items"`
	Count  int               `json:"count"`
	Totals domain.Totals     `json:"totals"`
	Toasts []notify.Toast    `json:"toasts"`
}

type addItemRequest struct {
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

type setQuantityRequest struct {
	Quantity *int `json:"quantity"`
}

type adjustQuantityRequest struct {
	Delta *int `json:"delta"`
}

func (h *Handler) getCart(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	region, ok := h.regionParam(c)
	if !ok {
		return
	}
	items, err := h.Cart.All(ctx, httpx.SessionID(c))
	if err != nil {
		h.writeError(c, "Cart.All", err)
		return
	}
	h.respondCart(ctx, c, http.StatusOK, items, region)
}

func (h *Handler) addCartItem(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	region, ok := h.regionParam(c)
	if !ok {
		return
	}

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "invalid json")
		return
	}
	if strings.TrimSpace(req.ProductID) == "" {
		h.badRequest(c, "productId is required")
		return
	}

	p, err := h.Catalog.ProductByID(ctx, req.ProductID)
	if err != nil {
		h.writeError(c, "ProductByID", err)
		return
	}
	if err := validate.ValidateSelection(p, req.Size, req.Color); err != nil {
		var fe *validate.FieldError
		if errors.As(err, &fe) {
			h.Notifier.Notify(ctx, fe.Message)
		}
		h.writeError(c, "Cart.Add", err)
		return
	}

	sid := httpx.SessionID(c)
	if _, err := h.Cart.Add(ctx, sid, p, req.Quantity, req.Size, req.Color); err != nil {
		h.writeError(c, "Cart.Add", err)
		return
	}
	h.Notifier.Notify(ctx, MsgItemAdded)

	items, err := h.Cart.All(ctx, sid)
	if err != nil {
		h.writeError(c, "Cart.All", err)
		return
	}
	h.respondCart(ctx, c, http.StatusCreated, items, region)
}

func (h *Handler) setCartItemQuantity(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	region, ok := h.regionParam(c)
	if !ok {
		return
	}

	var req setQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil {
		h.badRequest(c, "quantity is required")
		return
	}

	items, err := h.Cart.SetQuantity(ctx, httpx.SessionID(c), c.Param("id"), *req.Quantity)
	if err != nil {
		h.writeError(c, "Cart.SetQuantity", err)
		return
	}
	h.respondCart(ctx, c, http.StatusOK, items, region)
}

func (h *Handler) adjustCartItemQuantity(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	region, ok := h.regionParam(c)
	if !ok {
		return
	}

	var req adjustQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Delta == nil {
		h.badRequest(c, "delta is required")
		return
	}

	items, err := h.Cart.AdjustQuantity(ctx, httpx.SessionID(c), c.Param("id"), *req.Delta)
	if err != nil {
		h.writeError(c, "Cart.AdjustQuantity", err)
		return
	}
	h.respondCart(ctx, c, http.StatusOK, items, region)
}

func (h *Handler) removeCartItem(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	region, ok := h.regionParam(c)
	if !ok {
		return
	}

	sid := httpx.SessionID(c)
	before, err := h.Cart.All(ctx, sid)
	if err != nil {
		h.writeError(c, "Cart.All", err)
		return
	}
	items, err := h.Cart.Remove(ctx, sid, c.Param("id"))
	if err != nil {
		h.writeError(c, "Cart.Remove", err)
		return
	}
	if len(items) < len(before) {
		h.Notifier.Notify(ctx, MsgItemRemoved)
	}
	h.respondCart(ctx, c, http.StatusOK, items, region)
}

func (h *Handler) clearCart(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	region, ok := h.regionParam(c)
	if !ok {
		return
	}
	if err := h.Cart.Clear(ctx, httpx.SessionID(c)); err != nil {
		h.writeError(c, "Cart.Clear", err)
		return
	}
	h.respondCart(ctx, c, http.StatusOK, nil, region)
}

// regionParam — ?region= проверяется до изменения корзины:
// неизвестный регион → 400, корзина не тронута. Пустой — регион не выбран.
func (h *Handler) regionParam(c *gin.Context) (string, bool) {
	region := strings.TrimSpace(c.Query("region"))
	if region == "" {
		return "", true
	}
	if _, err := h.Pricing.Region(region); err != nil {
		h.writeError(c, "Pricing.Region", err)
		return "", false
	}
	return region, true
}

// respondCart — пересчёт итогов и ответ с корзиной.
// Регион не выбран — доставка не указана, total == subtotal.
func (h *Handler) respondCart(ctx context.Context, c *gin.Context, status int, items []domain.LineItem, region string) {
	totals, err := h.Pricing.Summarize(items, region)
	if err != nil {
		h.writeError(c, "Summarize", err)
		return
	}
	if items == nil {
		items = []domain.LineItem{}
	}
	c.JSON(status, cartView{
		Items:  items,
		Count:  domain.CountItems(items),
		Totals: totals,
		Toasts: toasts(ctx),
	})
}
