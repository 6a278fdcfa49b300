package rest

import (
	"net/http"
	"strings"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/pkg/httpx"
	"github.com/gin-gonic/gin"
)

const (
	defaultOrdersPage = 20
	maxOrdersPage     = 100
	maxImageBytes     = 10 << 20
)

type loginRequest struct {
	Password string `json:"password"`
}

type statusRequest struct {
	Status string `json:"status"`
}

// requireAdmin — Bearer-токен админки; без него 401.
func (h *Handler) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(raw, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			h.writeError(c, "admin auth", domain.ErrUnauthorized)
			c.Abort()
			return
		}
		if err := h.Admin.Authorize(c.Request.Context(), strings.TrimSpace(token)); err != nil {
			h.writeError(c, "admin auth", err)
			c.Abort()
			return
		}
		c.Next()
	}
}

func (h *Handler) adminLogin(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "invalid json")
		return
	}
	session, err := h.Admin.Login(ctx, req.Password)
	if err != nil {
		h.writeError(c, "Login", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *Handler) adminListProducts(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	list, err := h.Catalog.Products(ctx, "")
	if err != nil {
		h.writeError(c, "Products", err)
		return
	}
	if list == nil {
		list = []*domain.Product{}
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) adminCreateProduct(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	var p domain.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		h.badRequest(c, "invalid json")
		return
	}
	created, err := h.Products.CreateProduct(ctx, &p)
	if err != nil {
		h.writeError(c, "CreateProduct", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) adminUpdateProduct(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	var p domain.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		h.badRequest(c, "invalid json")
		return
	}
	p.ID = c.Param("id")

	updated, err := h.Products.UpdateProduct(ctx, &p)
	if err != nil {
		h.writeError(c, "UpdateProduct", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) adminDeleteProduct(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.Products.DeleteProduct(ctx, c.Param("id")); err != nil {
		h.writeError(c, "DeleteProduct", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) adminUploadImage(c *gin.Context) {
	if h.Images == nil {
		c.JSON(http.StatusServiceUnavailable, errorBody{Error: "image storage is not configured", Toasts: toasts(c.Request.Context())})
		return
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()

	fh, err := c.FormFile("file")
	if err != nil {
		h.badRequest(c, "file is required")
		return
	}
	if fh.Size > maxImageBytes {
		h.badRequest(c, "file is too large")
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.writeError(c, "open upload", err)
		return
	}
	defer f.Close()

	url, err := h.Images.Upload(ctx, fh.Filename, f)
	if err != nil {
		h.writeError(c, "Upload", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}

func (h *Handler) adminListOrders(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	limit, offset := httpx.ParseLimitOffset(c, defaultOrdersPage, maxOrdersPage)
	orders, err := h.Orders.ListOrders(ctx, limit, offset)
	if err != nil {
		h.writeError(c, "ListOrders", err)
		return
	}
	if orders == nil {
		orders = []*domain.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) adminUpdateOrderStatus(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "invalid json")
		return
	}
	id := c.Param("id")
	if err := h.Orders.UpdateOrderStatus(ctx, id, req.Status); err != nil {
		h.writeError(c, "UpdateOrderStatus", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": strings.ToLower(strings.TrimSpace(req.Status))})
}
