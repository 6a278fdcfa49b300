package rest

import (
	"net/http"
	"strings"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/gin-gonic/gin"
)

// productView — товар с готовой галереей (images → image → заглушка).
type productView struct {
	*domain.Product
	Gallery []string `json:"gallery"`
}

func toProductView(p *domain.Product) productView {
	return productView{Product: p, Gallery: p.Gallery(domain.PlaceholderImage)}
}

func toProductViews(list []*domain.Product) []productView {
	out := make([]productView, 0, len(list))
	for _, p := range list {
		out = append(out, toProductView(p))
	}
	return out
}

func (h *Handler) listProducts(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	category := strings.TrimSpace(c.Query("category"))
	list, err := h.Catalog.Products(ctx, category)
	if err != nil {
		h.writeError(c, "Products", err)
		return
	}
	c.JSON(http.StatusOK, toProductViews(list))
}

func (h *Handler) getProduct(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	p, err := h.Catalog.ProductByID(ctx, c.Param("id"))
	if err != nil {
		h.writeError(c, "ProductByID", err)
		return
	}
	c.JSON(http.StatusOK, toProductView(p))
}

func (h *Handler) getProductByLabel(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	p, err := h.Catalog.ProductByLabel(ctx, c.Param("label"))
	if err != nil {
		h.writeError(c, "ProductByLabel", err)
		return
	}
	c.JSON(http.StatusOK, toProductView(p))
}

func (h *Handler) listCategories(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	cats, err := h.Catalog.Categories(ctx)
	if err != nil {
		h.writeError(c, "Categories", err)
		return
	}
	if cats == nil {
		cats = []string{}
	}
	c.JSON(http.StatusOK, cats)
}

func (h *Handler) listRegions(c *gin.Context) {
	c.JSON(http.StatusOK, h.Pricing.Regions())
}
