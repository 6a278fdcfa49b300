package rest

import (
	"net/http"

	"github.com/Gunvolt24/storefront/internal/checkout"
	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/notify"
	"github.com/Gunvolt24/storefront/pkg/httpx"
	"github.com/gin-gonic/gin"
)

type checkoutStateView struct {
	State     domain.SubmitState `json:"state"`
	BusyLabel string             `json:"busyLabel,omitempty"`
}

type messageLinkView struct {
	URL    string         `json:"url"`
	Toasts []notify.Toast `json:"toasts"`
}

type receiptView struct {
	domain.Receipt
	Toasts []notify.Toast `json:"toasts"`
}

func (h *Handler) checkoutState(c *gin.Context) {
	st := h.Checkout.State(httpx.SessionID(c))
	view := checkoutStateView{State: st}
	if st == domain.SubmitSubmitting {
		view.BusyLabel = checkout.BusyLabel
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) checkoutMessageLink(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	var form domain.CheckoutForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.badRequest(c, "invalid json")
		return
	}

	link, err := h.Checkout.MessageLink(ctx, httpx.SessionID(c), form)
	if err != nil {
		h.writeError(c, "MessageLink", err)
		return
	}
	c.JSON(http.StatusOK, messageLinkView{URL: link, Toasts: toasts(ctx)})
}

// checkoutCOD — без таймаута обработчика: отправка в relay ограничена своим клиентом.
func (h *Handler) checkoutCOD(c *gin.Context) {
	ctx := c.Request.Context()

	var form domain.CheckoutForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.badRequest(c, "invalid json")
		return
	}

	receipt, err := h.Checkout.CashOnDelivery(ctx, httpx.SessionID(c), form)
	if err != nil {
		h.writeError(c, "CashOnDelivery", err)
		return
	}
	c.JSON(http.StatusOK, receiptView{Receipt: receipt, Toasts: toasts(ctx)})
}
