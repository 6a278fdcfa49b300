package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/Gunvolt24/storefront/internal/checkout"
	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/notify"
	"github.com/Gunvolt24/storefront/pkg/validate"
	"github.com/gin-gonic/gin"
)

// errorBody — ответ с ошибкой; field заполнен для ошибок ввода.
type errorBody struct {
	Error  string         `json:"error"`
	Field  string         `json:"field,omitempty"`
	Toasts []notify.Toast `json:"toasts"`
}

// writeError — маппинг доменных ошибок в HTTP-статусы.
func (h *Handler) writeError(c *gin.Context, op string, err error) {
	ctx := c.Request.Context()
	status, body := classify(err)
	switch {
	case status >= http.StatusInternalServerError:
		h.Log.Errorf(ctx, "%s failed err=%v", op, err)
	case status != http.StatusNotFound:
		h.Log.Warnf(ctx, "%s rejected status=%d err=%v", op, status, err)
	}
	body.Toasts = toasts(ctx)
	c.JSON(status, body)
}

func classify(err error) (int, errorBody) {
	var fe *validate.FieldError
	switch {
	case errors.As(err, &fe):
		return http.StatusBadRequest, errorBody{Error: fe.Message, Field: fe.Field}
	case errors.Is(err, domain.ErrUnknownRegion):
		return http.StatusBadRequest, errorBody{Error: validate.MsgRegionRequired, Field: "region"}
	case errors.Is(err, domain.ErrInvalidStatus), errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, errorBody{Error: err.Error()}
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, errorBody{Error: "not found"}
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, errorBody{Error: "unauthorized"}
	case errors.Is(err, domain.ErrSubmissionInProgress):
		return http.StatusConflict, errorBody{Error: checkout.BusyLabel}
	case errors.Is(err, domain.ErrSubmission):
		return http.StatusBadGateway, errorBody{Error: checkout.MsgSubmissionFailed}
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, errorBody{Error: "timeout"}
	default:
		return http.StatusInternalServerError, errorBody{Error: "internal server error"}
	}
}

// badRequest — тело запроса не разобрано.
func (h *Handler) badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, errorBody{Error: msg, Toasts: toasts(c.Request.Context())})
}

func toasts(ctx context.Context) []notify.Toast {
	t := notify.Collected(ctx)
	if t == nil {
		return []notify.Toast{}
	}
	return t
}
