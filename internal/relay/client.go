package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var _ ports.FormRelay = (*Client)(nil)

// ErrRejected — relay ответил, но заявку не принял.
var ErrRejected = errors.New("form relay rejected submission")

const maxResponseBody = 64 << 10

// Ключи тела запроса, ожидаемые form-relay.
const (
	keySubject      = "_subject"
	keyCaptcha      = "_captcha"
	keyTemplate     = "_template"
	keyCustomerData = "بيانات العميل"
	keyOrderDetails = "تفاصيل الطلب"
)

// Client — JSON-клиент form-relay (FormSubmit-совместимый AJAX endpoint).
type Client struct {
	endpoint string
	http     *http.Client
	log      ports.Logger
}

// NewClient — http-клиент с таймаутом и otel-транспортом.
func NewClient(endpoint string, timeout time.Duration, log ports.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		log: log,
	}
}

// Submit — POST JSON; успех только при 2xx и отсутствии явного отказа в теле ответа.
func (c *Client) Submit(ctx context.Context, msg domain.RelayMessage) error {
	body, err := json.Marshal(map[string]string{
		keySubject:      msg.Subject,
		keyCaptcha:      "false",
		keyTemplate:     "table",
		keyCustomerData: msg.CustomerData,
		keyOrderDetails: msg.OrderDetails,
	})
	if err != nil {
		return fmt.Errorf("encode relay body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("relay request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
	}
	if reason, rejected := parseRejection(raw); rejected {
		return fmt.Errorf("%w: %s", ErrRejected, reason)
	}

	c.log.Infof(ctx, "relay accepted status=%d", resp.StatusCode)
	return nil
}

// parseRejection — FormSubmit отвечает {"success":"false","message":...} даже с кодом 200.
func parseRejection(raw []byte) (string, bool) {
	var r struct {
		Success any    `json:"success"`
		Message string `json:"message"`
	}
	if len(raw) == 0 || json.Unmarshal(raw, &r) != nil {
		return "", false
	}
	switch v := r.Success.(type) {
	case bool:
		return r.Message, !v
	case string:
		return r.Message, v == "false"
	}
	return "", false
}
