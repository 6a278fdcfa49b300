// Пакет ctxmeta — метаданные запроса в context.Context (request_id, session_id, trace_id).
// HTTP-слой кладёт, логгер и сервисы читают; друг о друге они не знают.
package ctxmeta

import "context"

type ctxKey string

const (
	// Ключи контекста (неэкспортируемые типы — чтобы избежать коллизий).
	KeyRequestID ctxKey = "request_id"
	KeySessionID ctxKey = "session_id"
)

// WithRequestID кладёт request_id в контекст (если пусто — ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(KeyRequestID).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithSessionID кладёт id сессии покупателя (cookie sid) в контекст.
func WithSessionID(ctx context.Context, sid string) context.Context {
	if ctx == nil || sid == "" {
		return ctx
	}
	return context.WithValue(ctx, KeySessionID, sid)
}

// SessionIDFromContext достаёт id сессии покупателя.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(KeySessionID).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
