package ports

import "context"

// Notifier — короткие уведомления пользователю («тосты»).
type Notifier interface {
	Notify(ctx context.Context, message string)
}
