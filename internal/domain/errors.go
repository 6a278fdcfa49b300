package domain

import (
	"errors"
	"fmt"
)

// Базовые (sentinel) ошибки предметной области. Проверяются через errors.Is.
var (
	ErrValidation           = errors.New("validation failed")
	ErrUnknownRegion        = errors.New("unknown region")
	ErrSubmission           = errors.New("order submission failed")
	ErrNotFound             = errors.New("not found")
	ErrSubmissionInProgress = errors.New("submission already in progress")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrUnauthorized         = errors.New("unauthorized")
)

// SubmissionError — внешний канал недоступен или отклонил заказ.
// Корзина при этом сохраняется, пользователь может повторить попытку.
type SubmissionError struct {
	Channel Channel
	Err     error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submit via %s: %v", e.Channel, e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// Is — SubmissionError всегда сопоставляется с ErrSubmission.
func (e *SubmissionError) Is(target error) bool { return target == ErrSubmission }
