package services

import (
	"errors"
	"fmt"
)

// ErrNotReady — заявка пришла без действующей анонимной сессии.
// UI в этом состоянии блокирует отправку, но сервис отклоняет и сам.
var ErrNotReady = errors.New("identity not ready")

// BelowMinimumError несёт настроенный минимум, чтобы показать его клиенту.
type BelowMinimumError struct {
	Minimum  float64
	Currency string
}

func (e *BelowMinimumError) Error() string {
	return fmt.Sprintf("amount is below the minimum investment of %.0f %s", e.Minimum, e.Currency)
}

type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required field %q is missing or malformed", e.Field)
}

// PersistenceFailedError — единственная ошибка, возможная после начала
// сетевого вызова; причина логируется, наружу уходит общий текст.
type PersistenceFailedError struct {
	Err error
}

func (e *PersistenceFailedError) Error() string {
	return "failed to persist submission"
}

func (e *PersistenceFailedError) Unwrap() error {
	return e.Err
}
