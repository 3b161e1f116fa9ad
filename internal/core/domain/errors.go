package domain

import (
	"errors"
	"fmt"
)

// Определяем переменные-ошибки, которые могут быть возвращены из Use Cases.
var (
	ErrNotAuthenticated     = errors.New("Not authenticated")
	ErrSessionExpired       = errors.New("session expired")
	ErrNotFound             = errors.New("not found")
	ErrNoSuchStep           = errors.New("no such wizard step")
	ErrConfirmationDeclined = errors.New("confirmation declined")
	ErrLinkUnavailable      = errors.New("link cannot be opened")
	ErrNoCoordinates        = errors.New("Location coordinates not available for this property")
)

// ValidationError - ошибка клиентской валидации формы. Блокирует переход дальше.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// APIError - ответ бэкенда с кодом не 2xx.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

// LinkError - не удалось открыть внешнюю ссылку (WhatsApp, карты, почта).
type LinkError struct {
	URL      string
	Fallback string
	Err      error
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("could not open %s: %v", e.URL, e.Err)
}

func (e *LinkError) Unwrap() error {
	return e.Err
}

// UserMessage возвращает текст для пользователя: detail от сервера,
// текст валидации или fallback.
func UserMessage(err error, fallback string) string {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	if errors.Is(err, ErrNotAuthenticated) {
		return ErrNotAuthenticated.Error()
	}
	return fallback
}
