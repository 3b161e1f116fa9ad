package cli

import (
	"aimlink-client/internal/core/domain"
	"context"
	"errors"
	"fmt"
	"io"
)

// Alert - ошибка, уже переведенная в текст для пользователя.
type Alert struct {
	Title   string
	Message string
	Err     error
}

func (a *Alert) Error() string {
	if a.Title == "" {
		return a.Message
	}
	return a.Title + ": " + a.Message
}

func (a *Alert) Unwrap() error {
	return a.Err
}

// alert переводит ошибку use case в сообщение. fallback - текст для непредвиденных ошибок.
func alert(err error, fallback string) error {
	if err == nil {
		return nil
	}
	var linkErr *domain.LinkError
	switch {
	case errors.Is(err, domain.ErrSessionExpired):
		return &Alert{Title: domain.MsgSessionExpiredTitle, Message: domain.MsgSessionExpired, Err: err}
	case errors.Is(err, domain.ErrNotAuthenticated):
		return &Alert{Title: "Error", Message: "Not authenticated. Please login first.", Err: err}
	case errors.Is(err, context.Canceled):
		return &Alert{Message: "Cancelled", Err: err}
	case errors.As(err, &linkErr) && linkErr.Fallback != "":
		return &Alert{Title: "Contact Us", Message: linkErr.Fallback, Err: err}
	}
	return &Alert{Title: "Error", Message: domain.UserMessage(err, fallback), Err: err}
}

// declined печатает отмену. Отказ от подтверждения не считается ошибкой команды.
func declined(out io.Writer, err error) bool {
	if errors.Is(err, domain.ErrConfirmationDeclined) {
		fmt.Fprintln(out, "Cancelled")
		return true
	}
	return false
}
