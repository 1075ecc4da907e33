package list_messages

import (
	"context"

	"github.com/glowtress/booking-service/internal/domain"
)

type MessageService interface {
	ListThread(ctx context.Context, publicID string) ([]*domain.Message, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
