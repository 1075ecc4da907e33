package send_message

import (
	"context"

	"github.com/glowtress/booking-service/internal/domain"
)

type MessageService interface {
	Post(ctx context.Context, publicID string, sender domain.MessageSender, body string) (*domain.Message, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
