package get_client

import (
	"context"

	"github.com/glowtress/booking-service/internal/domain"
)

type ClientService interface {
	Get(ctx context.Context, id int64) (*domain.Client, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
