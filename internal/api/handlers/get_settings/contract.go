package get_settings

import (
	"context"

	"github.com/glowtress/booking-service/internal/domain"
)

type SettingsService interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
