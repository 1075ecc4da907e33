package list_blocked_times

import (
	"context"
	"time"

	"github.com/glowtress/booking-service/internal/domain"
)

type BlockedTimeService interface {
	ListByDate(ctx context.Context, date time.Time) ([]*domain.BlockedTime, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
