package create_blocked_time

import (
	"context"
	"time"

	"github.com/glowtress/booking-service/internal/domain"
	"github.com/glowtress/booking-service/pkg/types"
)

type BlockedTimeService interface {
	Create(ctx context.Context, date time.Time, start, end types.TimeString, reason string) (*domain.BlockedTime, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
