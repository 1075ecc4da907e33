package list_services

import (
	"context"

	"github.com/glowtress/booking-service/internal/domain"
)

type CatalogService interface {
	List(ctx context.Context, activeOnly bool) ([]*domain.Service, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
