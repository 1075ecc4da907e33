package update_service

import (
	"context"

	"github.com/glowtress/booking-service/internal/domain"
	catalogService "github.com/glowtress/booking-service/internal/service/catalog"
)

type CatalogService interface {
	Update(ctx context.Context, id int64, req *catalogService.CreateServiceRequest) (*domain.Service, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
