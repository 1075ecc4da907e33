package create_service

import (
	"context"

	"github.com/glowtress/booking-service/internal/domain"
	catalogService "github.com/glowtress/booking-service/internal/service/catalog"
)

type CatalogService interface {
	Create(ctx context.Context, req *catalogService.CreateServiceRequest) (*domain.Service, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
