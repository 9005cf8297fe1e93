package interfaces

import (
	"context"

	"seyren-notifier/domain/entities"
)

// DeliveryRepository handles notification delivery persistence
type DeliveryRepository interface {
	// Save stores a delivery record
	Save(ctx context.Context, delivery *entities.Delivery) error

	// FindByCheck returns the most recent deliveries for a check, newest first
	FindByCheck(ctx context.Context, checkID string, limit int) ([]entities.Delivery, error)
}
