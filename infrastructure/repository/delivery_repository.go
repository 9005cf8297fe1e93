// Package repository provides gorm-backed persistence for notification deliveries.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"seyren-notifier/domain/entities"
	"seyren-notifier/domain/errors"
	"seyren-notifier/domain/interfaces"
)

// deliveryRecord is the row stored for each notification attempt
type deliveryRecord struct {
	ID               string    `gorm:"type:uuid;primaryKey"`
	CheckID          string    `gorm:"size:64;not null;index:idx_deliveries_check_created,priority:1"`
	CheckName        string    `gorm:"size:255"`
	State            string    `gorm:"size:16;not null"`
	SubscriptionID   string    `gorm:"size:64"`
	SubscriptionType string    `gorm:"size:32;not null"`
	Target           string    `gorm:"size:512"`
	Channel          string    `gorm:"size:32;not null"`
	Status           string    `gorm:"size:16;not null"`
	Error            string    `gorm:"type:text"`
	DurationMs       int64     `gorm:"not null"`
	CreatedAt        time.Time `gorm:"not null;index:idx_deliveries_check_created,priority:2"`
}

// TableName returns the table deliveries are stored in
func (deliveryRecord) TableName() string {
	return "notification_deliveries"
}

// deliveryRepository implements the DeliveryRepository interface
type deliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository creates a new delivery repository
func NewDeliveryRepository(db *gorm.DB) interfaces.DeliveryRepository {
	return &deliveryRepository{db: db}
}

// Migrate creates or updates the deliveries table
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&deliveryRecord{}); err != nil {
		return &errors.RepositoryError{
			Operation: "Migrate",
			Entity:    "Delivery",
			Err:       err,
		}
	}
	return nil
}

// Save stores a delivery, assigning an ID and timestamp when missing
func (r *deliveryRepository) Save(ctx context.Context, delivery *entities.Delivery) error {
	if delivery.ID == "" {
		delivery.ID = uuid.NewString()
	}
	if delivery.CreatedAt.IsZero() {
		delivery.CreatedAt = time.Now().UTC()
	}

	record := toRecord(delivery)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return &errors.RepositoryError{
			Operation: "Save",
			Entity:    "Delivery",
			Err:       err,
		}
	}
	return nil
}

// FindByCheck returns deliveries of a check, newest first
func (r *deliveryRepository) FindByCheck(ctx context.Context, checkID string, limit int) ([]entities.Delivery, error) {
	var records []deliveryRecord

	query := r.db.WithContext(ctx).
		Where("check_id = ?", checkID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&records).Error; err != nil {
		return nil, &errors.RepositoryError{
			Operation: "FindByCheck",
			Entity:    "Delivery",
			Err:       err,
		}
	}

	deliveries := make([]entities.Delivery, 0, len(records))
	for _, record := range records {
		deliveries = append(deliveries, record.toEntity())
	}

	return deliveries, nil
}

func toRecord(d *entities.Delivery) deliveryRecord {
	return deliveryRecord{
		ID:               d.ID,
		CheckID:          d.CheckID,
		CheckName:        d.CheckName,
		State:            string(d.State),
		SubscriptionID:   d.SubscriptionID,
		SubscriptionType: string(d.SubscriptionType),
		Target:           d.Target,
		Channel:          d.Channel,
		Status:           string(d.Status),
		Error:            d.Error,
		DurationMs:       d.Duration.Milliseconds(),
		CreatedAt:        d.CreatedAt,
	}
}

func (r deliveryRecord) toEntity() entities.Delivery {
	return entities.Delivery{
		ID:               r.ID,
		CheckID:          r.CheckID,
		CheckName:        r.CheckName,
		State:            entities.AlertType(r.State),
		SubscriptionID:   r.SubscriptionID,
		SubscriptionType: entities.SubscriptionType(r.SubscriptionType),
		Target:           r.Target,
		Channel:          r.Channel,
		Status:           entities.DeliveryStatus(r.Status),
		Error:            r.Error,
		Duration:         time.Duration(r.DurationMs) * time.Millisecond,
		CreatedAt:        r.CreatedAt,
	}
}
