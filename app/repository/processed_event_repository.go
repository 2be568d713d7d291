package repository

import (
	"time"

	"github.com/planforge/planforge/app/models"
	"gorm.io/gorm"
)

type processedEventRepository struct {
	db *gorm.DB
}

// NewProcessedEventRepository creates a new processed event repository instance
func NewProcessedEventRepository(db *gorm.DB) ProcessedEventRepository {
	return &processedEventRepository{db: db}
}

// GetByEventID retrieves one ledger row; used when diagnosing replays.
func (r *processedEventRepository) GetByEventID(source, eventID string) (*models.ProcessedEvent, error) {
	var event models.ProcessedEvent
	err := r.db.Where("source = ? AND event_id = ?", source, eventID).First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// ListRecent returns the newest ledger rows, newest first
func (r *processedEventRepository) ListRecent(limit int) ([]models.ProcessedEvent, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var events []models.ProcessedEvent
	err := r.db.Order("processed_at DESC").Limit(limit).Find(&events).Error
	return events, err
}

// CountSince returns how many events were processed after the given time
func (r *processedEventRepository) CountSince(since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.ProcessedEvent{}).
		Where("processed_at > ?", since).
		Count(&count).Error
	return count, err
}
