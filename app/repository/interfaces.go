package repository

import (
	"time"

	"github.com/planforge/planforge/app/models"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUUID(uuid string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByAPIKeyHash(hash string) (*models.User, error)
	Update(user *models.User) error
	Count() (int64, error)
}

// ProcessedEventRepository gives operators read access to the webhook audit
// ledger. Rows are only ever written by the billing engine.
type ProcessedEventRepository interface {
	GetByEventID(source, eventID string) (*models.ProcessedEvent, error)
	ListRecent(limit int) ([]models.ProcessedEvent, error)
	CountSince(since time.Time) (int64, error)
}
