package billing

import (
	"time"

	"github.com/planforge/planforge/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository provides the DB operations the webhook engine needs: an account
// store (point lookup, single-row tier update) and the processed-event ledger
// (exists-by-id, unique-constrained insert).
type Repository interface {
	GetUserByUUID(appUserID string) (*models.User, error)
	UpdateUserTier(userID uint, tier string, expiresAt *time.Time, productID string) error
	HasProcessedEvent(source, eventID string) (bool, error)
	// CreateProcessedEventIfNew inserts a ledger row and reports whether it
	// was created. A uniqueness conflict is not an error; it means another
	// delivery of the same event already holds the row.
	CreateProcessedEventIfNew(event *models.ProcessedEvent) (bool, error)
	// Transaction runs fn against a repository bound to one DB transaction,
	// so ledger insert and tier update commit or roll back together.
	Transaction(fn func(Repository) error) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a billing repository backed by GORM.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) GetUserByUUID(appUserID string) (*models.User, error) {
	var user models.User
	err := r.db.Where("uuid = ?", appUserID).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *gormRepository) UpdateUserTier(userID uint, tier string, expiresAt *time.Time, productID string) error {
	updates := map[string]interface{}{
		"tier":                    tier,
		"subscription_expires_at": expiresAt,
	}
	if productID == "" {
		updates["subscription_product_id"] = nil
	} else {
		updates["subscription_product_id"] = productID
	}
	return r.db.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error
}

func (r *gormRepository) HasProcessedEvent(source, eventID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.ProcessedEvent{}).
		Where("source = ? AND event_id = ?", source, eventID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *gormRepository) CreateProcessedEventIfNew(event *models.ProcessedEvent) (bool, error) {
	tx := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "source"},
			{Name: "event_id"},
		},
		DoNothing: true,
	}).Create(event)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *gormRepository) Transaction(fn func(Repository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&gormRepository{db: tx})
	})
}
