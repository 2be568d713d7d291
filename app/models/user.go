package models

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ROLE_USER       = "user"
	ROLE_ADMIN      = "admin"
	STATUS_ACTIVE   = "active"
	STATUS_INACTIVE = "inactive"
	STATUS_DISABLED = "disabled"
)

// Account tiers. Tier is the only piece of billing state this service owns;
// everything else about a user belongs to the main PlanForge backend.
const (
	TierFree = "free"
	TierPro  = "pro"
)

type User struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UUID   string `gorm:"type:char(36);uniqueIndex" json:"uuid"`
	Name   string `gorm:"type:varchar(150)" json:"name" validate:"required,min=3,max=150"`
	Email  string `gorm:"uniqueIndex;type:varchar(200) CHARACTER SET utf8 COLLATE utf8_bin" json:"email" validate:"required,email,min=5,max=200"`
	Role   string `gorm:"type:varchar(50);default:'user'" json:"role" validate:"oneof=user admin"`
	Status string `gorm:"type:varchar(50);default:'active'" json:"status" validate:"oneof=active inactive disabled"`
	Tier   string `gorm:"type:varchar(20);not null;default:'free';index" json:"tier" validate:"oneof=free pro"`
	// SubscriptionExpiresAt is null for perpetual entitlements.
	SubscriptionExpiresAt *time.Time `gorm:"type:timestamp;default:null" json:"subscription_expires_at,omitempty"`
	// SubscriptionProductID is the last product the billing platform reported.
	SubscriptionProductID string         `gorm:"type:varchar(191);default:null" json:"subscription_product_id,omitempty"`
	APIKeyHash            string         `gorm:"type:char(64);default:'';index" json:"-"`
	APIKeyCreatedAt       *time.Time     `gorm:"type:timestamp;default:null" json:"-"`
	LastLoginAt           *time.Time     `gorm:"type:timestamp;default:null" json:"last_login_at"`
	CreatedAt             time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt             gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) Validate() error {
	v := validator.New()

	return v.Struct(u)
}

// BeforeCreate assigns the public UUID used as the billing platform's
// app user id. The mobile client registers purchases under this value.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if strings.TrimSpace(u.UUID) == "" {
		u.UUID = uuid.NewString()
	}
	return nil
}

// IsPro reports whether the account currently sits on the pro tier. Expiry is
// not consulted here; callers that care use the subscription status projection.
func (u *User) IsPro() bool {
	return u != nil && u.Tier == TierPro
}

// HashAPIKey returns the hex SHA-256 digest stored for API key lookups.
func HashAPIKey(raw string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(raw)))
	return hex.EncodeToString(sum[:])
}
