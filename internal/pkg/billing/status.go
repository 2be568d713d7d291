package billing

import (
	"time"

	"github.com/planforge/planforge/app/models"
)

// SubscriptionStatus is the read-only projection of account billing state
// served to the mobile client.
type SubscriptionStatus struct {
	Tier      string     `json:"tier"`
	IsPro     bool       `json:"is_pro"`
	IsActive  bool       `json:"is_active"`
	ExpiresAt *time.Time `json:"expires_at"`
	ProductID string     `json:"product_id,omitempty"`
	IsExpired bool       `json:"is_expired"`
}

// StatusForUser projects current account state at now; it mutates nothing.
// A nil expiry counts as non-expiring.
func StatusForUser(u *models.User, now time.Time) SubscriptionStatus {
	st := SubscriptionStatus{
		Tier:      u.Tier,
		IsPro:     u.Tier == models.TierPro,
		ExpiresAt: u.SubscriptionExpiresAt,
		ProductID: u.SubscriptionProductID,
	}
	if u.SubscriptionExpiresAt != nil && !u.SubscriptionExpiresAt.After(now) {
		st.IsExpired = true
	}
	st.IsActive = st.IsPro && !st.IsExpired
	return st
}
