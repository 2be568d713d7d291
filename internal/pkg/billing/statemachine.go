package billing

import (
	"time"

	"github.com/planforge/planforge/app/models"
)

// TierAction describes what one transition does to the account row. Apply
// false means the event leaves account state untouched.
type TierAction struct {
	Apply     bool
	Tier      string
	ExpiresAt *time.Time
	ProductID string
}

// Transition is the tier state machine: event category x resolved entitlement
// to target tier. It is total over EventCategory; every arm only asserts what
// its own event class entitles it to, which keeps reordered deliveries from
// clobbering each other:
//   - an activation event without an active entitlement never downgrades
//   - a deactivation event never downgrades while another entitlement (or a
//     grace period) still covers the user
//   - identity and unrecognized events never mutate state
func Transition(category EventCategory, snap EntitlementSnapshot) TierAction {
	switch category {
	case CategoryActivation:
		if !snap.Active {
			return TierAction{}
		}
		return TierAction{Apply: true, Tier: models.TierPro, ExpiresAt: snap.ExpiresAt, ProductID: snap.ProductID}
	case CategoryDeactivation:
		if snap.Active {
			return TierAction{}
		}
		return TierAction{Apply: true, Tier: models.TierFree}
	case CategoryProductChange:
		if snap.Active {
			return TierAction{Apply: true, Tier: models.TierPro, ExpiresAt: snap.ExpiresAt, ProductID: snap.ProductID}
		}
		return TierAction{Apply: true, Tier: models.TierFree}
	case CategoryBillingIssue:
		// Active here usually means "covered by the grace period"; the
		// resolver already substituted the grace end as the expiry.
		if snap.Active {
			return TierAction{Apply: true, Tier: models.TierPro, ExpiresAt: snap.ExpiresAt, ProductID: snap.ProductID}
		}
		return TierAction{Apply: true, Tier: models.TierFree}
	case CategoryIdentity, CategoryUnknown:
		return TierAction{}
	}
	return TierAction{}
}
