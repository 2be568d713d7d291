package billing

import "time"

// EntitlementSnapshot is the per-event view of one named entitlement. It is
// derived fresh for every delivery and never persisted or cached.
type EntitlementSnapshot struct {
	Active               bool
	ExpiresAt            *time.Time
	GracePeriodExpiresAt *time.Time
	ProductID            string
}

// ResolveEntitlement decides whether the named entitlement is active at now.
// A nil expiry means a perpetual grant. An expired entitlement whose grace
// period still runs stays active through the grace end, which then becomes
// the effective expiry; the account is pro through the grace period, not
// past it.
func ResolveEntitlement(entitlements map[string]EntitlementBlock, name string, now time.Time) EntitlementSnapshot {
	block, ok := entitlements[name]
	if !ok {
		return EntitlementSnapshot{}
	}

	snap := EntitlementSnapshot{
		ExpiresAt:            block.ExpiresDate,
		GracePeriodExpiresAt: block.GracePeriodExpiresDate,
		ProductID:            block.ProductIdentifier,
	}

	switch {
	case block.ExpiresDate == nil:
		snap.Active = true
	case block.ExpiresDate.After(now):
		snap.Active = true
	case block.GracePeriodExpiresDate != nil && block.GracePeriodExpiresDate.After(now):
		snap.Active = true
		snap.ExpiresAt = block.GracePeriodExpiresDate
	}
	return snap
}
