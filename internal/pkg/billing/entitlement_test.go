package billing

import (
	"testing"
	"time"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestResolveEntitlement_Absent(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	snap := ResolveEntitlement(nil, "pro", now)
	if snap.Active {
		t.Fatalf("expected nil map to resolve inactive")
	}
	snap = ResolveEntitlement(map[string]EntitlementBlock{"plus": {}}, "pro", now)
	if snap.Active {
		t.Fatalf("expected missing entitlement to resolve inactive")
	}
}

func TestResolveEntitlement_Perpetual(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	ents := map[string]EntitlementBlock{
		"pro": {ProductIdentifier: "planforge_pro_lifetime"},
	}

	snap := ResolveEntitlement(ents, "pro", now)
	if !snap.Active {
		t.Fatalf("expected nil expiry to be a perpetual active entitlement")
	}
	if snap.ExpiresAt != nil {
		t.Fatalf("expected nil expiry to stay nil, got %v", snap.ExpiresAt)
	}
	if snap.ProductID != "planforge_pro_lifetime" {
		t.Fatalf("unexpected product id %q", snap.ProductID)
	}
}

func TestResolveEntitlement_FutureExpiry(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	expiry := now.Add(30 * 24 * time.Hour)
	ents := map[string]EntitlementBlock{
		"pro": {ExpiresDate: timePtr(expiry)},
	}

	snap := ResolveEntitlement(ents, "pro", now)
	if !snap.Active {
		t.Fatalf("expected future expiry to be active")
	}
	if snap.ExpiresAt == nil || !snap.ExpiresAt.Equal(expiry) {
		t.Fatalf("expected expiry %v, got %v", expiry, snap.ExpiresAt)
	}
}

func TestResolveEntitlement_PastExpiry(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	ents := map[string]EntitlementBlock{
		"pro": {ExpiresDate: timePtr(now.Add(-time.Hour))},
	}

	if snap := ResolveEntitlement(ents, "pro", now); snap.Active {
		t.Fatalf("expected past expiry without grace to be inactive")
	}
}

func TestResolveEntitlement_ExpiryExactlyNow(t *testing.T) {
	// "in the future" is strictly greater than now, so an entitlement
	// expiring at this instant is already inactive.
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	ents := map[string]EntitlementBlock{
		"pro": {ExpiresDate: timePtr(now)},
	}

	if snap := ResolveEntitlement(ents, "pro", now); snap.Active {
		t.Fatalf("expected expiry at exactly now to be inactive")
	}
}

func TestResolveEntitlement_GracePeriod(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	graceEnd := now.Add(5 * 24 * time.Hour)
	ents := map[string]EntitlementBlock{
		"pro": {
			ExpiresDate:            timePtr(now.Add(-time.Hour)),
			GracePeriodExpiresDate: timePtr(graceEnd),
			ProductIdentifier:      "planforge_pro_monthly",
		},
	}

	snap := ResolveEntitlement(ents, "pro", now)
	if !snap.Active {
		t.Fatalf("expected running grace period to keep entitlement active")
	}
	if snap.ExpiresAt == nil || !snap.ExpiresAt.Equal(graceEnd) {
		t.Fatalf("expected grace end %v as effective expiry, got %v", graceEnd, snap.ExpiresAt)
	}
}

func TestResolveEntitlement_GracePeriodElapsed(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	ents := map[string]EntitlementBlock{
		"pro": {
			ExpiresDate:            timePtr(now.Add(-48 * time.Hour)),
			GracePeriodExpiresDate: timePtr(now.Add(-time.Hour)),
		},
	}

	if snap := ResolveEntitlement(ents, "pro", now); snap.Active {
		t.Fatalf("expected elapsed grace period to be inactive")
	}
}

func TestResolveEntitlement_ConfigurableName(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	ents := map[string]EntitlementBlock{
		"teams": {},
	}

	if snap := ResolveEntitlement(ents, "teams", now); !snap.Active {
		t.Fatalf("expected resolver to honor the configured entitlement name")
	}
	if snap := ResolveEntitlement(ents, "pro", now); snap.Active {
		t.Fatalf("expected other names to stay inactive")
	}
}
