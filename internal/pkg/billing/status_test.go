package billing

import (
	"testing"
	"time"

	"github.com/planforge/planforge/app/models"
)

func TestStatusForUser_FreeTier(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	st := StatusForUser(&models.User{Tier: models.TierFree}, now)

	if st.IsPro || st.IsActive || st.IsExpired {
		t.Fatalf("expected free tier to be inactive, got %+v", st)
	}
	if st.Tier != models.TierFree {
		t.Fatalf("unexpected tier %q", st.Tier)
	}
}

func TestStatusForUser_ProPerpetual(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	st := StatusForUser(&models.User{Tier: models.TierPro, SubscriptionProductID: "planforge_pro_lifetime"}, now)

	if !st.IsPro || !st.IsActive || st.IsExpired {
		t.Fatalf("expected perpetual pro to be active, got %+v", st)
	}
	if st.ExpiresAt != nil {
		t.Fatalf("expected nil expiry, got %v", st.ExpiresAt)
	}
}

func TestStatusForUser_ProExpired(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	st := StatusForUser(&models.User{Tier: models.TierPro, SubscriptionExpiresAt: &past}, now)

	if !st.IsPro {
		t.Fatalf("tier projection should still report pro, got %+v", st)
	}
	if st.IsActive || !st.IsExpired {
		t.Fatalf("expected expired pro to be inactive, got %+v", st)
	}
}

func TestStatusForUser_ProFutureExpiry(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)
	st := StatusForUser(&models.User{Tier: models.TierPro, SubscriptionExpiresAt: &future}, now)

	if !st.IsActive || st.IsExpired {
		t.Fatalf("expected future expiry to be active, got %+v", st)
	}
}
