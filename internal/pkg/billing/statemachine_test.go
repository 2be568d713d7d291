package billing

import (
	"testing"
	"time"

	"github.com/planforge/planforge/app/models"
)

func TestTransition_Activation(t *testing.T) {
	expiry := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	action := Transition(CategoryActivation, EntitlementSnapshot{
		Active:    true,
		ExpiresAt: &expiry,
		ProductID: "planforge_pro_monthly",
	})

	if !action.Apply || action.Tier != models.TierPro {
		t.Fatalf("expected activation to set pro, got %+v", action)
	}
	if action.ExpiresAt == nil || !action.ExpiresAt.Equal(expiry) {
		t.Fatalf("expected expiry to carry over, got %v", action.ExpiresAt)
	}
	if action.ProductID != "planforge_pro_monthly" {
		t.Fatalf("expected product id to carry over, got %q", action.ProductID)
	}
}

func TestTransition_ActivationWithoutEntitlementIsNoop(t *testing.T) {
	action := Transition(CategoryActivation, EntitlementSnapshot{Active: false})
	if action.Apply {
		t.Fatalf("an activation event without an active entitlement must not downgrade, got %+v", action)
	}
}

func TestTransition_Deactivation(t *testing.T) {
	action := Transition(CategoryDeactivation, EntitlementSnapshot{Active: false})
	if !action.Apply || action.Tier != models.TierFree {
		t.Fatalf("expected deactivation to set free, got %+v", action)
	}
	if action.ExpiresAt != nil || action.ProductID != "" {
		t.Fatalf("expected expiry and product cleared, got %+v", action)
	}
}

func TestTransition_DeactivationWhileStillEntitledIsNoop(t *testing.T) {
	action := Transition(CategoryDeactivation, EntitlementSnapshot{Active: true})
	if action.Apply {
		t.Fatalf("a deactivation event must not downgrade while an entitlement is still active, got %+v", action)
	}
}

func TestTransition_ProductChange(t *testing.T) {
	action := Transition(CategoryProductChange, EntitlementSnapshot{Active: true, ProductID: "planforge_pro_yearly"})
	if !action.Apply || action.Tier != models.TierPro || action.ProductID != "planforge_pro_yearly" {
		t.Fatalf("expected product change to set pro with new product, got %+v", action)
	}

	action = Transition(CategoryProductChange, EntitlementSnapshot{Active: false})
	if !action.Apply || action.Tier != models.TierFree {
		t.Fatalf("expected inactive product change to set free, got %+v", action)
	}
}

func TestTransition_BillingIssue(t *testing.T) {
	graceEnd := time.Date(2026, 8, 6, 12, 0, 0, 0, time.UTC)
	action := Transition(CategoryBillingIssue, EntitlementSnapshot{Active: true, ExpiresAt: &graceEnd})
	if !action.Apply || action.Tier != models.TierPro {
		t.Fatalf("expected billing issue with grace cover to keep pro, got %+v", action)
	}
	if action.ExpiresAt == nil || !action.ExpiresAt.Equal(graceEnd) {
		t.Fatalf("expected grace end as expiry, got %v", action.ExpiresAt)
	}

	action = Transition(CategoryBillingIssue, EntitlementSnapshot{Active: false})
	if !action.Apply || action.Tier != models.TierFree || action.ExpiresAt != nil || action.ProductID != "" {
		t.Fatalf("expected uncovered billing issue to clear to free, got %+v", action)
	}
}

func TestTransition_IdentityAndUnknownAreNoops(t *testing.T) {
	for _, category := range []EventCategory{CategoryIdentity, CategoryUnknown} {
		for _, active := range []bool{true, false} {
			if action := Transition(category, EntitlementSnapshot{Active: active}); action.Apply {
				t.Fatalf("expected %v (active=%v) to be a no-op, got %+v", category, active, action)
			}
		}
	}
}
