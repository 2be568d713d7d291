package entitlements

import (
	"strings"

	"github.com/planforge/planforge/app/models"
)

type Tier string

const (
	TierFree Tier = "free"
	TierPro  Tier = "pro"
)

// Limits are the per-tier allowances the mobile client renders paywalls
// against. Enforcement lives in the main PlanForge backend; this service only
// reports them alongside the subscription status so the client needs no
// second round trip.
type Limits struct {
	MaxActiveProjects int  `json:"max_active_projects"`
	AIPlansPerDay     int  `json:"ai_plans_per_day"`
	PushReminders     bool `json:"push_reminders"`
}

// ForTier returns the feature allowances of a tier.
func ForTier(tier Tier) Limits {
	switch tier {
	case TierPro:
		return Limits{MaxActiveProjects: 50, AIPlansPerDay: 20, PushReminders: true}
	default:
		return Limits{MaxActiveProjects: 3, AIPlansPerDay: 1, PushReminders: false}
	}
}

// Normalize maps arbitrary input onto a known tier, defaulting to free.
func Normalize(raw string) Tier {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case models.TierPro:
		return TierPro
	default:
		return TierFree
	}
}
