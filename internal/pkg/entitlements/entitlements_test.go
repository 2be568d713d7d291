package entitlements

import "testing"

func TestForTier(t *testing.T) {
	free := ForTier(TierFree)
	pro := ForTier(TierPro)

	if free.MaxActiveProjects >= pro.MaxActiveProjects {
		t.Fatalf("expected pro to allow more projects than free")
	}
	if free.AIPlansPerDay >= pro.AIPlansPerDay {
		t.Fatalf("expected pro to allow more AI plans than free")
	}
	if free.PushReminders || !pro.PushReminders {
		t.Fatalf("expected push reminders to be pro-only")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want Tier
	}{
		{in: "free", want: TierFree},
		{in: "pro", want: TierPro},
		{in: "PRO", want: TierPro},
		{in: " pro ", want: TierPro},
		{in: "invalid", want: TierFree},
		{in: "", want: TierFree},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
