package billing

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

var errMalformedPayload = errors.New("malformed webhook payload")

// EntitlementBlock mirrors one entry of the webhook's entitlements map.
// Timestamps arrive as RFC3339 strings.
type EntitlementBlock struct {
	ExpiresDate            *time.Time `json:"expires_date"`
	GracePeriodExpiresDate *time.Time `json:"grace_period_expires_date"`
	ProductIdentifier      string     `json:"product_identifier"`
}

// WebhookEvent is the event container of one webhook delivery. ID may be
// empty; such events cannot be deduplicated (see ProcessedEvent).
type WebhookEvent struct {
	ID           string                      `json:"id"`
	Type         string                      `json:"type"`
	AppUserID    string                      `json:"app_user_id"`
	ProductID    string                      `json:"product_id"`
	Entitlements map[string]EntitlementBlock `json:"entitlements"`
}

type webhookEnvelope struct {
	APIVersion string        `json:"api_version"`
	Event      *WebhookEvent `json:"event"`
}

// ParseWebhookEvent decodes a raw webhook body. A payload without the event
// container, an event type or a subject id is malformed; per the webhook
// contract such bodies are still acknowledged upstream, so the caller treats
// the error as "log and ack", not as a failure.
func ParseWebhookEvent(raw []byte) (*WebhookEvent, error) {
	var envelope webhookEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, errMalformedPayload
	}

	ev := envelope.Event
	if ev == nil {
		return nil, errMalformedPayload
	}
	ev.ID = strings.TrimSpace(ev.ID)
	ev.Type = strings.TrimSpace(ev.Type)
	ev.AppUserID = strings.TrimSpace(ev.AppUserID)
	if ev.Type == "" || ev.AppUserID == "" {
		return nil, errMalformedPayload
	}
	return ev, nil
}

// EventCategory is the closed set of event classes the tier state machine
// transitions on.
type EventCategory int

const (
	CategoryActivation EventCategory = iota
	CategoryDeactivation
	CategoryProductChange
	CategoryBillingIssue
	CategoryIdentity
	CategoryUnknown
)

func (c EventCategory) String() string {
	switch c {
	case CategoryActivation:
		return "activation"
	case CategoryDeactivation:
		return "deactivation"
	case CategoryProductChange:
		return "product_change"
	case CategoryBillingIssue:
		return "billing_issue"
	case CategoryIdentity:
		return "identity"
	default:
		return "unknown"
	}
}

// Categorize maps a scheme-level event type onto its transition category.
// Types the platform introduces later land in CategoryUnknown and are
// acknowledged without touching account state.
func Categorize(eventType string) EventCategory {
	switch strings.ToUpper(strings.TrimSpace(eventType)) {
	case "INITIAL_PURCHASE", "RENEWAL", "UNCANCELLATION", "SUBSCRIPTION_EXTENDED":
		return CategoryActivation
	case "EXPIRATION", "CANCELLATION":
		return CategoryDeactivation
	case "PRODUCT_CHANGE":
		return CategoryProductChange
	case "BILLING_ISSUE", "SUBSCRIPTION_PAUSED":
		return CategoryBillingIssue
	case "TRANSFER", "SUBSCRIBER_ALIAS":
		return CategoryIdentity
	default:
		return CategoryUnknown
	}
}
