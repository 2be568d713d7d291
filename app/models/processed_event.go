package models

import "time"

// Billing source labels. Only one platform is integrated today; the column
// exists so a second one can be added without event id collisions.
const (
	BillingSourceRevenueCat = "revenuecat"
)

// ProcessedEvent is the idempotency ledger for billing webhook events. The
// unique (source, event_id) index is the contract that makes redelivery a
// no-op; rows are never updated or deleted. Events that arrive without an
// event id are not recorded here and are reprocessed on every delivery.
type ProcessedEvent struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Source      string    `gorm:"type:varchar(20);not null;index:ux_processed_events_source_event,unique,priority:1" json:"source"`
	EventID     string    `gorm:"type:varchar(191);not null;index:ux_processed_events_source_event,unique,priority:2" json:"event_id"`
	EventType   string    `gorm:"type:varchar(100);not null;index" json:"event_type"`
	Payload     string    `gorm:"type:longtext;not null" json:"payload"`
	ProcessedAt time.Time `gorm:"autoCreateTime;index" json:"processed_at"`
}
