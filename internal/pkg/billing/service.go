package billing

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/planforge/planforge/app/models"
	"github.com/planforge/planforge/internal/pkg/env"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Config carries the deployment knobs of the webhook engine.
type Config struct {
	// WebhookSecret signs webhook bodies. Empty disables verification, which
	// is only acceptable for development and test environments.
	WebhookSecret string
	// EntitlementName is the entitlement this engine watches. "pro" today;
	// kept configurable so the engine can serve future tiers.
	EntitlementName string
	// Source is the billing platform label accepted on the webhook route.
	Source string
}

// ConfigFromEnv reads the engine configuration from the environment.
func ConfigFromEnv() Config {
	return Config{
		WebhookSecret:   env.GetEnv("BILLING_WEBHOOK_SECRET", ""),
		EntitlementName: env.GetEnv("BILLING_PRO_ENTITLEMENT", "pro"),
		Source:          env.GetEnv("BILLING_SOURCE", models.BillingSourceRevenueCat),
	}
}

// Service synchronizes account tiers from billing platform webhooks.
type Service struct {
	repo Repository
	cfg  Config
	now  func() time.Time
}

// NewService creates a webhook engine from an injected repository.
func NewService(repo Repository, cfg Config) *Service {
	if strings.TrimSpace(cfg.EntitlementName) == "" {
		cfg.EntitlementName = "pro"
	}
	if strings.TrimSpace(cfg.Source) == "" {
		cfg.Source = models.BillingSourceRevenueCat
	}
	return &Service{repo: repo, cfg: cfg, now: time.Now}
}

// NewServiceFromDB creates a webhook engine from a GORM DB handle, configured
// from the environment.
func NewServiceFromDB(db *gorm.DB) *Service {
	return NewService(NewRepository(db), ConfigFromEnv())
}

// ProcessWebhook runs one webhook delivery through the full pipeline:
// signature gate, parse, dedup lookup, account lookup, tier transition,
// ledger insert. Ledger insert and tier update share one transaction; a
// losing insert on the unique (source, event_id) index means a concurrent
// delivery already handled the event and the whole transaction rolls back.
//
// The returned error is nil for every acknowledged outcome. ErrInvalidSignature
// maps to a 400 at the boundary; anything else is a persistence failure and
// maps to a 5xx so the platform redelivers.
func (s *Service) ProcessWebhook(ctx context.Context, source string, rawBody []byte, signature string) (Outcome, error) {
	_ = ctx

	if s.cfg.WebhookSecret == "" {
		log.Warn().Msg("billing webhook secret not configured, skipping signature verification")
	} else if !VerifyWebhookSignature(rawBody, signature, s.cfg.WebhookSecret) {
		log.Warn().Str("source", source).Msg("rejected webhook with invalid signature")
		return OutcomeRejected, ErrInvalidSignature
	}

	ev, err := ParseWebhookEvent(rawBody)
	if err != nil {
		log.Warn().Str("source", source).Msg("acknowledged malformed webhook payload")
		return OutcomeMalformed, nil
	}

	src := strings.ToLower(strings.TrimSpace(source))
	if src == "" {
		src = s.cfg.Source
	}
	if src != s.cfg.Source {
		log.Warn().Str("source", src).Str("event_type", ev.Type).Msg("acknowledged webhook from unconfigured source")
		return OutcomeIgnored, nil
	}

	// Fast-path dedup lookup. The unique index checked again inside the
	// transaction below remains the source of truth; events without an id
	// are reprocessed on every delivery, matching the platform's own
	// guarantees.
	if ev.ID != "" {
		processed, err := s.repo.HasProcessedEvent(src, ev.ID)
		if err != nil {
			return "", err
		}
		if processed {
			log.Info().Str("source", src).Str("event_id", ev.ID).Msg("skipping already processed event")
			return OutcomeDuplicate, nil
		}
	}

	user, err := s.repo.GetUserByUUID(ev.AppUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn().Str("app_user_id", ev.AppUserID).Str("event_type", ev.Type).Msg("no account for webhook subject")
			return OutcomeUnknownAccount, nil
		}
		return "", err
	}

	category := Categorize(ev.Type)
	snap := ResolveEntitlement(ev.Entitlements, s.cfg.EntitlementName, s.now())
	action := Transition(category, snap)

	err = s.repo.Transaction(func(txRepo Repository) error {
		if ev.ID != "" {
			created, err := txRepo.CreateProcessedEventIfNew(&models.ProcessedEvent{
				Source:    src,
				EventID:   ev.ID,
				EventType: ev.Type,
				Payload:   string(rawBody),
			})
			if err != nil {
				return err
			}
			if !created {
				// A concurrent delivery won the insert; its transaction
				// owns the side effects.
				return ErrDuplicateEvent
			}
		}
		if action.Apply {
			return txRepo.UpdateUserTier(user.ID, action.Tier, action.ExpiresAt, action.ProductID)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateEvent) {
			return OutcomeDuplicate, nil
		}
		return "", err
	}

	outcome := OutcomeProcessed
	if category == CategoryIdentity || category == CategoryUnknown {
		outcome = OutcomeIgnored
	}
	log.Info().
		Str("source", src).
		Str("event_id", ev.ID).
		Str("event_type", ev.Type).
		Str("category", category.String()).
		Str("app_user_id", ev.AppUserID).
		Bool("entitlement_active", snap.Active).
		Bool("tier_changed", action.Apply).
		Str("outcome", string(outcome)).
		Msg("processed billing webhook")
	return outcome, nil
}
