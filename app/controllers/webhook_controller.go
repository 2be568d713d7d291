package controllers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/planforge/planforge/internal/pkg/billing"
	"github.com/planforge/planforge/internal/pkg/cache"
	"github.com/planforge/planforge/internal/pkg/database"
)

const webhookStatsKeyPrefix = "webhook:stats:"

// HandleBillingWebhook ingests one billing platform delivery. Everything the
// engine acknowledges answers 200 so the platform stops retrying; only a
// failed signature check (400) and persistence failures (500) differ, the
// latter deliberately, because redelivery is the recovery path.
func HandleBillingWebhook(c *fiber.Ctx) error {
	rawBody := append([]byte(nil), c.BodyRaw()...)
	signature := strings.TrimSpace(c.Get(billing.SignatureHeader))
	source := strings.ToLower(strings.TrimSpace(c.Params("source")))

	svc := billing.NewServiceFromDB(database.GetDB())
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	outcome, err := svc.ProcessWebhook(ctx, source, rawBody, signature)
	bumpWebhookCounter(outcome)
	if err != nil {
		if errors.Is(err, billing.ErrInvalidSignature) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid signature"})
		}
		log.Error().Err(err).Str("source", source).Msg("webhook processing failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "persistence_failure"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"received": true})
}

// HandleWebhookStats returns the best-effort outcome counters (admin only).
func HandleWebhookStats(c *fiber.Ctx) error {
	stats := fiber.Map{}
	for _, outcome := range billing.Outcomes {
		count, err := cache.GetInt(webhookStatsKeyPrefix + string(outcome))
		if err != nil {
			count = 0
		}
		stats[string(outcome)] = count
	}
	return c.Status(fiber.StatusOK).JSON(stats)
}

// bumpWebhookCounter increments the outcome counter. Counters are
// observability only; a cache failure must never affect webhook handling.
func bumpWebhookCounter(outcome billing.Outcome) {
	if outcome == "" {
		outcome = "error"
	}
	if _, err := cache.Incr(webhookStatsKeyPrefix + string(outcome)); err != nil {
		log.Debug().Err(err).Str("outcome", string(outcome)).Msg("failed to bump webhook counter")
	}
}
