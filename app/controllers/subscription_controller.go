package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/planforge/planforge/app/repository"
	"github.com/planforge/planforge/internal/pkg/billing"
	"github.com/planforge/planforge/internal/pkg/entitlements"
	"github.com/planforge/planforge/internal/pkg/usercontext"
)

// HandleSubscriptionStatus returns the authenticated user's tier projection
// plus the feature limits for it. Pure read, no mutation.
func HandleSubscriptionStatus(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	if !userCtx.IsLoggedIn {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized", "message": "login required"})
	}

	repo := repository.GetGlobalFactory().GetUserRepository()
	user, err := repo.GetByID(userCtx.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "user not found"})
		}
		log.Error().Err(err).Uint("user_id", userCtx.UserID).Msg("subscription status lookup failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error"})
	}

	status := billing.StatusForUser(user, time.Now())
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"tier":       status.Tier,
		"is_pro":     status.IsPro,
		"is_active":  status.IsActive,
		"expires_at": formatTimePtr(status.ExpiresAt),
		"product_id": status.ProductID,
		"is_expired": status.IsExpired,
		"limits":     entitlements.ForTier(entitlements.Normalize(status.Tier)),
	})
}
