package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/planforge/planforge/internal/pkg/database"
)

// HandleHealth reports process and database health for load balancers.
func HandleHealth(c *fiber.Ctx) error {
	dbStatus := "up"
	statusCode := fiber.StatusOK

	db := database.GetDB()
	if db == nil {
		dbStatus = "down"
		statusCode = fiber.StatusServiceUnavailable
	} else if sqlDB, err := db.DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "down"
		statusCode = fiber.StatusServiceUnavailable
	}

	status := "ok"
	if dbStatus != "up" {
		status = "degraded"
	}

	return c.Status(statusCode).JSON(fiber.Map{
		"status":   status,
		"database": dbStatus,
	})
}
