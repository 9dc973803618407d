package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fieldforce/sales-agent-api/internal/database"
)

type HealthHandler struct {
	db *database.DB
}

func NewHealthHandler(db *database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// GetHealth godoc
// @Summary Service health check
// @Description Check if the API is alive and whether the database is reachable
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	dbStatus := "unavailable"
	if h.db != nil {
		if err := h.db.Ping(); err == nil {
			dbStatus = "ok"
		}
	}

	return c.JSON(fiber.Map{
		"status":   "ok",
		"service":  "sales-agent-api",
		"database": dbStatus,
	})
}
