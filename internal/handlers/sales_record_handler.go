package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/fieldforce/sales-agent-api/internal/models"
	"github.com/fieldforce/sales-agent-api/internal/services"
)

type SalesRecordHandler struct {
	recordService *services.SalesRecordService
}

func NewSalesRecordHandler(recordService *services.SalesRecordService) *SalesRecordHandler {
	return &SalesRecordHandler{recordService: recordService}
}

// List godoc
// @Summary List sales records
// @Tags SalesRecords
// @Produce json
// @Param salesperson_id query string false "Filter by salesperson"
// @Success 200 {array} models.SalesRecord
// @Failure 503 {object} map[string]interface{}
// @Router /api/sales-records [get]
func (h *SalesRecordHandler) List(c *fiber.Ctx) error {
	records, err := h.recordService.List(c.Query("salesperson_id"))
	if err != nil {
		if errors.Is(err, services.ErrStoreUnavailable) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "database unavailable",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch sales records",
		})
	}
	return c.JSON(records)
}

// Create godoc
// @Summary Record a sale
// @Description Records a sale; the commission amount is computed from the amount and rate
// @Tags SalesRecords
// @Accept json
// @Produce json
// @Param record body models.CreateSalesRecordRequest true "Sales record data"
// @Success 201 {object} models.SalesRecord
// @Failure 400 {object} map[string]interface{}
// @Router /api/sales-records [post]
func (h *SalesRecordHandler) Create(c *fiber.Ctx) error {
	var req models.CreateSalesRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	record, err := h.recordService.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrStoreUnavailable) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "database unavailable",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}
