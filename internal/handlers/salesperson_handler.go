package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fieldforce/sales-agent-api/internal/models"
	"github.com/fieldforce/sales-agent-api/internal/services"
)

type SalespersonHandler struct {
	salespersonService *services.SalespersonService
}

func NewSalespersonHandler(salespersonService *services.SalespersonService) *SalespersonHandler {
	return &SalespersonHandler{salespersonService: salespersonService}
}

// List godoc
// @Summary List salespersons
// @Description Returns the persisted roster, or a static fallback roster when the database is unavailable
// @Tags Salespersons
// @Produce json
// @Success 200 {array} models.Salesperson
// @Router /api/salespersons [get]
func (h *SalespersonHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.salespersonService.List())
}

// Create godoc
// @Summary Create a salesperson
// @Tags Salespersons
// @Accept json
// @Produce json
// @Param salesperson body models.CreateSalespersonRequest true "Salesperson data"
// @Success 201 {object} models.Salesperson
// @Failure 400 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/salespersons [post]
func (h *SalespersonHandler) Create(c *fiber.Ctx) error {
	var req models.CreateSalespersonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	salesperson, err := h.salespersonService.Create(&req)
	if err != nil {
		if h.salespersonService.IsUnavailable(err) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "database unavailable",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(salesperson)
}

// Get godoc
// @Summary Get a salesperson by ID
// @Tags Salespersons
// @Produce json
// @Param id path string true "Salesperson ID"
// @Success 200 {object} models.Salesperson
// @Failure 404 {object} map[string]interface{}
// @Router /api/salespersons/{id} [get]
func (h *SalespersonHandler) Get(c *fiber.Ctx) error {
	salesperson, err := h.salespersonService.Get(c.Params("id"))
	if err != nil {
		if h.salespersonService.IsUnavailable(err) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "database unavailable",
			})
		}
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "salesperson not found",
		})
	}
	return c.JSON(salesperson)
}

// Update godoc
// @Summary Update a salesperson
// @Tags Salespersons
// @Accept json
// @Produce json
// @Param id path string true "Salesperson ID"
// @Param salesperson body models.CreateSalespersonRequest true "Salesperson data"
// @Success 200 {object} models.Salesperson
// @Failure 404 {object} map[string]interface{}
// @Router /api/salespersons/{id} [put]
func (h *SalespersonHandler) Update(c *fiber.Ctx) error {
	var req models.CreateSalespersonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	salesperson, err := h.salespersonService.Update(c.Params("id"), &req)
	if err != nil {
		if h.salespersonService.IsUnavailable(err) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "database unavailable",
			})
		}
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "salesperson not found",
		})
	}
	return c.JSON(salesperson)
}

// ContactQR godoc
// @Summary Get a salesperson contact QR code
// @Description Returns the salesperson's contact card as a PNG data URI
// @Tags Salespersons
// @Produce json
// @Param id path string true "Salesperson ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]interface{}
// @Router /api/salespersons/{id}/qr [get]
func (h *SalespersonHandler) ContactQR(c *fiber.Ctx) error {
	id := c.Params("id")

	qr, err := h.salespersonService.ContactQR(id)
	if err != nil {
		if h.salespersonService.IsUnavailable(err) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "database unavailable",
			})
		}
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "salesperson not found",
		})
	}

	return c.JSON(fiber.Map{
		"salesperson_id": id,
		"qr_image":       qr,
	})
}
