package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fieldforce/sales-agent-api/internal/models"
	"github.com/fieldforce/sales-agent-api/internal/repositories"
)

type DealerHandler struct {
	dealerRepo repositories.DealerRepo
}

func NewDealerHandler(dealerRepo repositories.DealerRepo) *DealerHandler {
	return &DealerHandler{dealerRepo: dealerRepo}
}

// List godoc
// @Summary List dealers
// @Tags Dealers
// @Produce json
// @Param status query string false "Filter by status (active, prospect, inactive)"
// @Success 200 {array} models.Dealer
// @Failure 503 {object} map[string]interface{}
// @Router /api/dealers [get]
func (h *DealerHandler) List(c *fiber.Ctx) error {
	if h.dealerRepo == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "database unavailable",
		})
	}

	dealers, err := h.dealerRepo.List(c.Query("status"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch dealers",
		})
	}
	return c.JSON(dealers)
}

// Create godoc
// @Summary Create a dealer
// @Tags Dealers
// @Accept json
// @Produce json
// @Param dealer body models.CreateDealerRequest true "Dealer data"
// @Success 201 {object} models.Dealer
// @Failure 400 {object} map[string]interface{}
// @Router /api/dealers [post]
func (h *DealerHandler) Create(c *fiber.Ctx) error {
	if h.dealerRepo == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "database unavailable",
		})
	}

	var req models.CreateDealerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "dealer name is required",
		})
	}

	status := req.Status
	if status == "" {
		status = "active"
	}

	dealer := &models.Dealer{
		Name:          req.Name,
		Location:      req.Location,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Email:         req.Email,
		Status:        status,
	}

	if err := h.dealerRepo.Create(dealer); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to create dealer",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(dealer)
}
