package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/biztime/api/internal/application/dto"
	"github.com/biztime/api/internal/application/usecase"
)

// IndustryHandler serves the industry routes.
type IndustryHandler struct {
	uc *usecase.IndustryUseCase
}

// NewIndustryHandler builds the handler with its use case.
func NewIndustryHandler(uc *usecase.IndustryUseCase) *IndustryHandler {
	return &IndustryHandler{uc: uc}
}

// List handles GET /industries.
func (h *IndustryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create handles POST /industries.
func (h *IndustryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateIndustryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
