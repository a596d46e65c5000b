package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/serenity-space/serenity_api/dto"
	"github.com/serenity-space/serenity_api/shared"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// @Summary API status
// @Description Liveness payload under the API prefix
// @Tags health
// @Produce json
// @Success 200 {object} dto.StatusResponse
// @Router /api/ [get]
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return shared.ResponseOK(c, dto.StatusResponse{
		Message: "Serenity Space API",
		Status:  "running",
	})
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Produce json
// @Success 200 {object} shared.Response{data=string}
// @Router /ping [get]
func (h *HealthHandler) Ping(c *fiber.Ctx) error {
	c.Set(fiber.HeaderCacheControl, "max-age=10")

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", "pong")
}
