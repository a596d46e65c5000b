package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/serenity-space/serenity_api/dto"
	"github.com/serenity-space/serenity_api/shared"
)

// parseBody decodes and validates a JSON body. When it reports false the
// handler returns the error as is; validation failures are already written
// as 422.
func parseBody(c *fiber.Ctx, req dto.Validator) (bool, error) {
	if err := c.BodyParser(req); err != nil {
		return false, shared.NewBadRequestError(err, "Invalid request body")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return false, c.Status(fiber.StatusUnprocessableEntity).JSON(validationResp)
	}
	return true, nil
}

func userID(c *fiber.Ctx) string {
	return shared.UserIDOrAnonymous(c.Query(shared.UserID))
}
