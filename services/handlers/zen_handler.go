package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/serenity-space/serenity_api/dto"
	"github.com/serenity-space/serenity_api/shared"
)

type ZenHandler struct {
	zenSvc ZenServiceInterface
}

func NewZenHandler(zenSvc ZenServiceInterface) *ZenHandler {
	return &ZenHandler{
		zenSvc: zenSvc,
	}
}

// @Summary Log zen session
// @Tags zen
// @Accept json
// @Produce json
// @Param user_id query string false "User id" default(anonymous)
// @Param request body dto.CreateZenSessionRequest true "Session"
// @Success 200 {object} model.ZenSession
// @Failure 422 {object} dto.ValidationErrorResponse
// @Router /api/zen-sessions [post]
func (h *ZenHandler) CreateSession(c *fiber.Ctx) error {
	var req dto.CreateZenSessionRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	session, err := h.zenSvc.CreateSession(c.UserContext(), userID(c), req)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, session)
}

// @Summary List zen sessions
// @Tags zen
// @Produce json
// @Param user_id query string false "User id" default(anonymous)
// @Success 200 {array} model.ZenSession
// @Router /api/zen-sessions [get]
func (h *ZenHandler) ListSessions(c *fiber.Ctx) error {
	sessions, err := h.zenSvc.ListSessions(c.UserContext(), userID(c))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, sessions)
}
