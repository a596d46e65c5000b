package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/serenity-space/serenity_api/dto"
	"github.com/serenity-space/serenity_api/shared"
)

type CBTHandler struct {
	cbtSvc CBTServiceInterface
}

func NewCBTHandler(cbtSvc CBTServiceInterface) *CBTHandler {
	return &CBTHandler{
		cbtSvc: cbtSvc,
	}
}

// @Summary Create CBT session
// @Tags cbt
// @Accept json
// @Produce json
// @Param user_id query string false "User id" default(anonymous)
// @Param request body dto.CreateCBTSessionRequest true "Thought and answers"
// @Success 200 {object} model.CBTSession
// @Failure 422 {object} dto.ValidationErrorResponse
// @Router /api/cbt-sessions [post]
func (h *CBTHandler) CreateSession(c *fiber.Ctx) error {
	var req dto.CreateCBTSessionRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	session, err := h.cbtSvc.CreateSession(c.UserContext(), userID(c), req)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, session)
}

// @Summary List CBT sessions
// @Tags cbt
// @Produce json
// @Param user_id query string false "User id" default(anonymous)
// @Success 200 {array} model.CBTSession
// @Router /api/cbt-sessions [get]
func (h *CBTHandler) ListSessions(c *fiber.Ctx) error {
	sessions, err := h.cbtSvc.ListSessions(c.UserContext(), userID(c))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, sessions)
}

// @Summary Delete CBT session
// @Tags cbt
// @Produce json
// @Param sessionId path string true "Session id"
// @Param user_id query string false "User id" default(anonymous)
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Router /api/cbt-sessions/{sessionId} [delete]
func (h *CBTHandler) DeleteSession(c *fiber.Ctx) error {
	if err := h.cbtSvc.DeleteSession(c.UserContext(), c.Params("sessionId"), userID(c)); err != nil {
		return err
	}

	return shared.ResponseMessage(c, "Session deleted successfully")
}

// @Summary Sync CBT sessions
// @Description Insert offline sessions whose id is not stored yet
// @Tags cbt
// @Accept json
// @Produce json
// @Param user_id query string false "User id" default(anonymous)
// @Param request body dto.SyncCBTSessionsRequest true "Session snapshots"
// @Success 200 {object} dto.MessageResponse
// @Failure 500 {object} dto.MessageResponse
// @Router /api/cbt-sessions/sync [post]
func (h *CBTHandler) SyncSessions(c *fiber.Ctx) error {
	var req dto.SyncCBTSessionsRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	synced, err := h.cbtSvc.SyncSessions(c.UserContext(), userID(c), req)
	if err != nil {
		return err
	}

	return shared.ResponseMessage(c, fmt.Sprintf("Synced %d sessions successfully", synced))
}
