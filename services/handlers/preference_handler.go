package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/serenity-space/serenity_api/dto"
	"github.com/serenity-space/serenity_api/shared"
)

type PreferenceHandler struct {
	preferenceSvc PreferenceServiceInterface
}

func NewPreferenceHandler(preferenceSvc PreferenceServiceInterface) *PreferenceHandler {
	return &PreferenceHandler{
		preferenceSvc: preferenceSvc,
	}
}

// @Summary Create preferences
// @Description Store onboarding answers and derive the theme palette from the current mood
// @Tags preferences
// @Accept json
// @Produce json
// @Param request body dto.CreatePreferencesRequest true "Onboarding answers"
// @Success 200 {object} model.UserPreferences
// @Failure 422 {object} dto.ValidationErrorResponse
// @Router /api/preferences [post]
func (h *PreferenceHandler) CreatePreferences(c *fiber.Ctx) error {
	var req dto.CreatePreferencesRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	prefs, err := h.preferenceSvc.CreatePreferences(c.UserContext(), req)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, prefs)
}

// @Summary List preferences
// @Tags preferences
// @Produce json
// @Success 200 {array} model.UserPreferences
// @Router /api/preferences [get]
func (h *PreferenceHandler) ListPreferences(c *fiber.Ctx) error {
	prefs, err := h.preferenceSvc.ListPreferences(c.UserContext())
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, prefs)
}
