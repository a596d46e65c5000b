package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/serenity-space/serenity_api/dto"
	"github.com/serenity-space/serenity_api/shared"
)

type FavoriteHandler struct {
	favoriteSvc FavoriteServiceInterface
}

func NewFavoriteHandler(favoriteSvc FavoriteServiceInterface) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteSvc: favoriteSvc,
	}
}

// @Summary Add favorite
// @Description Idempotent: an existing favorite is returned unchanged
// @Tags favorites
// @Produce json
// @Param article_id query string true "Article id"
// @Param user_id query string false "User id" default(anonymous)
// @Success 200 {object} model.FavoriteArticle
// @Failure 422 {object} dto.ValidationErrorResponse
// @Router /api/favorites [post]
func (h *FavoriteHandler) AddFavorite(c *fiber.Ctx) error {
	articleID := c.Query("article_id")
	if articleID == "" {
		return shared.NewValidationError(nil, []dto.ValidationError{
			{Field: "article_id", Message: "article_id is required"},
		})
	}

	favorite, err := h.favoriteSvc.AddFavorite(c.UserContext(), userID(c), articleID)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, favorite)
}

// @Summary List favorite article ids
// @Tags favorites
// @Produce json
// @Param user_id query string false "User id" default(anonymous)
// @Success 200 {array} string
// @Router /api/favorites [get]
func (h *FavoriteHandler) ListFavorites(c *fiber.Ctx) error {
	ids, err := h.favoriteSvc.ListFavoriteIDs(c.UserContext(), userID(c))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, ids)
}

// @Summary Remove favorite
// @Tags favorites
// @Produce json
// @Param articleId path string true "Article id"
// @Param user_id query string false "User id" default(anonymous)
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Router /api/favorites/{articleId} [delete]
func (h *FavoriteHandler) RemoveFavorite(c *fiber.Ctx) error {
	if err := h.favoriteSvc.RemoveFavorite(c.UserContext(), userID(c), c.Params("articleId")); err != nil {
		return err
	}

	return shared.ResponseMessage(c, "Favorite removed successfully")
}
