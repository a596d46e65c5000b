package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/serenity-space/serenity_api/shared"
)

type ArticleHandler struct {
	articleSvc ArticleServiceInterface
}

func NewArticleHandler(articleSvc ArticleServiceInterface) *ArticleHandler {
	return &ArticleHandler{
		articleSvc: articleSvc,
	}
}

// @Summary List articles
// @Description List the wellness library, seeding it on first use
// @Tags articles
// @Produce json
// @Success 200 {array} model.Article
// @Router /api/articles [get]
func (h *ArticleHandler) ListArticles(c *fiber.Ctx) error {
	articles, err := h.articleSvc.ListArticles(c.UserContext())
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, articles)
}

// @Summary Get article
// @Tags articles
// @Produce json
// @Param articleId path string true "Article id"
// @Success 200 {object} model.Article
// @Failure 404 {object} dto.MessageResponse
// @Router /api/articles/{articleId} [get]
func (h *ArticleHandler) GetArticle(c *fiber.Ctx) error {
	article, err := h.articleSvc.GetArticle(c.UserContext(), c.Params("articleId"))
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, article)
}
