package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/serenity-space/serenity_api/dto"
	"github.com/serenity-space/serenity_api/shared"
)

type QuestionHandler struct {
	questionSvc QuestionServiceInterface
}

func NewQuestionHandler(questionSvc QuestionServiceInterface) *QuestionHandler {
	return &QuestionHandler{
		questionSvc: questionSvc,
	}
}

// @Summary Reframing questions
// @Tags cbt
// @Produce json
// @Success 200 {object} dto.QuestionSetResponse
// @Router /api/cbt-questions [get]
func (h *QuestionHandler) GetQuestions(c *fiber.Ctx) error {
	return shared.ResponseOK(c, h.questionSvc.StaticQuestions())
}

// @Summary Questions for a thought
// @Description Pick a question set by keyword match against the thought
// @Tags cbt
// @Accept json
// @Produce json
// @Param request body dto.DynamicQuestionRequest true "Negative thought"
// @Success 200 {object} dto.QuestionSetResponse
// @Failure 422 {object} dto.ValidationErrorResponse
// @Router /api/cbt-questions/dynamic [post]
func (h *QuestionHandler) GenerateQuestions(c *fiber.Ctx) error {
	var req dto.DynamicQuestionRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	return shared.ResponseOK(c, h.questionSvc.GenerateQuestions(req))
}
