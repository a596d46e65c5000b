package dto

import "github.com/serenity-space/serenity_api/model"

type CreateCBTSessionRequest struct {
	NegativeThought     *string                `json:"negative_thought" validate:"required" example:"I always fail at everything"`
	QuestionsAndAnswers []model.QuestionAnswer `json:"questions_and_answers" validate:"required"`
}

func (r *CreateCBTSessionRequest) Validate() error {
	return validate.Struct(r)
}

func (r *CreateCBTSessionRequest) GetNegativeThought() string {
	return stringValue(r.NegativeThought)
}

// CBTSessionSnapshot is a session held by a client while offline. ID and
// CreatedAt are optional; CreatedAt is an ISO 8601 string.
type CBTSessionSnapshot struct {
	ID                  string                 `json:"id"`
	NegativeThought     *string                `json:"negative_thought" validate:"required"`
	QuestionsAndAnswers []model.QuestionAnswer `json:"questions_and_answers" validate:"required"`
	CreatedAt           string                 `json:"created_at" example:"2024-05-01T10:00:00Z"`
}

func (s *CBTSessionSnapshot) GetNegativeThought() string {
	return stringValue(s.NegativeThought)
}

type SyncCBTSessionsRequest struct {
	Sessions []CBTSessionSnapshot `json:"sessions" validate:"required,dive"`
}

func (r *SyncCBTSessionsRequest) Validate() error {
	return validate.Struct(r)
}
