package dto

type Question struct {
	ID       int      `json:"id" example:"1"`
	Question string   `json:"question" example:"Is this thought based on facts or feelings?"`
	Type     string   `json:"type" example:"choice"`
	Options  []string `json:"options,omitempty"`
	Min      *int     `json:"min,omitempty"`
	Max      *int     `json:"max,omitempty"`
}

type QuestionSetResponse struct {
	Questions []Question `json:"questions"`
}

type DynamicQuestionRequest struct {
	NegativeThought *string `json:"negative_thought" validate:"required" example:"I always fail at everything"`
	UserContext     *string `json:"user_context"`
}

func (r *DynamicQuestionRequest) Validate() error {
	return validate.Struct(r)
}

func (r *DynamicQuestionRequest) GetNegativeThought() string {
	return stringValue(r.NegativeThought)
}
