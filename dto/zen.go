package dto

type CreateZenSessionRequest struct {
	SessionType *string `json:"session_type" validate:"required" example:"breathing"`
	Duration    *int    `json:"duration" validate:"required,min=0" example:"10"`
	Completed   *bool   `json:"completed" example:"true"`
}

func (r *CreateZenSessionRequest) Validate() error {
	return validate.Struct(r)
}

func (r *CreateZenSessionRequest) GetSessionType() string {
	return stringValue(r.SessionType)
}

// IsCompleted defaults to true when the client omits the flag.
func (r *CreateZenSessionRequest) IsCompleted() bool {
	if r.Completed == nil {
		return true
	}
	return *r.Completed
}
