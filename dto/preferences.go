package dto

type CreatePreferencesRequest struct {
	Identity      *string `json:"identity" validate:"required" example:"Student"`
	CurrentMood   *string `json:"current_mood" validate:"required" example:"Anxious"`
	MoodFrequency *string `json:"mood_frequency" validate:"required" example:"This week"`
}

func (r *CreatePreferencesRequest) Validate() error {
	return validate.Struct(r)
}

func (r *CreatePreferencesRequest) GetIdentity() string {
	return stringValue(r.Identity)
}

func (r *CreatePreferencesRequest) GetCurrentMood() string {
	return stringValue(r.CurrentMood)
}

func (r *CreatePreferencesRequest) GetMoodFrequency() string {
	return stringValue(r.MoodFrequency)
}
