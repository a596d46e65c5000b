package dto

type ValidationError struct {
	Field   string `json:"field" example:"current_mood"`
	Message string `json:"message" example:"current_mood is required"`
}

type ValidationErrorResponse struct {
	Code    int               `json:"code" example:"422"`
	Message string            `json:"message" example:"Validation failed"`
	Errors  []ValidationError `json:"errors"`
}

// MessageResponse documents the envelope used for message-only bodies.
type MessageResponse struct {
	Code    int    `json:"code" example:"200"`
	Message string `json:"message" example:"Session deleted successfully"`
}

type StatusResponse struct {
	Message string `json:"message" example:"Serenity Space API"`
	Status  string `json:"status" example:"running"`
}
