package dto

import "github.com/serenity-space/serenity_api/model"

type TrackUsageRequest struct {
	Feature  string                 `json:"feature" validate:"required,oneof=zen music cbt visual articles" example:"zen"`
	Action   string                 `json:"action" validate:"required,oneof=view complete interact" example:"complete"`
	Duration *int                   `json:"duration" validate:"omitempty,min=0" example:"300"`
	Metadata map[string]interface{} `json:"metadata"`
}

func (r *TrackUsageRequest) Validate() error {
	return validate.Struct(r)
}

type RecentActivity struct {
	Feature   string `json:"feature" example:"zen"`
	Action    string `json:"action" example:"complete"`
	Duration  *int   `json:"duration"`
	CreatedAt string `json:"created_at" example:"2024-05-01T10:00:00Z"`
}

type UsageSummaryResponse struct {
	FeatureStats   []model.FeatureStat `json:"feature_stats"`
	RecentActivity []RecentActivity    `json:"recent_activity"`
	TotalSessions  int                 `json:"total_sessions" example:"3"`
}

// EmptyUsageSummary is returned when aggregation fails.
func EmptyUsageSummary() *UsageSummaryResponse {
	return &UsageSummaryResponse{
		FeatureStats:   []model.FeatureStat{},
		RecentActivity: []RecentActivity{},
		TotalSessions:  0,
	}
}
