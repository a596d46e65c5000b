package model

import (
	"time"

	"gorm.io/datatypes"
)

// UsageAnalytics is one append-only interaction event. Duration is in seconds.
type UsageAnalytics struct {
	ID        string            `json:"id" gorm:"primaryKey" bson:"_id"`
	UserID    string            `json:"user_id" gorm:"not null;index:idx_usage_user_created" bson:"user_id"`
	Feature   string            `json:"feature" gorm:"not null" bson:"feature"`
	Action    string            `json:"action" gorm:"not null" bson:"action"`
	Duration  *int              `json:"duration" bson:"duration"`
	Metadata  datatypes.JSONMap `json:"metadata" bson:"metadata"`
	CreatedAt time.Time         `json:"created_at" gorm:"not null;index:idx_usage_user_created" bson:"created_at"`
}

func (UsageAnalytics) TableName() string {
	return "usage_analytics"
}

// FeatureStat is the per-feature aggregate. The feature is serialized as
// "_id" to keep the shape of the document store group stage.
type FeatureStat struct {
	Feature       string `json:"_id" gorm:"column:feature" bson:"_id"`
	TotalSessions int64  `json:"total_sessions" gorm:"column:total_sessions" bson:"total_sessions"`
	TotalDuration int64  `json:"total_duration" gorm:"column:total_duration" bson:"total_duration"`
}
