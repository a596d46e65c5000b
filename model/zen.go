package model

import "time"

// ZenSession logs a breathing or meditation exercise. Duration is in minutes.
type ZenSession struct {
	ID          string    `json:"id" gorm:"primaryKey" bson:"_id"`
	UserID      string    `json:"user_id" gorm:"not null;index" bson:"user_id"`
	SessionType string    `json:"session_type" gorm:"not null" bson:"session_type"`
	Duration    int       `json:"duration" gorm:"not null" bson:"duration"`
	Completed   bool      `json:"completed" bson:"completed"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null;index" bson:"created_at"`
}

func (ZenSession) TableName() string {
	return "zen_sessions"
}
