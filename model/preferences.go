package model

import "time"

// UserPreferences is written once at onboarding. ThemeColors is derived
// from CurrentMood at creation and never changes afterwards.
type UserPreferences struct {
	ID            string            `json:"id" gorm:"primaryKey" bson:"_id"`
	Identity      string            `json:"identity" gorm:"not null" bson:"identity"`
	CurrentMood   string            `json:"current_mood" gorm:"not null" bson:"current_mood"`
	MoodFrequency string            `json:"mood_frequency" gorm:"not null" bson:"mood_frequency"`
	ThemeColors   map[string]string `json:"theme_colors" gorm:"serializer:json;type:text" bson:"theme_colors"`
	CreatedAt     time.Time         `json:"created_at" gorm:"not null;index" bson:"created_at"`
}

func (UserPreferences) TableName() string {
	return "user_preferences"
}
