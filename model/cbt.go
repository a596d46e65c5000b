package model

import "time"

type QuestionAnswer struct {
	Question string `json:"question" bson:"question"`
	Answer   string `json:"answer" bson:"answer"`
}

type CBTSession struct {
	ID                  string           `json:"id" gorm:"primaryKey" bson:"_id"`
	UserID              string           `json:"user_id" gorm:"not null;index" bson:"user_id"`
	NegativeThought     string           `json:"negative_thought" gorm:"type:text;not null" bson:"negative_thought"`
	QuestionsAndAnswers []QuestionAnswer `json:"questions_and_answers" gorm:"serializer:json;type:text" bson:"questions_and_answers"`
	CreatedAt           time.Time        `json:"created_at" gorm:"not null;index" bson:"created_at"`
}

func (CBTSession) TableName() string {
	return "cbt_sessions"
}
