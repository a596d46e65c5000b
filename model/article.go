package model

import "time"

type Article struct {
	ID        string    `json:"id" gorm:"primaryKey" bson:"_id"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;not null" bson:"slug"`
	Title     string    `json:"title" gorm:"not null" bson:"title"`
	Content   string    `json:"content" gorm:"type:text" bson:"content"`
	Category  string    `json:"category" gorm:"index" bson:"category"`
	Author    string    `json:"author" bson:"author"`
	CreatedAt time.Time `json:"created_at" gorm:"not null" bson:"created_at"`
}

func (Article) TableName() string {
	return "articles"
}

// FavoriteArticle links a user to an article. One row per (user, article)
// is kept by the service, not by a storage constraint.
type FavoriteArticle struct {
	ID        string    `json:"id" gorm:"primaryKey" bson:"_id"`
	UserID    string    `json:"user_id" gorm:"not null;index:idx_favorite_user_article" bson:"user_id"`
	ArticleID string    `json:"article_id" gorm:"not null;index:idx_favorite_user_article" bson:"article_id"`
	CreatedAt time.Time `json:"created_at" gorm:"not null" bson:"created_at"`
}

func (FavoriteArticle) TableName() string {
	return "favorite_articles"
}
