package repositories

import (
	"context"

	"github.com/serenity-space/serenity_api/model"
	"gorm.io/gorm"
)

// Models lists every table managed by the GORM backend.
func Models() []interface{} {
	return []interface{}{
		&model.UserPreferences{},
		&model.CBTSession{},
		&model.ZenSession{},
		&model.Article{},
		&model.FavoriteArticle{},
		&model.UsageAnalytics{},
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Preferences: NewPreferenceRepository(db),
		CBTSessions: NewCBTSessionRepository(db),
		ZenSessions: NewZenSessionRepository(db),
		Articles:    NewArticleRepository(db),
		Favorites:   NewFavoriteRepository(db),
		Analytics:   NewAnalyticRepository(db),
		closer: func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}
}
