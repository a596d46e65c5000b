package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/serenity-space/serenity_api/model"
)

// ErrNotFound is returned by every backend when a lookup or delete matched nothing.
var ErrNotFound = errors.New("record not found")

type PreferenceRepository interface {
	Create(ctx context.Context, prefs *model.UserPreferences) error
	List(ctx context.Context, limit int) ([]model.UserPreferences, error)
}

type CBTSessionRepository interface {
	Create(ctx context.Context, session *model.CBTSession) error
	ListByUser(ctx context.Context, userID string, limit int) ([]model.CBTSession, error)
	Exists(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id, userID string) error
}

type ZenSessionRepository interface {
	Create(ctx context.Context, session *model.ZenSession) error
	ListByUser(ctx context.Context, userID string, limit int) ([]model.ZenSession, error)
}

type ArticleRepository interface {
	List(ctx context.Context, limit int) ([]model.Article, error)
	Get(ctx context.Context, id string) (*model.Article, error)
	Count(ctx context.Context) (int64, error)
	// UpsertBySlug inserts the article unless one with the same slug exists.
	// It reports whether a new row was written.
	UpsertBySlug(ctx context.Context, article *model.Article) (bool, error)
}

type FavoriteRepository interface {
	Find(ctx context.Context, userID, articleID string) (*model.FavoriteArticle, error)
	Create(ctx context.Context, favorite *model.FavoriteArticle) error
	ListByUser(ctx context.Context, userID string, limit int) ([]model.FavoriteArticle, error)
	Delete(ctx context.Context, userID, articleID string) error
}

type AnalyticRepository interface {
	Create(ctx context.Context, event *model.UsageAnalytics) error
	FeatureStats(ctx context.Context, userID string) ([]model.FeatureStat, error)
	Recent(ctx context.Context, userID string, since time.Time, limit int) ([]model.UsageAnalytics, error)
}

// Store bundles the repositories of one backend.
type Store struct {
	Preferences PreferenceRepository
	CBTSessions CBTSessionRepository
	ZenSessions ZenSessionRepository
	Articles    ArticleRepository
	Favorites   FavoriteRepository
	Analytics   AnalyticRepository

	closer func(ctx context.Context) error
}

func (s *Store) Close(ctx context.Context) error {
	if s.closer == nil {
		return nil
	}
	return s.closer(ctx)
}
