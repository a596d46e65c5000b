package handlers

import (
	"context"

	"github.com/serenity-space/serenity_api/dto"
	"github.com/serenity-space/serenity_api/model"
)

type PreferenceServiceInterface interface {
	CreatePreferences(ctx context.Context, req dto.CreatePreferencesRequest) (*model.UserPreferences, error)
	ListPreferences(ctx context.Context) ([]model.UserPreferences, error)
}

type CBTServiceInterface interface {
	CreateSession(ctx context.Context, userID string, req dto.CreateCBTSessionRequest) (*model.CBTSession, error)
	ListSessions(ctx context.Context, userID string) ([]model.CBTSession, error)
	DeleteSession(ctx context.Context, id, userID string) error
	SyncSessions(ctx context.Context, userID string, req dto.SyncCBTSessionsRequest) (int, error)
}

type QuestionServiceInterface interface {
	StaticQuestions() *dto.QuestionSetResponse
	GenerateQuestions(req dto.DynamicQuestionRequest) *dto.QuestionSetResponse
}

type ZenServiceInterface interface {
	CreateSession(ctx context.Context, userID string, req dto.CreateZenSessionRequest) (*model.ZenSession, error)
	ListSessions(ctx context.Context, userID string) ([]model.ZenSession, error)
}

type ArticleServiceInterface interface {
	ListArticles(ctx context.Context) ([]model.Article, error)
	GetArticle(ctx context.Context, id string) (*model.Article, error)
}

type FavoriteServiceInterface interface {
	AddFavorite(ctx context.Context, userID, articleID string) (*model.FavoriteArticle, error)
	ListFavoriteIDs(ctx context.Context, userID string) ([]string, error)
	RemoveFavorite(ctx context.Context, userID, articleID string) error
}

type AnalyticsServiceInterface interface {
	TrackUsage(ctx context.Context, userID string, req dto.TrackUsageRequest) (*model.UsageAnalytics, error)
	GetUsageSummary(ctx context.Context, userID string) *dto.UsageSummaryResponse
}
