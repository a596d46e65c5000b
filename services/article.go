package services

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/serenity-space/serenity_api/model"
	"github.com/serenity-space/serenity_api/services/repositories"
	"github.com/serenity-space/serenity_api/shared"
)

const ArticleListCacheKey = "articles:all"

type ArticleSeeder interface {
	SeedArticles(ctx context.Context) (int, error)
}

type ArticleService struct {
	repo   repositories.ArticleRepository
	seeder ArticleSeeder

	cache    *RedisService
	cacheTTL time.Duration
}

// NewArticleService builds the article reader. cache may be nil.
func NewArticleService(repo repositories.ArticleRepository, seeder ArticleSeeder, cache *RedisService, cacheTTL time.Duration) *ArticleService {
	return &ArticleService{
		repo:     repo,
		seeder:   seeder,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// Seed runs the idempotent seeder and drops the cached list.
func (svc *ArticleService) Seed(ctx context.Context) (int, error) {
	inserted, err := svc.seeder.SeedArticles(ctx)
	if err != nil {
		return inserted, err
	}
	svc.invalidateCache(ctx)
	return inserted, nil
}

// ListArticles returns the library, seeding it first when storage is empty.
func (svc *ArticleService) ListArticles(ctx context.Context) ([]model.Article, error) {
	if articles, ok := svc.cachedArticles(ctx); ok {
		return articles, nil
	}

	articles, err := svc.repo.List(ctx, shared.MaxListSize)
	if err != nil {
		return nil, err
	}

	if len(articles) == 0 {
		if _, err := svc.Seed(ctx); err != nil {
			return nil, err
		}
		if articles, err = svc.repo.List(ctx, shared.MaxListSize); err != nil {
			return nil, err
		}
	}
	if articles == nil {
		articles = []model.Article{}
	}

	svc.cacheArticles(ctx, articles)
	return articles, nil
}

func (svc *ArticleService) GetArticle(ctx context.Context, id string) (*model.Article, error) {
	article, err := svc.repo.Get(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, shared.NewNotFoundError(err, "Article not found")
	}
	if err != nil {
		return nil, err
	}
	return article, nil
}

func (svc *ArticleService) cachedArticles(ctx context.Context) ([]model.Article, bool) {
	if svc.cache == nil || svc.cacheTTL <= 0 {
		return nil, false
	}

	var articles []model.Article
	found, err := svc.cache.GetJSON(ctx, ArticleListCacheKey, &articles)
	if err != nil {
		log.WithFields(log.Fields{"key": ArticleListCacheKey, "error": err.Error()}).Warn("Article cache read failed")
		return nil, false
	}
	if !found || len(articles) == 0 {
		return nil, false
	}
	return articles, true
}

func (svc *ArticleService) cacheArticles(ctx context.Context, articles []model.Article) {
	if svc.cache == nil || svc.cacheTTL <= 0 || len(articles) == 0 {
		return
	}
	if err := svc.cache.Set(ctx, ArticleListCacheKey, articles, svc.cacheTTL); err != nil {
		log.WithFields(log.Fields{"key": ArticleListCacheKey, "error": err.Error()}).Warn("Article cache write failed")
	}
}

func (svc *ArticleService) invalidateCache(ctx context.Context) {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.Delete(ctx, ArticleListCacheKey); err != nil {
		log.WithFields(log.Fields{"key": ArticleListCacheKey, "error": err.Error()}).Warn("Article cache invalidation failed")
	}
}
