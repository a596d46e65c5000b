package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serenity-space/serenity_api/model"
	"github.com/serenity-space/serenity_api/seed/seeders"
	"github.com/serenity-space/serenity_api/shared"
	"github.com/serenity-space/serenity_api/testutil"
)

func newTestRedis(t *testing.T) (*RedisService, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	svc := NewRedisService(mr.Addr(), "", 0)
	require.NoError(t, svc.Start())
	t.Cleanup(svc.Shutdown)
	return svc, mr
}

func TestSeedTwiceKeepsTenArticles(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewSqliteStore(t)
	svc := NewArticleService(store.Articles, seeders.NewArticleSeeder(store.Articles), nil, 0)

	inserted, err := svc.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, inserted)

	inserted, err = svc.Seed(ctx)
	require.NoError(t, err)
	assert.Zero(t, inserted)

	count, err := store.Articles.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 10, count)
}

func TestListArticlesSeedsEmptyStorage(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewSqliteStore(t)
	svc := NewArticleService(store.Articles, seeders.NewArticleSeeder(store.Articles), nil, 0)

	articles, err := svc.ListArticles(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 10)
	authors := map[string]string{}
	for _, article := range seeders.DefaultArticles() {
		authors[article.Slug] = article.Author
	}
	for _, article := range articles {
		require.Contains(t, authors, article.Slug)
		assert.Equal(t, authors[article.Slug], article.Author)
	}

	got, err := svc.GetArticle(ctx, articles[0].ID)
	require.NoError(t, err)
	assert.Equal(t, articles[0].Title, got.Title)
}

func TestGetArticleNotFound(t *testing.T) {
	store := testutil.NewSqliteStore(t)
	svc := NewArticleService(store.Articles, seeders.NewArticleSeeder(store.Articles), nil, 0)

	_, err := svc.GetArticle(context.Background(), "missing")
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode)
	assert.Equal(t, "Article not found", appErr.Message)
}

func TestListArticlesUsesCache(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewSqliteStore(t)
	cache, mr := newTestRedis(t)
	svc := NewArticleService(store.Articles, seeders.NewArticleSeeder(store.Articles), cache, time.Minute)

	articles, err := svc.ListArticles(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 10)
	assert.True(t, mr.Exists(ArticleListCacheKey))

	// A row written behind the service stays invisible until the cache expires.
	inserted, err := store.Articles.UpsertBySlug(ctx, &model.Article{Slug: "extra", Title: "Extra"})
	require.NoError(t, err)
	require.True(t, inserted)

	cached, err := svc.ListArticles(ctx)
	require.NoError(t, err)
	assert.Len(t, cached, 10)

	mr.FastForward(2 * time.Minute)

	fresh, err := svc.ListArticles(ctx)
	require.NoError(t, err)
	assert.Len(t, fresh, 11)
}

func TestSeedInvalidatesCache(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewSqliteStore(t)
	cache, mr := newTestRedis(t)
	svc := NewArticleService(store.Articles, seeders.NewArticleSeeder(store.Articles), cache, time.Minute)

	_, err := svc.ListArticles(ctx)
	require.NoError(t, err)
	require.True(t, mr.Exists(ArticleListCacheKey))

	_, err = svc.Seed(ctx)
	require.NoError(t, err)
	assert.False(t, mr.Exists(ArticleListCacheKey))
}

func TestListArticlesFallsThroughWhenCacheIsDown(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewSqliteStore(t)
	cache, mr := newTestRedis(t)
	svc := NewArticleService(store.Articles, seeders.NewArticleSeeder(store.Articles), cache, time.Minute)

	mr.Close()

	articles, err := svc.ListArticles(ctx)
	require.NoError(t, err)
	assert.Len(t, articles, 10)
}
