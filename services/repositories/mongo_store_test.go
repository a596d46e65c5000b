package repositories_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/serenity-space/serenity_api/model"
	"github.com/serenity-space/serenity_api/services/repositories"
)

// newMongoStore needs a live server; set TEST_MONGO_URL to run these tests.
func newMongoStore(t *testing.T) *repositories.Store {
	t.Helper()

	url := os.Getenv("TEST_MONGO_URL")
	if url == "" {
		t.Skip("TEST_MONGO_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	require.NoError(t, err)

	db := client.Database(fmt.Sprintf("serenity_test_%d", time.Now().UnixNano()))
	store, err := repositories.NewMongoStore(ctx, client, db)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = store.Close(context.Background())
	})
	return store
}

func TestMongoArticleUpsertBySlug(t *testing.T) {
	store := newMongoStore(t)
	ctx := context.Background()

	inserted, err := store.Articles.UpsertBySlug(ctx, &model.Article{Slug: "calm", Title: "Calm"})
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = store.Articles.UpsertBySlug(ctx, &model.Article{Slug: "calm", Title: "Other"})
	require.NoError(t, err)
	assert.False(t, inserted)

	count, err := store.Articles.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestMongoCBTSessionDelete(t *testing.T) {
	store := newMongoStore(t)
	ctx := context.Background()

	session := &model.CBTSession{UserID: "u1", NegativeThought: "x", QuestionsAndAnswers: []model.QuestionAnswer{}}
	require.NoError(t, store.CBTSessions.Create(ctx, session))

	assert.ErrorIs(t, store.CBTSessions.Delete(ctx, session.ID, "u2"), repositories.ErrNotFound)
	require.NoError(t, store.CBTSessions.Delete(ctx, session.ID, "u1"))

	exists, err := store.CBTSessions.Exists(ctx, session.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMongoAnalyticFeatureStats(t *testing.T) {
	store := newMongoStore(t)
	ctx := context.Background()

	require.NoError(t, store.Analytics.Create(ctx, &model.UsageAnalytics{UserID: "u1", Feature: "zen", Action: "complete", Duration: intPtr(60)}))
	require.NoError(t, store.Analytics.Create(ctx, &model.UsageAnalytics{UserID: "u1", Feature: "zen", Action: "view"}))

	stats, err := store.Analytics.FeatureStats(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, model.FeatureStat{Feature: "zen", TotalSessions: 2, TotalDuration: 60}, stats[0])
}
