package seeders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serenity-space/serenity_api/model"
	"github.com/serenity-space/serenity_api/shared"
	"github.com/serenity-space/serenity_api/testutil"
)

func TestSeedArticlesDefaultsMissingAuthor(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewSqliteStore(t)
	seeder := &ArticleSeeder{
		repo: store.Articles,
		articles: []model.Article{
			{Slug: "anonymous-note", Title: "Anonymous Note", Content: "Body", Category: "Wellness"},
			{Slug: "signed-note", Title: "Signed Note", Content: "Body", Category: "Wellness", Author: "Dr. Sarah Chen"},
		},
	}

	inserted, err := seeder.SeedArticles(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	articles, err := store.Articles.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, articles, 2)

	authors := map[string]string{}
	for _, article := range articles {
		authors[article.Slug] = article.Author
	}
	assert.Equal(t, shared.DefaultAuthor, authors["anonymous-note"])
	assert.Equal(t, "Dr. Sarah Chen", authors["signed-note"])
}
