package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/serenity-space/serenity_api/model"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	userPreferencesCollection = "user_preferences"
	cbtSessionsCollection     = "cbt_sessions"
	zenSessionsCollection     = "zen_sessions"
	articlesCollection        = "articles"
	favoritesCollection       = "favorite_articles"
	analyticsCollection       = "usage_analytics"
)

var ascendingByCreation = bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}

// NewMongoStore builds a Store over db and ensures the indexes the
// repositories rely on. Closing the store disconnects client.
func NewMongoStore(ctx context.Context, client *mongo.Client, db *mongo.Database) (*Store, error) {
	if err := ensureIndexes(ctx, db); err != nil {
		return nil, err
	}

	return &Store{
		Preferences: &mongoPreferenceRepository{coll: db.Collection(userPreferencesCollection)},
		CBTSessions: &mongoCBTSessionRepository{coll: db.Collection(cbtSessionsCollection)},
		ZenSessions: &mongoZenSessionRepository{coll: db.Collection(zenSessionsCollection)},
		Articles:    &mongoArticleRepository{coll: db.Collection(articlesCollection)},
		Favorites:   &mongoFavoriteRepository{coll: db.Collection(favoritesCollection)},
		Analytics:   &mongoAnalyticRepository{coll: db.Collection(analyticsCollection)},
		closer: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	}, nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		articlesCollection: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		cbtSessionsCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: 1}}},
		},
		zenSessionsCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: 1}}},
		},
		favoritesCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "article_id", Value: 1}}},
		},
		analyticsCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
	}

	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			log.WithFields(log.Fields{"collection": name, "error": err.Error()}).Error("Failed to create indexes")
			return err
		}
	}
	return nil
}

func handleMongoError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	log.WithFields(log.Fields{
		"error_type": "MONGO_ERROR",
		"error":      err.Error(),
	}).Error("Database error occurred")
	return err
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter interface{}, opts *options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, handleMongoError(err)
	}
	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, handleMongoError(err)
	}
	return results, nil
}

func stamp(id *string, createdAt *time.Time) {
	if *id == "" {
		*id = newID()
	}
	if createdAt.IsZero() {
		*createdAt = time.Now().UTC()
	}
}

type mongoPreferenceRepository struct {
	coll *mongo.Collection
}

func (r *mongoPreferenceRepository) Create(ctx context.Context, prefs *model.UserPreferences) error {
	stamp(&prefs.ID, &prefs.CreatedAt)
	_, err := r.coll.InsertOne(ctx, prefs)
	return handleMongoError(err)
}

func (r *mongoPreferenceRepository) List(ctx context.Context, limit int) ([]model.UserPreferences, error) {
	opts := options.Find().SetSort(ascendingByCreation).SetLimit(int64(limit))
	return findAll[model.UserPreferences](ctx, r.coll, bson.M{}, opts)
}

type mongoCBTSessionRepository struct {
	coll *mongo.Collection
}

func (r *mongoCBTSessionRepository) Create(ctx context.Context, session *model.CBTSession) error {
	stamp(&session.ID, &session.CreatedAt)
	_, err := r.coll.InsertOne(ctx, session)
	return handleMongoError(err)
}

func (r *mongoCBTSessionRepository) ListByUser(ctx context.Context, userID string, limit int) ([]model.CBTSession, error) {
	opts := options.Find().SetSort(ascendingByCreation).SetLimit(int64(limit))
	return findAll[model.CBTSession](ctx, r.coll, bson.M{"user_id": userID}, opts)
}

func (r *mongoCBTSessionRepository) Exists(ctx context.Context, id string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, handleMongoError(err)
	}
	return count > 0, nil
}

func (r *mongoCBTSessionRepository) Delete(ctx context.Context, id, userID string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return handleMongoError(err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

type mongoZenSessionRepository struct {
	coll *mongo.Collection
}

func (r *mongoZenSessionRepository) Create(ctx context.Context, session *model.ZenSession) error {
	stamp(&session.ID, &session.CreatedAt)
	_, err := r.coll.InsertOne(ctx, session)
	return handleMongoError(err)
}

func (r *mongoZenSessionRepository) ListByUser(ctx context.Context, userID string, limit int) ([]model.ZenSession, error) {
	opts := options.Find().SetSort(ascendingByCreation).SetLimit(int64(limit))
	return findAll[model.ZenSession](ctx, r.coll, bson.M{"user_id": userID}, opts)
}

type mongoArticleRepository struct {
	coll *mongo.Collection
}

func (r *mongoArticleRepository) List(ctx context.Context, limit int) ([]model.Article, error) {
	opts := options.Find().SetSort(ascendingByCreation).SetLimit(int64(limit))
	return findAll[model.Article](ctx, r.coll, bson.M{}, opts)
}

func (r *mongoArticleRepository) Get(ctx context.Context, id string) (*model.Article, error) {
	var article model.Article
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&article); err != nil {
		return nil, handleMongoError(err)
	}
	return &article, nil
}

func (r *mongoArticleRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, handleMongoError(err)
	}
	return count, nil
}

func (r *mongoArticleRepository) UpsertBySlug(ctx context.Context, article *model.Article) (bool, error) {
	stamp(&article.ID, &article.CreatedAt)

	update := bson.M{"$setOnInsert": bson.M{
		"_id":        article.ID,
		"title":      article.Title,
		"content":    article.Content,
		"category":   article.Category,
		"author":     article.Author,
		"created_at": article.CreatedAt,
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"slug": article.Slug}, update, options.Update().SetUpsert(true))
	if err != nil {
		// Two concurrent upserts on the same slug: the loser sees a duplicate key.
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, handleMongoError(err)
	}
	return result.UpsertedCount > 0, nil
}

type mongoFavoriteRepository struct {
	coll *mongo.Collection
}

func (r *mongoFavoriteRepository) Find(ctx context.Context, userID, articleID string) (*model.FavoriteArticle, error) {
	var favorite model.FavoriteArticle
	err := r.coll.FindOne(ctx, bson.M{"user_id": userID, "article_id": articleID}).Decode(&favorite)
	if err != nil {
		return nil, handleMongoError(err)
	}
	return &favorite, nil
}

func (r *mongoFavoriteRepository) Create(ctx context.Context, favorite *model.FavoriteArticle) error {
	stamp(&favorite.ID, &favorite.CreatedAt)
	_, err := r.coll.InsertOne(ctx, favorite)
	return handleMongoError(err)
}

func (r *mongoFavoriteRepository) ListByUser(ctx context.Context, userID string, limit int) ([]model.FavoriteArticle, error) {
	opts := options.Find().SetSort(ascendingByCreation).SetLimit(int64(limit))
	return findAll[model.FavoriteArticle](ctx, r.coll, bson.M{"user_id": userID}, opts)
}

func (r *mongoFavoriteRepository) Delete(ctx context.Context, userID, articleID string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"user_id": userID, "article_id": articleID})
	if err != nil {
		return handleMongoError(err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

type mongoAnalyticRepository struct {
	coll *mongo.Collection
}

func (r *mongoAnalyticRepository) Create(ctx context.Context, event *model.UsageAnalytics) error {
	stamp(&event.ID, &event.CreatedAt)
	_, err := r.coll.InsertOne(ctx, event)
	return handleMongoError(err)
}

func (r *mongoAnalyticRepository) FeatureStats(ctx context.Context, userID string) ([]model.FeatureStat, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_id": userID}}},
		{{Key: "$group", Value: bson.M{
			"_id":            "$feature",
			"total_sessions": bson.M{"$sum": 1},
			"total_duration": bson.M{"$sum": "$duration"},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, handleMongoError(err)
	}
	stats := []model.FeatureStat{}
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, handleMongoError(err)
	}
	return stats, nil
}

func (r *mongoAnalyticRepository) Recent(ctx context.Context, userID string, since time.Time, limit int) ([]model.UsageAnalytics, error) {
	filter := bson.M{
		"user_id":    userID,
		"created_at": bson.M{"$gte": since.UTC()},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit))
	return findAll[model.UsageAnalytics](ctx, r.coll, filter, opts)
}
