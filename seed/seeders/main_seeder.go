package seeders

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/serenity-space/serenity_api/services/repositories"
)

// MainSeeder coordinates all seeding operations
type MainSeeder struct {
	store *repositories.Store
}

func NewMainSeeder(store *repositories.Store) *MainSeeder {
	return &MainSeeder{store: store}
}

// SeedAll runs all seeders in the correct order
func (s *MainSeeder) SeedAll(ctx context.Context) error {
	log.Info("Starting database seeding...")

	if _, err := s.SeedArticlesOnly(ctx); err != nil {
		log.WithError(err).Error("Article seeding failed")
		return err
	}

	log.Info("Database seeding completed successfully!")
	return nil
}

func (s *MainSeeder) SeedArticlesOnly(ctx context.Context) (int, error) {
	return NewArticleSeeder(s.store.Articles).SeedArticles(ctx)
}
