package services

import (
	"context"
	"errors"

	"github.com/serenity-space/serenity_api/model"
	"github.com/serenity-space/serenity_api/services/repositories"
	"github.com/serenity-space/serenity_api/shared"
)

type FavoriteService struct {
	repo repositories.FavoriteRepository
}

func NewFavoriteService(repo repositories.FavoriteRepository) *FavoriteService {
	return &FavoriteService{repo: repo}
}

// AddFavorite returns the stored favorite for the pair, creating it if needed.
// The lookup and the insert are separate calls, so two concurrent adds of the
// same pair can both insert.
func (svc *FavoriteService) AddFavorite(ctx context.Context, userID, articleID string) (*model.FavoriteArticle, error) {
	userID = shared.UserIDOrAnonymous(userID)

	existing, err := svc.repo.Find(ctx, userID, articleID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	favorite := &model.FavoriteArticle{
		UserID:    userID,
		ArticleID: articleID,
	}
	if err := svc.repo.Create(ctx, favorite); err != nil {
		return nil, err
	}
	return favorite, nil
}

func (svc *FavoriteService) ListFavoriteIDs(ctx context.Context, userID string) ([]string, error) {
	favorites, err := svc.repo.ListByUser(ctx, shared.UserIDOrAnonymous(userID), shared.MaxListSize)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(favorites))
	for _, favorite := range favorites {
		ids = append(ids, favorite.ArticleID)
	}
	return ids, nil
}

func (svc *FavoriteService) RemoveFavorite(ctx context.Context, userID, articleID string) error {
	err := svc.repo.Delete(ctx, shared.UserIDOrAnonymous(userID), articleID)
	if errors.Is(err, repositories.ErrNotFound) {
		return shared.NewNotFoundError(err, "Favorite not found")
	}
	return err
}
