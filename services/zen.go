package services

import (
	"context"

	"github.com/serenity-space/serenity_api/dto"
	"github.com/serenity-space/serenity_api/model"
	"github.com/serenity-space/serenity_api/services/repositories"
	"github.com/serenity-space/serenity_api/shared"
)

type ZenService struct {
	repo repositories.ZenSessionRepository
}

func NewZenService(repo repositories.ZenSessionRepository) *ZenService {
	return &ZenService{repo: repo}
}

func (svc *ZenService) CreateSession(ctx context.Context, userID string, req dto.CreateZenSessionRequest) (*model.ZenSession, error) {
	session := &model.ZenSession{
		UserID:      shared.UserIDOrAnonymous(userID),
		SessionType: req.GetSessionType(),
		Duration:    *req.Duration,
		Completed:   req.IsCompleted(),
	}

	if err := svc.repo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (svc *ZenService) ListSessions(ctx context.Context, userID string) ([]model.ZenSession, error) {
	sessions, err := svc.repo.ListByUser(ctx, shared.UserIDOrAnonymous(userID), shared.MaxListSize)
	if err != nil {
		return nil, err
	}
	if sessions == nil {
		sessions = []model.ZenSession{}
	}
	return sessions, nil
}
