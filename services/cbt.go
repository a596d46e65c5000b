package services

import (
	"context"
	"errors"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/serenity-space/serenity_api/dto"
	"github.com/serenity-space/serenity_api/model"
	"github.com/serenity-space/serenity_api/services/repositories"
	"github.com/serenity-space/serenity_api/shared"
)

// Layouts tried after RFC 3339. None carries a zone, so values are read as UTC.
var zonelessTimestampLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

type CBTService struct {
	repo repositories.CBTSessionRepository
	now  func() time.Time
}

func NewCBTService(repo repositories.CBTSessionRepository) *CBTService {
	return &CBTService{repo: repo, now: time.Now}
}

func (svc *CBTService) CreateSession(ctx context.Context, userID string, req dto.CreateCBTSessionRequest) (*model.CBTSession, error) {
	session := &model.CBTSession{
		UserID:              shared.UserIDOrAnonymous(userID),
		NegativeThought:     req.GetNegativeThought(),
		QuestionsAndAnswers: req.QuestionsAndAnswers,
	}
	if session.QuestionsAndAnswers == nil {
		session.QuestionsAndAnswers = []model.QuestionAnswer{}
	}

	if err := svc.repo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (svc *CBTService) ListSessions(ctx context.Context, userID string) ([]model.CBTSession, error) {
	sessions, err := svc.repo.ListByUser(ctx, shared.UserIDOrAnonymous(userID), shared.MaxListSize)
	if err != nil {
		return nil, err
	}
	if sessions == nil {
		sessions = []model.CBTSession{}
	}
	return sessions, nil
}

func (svc *CBTService) DeleteSession(ctx context.Context, id, userID string) error {
	err := svc.repo.Delete(ctx, id, shared.UserIDOrAnonymous(userID))
	if errors.Is(err, repositories.ErrNotFound) {
		return shared.NewNotFoundError(err, "Session not found")
	}
	return err
}

// SyncSessions inserts every snapshot whose id is not stored yet and returns
// how many were inserted. Existing sessions are never modified.
func (svc *CBTService) SyncSessions(ctx context.Context, userID string, req dto.SyncCBTSessionsRequest) (int, error) {
	userID = shared.UserIDOrAnonymous(userID)
	synced := 0

	for _, snapshot := range req.Sessions {
		if snapshot.ID != "" {
			exists, err := svc.repo.Exists(ctx, snapshot.ID)
			if err != nil {
				return synced, svc.syncFailed(userID, synced, err)
			}
			if exists {
				continue
			}
		}

		session := &model.CBTSession{
			ID:                  snapshot.ID,
			UserID:              userID,
			NegativeThought:     snapshot.GetNegativeThought(),
			QuestionsAndAnswers: snapshot.QuestionsAndAnswers,
			CreatedAt:           svc.parseTimestamp(snapshot.CreatedAt),
		}
		if session.QuestionsAndAnswers == nil {
			session.QuestionsAndAnswers = []model.QuestionAnswer{}
		}

		if err := svc.repo.Create(ctx, session); err != nil {
			return synced, svc.syncFailed(userID, synced, err)
		}
		synced++
	}

	log.WithFields(log.Fields{
		"user_id":  userID,
		"received": len(req.Sessions),
		"synced":   synced,
	}).Info("CBT sessions synced")
	return synced, nil
}

func (svc *CBTService) syncFailed(userID string, synced int, err error) error {
	log.WithFields(log.Fields{
		"user_id": userID,
		"synced":  synced,
		"error":   err.Error(),
	}).Error("Error syncing sessions")
	return shared.NewInternalError(err, "Failed to sync sessions")
}

// parseTimestamp reads a client supplied ISO 8601 value. A missing or
// unreadable value becomes the current time.
func (svc *CBTService) parseTimestamp(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return svc.now().UTC()
	}

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC()
	}
	for _, layout := range zonelessTimestampLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t
		}
	}

	log.WithField("created_at", value).Warn("Unparseable session timestamp, using current time")
	return svc.now().UTC()
}
