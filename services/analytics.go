package services

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"github.com/serenity-space/serenity_api/dto"
	"github.com/serenity-space/serenity_api/model"
	"github.com/serenity-space/serenity_api/services/repositories"
	"github.com/serenity-space/serenity_api/shared"
)

type AnalyticsRecorder interface {
	RecordAnalyticsEvent(feature, action string)
}

type AnalyticsService struct {
	repo     repositories.AnalyticRepository
	recorder AnalyticsRecorder
	now      func() time.Time
}

// NewAnalyticsService builds the tracker. recorder may be nil.
func NewAnalyticsService(repo repositories.AnalyticRepository, recorder AnalyticsRecorder) *AnalyticsService {
	return &AnalyticsService{repo: repo, recorder: recorder, now: time.Now}
}

func (svc *AnalyticsService) TrackUsage(ctx context.Context, userID string, req dto.TrackUsageRequest) (*model.UsageAnalytics, error) {
	event := &model.UsageAnalytics{
		UserID:   shared.UserIDOrAnonymous(userID),
		Feature:  req.Feature,
		Action:   req.Action,
		Duration: req.Duration,
	}
	if req.Metadata != nil {
		event.Metadata = datatypes.JSONMap(req.Metadata)
	}

	if err := svc.repo.Create(ctx, event); err != nil {
		return nil, err
	}

	if svc.recorder != nil {
		svc.recorder.RecordAnalyticsEvent(event.Feature, event.Action)
	}
	return event, nil
}

// GetUsageSummary never fails: on a storage error it logs and returns an
// empty summary so the dashboard still renders.
func (svc *AnalyticsService) GetUsageSummary(ctx context.Context, userID string) *dto.UsageSummaryResponse {
	userID = shared.UserIDOrAnonymous(userID)

	stats, err := svc.repo.FeatureStats(ctx, userID)
	if err != nil {
		log.WithFields(log.Fields{"user_id": userID, "error": err.Error()}).Error("Error getting usage summary")
		return dto.EmptyUsageSummary()
	}

	since := svc.now().UTC().AddDate(0, 0, -shared.RecentActivityDays)
	events, err := svc.repo.Recent(ctx, userID, since, shared.RecentActivityLimit)
	if err != nil {
		log.WithFields(log.Fields{"user_id": userID, "error": err.Error()}).Error("Error getting usage summary")
		return dto.EmptyUsageSummary()
	}

	summary := dto.EmptyUsageSummary()
	if stats != nil {
		summary.FeatureStats = stats
	}
	for _, event := range events {
		summary.RecentActivity = append(summary.RecentActivity, dto.RecentActivity{
			Feature:   event.Feature,
			Action:    event.Action,
			Duration:  event.Duration,
			CreatedAt: event.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
	}
	summary.TotalSessions = len(summary.RecentActivity)
	return summary
}
