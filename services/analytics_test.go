package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serenity-space/serenity_api/dto"
	"github.com/serenity-space/serenity_api/model"
	"github.com/serenity-space/serenity_api/testutil"
)

type recordedEvent struct {
	feature, action string
}

type fakeRecorder struct {
	events []recordedEvent
}

func (r *fakeRecorder) RecordAnalyticsEvent(feature, action string) {
	r.events = append(r.events, recordedEvent{feature, action})
}

type failingAnalyticRepository struct{}

func (failingAnalyticRepository) Create(context.Context, *model.UsageAnalytics) error {
	return errors.New("down")
}

func (failingAnalyticRepository) FeatureStats(context.Context, string) ([]model.FeatureStat, error) {
	return nil, errors.New("down")
}

func (failingAnalyticRepository) Recent(context.Context, string, time.Time, int) ([]model.UsageAnalytics, error) {
	return nil, errors.New("down")
}

func TestTrackUsageRecordsMetric(t *testing.T) {
	ctx := context.Background()
	recorder := &fakeRecorder{}
	svc := NewAnalyticsService(testutil.NewSqliteStore(t).Analytics, recorder)

	duration := 90
	event, err := svc.TrackUsage(ctx, "", dto.TrackUsageRequest{
		Feature:  "zen",
		Action:   "complete",
		Duration: &duration,
		Metadata: map[string]interface{}{"track": "rain"},
	})
	require.NoError(t, err)
	assert.Equal(t, "anonymous", event.UserID)
	assert.Equal(t, "rain", event.Metadata["track"])
	assert.Equal(t, []recordedEvent{{"zen", "complete"}}, recorder.events)
}

func TestGetUsageSummary(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewSqliteStore(t)
	svc := NewAnalyticsService(store.Analytics, nil)

	now := time.Now().UTC()
	old := 45
	require.NoError(t, store.Analytics.Create(ctx, &model.UsageAnalytics{
		UserID: "u1", Feature: "cbt", Action: "complete", Duration: &old, CreatedAt: now.AddDate(0, 0, -30),
	}))
	for i := 0; i < 25; i++ {
		d := 10
		require.NoError(t, store.Analytics.Create(ctx, &model.UsageAnalytics{
			UserID: "u1", Feature: "zen", Action: "view", Duration: &d, CreatedAt: now.Add(-time.Duration(i) * time.Minute),
		}))
	}

	summary := svc.GetUsageSummary(ctx, "u1")
	require.Len(t, summary.FeatureStats, 2)
	assert.Equal(t, model.FeatureStat{Feature: "cbt", TotalSessions: 1, TotalDuration: 45}, summary.FeatureStats[0])
	assert.Equal(t, model.FeatureStat{Feature: "zen", TotalSessions: 25, TotalDuration: 250}, summary.FeatureStats[1])

	require.Len(t, summary.RecentActivity, 20)
	assert.Equal(t, 20, summary.TotalSessions)
	for _, activity := range summary.RecentActivity {
		assert.Equal(t, "zen", activity.Feature)
		_, err := time.Parse(time.RFC3339Nano, activity.CreatedAt)
		assert.NoError(t, err)
	}
}

func TestGetUsageSummaryEmptyUser(t *testing.T) {
	svc := NewAnalyticsService(testutil.NewSqliteStore(t).Analytics, nil)

	summary := svc.GetUsageSummary(context.Background(), "nobody")
	assert.NotNil(t, summary.FeatureStats)
	assert.Empty(t, summary.FeatureStats)
	assert.NotNil(t, summary.RecentActivity)
	assert.Empty(t, summary.RecentActivity)
	assert.Zero(t, summary.TotalSessions)
}

func TestGetUsageSummaryDegradesOnStorageError(t *testing.T) {
	svc := NewAnalyticsService(failingAnalyticRepository{}, nil)

	summary := svc.GetUsageSummary(context.Background(), "u1")
	assert.Equal(t, dto.EmptyUsageSummary(), summary)

	_, err := svc.TrackUsage(context.Background(), "u1", dto.TrackUsageRequest{Feature: "zen", Action: "view"})
	assert.Error(t, err)
}
