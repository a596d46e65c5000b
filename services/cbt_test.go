package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serenity-space/serenity_api/dto"
	"github.com/serenity-space/serenity_api/model"
	"github.com/serenity-space/serenity_api/shared"
	"github.com/serenity-space/serenity_api/testutil"
)

func strPtr(v string) *string { return &v }

func TestCBTSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewCBTService(testutil.NewSqliteStore(t).CBTSessions)

	session, err := svc.CreateSession(ctx, "", dto.CreateCBTSessionRequest{
		NegativeThought:     strPtr("I always fail"),
		QuestionsAndAnswers: []model.QuestionAnswer{{Question: "Why?", Answer: "Fear"}},
	})
	require.NoError(t, err)
	assert.Equal(t, shared.AnonymousID, session.UserID)

	sessions, err := svc.ListSessions(ctx, shared.AnonymousID)
	require.NoError(t, err)
	require.Len(t, sessions, 1)

	err = svc.DeleteSession(ctx, session.ID, "someone-else")
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode)
	assert.Equal(t, "Session not found", appErr.Message)

	require.NoError(t, svc.DeleteSession(ctx, session.ID, ""))

	sessions, err = svc.ListSessions(ctx, "")
	require.NoError(t, err)
	assert.NotNil(t, sessions)
	assert.Empty(t, sessions)
}

func TestSyncSessionsIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := NewCBTService(testutil.NewSqliteStore(t).CBTSessions)

	req := dto.SyncCBTSessionsRequest{Sessions: []dto.CBTSessionSnapshot{
		{ID: "offline-1", NegativeThought: strPtr("one"), QuestionsAndAnswers: []model.QuestionAnswer{}, CreatedAt: "2024-03-01T10:00:00Z"},
		{ID: "offline-2", NegativeThought: strPtr("two"), QuestionsAndAnswers: []model.QuestionAnswer{}, CreatedAt: "2024-03-02T10:00:00"},
	}}

	synced, err := svc.SyncSessions(ctx, "u1", req)
	require.NoError(t, err)
	assert.Equal(t, 2, synced)

	synced, err = svc.SyncSessions(ctx, "u1", req)
	require.NoError(t, err)
	assert.Equal(t, 0, synced)

	sessions, err := svc.ListSessions(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "offline-1", sessions[0].ID)
	assert.True(t, sessions[0].CreatedAt.Equal(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)))
	assert.True(t, sessions[1].CreatedAt.Equal(time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)))
}

func TestSyncSessionsWithoutIDAlwaysInserts(t *testing.T) {
	ctx := context.Background()
	svc := NewCBTService(testutil.NewSqliteStore(t).CBTSessions)

	req := dto.SyncCBTSessionsRequest{Sessions: []dto.CBTSessionSnapshot{
		{NegativeThought: strPtr("no id"), QuestionsAndAnswers: []model.QuestionAnswer{}},
	}}
	for i := 0; i < 2; i++ {
		synced, err := svc.SyncSessions(ctx, "u1", req)
		require.NoError(t, err)
		assert.Equal(t, 1, synced)
	}

	sessions, err := svc.ListSessions(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, sessions, 2)
}

func TestParseTimestamp(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)
	svc := &CBTService{now: func() time.Time { return fixed }}

	tests := []struct {
		name  string
		value string
		want  time.Time
	}{
		{"rfc3339", "2024-03-01T10:00:00Z", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{"offset", "2024-03-01T12:00:00+02:00", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{"fraction", "2024-03-01T10:00:00.123Z", time.Date(2024, 3, 1, 10, 0, 0, 123000000, time.UTC)},
		{"zoneless", "2024-03-01T10:00:00", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{"date only", "2024-03-01", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"empty", "", fixed},
		{"garbage", "yesterday", fixed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.parseTimestamp(tt.value)
			assert.True(t, tt.want.Equal(got), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}
