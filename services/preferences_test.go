package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serenity-space/serenity_api/dto"
	"github.com/serenity-space/serenity_api/testutil"
)

func TestCreatePreferencesDerivesTheme(t *testing.T) {
	ctx := context.Background()
	svc := NewPreferenceService(testutil.NewSqliteStore(t).Preferences)

	list, err := svc.ListPreferences(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	prefs, err := svc.CreatePreferences(ctx, dto.CreatePreferencesRequest{
		Identity:      strPtr("Professional"),
		CurrentMood:   strPtr("Stressed"),
		MoodFrequency: strPtr("Often"),
	})
	require.NoError(t, err)
	assert.Equal(t, "#EF4444", prefs.ThemeColors["primary"])

	list, err = svc.ListPreferences(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, prefs.ThemeColors, list[0].ThemeColors)
}

func TestZenSessionDefaults(t *testing.T) {
	ctx := context.Background()
	svc := NewZenService(testutil.NewSqliteStore(t).ZenSessions)

	duration := 0
	completed := false
	_, err := svc.CreateSession(ctx, "u1", dto.CreateZenSessionRequest{SessionType: strPtr("breathing"), Duration: &duration})
	require.NoError(t, err)
	_, err = svc.CreateSession(ctx, "u1", dto.CreateZenSessionRequest{SessionType: strPtr("body_scan"), Duration: &duration, Completed: &completed})
	require.NoError(t, err)

	sessions, err := svc.ListSessions(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.True(t, sessions[0].Completed)
	assert.False(t, sessions[1].Completed)
}
