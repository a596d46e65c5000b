package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serenity-space/serenity_api/model"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestCreatePreferencesRequestValidation(t *testing.T) {
	req := &CreatePreferencesRequest{Identity: strPtr("Student"), MoodFrequency: strPtr("Daily")}

	err := req.Validate()
	require.Error(t, err)

	errs := FormatValidationErrors(err)
	require.Len(t, errs, 1)
	assert.Equal(t, ValidationError{Field: "current_mood", Message: "current_mood is required"}, errs[0])

	req.CurrentMood = strPtr("Anxious")
	assert.NoError(t, req.Validate())
	assert.Equal(t, "Anxious", req.GetCurrentMood())
}

func TestRequiredTextFieldsAcceptEmptyStrings(t *testing.T) {
	prefs := &CreatePreferencesRequest{Identity: strPtr(""), CurrentMood: strPtr(""), MoodFrequency: strPtr("")}
	assert.NoError(t, prefs.Validate())

	dynamic := &DynamicQuestionRequest{NegativeThought: strPtr("")}
	assert.NoError(t, dynamic.Validate())
	assert.Empty(t, dynamic.GetNegativeThought())

	session := &CreateCBTSessionRequest{NegativeThought: strPtr(""), QuestionsAndAnswers: []model.QuestionAnswer{}}
	assert.NoError(t, session.Validate())

	zen := &CreateZenSessionRequest{SessionType: strPtr(""), Duration: intPtr(5)}
	assert.NoError(t, zen.Validate())

	errs := FormatValidationErrors((&CreateZenSessionRequest{Duration: intPtr(5)}).Validate())
	require.Len(t, errs, 1)
	assert.Equal(t, "session_type", errs[0].Field)
}

func TestCreateCBTSessionRequestAllowsEmptyAnswers(t *testing.T) {
	req := &CreateCBTSessionRequest{NegativeThought: strPtr("x"), QuestionsAndAnswers: []model.QuestionAnswer{}}
	assert.NoError(t, req.Validate())

	req.QuestionsAndAnswers = nil
	errs := FormatValidationErrors(req.Validate())
	require.Len(t, errs, 1)
	assert.Equal(t, "questions_and_answers", errs[0].Field)
}

func TestSyncRequestValidatesEachSnapshot(t *testing.T) {
	req := &SyncCBTSessionsRequest{Sessions: []CBTSessionSnapshot{
		{ID: "a", NegativeThought: strPtr("ok"), QuestionsAndAnswers: []model.QuestionAnswer{}},
		{ID: "b", QuestionsAndAnswers: []model.QuestionAnswer{}},
	}}

	errs := FormatValidationErrors(req.Validate())
	require.Len(t, errs, 1)
	assert.Equal(t, "sessions[1].negative_thought", errs[0].Field)

	assert.Error(t, (&SyncCBTSessionsRequest{}).Validate())
	assert.NoError(t, (&SyncCBTSessionsRequest{Sessions: []CBTSessionSnapshot{}}).Validate())
}

func TestCreateZenSessionRequest(t *testing.T) {
	req := &CreateZenSessionRequest{SessionType: strPtr("breathing")}
	errs := FormatValidationErrors(req.Validate())
	require.Len(t, errs, 1)
	assert.Equal(t, "duration", errs[0].Field)

	req.Duration = intPtr(-1)
	errs = FormatValidationErrors(req.Validate())
	require.Len(t, errs, 1)
	assert.Equal(t, "duration must be at least 0", errs[0].Message)

	req.Duration = intPtr(0)
	assert.NoError(t, req.Validate())
	assert.True(t, req.IsCompleted())

	completed := false
	req.Completed = &completed
	assert.False(t, req.IsCompleted())
}

func TestTrackUsageRequestEnums(t *testing.T) {
	req := &TrackUsageRequest{Feature: "zen", Action: "view"}
	assert.NoError(t, req.Validate())

	req.Feature = "gaming"
	errs := FormatValidationErrors(req.Validate())
	require.Len(t, errs, 1)
	assert.Equal(t, "feature", errs[0].Field)
	assert.Equal(t, "feature must be one of: zen music cbt visual articles", errs[0].Message)

	req.Feature = "music"
	req.Duration = intPtr(-5)
	assert.Error(t, req.Validate())
}

func TestCreateValidationErrorResponse(t *testing.T) {
	resp := CreateValidationErrorResponse((&DynamicQuestionRequest{}).Validate())
	assert.Equal(t, 422, resp.Code)
	assert.Equal(t, "Validation failed", resp.Message)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "negative_thought", resp.Errors[0].Field)
}
