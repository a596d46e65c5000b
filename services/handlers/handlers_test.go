package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serenity-space/serenity_api/dto"
	"github.com/serenity-space/serenity_api/model"
	"github.com/serenity-space/serenity_api/shared"
)

type stubPreferenceService struct {
	created []dto.CreatePreferencesRequest
}

func (s *stubPreferenceService) CreatePreferences(_ context.Context, req dto.CreatePreferencesRequest) (*model.UserPreferences, error) {
	s.created = append(s.created, req)
	return &model.UserPreferences{ID: "p1", CurrentMood: req.GetCurrentMood()}, nil
}

func (s *stubPreferenceService) ListPreferences(context.Context) ([]model.UserPreferences, error) {
	return []model.UserPreferences{}, nil
}

type stubZenService struct {
	userID string
}

func (s *stubZenService) CreateSession(_ context.Context, userID string, req dto.CreateZenSessionRequest) (*model.ZenSession, error) {
	s.userID = userID
	return &model.ZenSession{UserID: userID, SessionType: req.GetSessionType(), Duration: *req.Duration, Completed: req.IsCompleted()}, nil
}

func (s *stubZenService) ListSessions(_ context.Context, userID string) ([]model.ZenSession, error) {
	s.userID = userID
	return []model.ZenSession{}, nil
}

func TestCreatePreferencesValidation(t *testing.T) {
	svc := &stubPreferenceService{}
	app := fiber.New()
	app.Post("/preferences", NewPreferenceHandler(svc).CreatePreferences)

	req := httptest.NewRequest(fiber.MethodPost, "/preferences", strings.NewReader(`{"identity":"Student"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var body dto.ValidationErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Errors, 2)
	assert.Empty(t, svc.created)

	req = httptest.NewRequest(fiber.MethodPost, "/preferences",
		strings.NewReader(`{"identity":"Student","current_mood":"Sad","mood_frequency":"Daily"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, svc.created, 1)
	assert.Equal(t, "Sad", svc.created[0].GetCurrentMood())
}

func TestZenHandlerDefaultsUser(t *testing.T) {
	svc := &stubZenService{}
	app := fiber.New()
	h := NewZenHandler(svc)
	app.Post("/zen", h.CreateSession)
	app.Get("/zen", h.ListSessions)

	req := httptest.NewRequest(fiber.MethodPost, "/zen", strings.NewReader(`{"session_type":"breathing","duration":60}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, shared.AnonymousID, svc.userID)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/zen?user_id=u9", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "u9", svc.userID)
}

func TestPingEnvelope(t *testing.T) {
	app := fiber.New()
	app.Get("/ping", NewHealthHandler().Ping)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ping", nil))
	require.NoError(t, err)

	var body shared.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 200, body.Code)
	assert.Equal(t, "pong", body.Data)
}
