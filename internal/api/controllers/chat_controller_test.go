package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localexplorer/internal/models/domain_models"
	"localexplorer/pkg/utils"
)

type fakeDialogueService struct {
	response        string
	err             error
	recommendations []domain_models.RecommendedExperience
	recErr          error

	advanceCalls  int
	lastSessionID string
	lastInput     string
}

func (f *fakeDialogueService) Advance(ctx context.Context, sessionID string, userInput string) (string, error) {
	f.advanceCalls++
	f.lastSessionID = sessionID
	f.lastInput = userInput
	return f.response, f.err
}

func (f *fakeDialogueService) Recommendations(sessionID string) ([]domain_models.RecommendedExperience, error) {
	f.lastSessionID = sessionID
	return f.recommendations, f.recErr
}

func newChatRouter(fake *fakeDialogueService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewChatController(fake)
	router.POST("/chat", ctrl.ChatHandler)
	router.GET("/chat/:id/recommendations", ctrl.RecommendationsHandler)
	return router
}

func postChat(t *testing.T, router *gin.Engine, body string) (*httptest.ResponseRecorder, utils.APIResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var envelope utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

func TestChatHandlerMalformedBody(t *testing.T) {
	fake := &fakeDialogueService{}
	router := newChatRouter(fake)

	w, envelope := postChat(t, router, `{"message":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error", envelope.Status)
	assert.Equal(t, "Invalid request format", envelope.Message)
	assert.Zero(t, fake.advanceCalls)
}

func TestChatHandlerMissingMessageField(t *testing.T) {
	fake := &fakeDialogueService{}
	router := newChatRouter(fake)

	w, envelope := postChat(t, router, `{"session_id":"s1"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request format", envelope.Message)
	assert.Zero(t, fake.advanceCalls)
}

func TestChatHandlerEmptyMessageSkipsDialogue(t *testing.T) {
	fake := &fakeDialogueService{}
	router := newChatRouter(fake)

	w, envelope := postChat(t, router, `{"message":"   ","session_id":"s1"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", envelope.Status)
	data := envelope.Data.(map[string]interface{})
	assert.Equal(t, "Please enter a valid message.", data["response"])
	assert.Zero(t, fake.advanceCalls)
}

func TestChatHandlerGeneratesSessionID(t *testing.T) {
	fake := &fakeDialogueService{response: "hello"}
	router := newChatRouter(fake)

	w, envelope := postChat(t, router, `{"message":"hi"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	data := envelope.Data.(map[string]interface{})
	assert.Equal(t, "hello", data["response"])
	assert.NotEmpty(t, data["session_id"])
	assert.Equal(t, data["session_id"], fake.lastSessionID)
	assert.Equal(t, 1, fake.advanceCalls)
}

func TestChatHandlerReusesProvidedSessionID(t *testing.T) {
	fake := &fakeDialogueService{response: "hello again"}
	router := newChatRouter(fake)

	w, envelope := postChat(t, router, `{"message":"hi","session_id":"abc-123"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	data := envelope.Data.(map[string]interface{})
	assert.Equal(t, "abc-123", data["session_id"])
	assert.Equal(t, "abc-123", fake.lastSessionID)
	assert.Equal(t, "hi", fake.lastInput)
}

func TestChatHandlerServiceErrorMapping(t *testing.T) {
	fake := &fakeDialogueService{err: utils.ErrCollaboratorUnavailable}
	router := newChatRouter(fake)

	w, envelope := postChat(t, router, `{"message":"hi","session_id":"s1"}`)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "error", envelope.Status)
	assert.Equal(t, "Upstream service unavailable", envelope.Message)
}

func TestRecommendationsHandlerUnknownSession(t *testing.T) {
	fake := &fakeDialogueService{recErr: utils.ErrSessionNotFound}
	router := newChatRouter(fake)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/chat/missing/recommendations", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecommendationsHandlerReturnsAllRenderings(t *testing.T) {
	fake := &fakeDialogueService{
		recommendations: []domain_models.RecommendedExperience{
			{Name: "Desert Safari", Description: "Dune bashing", Score: 80, Rationale: []string{"Interest match: desert +10"}},
		},
	}
	router := newChatRouter(fake)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/chat/s1/recommendations", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var envelope utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	data := envelope.Data.(map[string]interface{})

	recs := data["recommendations"].([]interface{})
	require.Len(t, recs, 1)
	assert.Equal(t, "s1", fake.lastSessionID)
	assert.Contains(t, data["text"], "Desert Safari")
	assert.Contains(t, data["html"], "attraction-card")
}
