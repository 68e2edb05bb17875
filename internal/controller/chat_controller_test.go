package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"aroma-content-be/internal/dto"
	"aroma-content-be/internal/pkg/serverutils"
	"aroma-content-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	reply     string
	err       error
	lastTopic string
}

func (s *stubService) GeneratePost(_ context.Context, topic, _ string) (string, error) {
	s.lastTopic = topic
	return s.reply, s.err
}

func (s *stubService) GenerateIdeas(_ context.Context, theme, _ string) (string, error) {
	s.lastTopic = theme
	return s.reply, s.err
}

func (s *stubService) ResearchTopic(_ context.Context, topic, _ string) (string, error) {
	s.lastTopic = topic
	return s.reply, s.err
}

func (s *stubService) RefineContent(_ context.Context, request, _ string) (string, error) {
	return s.reply, s.err
}

func (s *stubService) ConversationalChat(_ context.Context, message, _ string) (string, error) {
	return s.reply, s.err
}

func (s *stubService) HandleChat(_ context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &dto.ChatResponse{Response: s.reply, MessageType: "conversation", Status: "success"}, nil
}

func (s *stubService) ConversationContext(_ context.Context, _ string) string { return "" }
func (s *stubService) CorpusSize() int                                        { return 42 }
func (s *stubService) ActiveConversations(_ context.Context) int              { return 3 }

func newTestApp(svc service.IGenerationService) *fiber.App {
	app := fiber.New()
	NewChatController(svc).RegisterRoutes(app)
	return app
}

func TestChatEndpoint(t *testing.T) {
	app := newTestApp(&stubService{reply: "ответ ассистента"})

	req := httptest.NewRequest("POST", "/chat", strings.NewReader(`{"message": "привет"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var result dto.ChatResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "ответ ассистента", result.Response)
	assert.Equal(t, "conversation", result.MessageType)
	assert.Equal(t, "success", result.Status)
}

func TestChatEndpointRejectsEmptyMessage(t *testing.T) {
	app := newTestApp(&stubService{reply: "ответ"})

	req := httptest.NewRequest("POST", "/chat", strings.NewReader(`{"message": ""}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	var result serverutils.BaseResponse[any]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.False(t, result.Success)
}

func TestGeneratePostEndpoint(t *testing.T) {
	svc := &stubService{reply: "готовый пост"}
	app := newTestApp(svc)

	req := httptest.NewRequest("POST", "/generate-post", strings.NewReader(`{"message": "уютный вечер"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var result dto.ChatResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "готовый пост", result.Response)
	assert.Equal(t, "post", result.MessageType)
	assert.Equal(t, "уютный вечер", svc.lastTopic)
}

func TestGenerateIdeasEndpointAllowsEmptyTheme(t *testing.T) {
	app := newTestApp(&stubService{reply: "идеи"})

	req := httptest.NewRequest("POST", "/generate-ideas", strings.NewReader(`{"message": ""}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var result dto.ChatResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "ideas", result.MessageType)
}

func TestGenerationFailureMapsTo500(t *testing.T) {
	app := newTestApp(&stubService{err: &service.GenerationError{Task: "post", Err: errors.New("upstream down")}})

	req := httptest.NewRequest("POST", "/chat", strings.NewReader(`{"message": "напиши пост"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	var result serverutils.BaseResponse[any]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "upstream down")
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(&stubService{})

	req := httptest.NewRequest("GET", "/health", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var result dto.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "healthy", result.Status)
	assert.Equal(t, 42, result.CorpusSize)
	assert.Equal(t, 3, result.ActiveConversations)
}
