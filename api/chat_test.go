package api

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/mediassist/mediassist-api/api/mocks"
	"github.com/mediassist/mediassist-api/external/gemini"
)

func TestChatNotConfigured(t *testing.T) {
	s := testServer(t, nil)
	router := s.setupRouter()

	w := doJSON(router, "POST", "/api/chat", map[string]string{"prompt": "hello"})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code, "wrong status code")
	resp := decodeJSON(t, w)
	assert.Equal(t, "AI assistant is not configured on the server.", resp["error"])
}

func TestChatPromptMissing(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	assistant := mocks.NewMockChat(ctl)
	s := testServer(t, assistant)
	router := s.setupRouter()

	w := doJSON(router, "POST", "/api/chat", map[string]string{"chat_id": "c1"})

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
	resp := decodeJSON(t, w)
	assert.Equal(t, "Prompt is missing", resp["error"])
}

func TestChatSuccessKeepsHistory(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	assistant := mocks.NewMockChat(ctl)
	assistant.EXPECT().Send(gomock.Any(), gomock.Any(), "first").
		DoAndReturn(func(_ context.Context, history []gemini.Message, _ string) (string, error) {
			assert.Equal(t, 0, len(history), "unexpected history on first turn")
			return "reply one", nil
		}).Times(1)
	assistant.EXPECT().Send(gomock.Any(), gomock.Any(), "second").
		DoAndReturn(func(_ context.Context, history []gemini.Message, _ string) (string, error) {
			assert.Equal(t, 2, len(history), "history not carried to second turn")
			return "reply two", nil
		}).Times(1)

	s := testServer(t, assistant)
	router := s.setupRouter()

	w := doJSON(router, "POST", "/api/chat", map[string]string{"prompt": "first", "chat_id": "c1"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "reply one", decodeJSON(t, w)["response"])

	w = doJSON(router, "POST", "/api/chat", map[string]string{"prompt": "second", "chat_id": "c1"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "reply two", decodeJSON(t, w)["response"])
}

func TestChatUpstreamFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	assistant := mocks.NewMockChat(ctl)
	assistant.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", fmt.Errorf("model quota exceeded")).Times(1)

	s := testServer(t, assistant)
	router := s.setupRouter()

	w := doJSON(router, "POST", "/api/chat", map[string]string{"prompt": "hello"})

	assert.Equal(t, http.StatusInternalServerError, w.Code, "wrong status code")
	resp := decodeJSON(t, w)
	assert.Equal(t, "Failed to get response from AI assistant.", resp["error"])
	// internal detail is logged, never exposed
	assert.NotContains(t, w.Body.String(), "quota")
}
