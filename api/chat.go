package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mediassist/mediassist-api/external/gemini"
)

const defaultChatID = "default_gemini"

type chatRequest struct {
	Prompt string `json:"prompt"`
	ChatID string `json:"chat_id"`
}

// chat proxies a prompt to the AI assistant, carrying the per-chat
// conversation history so follow-up questions keep their context.
func (s *Server) chat(c *gin.Context) {
	if s.assistant == nil {
		abortWithError(c, http.StatusServiceUnavailable, errorMessageAINotConfigured)
		return
	}

	var body chatRequest
	if err := c.BindJSON(&body); err != nil {
		abortWithError(c, http.StatusBadRequest, errorMessagePromptMissing, err)
		return
	}

	if body.Prompt == "" {
		abortWithError(c, http.StatusBadRequest, errorMessagePromptMissing)
		return
	}

	chatID := body.ChatID
	if chatID == "" {
		chatID = defaultChatID
	}

	history := s.chats.History(chatID)
	reply, err := s.assistant.Send(c.Request.Context(), history, body.Prompt)
	if err != nil {
		log.WithError(err).Error("assistant call failed")
		abortWithError(c, http.StatusInternalServerError, errorMessageAIFailed)
		return
	}

	s.chats.Append(chatID,
		gemini.Message{Role: gemini.RoleUser, Text: body.Prompt},
		gemini.Message{Role: gemini.RoleModel, Text: reply},
	)

	c.JSON(http.StatusOK, gin.H{
		"response": reply,
	})
}
