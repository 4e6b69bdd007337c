package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mediassist/mediassist-api/consts"
	"github.com/mediassist/mediassist-api/intake"
)

const defaultIntakeID = "default_chat"

type startRequest struct {
	ChatID string `json:"chat_id"`
}

type answerRequest struct {
	ChatID     string      `json:"chat_id"`
	QuestionID string      `json:"questionId"`
	Answer     interface{} `json:"answer"`
}

// startIntake opens a question/answer session for the disease in the
// path and returns the first question.
func (s *Server) startIntake(c *gin.Context) {
	disease := c.Param("disease")

	// body is optional; a missing chat_id falls back to the default
	var body startRequest
	_ = c.ShouldBindJSON(&body)

	chatID := body.ChatID
	if chatID == "" {
		chatID = defaultIntakeID
	}

	question, err := s.machine.Start(disease, chatID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, errorMessageInvalidDisease, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      fmt.Sprintf("Starting %s risk assessment chat.", disease),
		"nextQuestion": question,
	})
}

// submitAnswer records one answer for the session and returns either
// the next question or the terminal prediction.
func (s *Server) submitAnswer(c *gin.Context) {
	disease := c.Param("disease")
	if !consts.ValidDisease(disease) {
		abortWithError(c, http.StatusBadRequest, errorMessageInvalidDisease)
		return
	}

	var body answerRequest
	if err := c.BindJSON(&body); err != nil {
		abortWithError(c, http.StatusBadRequest, errorMessageMissingQuestion, err)
		return
	}

	if body.QuestionID == "" || body.Answer == nil {
		abortWithError(c, http.StatusBadRequest, errorMessageMissingQuestion)
		return
	}

	chatID := body.ChatID
	if chatID == "" {
		chatID = defaultIntakeID
	}

	rawAnswer := fmt.Sprintf("%v", body.Answer)
	result, err := s.machine.SubmitAnswer(chatID, body.QuestionID, rawAnswer)
	switch err {
	case nil:
	case intake.ErrSessionNotFound:
		abortWithError(c, http.StatusNotFound, errorMessageSessionNotFound)
		return
	case intake.ErrInvalidAnswer:
		abortWithError(c, http.StatusBadRequest, errorInvalidAnswer(rawAnswer))
		return
	case intake.ErrFieldMismatch:
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	default:
		log.WithError(err).WithField("disease", disease).Error("intake turn failed")
		abortWithError(c, http.StatusInternalServerError, errorMessagePredictionFailed)
		return
	}

	if !result.IsComplete {
		c.JSON(http.StatusOK, gin.H{
			"isComplete":   false,
			"nextQuestion": result.NextQuestion,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"isComplete": true,
		"prediction": gin.H{
			"isHighRisk": result.IsHighRisk,
		},
		"explanation":     result.Explanation,
		"recommendations": result.Recommendations,
	})
}
