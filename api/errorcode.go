package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// Error messages exposed to clients. Wording is part of the API
// contract consumed by the frontend.
const (
	errorMessageInternalServer   = "internal server error"
	errorMessageAINotConfigured  = "AI assistant is not configured on the server."
	errorMessagePromptMissing    = "Prompt is missing"
	errorMessageAIFailed         = "Failed to get response from AI assistant."
	errorMessageInvalidDisease   = "Invalid disease type"
	errorMessageSessionNotFound  = "Chat session not found or expired."
	errorMessageMissingQuestion  = "Missing question ID or answer"
	errorMessagePredictionFailed = "Prediction failed."
	errorMessageMissingLatLon    = "Latitude and Longitude are required."
)

// ErrorResponse is the envelope for every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

func errorInvalidAnswer(answer string) string {
	return fmt.Sprintf("Invalid number format for answer: %s", answer)
}

// abortWithError sends the error envelope and stops the handler chain.
// Extra errors are attached to the gin context for logging only, never
// exposed to the client.
func abortWithError(c *gin.Context, code int, message string, errors ...error) {
	for _, err := range errors {
		_ = c.Error(err)
	}
	c.JSON(code, ErrorResponse{Error: message})
	c.Abort()
}
