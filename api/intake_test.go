package api

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mediassist/mediassist-api/consts"
)

func TestStartUnknownDisease(t *testing.T) {
	s := testServer(t, nil)
	router := s.setupRouter()

	w := doJSON(router, "POST", "/api/flu/start", map[string]string{"chat_id": "t1"})

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
	resp := decodeJSON(t, w)
	assert.Equal(t, "Invalid disease type", resp["error"])
}

func TestDiabetesConversation(t *testing.T) {
	s := testServer(t, nil)
	router := s.setupRouter()

	w := doJSON(router, "POST", "/api/diabetes/start", map[string]string{"chat_id": "t1"})
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	resp := decodeJSON(t, w)
	next := resp["nextQuestion"].(map[string]interface{})
	assert.Equal(t, "Pregnancies", next["id"], "wrong first question")

	fields := consts.FieldsFor(consts.DiseaseDiabetes)
	var final map[string]interface{}
	for i, field := range fields {
		w = doJSON(router, "POST", "/api/diabetes/answer", map[string]interface{}{
			"chat_id":    "t1",
			"questionId": field,
			"answer":     strconv.Itoa(i + 1),
		})
		assert.Equal(t, http.StatusOK, w.Code, "answer %d rejected", i)
		final = decodeJSON(t, w)

		if i < len(fields)-1 {
			assert.Equal(t, false, final["isComplete"])
			next := final["nextQuestion"].(map[string]interface{})
			assert.Equal(t, fields[i+1], next["id"], "wrong next question")
		}
	}

	assert.Equal(t, true, final["isComplete"], "conversation did not complete")
	prediction := final["prediction"].(map[string]interface{})
	_, ok := prediction["isHighRisk"].(bool)
	assert.True(t, ok, "isHighRisk is not a boolean")

	// the session is gone after the terminal response
	w = doJSON(router, "POST", "/api/diabetes/answer", map[string]interface{}{
		"chat_id":    "t1",
		"questionId": fields[0],
		"answer":     "1",
	})
	assert.Equal(t, http.StatusNotFound, w.Code, "completed session still reachable")
	resp = decodeJSON(t, w)
	assert.Equal(t, "Chat session not found or expired.", resp["error"])
}

func TestAnswerInvalidNumber(t *testing.T) {
	s := testServer(t, nil)
	router := s.setupRouter()

	w := doJSON(router, "POST", "/api/heart/start", map[string]string{"chat_id": "t1"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "POST", "/api/heart/answer", map[string]interface{}{
		"chat_id":    "t1",
		"questionId": "age",
		"answer":     "fifty",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
	resp := decodeJSON(t, w)
	assert.Contains(t, resp["error"], "Invalid number format", "wrong error message")
}

func TestAnswerMissingFields(t *testing.T) {
	s := testServer(t, nil)
	router := s.setupRouter()

	w := doJSON(router, "POST", "/api/heart/start", map[string]string{"chat_id": "t1"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "POST", "/api/heart/answer", map[string]interface{}{
		"chat_id": "t1",
		"answer":  "50",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeJSON(t, w)
	assert.Equal(t, "Missing question ID or answer", resp["error"])
}

func TestAnswerMismatchedQuestion(t *testing.T) {
	s := testServer(t, nil)
	router := s.setupRouter()

	w := doJSON(router, "POST", "/api/heart/start", map[string]string{"chat_id": "t1"})
	assert.Equal(t, http.StatusOK, w.Code)

	// cursor expects "age"
	w = doJSON(router, "POST", "/api/heart/answer", map[string]interface{}{
		"chat_id":    "t1",
		"questionId": "chol",
		"answer":     "200",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, "mismatched question accepted")
}

func TestAnswerUnknownSession(t *testing.T) {
	s := testServer(t, nil)
	router := s.setupRouter()

	w := doJSON(router, "POST", "/api/covid/answer", map[string]interface{}{
		"chat_id":    "never-started",
		"questionId": "fever",
		"answer":     "1",
	})
	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
}
