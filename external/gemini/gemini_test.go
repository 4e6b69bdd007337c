package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mediassist/mediassist-api/external/gemini"
)

func TestSend(t *testing.T) {
	reply := "Drink plenty of water and rest."

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]interface{}
		err := json.NewDecoder(r.Body).Decode(&req)
		assert.Nil(t, err, "bad request body")

		contents := req["contents"].([]interface{})
		// one history turn plus the new prompt
		assert.Equal(t, 2, len(contents), "wrong content count")

		resp := map[string]interface{}{
			"candidates": []interface{}{
				map[string]interface{}{
					"content": map[string]interface{}{
						"role": "model",
						"parts": []interface{}{
							map[string]interface{}{"text": reply},
						},
					},
				},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer ts.Close()

	c := gemini.New("test-key", ts.URL, nil)
	history := []gemini.Message{{Role: gemini.RoleUser, Text: "I have a headache"}}

	actual, err := c.Send(context.Background(), history, "what should I do?")
	assert.Nil(t, err, "wrong Send")
	assert.Equal(t, reply, actual, "wrong reply")
}

func TestSendEmptyKey(t *testing.T) {
	c := gemini.New("", "", nil)
	_, err := c.Send(context.Background(), nil, "hello")
	assert.Equal(t, gemini.ErrEmptyAPIKey, err, "expected empty key error")
}

func TestSendUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	c := gemini.New("test-key", ts.URL, nil)
	_, err := c.Send(context.Background(), nil, "hello")
	assert.NotNil(t, err, "expected upstream error")
}
