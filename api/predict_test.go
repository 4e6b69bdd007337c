package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredictFormHeart(t *testing.T) {
	s := testServer(t, nil)
	router := s.setupRouter()

	features := make([]float64, 13)
	for i := range features {
		features[i] = 1
	}

	w := doJSON(router, "POST", "/api/heart/predict_form", map[string]interface{}{
		"features": features,
	})
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	resp := decodeJSON(t, w)
	assert.Equal(t, true, resp["isHighRisk"], "wrong verdict")
	assert.Contains(t, resp["explanation"], "heart", "wrong explanation")
}

func TestPredictFormShortVector(t *testing.T) {
	s := testServer(t, nil)
	router := s.setupRouter()

	// one short of the 13 the heart schema expects
	w := doJSON(router, "POST", "/api/heart/predict_form", map[string]interface{}{
		"features": make([]float64, 12),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	resp := decodeJSON(t, w)
	assert.Contains(t, resp["error"], "Expected 13 values", "error does not name expected length")
}

func TestPredictFormUnknownDisease(t *testing.T) {
	s := testServer(t, nil)
	router := s.setupRouter()

	w := doJSON(router, "POST", "/api/flu/predict_form", map[string]interface{}{
		"features": []float64{1},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
	resp := decodeJSON(t, w)
	assert.Equal(t, "Invalid disease type", resp["error"])
}
