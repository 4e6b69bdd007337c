package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/mediassist/mediassist-api/consts"
	"github.com/mediassist/mediassist-api/external/gemini"
	"github.com/mediassist/mediassist-api/geo"
	"github.com/mediassist/mediassist-api/predictor"
	"github.com/mediassist/mediassist-api/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testRegistry builds a registry whose classifiers flag high risk for
// any all-positive feature vector.
func testRegistry(t *testing.T) *predictor.Registry {
	classifiers := make(map[string]predictor.Classifier)
	for _, disease := range consts.Diseases() {
		weights := make([]float64, len(consts.FieldsFor(disease)))
		for i := range weights {
			weights[i] = 1
		}
		classifiers[disease] = &predictor.LinearClassifier{Weights: weights}
	}

	registry, err := predictor.NewRegistry(classifiers)
	assert.Nil(t, err)
	return registry
}

func testServer(t *testing.T, assistant gemini.Chat, finders ...geo.FacilityFinder) *Server {
	return NewServer(
		store.NewSessionStore(),
		store.NewChatStore(),
		testRegistry(t),
		assistant,
		finders...)
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var resp map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json response")
	return resp
}
