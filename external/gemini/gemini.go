package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	log "github.com/sirupsen/logrus"
)

const (
	logPrefix      = "gemini"
	defaultModel   = "gemini-1.5-flash-latest"
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

	RoleUser  = "user"
	RoleModel = "model"
)

var (
	ErrEmptyAPIKey   = fmt.Errorf("empty api key")
	ErrEmptyResponse = fmt.Errorf("empty response from model")
)

// Message is one turn of a conversation sent to the model.
type Message struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Chat - interface to exchange messages with the generative AI model
type Chat interface {
	Send(ctx context.Context, history []Message, prompt string) (string, error)
}

type chat struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

type contentPart struct {
	Text string `json:"text"`
}

type content struct {
	Role  string        `json:"role,omitempty"`
	Parts []contentPart `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (g *chat) Send(ctx context.Context, history []Message, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", ErrEmptyAPIKey
	}

	contents := make([]content, 0, len(history)+1)
	for _, m := range history {
		contents = append(contents, content{
			Role:  m.Role,
			Parts: []contentPart{{Text: m.Text}},
		})
	}
	contents = append(contents, content{
		Role:  RoleUser,
		Parts: []contentPart{{Text: prompt}},
	})

	body, err := json.Marshal(generateRequest{Contents: contents})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	d, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"status": resp.StatusCode,
		}).Error("generate content request failed")
		return "", fmt.Errorf("model responded with status %d", resp.StatusCode)
	}

	var r generateResponse
	if err := json.Unmarshal(d, &r); err != nil {
		return "", err
	}

	if len(r.Candidates) == 0 || len(r.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	return r.Candidates[0].Content.Parts[0].Text, nil
}

// New - new Chat client. baseURL overrides the production endpoint and
// is meant for tests.
func New(apiKey, baseURL string, client *http.Client) Chat {
	u := defaultBaseURL
	if baseURL != "" {
		u = baseURL
	}

	if client == nil {
		client = http.DefaultClient
	}

	return &chat{
		apiKey:  apiKey,
		baseURL: u,
		model:   defaultModel,
		client:  client,
	}
}
