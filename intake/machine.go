package intake

import (
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/mediassist/mediassist-api/consts"
	"github.com/mediassist/mediassist-api/predictor"
	"github.com/mediassist/mediassist-api/schema"
	"github.com/mediassist/mediassist-api/store"
)

const logPrefix = "intake"

var (
	ErrInvalidDisease  = fmt.Errorf("invalid disease type")
	ErrSessionNotFound = fmt.Errorf("chat session not found or expired")
	ErrInvalidAnswer   = fmt.Errorf("invalid number format for answer")
	ErrFieldMismatch   = fmt.Errorf("answer does not match the expected question")
)

// StepResult is the outcome of one intake turn. Either NextQuestion is
// set (the session continues) or IsComplete is true and the prediction
// fields are populated (the session has been removed).
type StepResult struct {
	IsComplete      bool
	NextQuestion    *schema.Question
	IsHighRisk      bool
	Explanation     string
	Recommendations []schema.Recommendation
}

// Machine drives the turn-based prediction intake: one question per
// field of the disease schema, then a single prediction. Sessions live
// in the injected store; every transition for a session runs under the
// store's lock.
type Machine struct {
	sessions store.SessionStore
	registry *predictor.Registry
}

func NewMachine(sessions store.SessionStore, registry *predictor.Registry) *Machine {
	return &Machine{
		sessions: sessions,
		registry: registry,
	}
}

// Start creates (or resets) the intake session and returns the first
// question of the disease schema.
func (m *Machine) Start(disease, sessionID string) (*schema.Question, error) {
	if !consts.ValidDisease(disease) {
		return nil, ErrInvalidDisease
	}

	m.sessions.Set(sessionID, &schema.IntakeSession{
		Disease: disease,
		Answers: make(map[string]float64),
	})

	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"disease": disease,
		"session": sessionID,
	}).Info("started intake session")

	return questionFor(disease, 0), nil
}

// SubmitAnswer records one answer and advances the session cursor. The
// expected field is derived from the cursor; a client-echoed fieldID
// that names any other field is rejected. When the last field has been
// answered the session is removed and the returned result carries the
// prediction.
func (m *Machine) SubmitAnswer(sessionID, fieldID, rawAnswer string) (*StepResult, error) {
	var result *StepResult

	err := m.sessions.Update(sessionID, func(session *schema.IntakeSession) (bool, error) {
		fields := consts.FieldsFor(session.Disease)

		expected := fields[session.FieldIndex]
		if fieldID != "" && fieldID != expected {
			return false, ErrFieldMismatch
		}

		value, err := strconv.ParseFloat(rawAnswer, 64)
		if err != nil {
			return false, ErrInvalidAnswer
		}

		session.Answers[expected] = value
		session.FieldIndex++

		if session.FieldIndex < len(fields) {
			result = &StepResult{
				NextQuestion: questionFor(session.Disease, session.FieldIndex),
			}
			return false, nil
		}

		features := make([]float64, len(fields))
		for i, field := range fields {
			features[i] = session.Answers[field]
		}

		isHighRisk, err := m.registry.Predict(session.Disease, features)
		if err != nil {
			// session is spent either way
			return true, err
		}

		result = completedResult(session.Disease, isHighRisk)
		return true, nil
	})

	if err == store.ErrSessionNotFound {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	return result, nil
}

func questionFor(disease string, index int) *schema.Question {
	field := consts.FieldsFor(disease)[index]
	return &schema.Question{
		ID:   field,
		Text: fmt.Sprintf("Please enter the value for %s:", field),
	}
}

func completedResult(disease string, isHighRisk bool) *StepResult {
	risk := "low"
	if isHighRisk {
		risk = "high"
	}

	return &StepResult{
		IsComplete:  true,
		IsHighRisk:  isHighRisk,
		Explanation: fmt.Sprintf("Based on your inputs, there is a %s risk of %s.", risk, disease),
		Recommendations: []schema.Recommendation{
			{
				Title:       "Consult a Doctor",
				Description: "This is not a medical diagnosis. Please consult a healthcare professional.",
			},
			{
				Title:       "Learn More",
				Description: "Research ways to manage your risk factors and maintain a healthy lifestyle.",
			},
		},
	}
}
