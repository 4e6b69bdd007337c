package store

import (
	"sync"

	"github.com/mediassist/mediassist-api/external/gemini"
)

// ChatStore keeps per-chat conversation history for the AI assistant
// proxy. Histories live for the process lifetime only.
type ChatStore interface {
	History(chatID string) []gemini.Message
	Append(chatID string, messages ...gemini.Message)
	Clear(chatID string)
}

type chatStore struct {
	sync.RWMutex
	histories map[string][]gemini.Message
}

// NewChatStore returns an empty in-memory chat history store.
func NewChatStore() ChatStore {
	return &chatStore{
		histories: make(map[string][]gemini.Message),
	}
}

func (s *chatStore) History(chatID string) []gemini.Message {
	s.RLock()
	defer s.RUnlock()

	history := s.histories[chatID]
	out := make([]gemini.Message, len(history))
	copy(out, history)
	return out
}

func (s *chatStore) Append(chatID string, messages ...gemini.Message) {
	s.Lock()
	defer s.Unlock()

	s.histories[chatID] = append(s.histories[chatID], messages...)
}

func (s *chatStore) Clear(chatID string) {
	s.Lock()
	defer s.Unlock()

	delete(s.histories, chatID)
}
