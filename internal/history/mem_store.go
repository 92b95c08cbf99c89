package history

import "sync"

// memStore is an in-memory Store used in tests.
type memStore struct {
	mu        sync.Mutex
	questions []string
}

func NewMemStore() Store {
	return &memStore{}
}

func (s *memStore) Append(question string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions = trim(append(s.questions, question))
	return nil
}

func (s *memStore) Contains(question string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, q := range s.questions {
		if q == question {
			return true
		}
	}
	return false
}

func (s *memStore) Snapshot() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.questions))
	copy(out, s.questions)
	return out
}
