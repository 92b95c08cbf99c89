package history

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/rs/zerolog/log"
)

// fileStore persists the question log as a single JSON array file. The file
// is read fully and rewritten fully on each append; a read error is treated
// as an empty log rather than a failure.
type fileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) Store {
	return &fileStore{path: path}
}

func (s *fileStore) Append(question string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	questions := s.load()
	questions = trim(append(questions, question))

	data, err := json.MarshalIndent(questions, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

func (s *fileStore) Contains(question string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, q := range s.load() {
		if q == question {
			return true
		}
	}
	return false
}

func (s *fileStore) Snapshot() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *fileStore) load() []string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", s.path).Msg("Could not read question history, starting empty")
		}
		return nil
	}

	var questions []string
	if err := json.Unmarshal(data, &questions); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("Question history file is corrupt, starting empty")
		return nil
	}
	return trim(questions)
}
