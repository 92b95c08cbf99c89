// Package history keeps a bounded log of previously generated quiz
// questions so prompts can steer the model away from repeating them.
package history

// MaxEntries bounds the log. When full, the oldest entry is evicted first.
const MaxEntries = 40

// Store is the capability the tutor service needs for duplicate avoidance.
// The log is process-global and shared across all exam/subject/topic
// combinations; that is a known scope limitation, not a guarantee.
type Store interface {
	Append(question string) error
	Contains(question string) bool
	Snapshot() []string
}

// trim enforces the FIFO bound on a question list.
func trim(questions []string) []string {
	if len(questions) > MaxEntries {
		questions = questions[len(questions)-MaxEntries:]
	}
	return questions
}
