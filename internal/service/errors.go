package service

import "errors"

// Error kinds surfaced by the AI services. Schema and duplicate failures are
// normally recovered inside the retry loop and only escape when the attempt
// bound is exhausted.
var (
	// ErrUpstream wraps a network or API failure calling the model.
	ErrUpstream = errors.New("upstream model call failed")

	// ErrTimeout means the model call exceeded its wall-clock window.
	ErrTimeout = errors.New("upstream model call timed out")

	// ErrSchemaInvalid means the model output could not be decoded or
	// failed the shape checks for the requested feature.
	ErrSchemaInvalid = errors.New("model output did not match expected schema")

	// ErrDuplicateQuestion means the generated question was valid but
	// already present in the seen-questions log.
	ErrDuplicateQuestion = errors.New("generated question was already seen")

	// ErrGenerationFailed means the retry bound was exhausted with no
	// usable result.
	ErrGenerationFailed = errors.New("generation failed after all attempts")

	// ErrEmptyHistory means a chat request arrived without any turns.
	ErrEmptyHistory = errors.New("chat history is empty")

	// ErrEmailTaken means signup was attempted with an existing email.
	ErrEmailTaken = errors.New("an account with this email already exists")

	// ErrInvalidCredentials covers a bad email or password at login.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
