package service

import (
	"context"
	"testing"

	"github.com/pothoprodorshok/backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validRoadmapJSON = `[
	{"type":"course","title":"Learn SQL","description":"d","source":"Coursera","url":"https://example.com/sql"},
	{"type":"project","title":"Build a dashboard","description":"d","source":"GitHub","url":"https://github.com"},
	{"type":"skill","title":"Statistics","description":"d","source":"Khan Academy","url":"https://khanacademy.org"},
	{"type":"course","title":"ML basics","description":"d","source":"Coursera","url":"https://example.com/ml"}
]`

func TestRoadmapFirstShotSuccess(t *testing.T) {
	gemini := &stubGemini{replies: []string{validRoadmapJSON}}
	svc := NewRoadmapService(gemini)

	steps, err := svc.Generate(context.Background(), dto.RoadmapRequest{Goals: "data scientist"})
	require.NoError(t, err)
	require.Len(t, steps, 4)
	assert.Equal(t, "Learn SQL", steps[0].Title)
	assert.Equal(t, 1, gemini.calls)
}

func TestRoadmapRetriesThenSucceeds(t *testing.T) {
	gemini := &stubGemini{replies: []string{"sorry, here you go:", "```json\n" + validRoadmapJSON + "\n```"}}
	svc := NewRoadmapService(gemini)

	steps, err := svc.Generate(context.Background(), dto.RoadmapRequest{})
	require.NoError(t, err)
	assert.Len(t, steps, 4)
	assert.Equal(t, 2, gemini.calls)
}

func TestRoadmapExhaustionIsTerminal(t *testing.T) {
	gemini := &stubGemini{replies: []string{"never valid"}}
	svc := NewRoadmapService(gemini)

	_, err := svc.Generate(context.Background(), dto.RoadmapRequest{})
	assert.ErrorIs(t, err, ErrGenerationFailed)
	assert.Equal(t, 3, gemini.calls)
}

func TestRoadmapUpstreamErrorSurfaces(t *testing.T) {
	gemini := &stubGemini{err: ErrTimeout}
	svc := NewRoadmapService(gemini)

	_, err := svc.Generate(context.Background(), dto.RoadmapRequest{})
	assert.ErrorIs(t, err, ErrTimeout)
}
