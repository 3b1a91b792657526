package guide

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func instant() *Guide {
	return New(WithTypingDelay(0))
}

func TestAskMatchesKeywords(t *testing.T) {
	g := instant()
	ctx := context.Background()

	answer, err := g.Ask(ctx, "What does the Gita say about KARMA?")
	require.NoError(t, err)
	assert.Contains(t, answer, "every action has a consequence")

	answer, err = g.Ask(ctx, "tell me about dharma please")
	require.NoError(t, err)
	assert.Contains(t, answer, "duty and moral responsibility")

	answer, err = g.Ask(ctx, "how do I start meditation?")
	require.NoError(t, err)
	assert.Contains(t, answer, "inner peace and clarity of mind")
}

func TestAskFallsBackOnUnknownTopics(t *testing.T) {
	g := instant()

	answer, err := g.Ask(context.Background(), "what's the weather like?")
	require.NoError(t, err)
	assert.Contains(t, answer, "I don't have a specific answer")
}

func TestHindiRepliesAndDevanagariKeywords(t *testing.T) {
	g := New(WithTypingDelay(0), WithLanguage(Hindi))
	ctx := context.Background()

	answer, err := g.Ask(ctx, "कर्म के बारे में बताइए")
	require.NoError(t, err)
	assert.Contains(t, answer, "कर्मण्येवाधिकारस्ते")

	// Latin keywords still match in Hindi mode.
	answer, err = g.Ask(ctx, "what about dharma?")
	require.NoError(t, err)
	assert.Contains(t, answer, "कर्तव्य")

	answer, err = g.Ask(ctx, "anything else?")
	require.NoError(t, err)
	assert.Contains(t, answer, "भगवद गीता")
}

func TestSetLanguageSwitchesMidConversation(t *testing.T) {
	g := instant()
	ctx := context.Background()

	_, err := g.Ask(ctx, "karma?")
	require.NoError(t, err)

	g.SetLanguage(Hindi)
	answer, err := g.Ask(ctx, "karma?")
	require.NoError(t, err)
	assert.Contains(t, answer, "कर्म का सिद्धांत")

	g.SetLanguage(Language("klingon"))
	assert.Equal(t, English, g.Language())
}

func TestTranscriptRecordsBothSides(t *testing.T) {
	g := instant()
	ctx := context.Background()

	_, err := g.Ask(ctx, "karma?")
	require.NoError(t, err)
	_, err = g.Ask(ctx, "dharma?")
	require.NoError(t, err)

	transcript := g.Transcript()
	require.Len(t, transcript, 4)
	assert.Equal(t, RoleUser, transcript[0].Role)
	assert.Equal(t, "karma?", transcript[0].Text)
	assert.Equal(t, RoleGuide, transcript[1].Role)
	assert.Equal(t, RoleUser, transcript[2].Role)
}

func TestAskHonorsCancellation(t *testing.T) {
	g := New() // default typing delay
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Ask(ctx, "karma?")
	assert.ErrorIs(t, err, context.Canceled)

	assert.Empty(t, g.Transcript(), "cancelled questions are not recorded")
}
