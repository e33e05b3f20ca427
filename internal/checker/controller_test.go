package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/realitycheck/internal/realism"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// recordingClassifier records every text it is asked to classify.
type recordingClassifier struct {
	calls []string
}

func (r *recordingClassifier) Classify(text string) realism.Result {
	r.calls = append(r.calls, text)
	return realism.NewClassifier().Classify(text)
}

func TestSubmit_ClassifiesTrimmedInput(t *testing.T) {
	rec := &recordingClassifier{}
	c := New(rec, nil)

	c.SetInput("  drink more water \n")
	require.True(t, c.Submit())

	require.Equal(t, []string{"drink more water"}, rec.calls)
	res, ok := c.Last()
	require.True(t, ok)
	assert.Equal(t, realism.TierAchievable, res.Tier)
	assert.Equal(t, 1, c.Submits())
	assert.Equal(t, "  drink more water \n", c.Input(), "submit should not rewrite the input")
}

func TestSubmit_BlankIsNoop(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t "} {
		rec := &recordingClassifier{}
		c := New(rec, nil)
		c.SetInput(text)

		assert.False(t, c.Submit())
		assert.Empty(t, rec.calls)
		_, ok := c.Last()
		assert.False(t, ok)
	}
}

func TestSubmit_BlankKeepsPreviousResult(t *testing.T) {
	c := New(nil, nil)
	c.SetInput("become a billionaire")
	require.True(t, c.Submit())
	before, _ := c.Last()

	c.SetInput("   ")
	assert.False(t, c.Submit())

	after, ok := c.Last()
	require.True(t, ok)
	assert.Equal(t, before, after)
	assert.Equal(t, 1, c.Submits())
}

func TestSubmit_OverwritesResult(t *testing.T) {
	c := New(nil, nil)
	c.SetInput("become a billionaire")
	require.True(t, c.Submit())
	first, _ := c.Last()

	c.SetInput("drink more water")
	require.True(t, c.Submit())
	second, _ := c.Last()

	assert.Equal(t, realism.TierDelusional, first.Tier)
	assert.Equal(t, realism.TierAchievable, second.Tier)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestSetInput_Unconditional(t *testing.T) {
	c := New(nil, nil)
	c.SetInput("a")
	c.SetInput("")
	assert.Equal(t, "", c.Input())
	c.SetInput("  spaced  ")
	assert.Equal(t, "  spaced  ", c.Input())
}

func TestReset_KeepsResult(t *testing.T) {
	c := New(nil, nil)
	c.SetInput("journal daily")
	require.True(t, c.Submit())

	c.Reset()
	assert.Equal(t, "", c.Input())
	_, ok := c.Last()
	assert.True(t, ok)
}

func TestSubmit_LogsDecision(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := New(nil, zap.New(core))

	c.SetInput("paint the fence")
	require.True(t, c.Submit())

	entries := logs.FilterMessage("resolution classified").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "achievable", fields["tier"])
	assert.Equal(t, "fallback:default", fields["rule"])
	assert.Equal(t, true, fields["pinned"])
}
