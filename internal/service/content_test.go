package service

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/fittrack"
)

func TestContentServiceLoad(t *testing.T) {
	content := newTestContent(t)

	n := content.Narrative("workout-recommendations")
	assert.Equal(t, "AI Recommendations", n.Title)
	assert.Contains(t, n.HTML, "<li>Warm up first.</li>")

	// No frontmatter title: derived from the file name.
	assert.Equal(t, "Progress Summary", content.Narrative("progress-summary").Title)

	assert.Empty(t, content.Narrative("missing").HTML)

	tips := content.Tips()
	require.Len(t, tips, 2)
	assert.Equal(t, "workout", tips[0].Slug)
	assert.Equal(t, "/app/ai?tab=workout", tips[0].Link)
	assert.Equal(t, 1, tips[0].Order)
	assert.Equal(t, "recovery", tips[1].Slug)
}

func TestContentServiceMissingDirectory(t *testing.T) {
	content := NewContentService(fstest.MapFS{})
	assert.Error(t, content.Load())
}

func TestEmbeddedContent(t *testing.T) {
	content := NewContentService(fittrack.ContentFS)
	require.NoError(t, content.Load())

	assert.Equal(t, "AI Recommendations", content.Narrative("workout-recommendations").Title)
	assert.Equal(t, "Important Note", content.Narrative("nutrition-note").Title)

	tips := content.Tips()
	require.Len(t, tips, 3)
	assert.Equal(t, "HIIT Cardio Session", tips[0].Heading)
	assert.Equal(t, "Protein Intake", tips[1].Heading)
	assert.Equal(t, "Moderate Recovery", tips[2].Heading)
}
