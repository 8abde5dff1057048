package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWithFrontmatter(t *testing.T) {
	source := []byte("---\ntitle: AI Recommendations\nlink: /app/ai\n---\n- Warm up first.\n- Rest between sets.\n")

	html, meta, err := NewParser().ParseWithFrontmatter(source)
	require.NoError(t, err)

	assert.Equal(t, "AI Recommendations", meta["title"])
	assert.Equal(t, "/app/ai", meta["link"])
	assert.Contains(t, string(html), "<li>Warm up first.</li>")
	assert.NotContains(t, string(html), "title:")
}

func TestParseWithoutFrontmatter(t *testing.T) {
	html, meta, err := NewParser().ParseWithFrontmatter([]byte("Plain **text**"))
	require.NoError(t, err)

	assert.Empty(t, meta)
	assert.Contains(t, string(html), "<strong>text</strong>")
}
