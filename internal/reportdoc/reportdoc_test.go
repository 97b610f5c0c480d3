package reportdoc

import (
	"testing"

	"github.com/harrison/conductor/internal/layout"
	"github.com/harrison/conductor/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMarkdown_NoInstallerClaims(t *testing.T) {
	md := RenderMarkdown(Report{Files: []string{"a.txt"}, GameID: "cyberpunk2077"})
	assert.Contains(t, md, "no installer in the pipeline claimed")
}

func TestRenderMarkdown_WithInstructions(t *testing.T) {
	desc := &pipeline.Descriptor{Type: pipeline.TypeFallback, ID: "fallback", Priority: 40}
	r := Report{
		Files:      []string{"a.txt"},
		GameID:     "cyberpunk2077",
		Descriptor: desc,
		Instructions: layout.Instructions{
			Kind:         layout.KindFallback,
			Instructions: []layout.Instruction{layout.Copy("a.txt", "a.txt")},
		},
	}
	md := RenderMarkdown(r)
	assert.Contains(t, md, "fallback")
	assert.Contains(t, md, "a.txt")
}

func TestRenderHTML_ProducesHTML(t *testing.T) {
	desc := &pipeline.Descriptor{Type: pipeline.TypeFallback, ID: "fallback", Priority: 40}
	r := Report{Descriptor: desc, Instructions: layout.Instructions{Kind: layout.KindFallback}}
	html, err := RenderHTML(r)
	require.NoError(t, err)
	assert.Contains(t, html, "<h1>")
}
