// Package reportdoc renders a pipeline decision into a human-readable
// explanation: a Markdown document describing which installer matched and
// why, which the `v2077mod explain` command can also render to HTML.
package reportdoc

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/harrison/conductor/internal/layout"
	"github.com/harrison/conductor/internal/pipeline"
)

// Report is the input to RenderMarkdown and RenderHTML: the winning descriptor (if any) and the
// layout result its install call produced.
type Report struct {
	Files       []string
	GameID      string
	Descriptor  *pipeline.Descriptor
	Instructions layout.Instructions
	Err         error
}

// RenderMarkdown builds the Markdown explanation document for a Report.
func RenderMarkdown(r Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Install plan for %d file(s)\n\n", len(r.Files))
	fmt.Fprintf(&b, "- **Game ID:** `%s`\n", r.GameID)

	if r.Descriptor == nil {
		b.WriteString("- **Result:** no installer in the pipeline claimed this file set\n")
		return b.String()
	}

	fmt.Fprintf(&b, "- **Installer:** `%s` (type `%s`, priority %d)\n", r.Descriptor.ID, r.Descriptor.Type, r.Descriptor.Priority)

	if r.Err != nil {
		fmt.Fprintf(&b, "- **Outcome:** rejected — %s\n", r.Err.Error())
		return b.String()
	}

	fmt.Fprintf(&b, "- **Layout kind:** `%s`\n\n", r.Instructions.Kind)

	if len(r.Instructions.Instructions) == 0 {
		b.WriteString("No instructions were produced.\n")
		return b.String()
	}

	b.WriteString("## Instructions\n\n")
	b.WriteString("| Type | Source | Destination |\n")
	b.WriteString("|---|---|---|\n")
	for _, in := range r.Instructions.Instructions {
		source := in.Source
		if source == "" {
			source = "_(generated)_"
		}
		fmt.Fprintf(&b, "| %s | %s | %s |\n", in.Type, escapeCell(source), escapeCell(in.Destination))
	}

	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// RenderHTML converts a Report's Markdown explanation to HTML via goldmark.
func RenderHTML(r Report) (string, error) {
	markdown := goldmark.New()
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(RenderMarkdown(r)), &buf); err != nil {
		return "", fmt.Errorf("reportdoc: render html: %w", err)
	}
	return buf.String(), nil
}
