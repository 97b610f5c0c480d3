package detect

import (
	"github.com/harrison/conductor/internal/filetree"
	"github.com/harrison/conductor/internal/hostapi"
	"github.com/harrison/conductor/internal/layout"
)

// Fallback always reports supported and emits a 1:1 verbatim instruction
// set, so the pipeline always has exactly one installer that can claim
// an archive. It can never fail.
type Fallback struct{}

func (Fallback) ID() string { return "fallback" }

func (Fallback) Detect(*filetree.Tree) bool { return true }

func (Fallback) Layout(ctx *Context, tree *filetree.Tree) (layout.Instructions, error) {
	var instructions []layout.Instruction
	for _, f := range tree.FilesUnder("", filetree.All) {
		instructions = append(instructions, layout.Copy(f, f))
	}
	deduped, _ := layout.Dedup(instructions)

	ctx.notify(hostapi.Notification{
		Type:    hostapi.NotificationWarning,
		Title:   "Fallback",
		Message: "archive was not structurally recognized; installing verbatim",
	})

	return layout.Instructions{Kind: layout.KindFallback, Instructions: deduped}, nil
}

var _ Detector = Fallback{}
