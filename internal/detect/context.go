// Package detect holds the layout detectors: one file per mod kind, each
// implementing the common Detector contract (Detect, Layout). Detectors
// never throw for a non-match; they return layout.NoMatch(). An
// unresolvable-but-recognized layout returns an *InstallError instead,
// which the pipeline surfaces to the host as a rejection rather than
// trying the next installer.
package detect

import (
	"github.com/harrison/conductor/internal/filetree"
	"github.com/harrison/conductor/internal/hostapi"
	"github.com/harrison/conductor/internal/layout"
)

// Context bundles everything a Layout function may consult beyond the
// tree itself: the host's logging/dialog/notification surface, the mod's
// identity, feature flags, and the staging directory for the rare
// detectors that read a file from disk.
type Context struct {
	UI       hostapi.UIAdapter
	Logger   hostapi.Logger
	Files    hostapi.FileReader
	ModInfo  hostapi.ModInfo
	Features hostapi.Features

	// DestinationPath is the host-provided staging directory the archive
	// was unpacked into. Detectors must read from it only inside Layout,
	// never inside Detect.
	DestinationPath string
}

// log is a nil-safe convenience wrapper so detectors don't need a guard
// at every call site when a Context is built without a Logger (e.g. in
// detector-only unit tests).
func (c *Context) log(level hostapi.Level, msg string, payload map[string]interface{}) {
	if c == nil || c.Logger == nil {
		return
	}
	c.Logger.Log(level, msg, payload)
}

func (c *Context) notify(n hostapi.Notification) {
	if c == nil || c.UI == nil {
		return
	}
	c.UI.SendNotification(n)
}

// Detector is the common contract every layout detector implements.
type Detector interface {
	// ID names the detector for logging and pipeline descriptor wiring.
	ID() string
	// Detect is a pure boolean predicate on tree shape.
	Detect(tree *filetree.Tree) bool
	// Layout computes the instruction set for a tree this detector has
	// already claimed. It may return layout.NoMatch() if, on closer
	// inspection, the tree does not actually qualify, or an *InstallError
	// for a recognized-but-invalid layout.
	Layout(ctx *Context, tree *filetree.Tree) (layout.Instructions, error)
}
