// Package multitype composes the per-subtype detectors against a single
// archive, merging their instruction sets when two or more subtypes
// genuinely coexist — e.g. a CET mod that also ships a Redscript file
// and an accompanying .archive.
package multitype

import (
	"github.com/harrison/conductor/internal/detect"
	"github.com/harrison/conductor/internal/filetree"
	"github.com/harrison/conductor/internal/layout"
	"github.com/harrison/conductor/internal/pathmatch"
	"github.com/harrison/conductor/internal/redmod"
)

// redmodCanonOnly restricts redmod.Engine's participation in MultiType to
// its Canon layout.
type redmodCanonOnly struct {
	engine redmod.Engine
}

func (redmodCanonOnly) ID() string { return "redmod-canon" }

func (redmodCanonOnly) Detect(tree *filetree.Tree) bool {
	return redmod.CanonPresent(tree)
}

func (r redmodCanonOnly) Layout(ctx *detect.Context, tree *filetree.Tree) (layout.Instructions, error) {
	return r.engine.Layout(ctx, tree)
}

// hasDistinctArchive reports whether tree carries a .archive/.xl file
// outside the canonical archive\pc\mod\ prefix. CET and Redscript fold any
// archive\pc\mod\ files into their own canonical install already, so a bare
// canonical archive sitting alongside one of them is that subtype's own
// bundled resource, not evidence of a second, independent archive-only mod.
// Red4Ext and TweakXL do not copy archive\pc\mod\ files, and a canonical
// archive beside them is not counted as a separate claim either.
func hasDistinctArchive(tree *filetree.Tree) bool {
	return len(tree.FilesUnder("", func(p string) bool {
		if !pathmatch.ExtEq(p, layout.ArchiveExt) && !pathmatch.ExtEq(p, layout.XLExt) {
			return false
		}
		return !pathmatch.PrefixOf(layout.PrefixArchiveMod, p)
	})) > 0
}

// archiveOnlyDistinct wraps ArchiveOnly so MultiType only counts it as a
// separate claim when it reflects a genuinely distinct archive payload.
type archiveOnlyDistinct struct {
	archive detect.ArchiveOnly
}

func (archiveOnlyDistinct) ID() string { return "archive-only" }

func (a archiveOnlyDistinct) Detect(tree *filetree.Tree) bool {
	return hasDistinctArchive(tree) && a.archive.Detect(tree)
}

func (a archiveOnlyDistinct) Layout(ctx *detect.Context, tree *filetree.Tree) (layout.Instructions, error) {
	return a.archive.Layout(ctx, tree)
}

// MultiType is itself a detect.Detector, positioned in the pipeline ahead
// of every single-subtype detector it composes except the REDmod engine,
// which runs before it; so it gets first refusal on any archive that looks
// like more than one kind of mod at once, unless a REDmod layout is present.
type MultiType struct {
	detectors []detect.Detector
}

// New builds a MultiType composing every subtype detector eligible to
// contribute to a composite install.
func New() *MultiType {
	return &MultiType{detectors: []detect.Detector{
		detect.CET{},
		detect.Redscript{},
		detect.Red4Ext{},
		detect.TweakXL{},
		detect.INI{},
		archiveOnlyDistinct{},
		detect.JSON{},
		redmodCanonOnly{},
	}}
}

func (m *MultiType) ID() string { return "multitype" }

// Detect reports true only when two or more composed subtypes claim the
// tree; a single claim is left for that subtype's own, later detector.
func (m *MultiType) Detect(tree *filetree.Tree) bool {
	return m.claimCount(tree) >= 2
}

func (m *MultiType) claimCount(tree *filetree.Tree) int {
	count := 0
	for _, d := range m.detectors {
		if d.Detect(tree) {
			count++
		}
	}
	return count
}

func (m *MultiType) Layout(ctx *detect.Context, tree *filetree.Tree) (layout.Instructions, error) {
	if !m.Detect(tree) {
		return layout.NoMatch(), nil
	}

	var all []layout.Instruction
	for _, d := range m.detectors {
		if !d.Detect(tree) {
			continue
		}
		result, err := d.Layout(ctx, tree)
		if err != nil {
			return layout.Instructions{}, err
		}
		if result.IsNoMatch() || result.IsInvalid() {
			continue
		}
		all = append(all, result.Instructions...)
	}

	deduped, conflicts := layout.Dedup(all)
	if len(conflicts) > 0 {
		return layout.Instructions{}, detect.ConflictError("MultiType composition produced conflicting destinations: " + conflicts[0])
	}

	return layout.Instructions{Kind: layout.KindMultiType, Instructions: deduped}, nil
}

var _ detect.Detector = (*MultiType)(nil)
