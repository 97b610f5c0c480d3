package detect

import (
	"github.com/harrison/conductor/internal/filetree"
	"github.com/harrison/conductor/internal/layout"
	"github.com/harrison/conductor/internal/pathmatch"
)

func hasArchiveExt(path string) bool { return pathmatch.ExtEq(path, layout.ArchiveExt) }
func hasXLExt(path string) bool      { return pathmatch.ExtEq(path, layout.XLExt) }

// ArchiveOnly detects and installs the Canon/Heritage/Other archive
// layouts, with the XL subflavor applied when an accompanying .xl file
// sits next to a .archive.
type ArchiveOnly struct{}

func (ArchiveOnly) ID() string { return "archive-only" }

func archiveHasXLSibling(tree *filetree.Tree, archivePath string) bool {
	dir := pathmatch.Dir(archivePath)
	base := pathmatch.Basename(archivePath)
	stem := base[:len(base)-len(layout.ArchiveExt)]
	xlPath := pathmatch.Join(dir, stem+layout.XLExt)
	for _, f := range tree.FilesIn(dir, hasXLExt) {
		if f == xlPath {
			return true
		}
	}
	return false
}

// archiveCanonFiles returns the archive (and sibling .xl) files already
// sitting under the canonical archive\pc\mod\ prefix.
func archiveCanonFiles(tree *filetree.Tree) []string {
	return tree.FilesUnder(layout.PrefixArchiveMod, func(p string) bool {
		return hasArchiveExt(p) || hasXLExt(p)
	})
}

// archiveHeritageFiles returns files under the legacy archive\pc\patch\
// prefix, which get rewritten onto archive\pc\mod\.
func archiveHeritageFiles(tree *filetree.Tree) []string {
	return tree.FilesUnder(layout.PrefixArchivePatch, func(p string) bool {
		return hasArchiveExt(p) || hasXLExt(p)
	})
}

// archiveOtherFiles returns every .archive/.xl file anywhere else in the
// tree, which get consolidated up to archive\pc\mod\<basename>.
func archiveOtherFiles(tree *filetree.Tree) []string {
	return tree.FilesUnder("", func(p string) bool {
		if !hasArchiveExt(p) && !hasXLExt(p) {
			return false
		}
		return !pathmatch.PrefixOf(layout.PrefixArchiveMod, p) && !pathmatch.PrefixOf(layout.PrefixArchivePatch, p)
	})
}

func (ArchiveOnly) Detect(tree *filetree.Tree) bool {
	return len(archiveCanonFiles(tree)) > 0 || len(archiveHeritageFiles(tree)) > 0 || len(archiveOtherFiles(tree)) > 0
}

func (a ArchiveOnly) Layout(ctx *Context, tree *filetree.Tree) (layout.Instructions, error) {
	canon := archiveCanonFiles(tree)
	heritage := archiveHeritageFiles(tree)
	other := archiveOtherFiles(tree)

	var instructions []layout.Instruction
	var kind layout.Kind
	sourceCount := 0

	switch {
	case len(canon) > 0:
		kind = layout.KindArchiveCanon
		for _, f := range canon {
			instructions = append(instructions, layout.Copy(f, f))
		}
		sourceCount = len(canon)
	case len(heritage) > 0:
		kind = layout.KindArchiveHeritage
		for _, f := range heritage {
			dest := layout.RemapDestination(layout.Copy(f, f), layout.PrefixArchivePatch, layout.PrefixArchiveMod)
			instructions = append(instructions, dest)
		}
		sourceCount = len(heritage)
	case len(other) > 0:
		kind = layout.KindArchiveOther
		dirsSeen := map[string]bool{}
		for _, f := range other {
			dirsSeen[pathmatch.Dir(f)] = true
			dest := pathmatch.Join(layout.PrefixArchiveMod, pathmatch.Basename(f))
			instructions = append(instructions, layout.Copy(f, dest))
		}
		sourceCount = len(other)
		if len(dirsSeen) > 1 {
			ctx.notify(conflictNotification("ArchiveOnly", `consolidated .archive files from multiple source directories under archive\pc\mod\`))
		}
	default:
		return layout.NoMatch(), nil
	}

	if archiveHasAnyXLSibling(tree, instructions) {
		kind = layout.KindArchiveXL
	}

	deduped, conflicts := layout.Dedup(instructions)
	if len(conflicts) > 0 {
		return layout.Instructions{}, ConflictError("ArchiveOnly layout produced conflicting destinations: " + conflicts[0])
	}

	totalArchiveFiles := len(tree.FilesUnder("", func(p string) bool { return hasArchiveExt(p) || hasXLExt(p) }))
	if sourceCount < totalArchiveFiles {
		return layout.Instructions{}, StructureError("chosen archive layout covers fewer files than the archive contains")
	}

	return layout.Instructions{Kind: kind, Instructions: deduped}, nil
}

func archiveHasAnyXLSibling(tree *filetree.Tree, instructions []layout.Instruction) bool {
	for _, in := range instructions {
		if in.Type != layout.InstructionCopy || !hasArchiveExt(in.Source) {
			continue
		}
		if archiveHasXLSibling(tree, in.Source) {
			return true
		}
	}
	return false
}

var _ Detector = ArchiveOnly{}
