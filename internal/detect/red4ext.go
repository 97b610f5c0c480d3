package detect

import (
	"github.com/harrison/conductor/internal/filetree"
	"github.com/harrison/conductor/internal/layout"
	"github.com/harrison/conductor/internal/pathmatch"
)

func hasDLLExt(path string) bool { return pathmatch.ExtEq(path, layout.DLLExt) }

// Red4Ext detects and installs the four mutually-exclusive Red4Ext
// layouts: Canon, Basedir, Modnamed, and Toplevel.
type Red4Ext struct{}

func (Red4Ext) ID() string { return "red4ext" }

func red4extCanonPresent(tree *filetree.Tree) bool {
	for _, subdir := range tree.SubdirsIn(layout.PrefixRed4Ext) {
		if tree.DirWithSomeUnder(subdir, hasDLLExt) {
			return true
		}
	}
	return false
}

func red4extBasedirPresent(tree *filetree.Tree) bool {
	return tree.DirWithSomeIn(layout.PrefixRed4Ext, hasDLLExt)
}

// red4extRootHasSubdirs distinguishes Modnamed (root is itself a mod
// folder carrying other resources alongside its DLLs) from Toplevel (a
// bare loose DLL drop with nothing else at the root).
func red4extRootHasSubdirs(tree *filetree.Tree) bool {
	return len(tree.SubdirNamesIn("")) > 0
}

func red4extModnamedPresent(tree *filetree.Tree) bool {
	return tree.DirWithSomeIn("", hasDLLExt) && red4extRootHasSubdirs(tree)
}

func red4extToplevelPresent(tree *filetree.Tree) bool {
	return tree.DirWithSomeIn("", hasDLLExt) && !red4extRootHasSubdirs(tree)
}

// red4extCandidateDLLs collects every DLL that any of the four layouts
// would claim, for the forbidden-name/forbidden-destination scan that
// must run before Detect reports true.
func red4extCandidateDLLs(tree *filetree.Tree) []string {
	var out []string
	out = append(out, tree.FilesUnder(layout.PrefixRed4Ext, hasDLLExt)...)
	out = append(out, tree.FilesIn("", hasDLLExt)...)
	return out
}

func red4extHasForbiddenDLL(tree *filetree.Tree) bool {
	for _, f := range red4extCandidateDLLs(tree) {
		if layout.IsNonOverridableDLL(pathmatch.Basename(f)) {
			return true
		}
		if pathmatch.PrefixOf(layout.Red4ExtBinRoot, f) {
			return true
		}
	}
	return false
}

func (Red4Ext) Detect(tree *filetree.Tree) bool {
	if red4extHasForbiddenDLL(tree) {
		return false
	}
	count := 0
	if red4extCanonPresent(tree) {
		count++
	}
	if red4extBasedirPresent(tree) {
		count++
	}
	if red4extModnamedPresent(tree) {
		count++
	}
	if red4extToplevelPresent(tree) {
		count++
	}
	return count > 0
}

func (r Red4Ext) Layout(ctx *Context, tree *filetree.Tree) (layout.Instructions, error) {
	if red4extHasForbiddenDLL(tree) {
		return layout.NoMatch(), nil
	}

	canon := red4extCanonPresent(tree)
	basedir := red4extBasedirPresent(tree)
	modnamed := red4extModnamedPresent(tree)
	toplevel := red4extToplevelPresent(tree)

	count := 0
	for _, present := range []bool{canon, basedir, modnamed, toplevel} {
		if present {
			count++
		}
	}
	if count == 0 {
		return layout.NoMatch(), nil
	}
	if count > 1 {
		ctx.notify(conflictNotification("Red4Ext", "multiple Red4Ext layouts detected"))
		return layout.Instructions{}, ConflictError("more than one Red4Ext layout present; cannot disambiguate")
	}

	var instructions []layout.Instruction
	var kind layout.Kind

	switch {
	case canon:
		kind = layout.KindRed4ExtCanon
		for _, f := range tree.FilesUnder(layout.PrefixRed4Ext, filetree.All) {
			instructions = append(instructions, layout.Copy(f, f))
		}
	case basedir:
		kind = layout.KindRed4ExtBasedir
		for _, f := range tree.FilesIn(layout.PrefixRed4Ext, filetree.All) {
			instructions = append(instructions, layout.Copy(f, f))
		}
	case modnamed:
		kind = layout.KindRed4ExtModnamed
		modName := synthesizeModName(ctx.DestinationPath)
		for _, f := range tree.FilesUnder("", filetree.All) {
			dest := pathmatch.Join(layout.PrefixRed4Ext, modName, f)
			instructions = append(instructions, layout.Copy(f, dest))
		}
	case toplevel:
		kind = layout.KindRed4ExtToplevel
		modName := synthesizeModName(ctx.DestinationPath)
		for _, f := range tree.FilesIn("", hasDLLExt) {
			dest := pathmatch.Join(layout.PrefixRed4Ext, modName, pathmatch.Basename(f))
			instructions = append(instructions, layout.Copy(f, dest))
		}
	}

	deduped, conflicts := layout.Dedup(instructions)
	if len(conflicts) > 0 {
		return layout.Instructions{}, ConflictError("Red4Ext layout produced conflicting destinations: " + conflicts[0])
	}

	return layout.Instructions{Kind: kind, Instructions: deduped}, nil
}

var _ Detector = Red4Ext{}
