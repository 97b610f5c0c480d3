package detect

import (
	"strings"

	"github.com/harrison/conductor/internal/filetree"
	"github.com/harrison/conductor/internal/layout"
	"github.com/harrison/conductor/internal/pathmatch"
)

func hasRedsExt(path string) bool { return pathmatch.ExtEq(path, layout.RedscriptExt) }

// Redscript detects and installs the three mutually-exclusive Redscript
// layouts: Canon, Basedir, and Toplevel.
type Redscript struct{}

func (Redscript) ID() string { return "redscript" }

func redscriptCanonPresent(tree *filetree.Tree) bool {
	for _, subdir := range tree.SubdirsIn(layout.PrefixRedscript) {
		if tree.DirWithSomeUnder(subdir, hasRedsExt) {
			return true
		}
	}
	return false
}

func redscriptBasedirPresent(tree *filetree.Tree) bool {
	return tree.DirWithSomeIn(layout.PrefixRedscript, hasRedsExt)
}

func redscriptToplevelPresent(tree *filetree.Tree) bool {
	return tree.DirWithSomeIn("", hasRedsExt)
}

func (Redscript) Detect(tree *filetree.Tree) bool {
	count := 0
	if redscriptCanonPresent(tree) {
		count++
	}
	if redscriptBasedirPresent(tree) {
		count++
	}
	if redscriptToplevelPresent(tree) {
		count++
	}
	return count > 0
}

// synthesizeModName derives a mod directory name from the host's staging
// destination path: its basename, with a trailing ".installing" suffix
// stripped.
func synthesizeModName(destinationPath string) string {
	trimmed := strings.TrimRight(destinationPath, `/\`)
	idx := strings.LastIndexAny(trimmed, `/\`)
	base := trimmed
	if idx >= 0 {
		base = trimmed[idx+1:]
	}
	if strings.HasSuffix(strings.ToLower(base), ".installing") {
		base = base[:len(base)-len(".installing")]
	}
	if base == "" {
		base = "UnknownMod"
	}
	return base
}

func (r Redscript) Layout(ctx *Context, tree *filetree.Tree) (layout.Instructions, error) {
	canon := redscriptCanonPresent(tree)
	basedir := redscriptBasedirPresent(tree)
	toplevel := redscriptToplevelPresent(tree)

	count := 0
	for _, present := range []bool{canon, basedir, toplevel} {
		if present {
			count++
		}
	}
	if count == 0 {
		return layout.NoMatch(), nil
	}
	if count > 1 {
		ctx.notify(conflictNotification("Redscript", "multiple Redscript layouts detected"))
		return layout.Instructions{}, ConflictError("more than one Redscript layout present (canon/basedir/toplevel); cannot disambiguate")
	}

	var instructions []layout.Instruction
	var kind layout.Kind

	switch {
	case canon:
		kind = layout.KindRedscriptCanon
		for _, f := range tree.FilesUnder(layout.PrefixRedscript, hasRedsExt) {
			instructions = append(instructions, layout.Copy(f, f))
		}
	case basedir:
		kind = layout.KindRedscriptBasedir
		modName := synthesizeModName(ctx.DestinationPath)
		for _, f := range tree.FilesIn(layout.PrefixRedscript, hasRedsExt) {
			dest := pathmatch.Join(layout.PrefixRedscript, modName, pathmatch.Basename(f))
			instructions = append(instructions, layout.Copy(f, dest))
		}
	case toplevel:
		kind = layout.KindRedscriptToplevel
		modName := synthesizeModName(ctx.DestinationPath)
		for _, f := range tree.FilesIn("", hasRedsExt) {
			dest := pathmatch.Join(layout.PrefixRedscript, modName, pathmatch.Basename(f))
			instructions = append(instructions, layout.Copy(f, dest))
		}
	}

	for _, f := range tree.FilesUnder(layout.PrefixArchiveMod, filetree.All) {
		instructions = append(instructions, layout.Copy(f, f))
	}

	deduped, conflicts := layout.Dedup(instructions)
	if len(conflicts) > 0 {
		return layout.Instructions{}, ConflictError("Redscript layout produced conflicting destinations: " + conflicts[0])
	}

	return layout.Instructions{Kind: kind, Instructions: deduped}, nil
}

var _ Detector = Redscript{}
