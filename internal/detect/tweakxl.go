package detect

import (
	"github.com/harrison/conductor/internal/filetree"
	"github.com/harrison/conductor/internal/layout"
	"github.com/harrison/conductor/internal/pathmatch"
)

// tweakXLPrefix is the canonical TweakXL tweak-definition directory.
const tweakXLPrefix = `r6\tweaks`

func hasYamlExt(path string) bool {
	return pathmatch.ExtIn(path, ".yaml", ".yml")
}

// TweakXL detects and installs the Canon/Basedir TweakXL layouts: YAML
// tweak definitions either already nested under a mod-named subdirectory
// of r6\tweaks\, or loose directly under it.
type TweakXL struct{}

func (TweakXL) ID() string { return "tweakxl" }

func tweakXLCanonPresent(tree *filetree.Tree) bool {
	for _, subdir := range tree.SubdirsIn(tweakXLPrefix) {
		if tree.DirWithSomeUnder(subdir, hasYamlExt) {
			return true
		}
	}
	return false
}

func tweakXLBasedirPresent(tree *filetree.Tree) bool {
	return tree.DirWithSomeIn(tweakXLPrefix, hasYamlExt)
}

func (TweakXL) Detect(tree *filetree.Tree) bool {
	return tweakXLCanonPresent(tree) || tweakXLBasedirPresent(tree)
}

func (t TweakXL) Layout(ctx *Context, tree *filetree.Tree) (layout.Instructions, error) {
	canon := tweakXLCanonPresent(tree)
	basedir := tweakXLBasedirPresent(tree)

	if canon && basedir {
		ctx.notify(conflictNotification("TweakXL", "both canon and basedir TweakXL layouts present"))
		return layout.Instructions{}, ConflictError("more than one TweakXL layout present; cannot disambiguate")
	}

	var instructions []layout.Instruction
	var kind layout.Kind

	switch {
	case canon:
		kind = layout.KindTweakXLCanon
		for _, f := range tree.FilesUnder(tweakXLPrefix, hasYamlExt) {
			instructions = append(instructions, layout.Copy(f, f))
		}
	case basedir:
		kind = layout.KindTweakXLBasedir
		modName := synthesizeModName(ctx.DestinationPath)
		for _, f := range tree.FilesIn(tweakXLPrefix, hasYamlExt) {
			dest := pathmatch.Join(tweakXLPrefix, modName, pathmatch.Basename(f))
			instructions = append(instructions, layout.Copy(f, dest))
		}
	default:
		return layout.NoMatch(), nil
	}

	deduped, conflicts := layout.Dedup(instructions)
	if len(conflicts) > 0 {
		return layout.Instructions{}, ConflictError("TweakXL layout produced conflicting destinations: " + conflicts[0])
	}

	return layout.Instructions{Kind: kind, Instructions: deduped}, nil
}

var _ Detector = TweakXL{}
