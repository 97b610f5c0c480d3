package detect

import (
	"github.com/harrison/conductor/internal/filetree"
	"github.com/harrison/conductor/internal/layout"
	"github.com/harrison/conductor/internal/pathmatch"
)

// CET detects the Cyber Engine Tweaks canonical layout: a mod-named
// subdirectory of bin\x64\plugins\cyber_engine_tweaks\mods\ directly
// containing an init.lua. When a tree also carries Redscript or other
// subtype markers, MultiType runs earlier in the pipeline and claims the
// tree first, so this detector only ever fires alone.
type CET struct{}

func (CET) ID() string { return "cet" }

func isInitLua(path string) bool {
	return pathmatch.BasenameEq(path, layout.InitLuaName)
}

func (CET) Detect(tree *filetree.Tree) bool {
	return len(tree.FindDirectSubdirsWithSome(layout.PrefixCET, isInitLua)) > 0
}

func (c CET) Layout(ctx *Context, tree *filetree.Tree) (layout.Instructions, error) {
	if !c.Detect(tree) {
		return layout.NoMatch(), nil
	}

	var instructions []layout.Instruction
	for _, f := range tree.FilesUnder(layout.PrefixCET, filetree.All) {
		instructions = append(instructions, layout.Copy(f, f))
	}
	for _, f := range tree.FilesUnder(layout.PrefixArchiveMod, filetree.All) {
		instructions = append(instructions, layout.Copy(f, f))
	}

	deduped, conflicts := layout.Dedup(instructions)
	if len(conflicts) > 0 {
		return layout.Instructions{}, ConflictError("CET layout produced conflicting destinations: " + conflicts[0])
	}

	return layout.Instructions{Kind: layout.KindCETCanon, Instructions: deduped}, nil
}

var _ Detector = CET{}
