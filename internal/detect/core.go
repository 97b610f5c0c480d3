package detect

import (
	"github.com/harrison/conductor/internal/filetree"
	"github.com/harrison/conductor/internal/layout"
)

// coreSignature names a single file's exact relative path that uniquely
// identifies one framework's redistributable payload.
type coreSignature struct {
	kind      layout.Kind
	id        string
	signature string
}

var coreSignatures = []coreSignature{
	{layout.KindCoreCET, "core-cet", `bin\x64\plugins\cyber_engine_tweaks\version.dll`},
	{layout.KindCoreRedscript, "core-redscript", `engine\tools\scc.exe`},
	{layout.KindCoreRed4Ext, "core-red4ext", `red4ext\RED4ext.dll`},
	{layout.KindCoreCSVMerge, "core-csvmerge", `tools\CSVMerge\CSVMerge.exe`},
	{layout.KindCoreTweakXL, "core-tweakxl", `red4ext\plugins\TweakXL\TweakXL.dll`},
	{layout.KindCoreWolvenKitCLI, "core-wolvenkitcli", `tools\WolvenKitCLI\WolvenKit.CLI.exe`},
}

// Core matches one framework's redistributable signature file set and
// installs it verbatim. Core installers sit at the top of the pipeline
// so their files are never misclassified as an ordinary mod by a later,
// broader detector.
type Core struct {
	sig coreSignature
}

// NewCoreInstallers returns one Core detector per known framework.
func NewCoreInstallers() []Core {
	out := make([]Core, len(coreSignatures))
	for i, s := range coreSignatures {
		out[i] = Core{sig: s}
	}
	return out
}

func (c Core) ID() string { return c.sig.id }

func (c Core) Detect(tree *filetree.Tree) bool {
	return containsExactFile(tree, c.sig.signature)
}

func containsExactFile(tree *filetree.Tree, path string) bool {
	for _, f := range tree.FilesUnder("", filetree.All) {
		if f == path {
			return true
		}
	}
	return false
}

func (c Core) Layout(ctx *Context, tree *filetree.Tree) (layout.Instructions, error) {
	if !containsExactFile(tree, c.sig.signature) {
		return layout.NoMatch(), nil
	}
	var instructions []layout.Instruction
	for _, f := range tree.FilesUnder("", filetree.All) {
		instructions = append(instructions, layout.Copy(f, f))
	}
	deduped, conflicts := layout.Dedup(instructions)
	if len(conflicts) > 0 {
		return layout.Instructions{}, ConflictError("core installer produced conflicting destinations: " + conflicts[0])
	}
	return layout.Instructions{Kind: c.sig.kind, Instructions: deduped}, nil
}

var _ Detector = Core{}
