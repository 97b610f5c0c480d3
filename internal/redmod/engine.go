package redmod

import (
	"sort"

	"github.com/harrison/conductor/internal/detect"
	"github.com/harrison/conductor/internal/filetree"
	"github.com/harrison/conductor/internal/layout"
	"github.com/harrison/conductor/internal/pathmatch"
)

func hasInfoJSON(tree *filetree.Tree, dir string) bool {
	for _, f := range tree.FilesIn(dir, filetree.All) {
		if pathmatch.BasenameEq(f, layout.InfoJSONName) {
			return true
		}
	}
	return false
}

func hasRecognizedSubtype(tree *filetree.Tree, dir string) bool {
	for _, subdir := range tree.SubdirNamesIn(dir) {
		if layout.REDmodSubtypeDirs[subdir] {
			return true
		}
	}
	return false
}

// canonModuleDirs returns immediate subdirectories of mods\ that each
// carry an info.json and at least one recognized subtype directory.
func canonModuleDirs(tree *filetree.Tree) []string {
	var out []string
	for _, subdir := range tree.SubdirsIn(layout.PrefixREDmodBase) {
		if hasInfoJSON(tree, subdir) && hasRecognizedSubtype(tree, subdir) {
			out = append(out, subdir)
		}
	}
	sort.Strings(out)
	return out
}

// namedModuleDirs returns root-level subdirectories (other than mods\
// itself) shaped like a single module directory.
func namedModuleDirs(tree *filetree.Tree) []string {
	var out []string
	for _, subdir := range tree.SubdirsIn("") {
		if pathmatch.Basename(subdir) == layout.PrefixREDmodBase {
			continue
		}
		if hasInfoJSON(tree, subdir) && hasRecognizedSubtype(tree, subdir) {
			out = append(out, subdir)
		}
	}
	sort.Strings(out)
	return out
}

// toplevelIsModuleDir reports whether the archive root itself is shaped
// like a module directory.
func toplevelIsModuleDir(tree *filetree.Tree) bool {
	return hasInfoJSON(tree, "") && hasRecognizedSubtype(tree, "")
}

// CanonPresent reports whether tree carries a canonical REDmod layout
// (one or more mods\<name>\ module directories), independent of whether
// Named or Toplevel also happen to be present. MultiType uses this to
// decide whether REDmod participates in a composite install — it only
// ever contributes under its Canon layout.
func CanonPresent(tree *filetree.Tree) bool {
	return len(canonModuleDirs(tree)) > 0
}

// Engine is the REDmod layout detector. Its Layout performs a disk read
// (info.json) rather than working purely off the tree; the INI detector's
// Layout is the only other one that does.
type Engine struct{}

func (Engine) ID() string { return "redmod" }

func (Engine) Detect(tree *filetree.Tree) bool {
	count := 0
	if len(canonModuleDirs(tree)) > 0 {
		count++
	}
	if len(namedModuleDirs(tree)) == 1 {
		count++
	}
	if toplevelIsModuleDir(tree) {
		count++
	}
	return count > 0
}

func (e Engine) Layout(ctx *detect.Context, tree *filetree.Tree) (layout.Instructions, error) {
	canon := canonModuleDirs(tree)
	named := namedModuleDirs(tree)
	toplevel := toplevelIsModuleDir(tree)

	count := 0
	if len(canon) > 0 {
		count++
	}
	if len(named) == 1 {
		count++
	}
	if toplevel {
		count++
	}
	if count == 0 {
		return layout.NoMatch(), nil
	}
	if count > 1 {
		return layout.Instructions{}, detect.ConflictError("more than one REDmod layout present (canon/named/toplevel); cannot disambiguate")
	}

	var moduleDirs []string
	var kind layout.Kind
	switch {
	case len(canon) > 0:
		moduleDirs = canon
		kind = layout.KindREDmodCanon
	case len(named) == 1:
		moduleDirs = named
		kind = layout.KindREDmodNamed
	case toplevel:
		moduleDirs = []string{""}
		kind = layout.KindREDmodToplevel
	}

	var all []layout.Instruction
	for _, dir := range moduleDirs {
		instructions, err := e.installModule(ctx, tree, dir)
		if err != nil {
			return layout.Instructions{}, err
		}
		all = append(all, instructions...)
	}

	deduped, conflicts := layout.Dedup(all)
	if len(conflicts) > 0 {
		return layout.Instructions{}, detect.ConflictError("REDmod layout produced conflicting destinations: " + conflicts[0])
	}

	return layout.Instructions{Kind: kind, Instructions: deduped}, nil
}

// installModule runs every sub-validator for one module directory and
// returns its flattened instruction list.
func (e Engine) installModule(ctx *detect.Context, tree *filetree.Tree, moduleDir string) ([]layout.Instruction, error) {
	infoPath := pathmatch.Join(moduleDir, layout.InfoJSONName)
	data, err := ctx.Files.ReadFile(pathmatch.Join(ctx.DestinationPath, infoPath))
	if err != nil {
		return nil, detect.IOError("failed to read "+infoPath, err)
	}
	info, err := ParseInfo(data)
	if err != nil {
		return nil, err
	}

	destRoot := pathmatch.Join(layout.PrefixREDmodBase, info.Name)

	var instructions []layout.Instruction
	instructions = append(instructions, layout.Copy(infoPath, pathmatch.Join(destRoot, layout.InfoJSONName)))

	archiveIns, err := installArchives(ctx, tree, moduleDir, destRoot)
	if err != nil {
		return nil, err
	}
	instructions = append(instructions, archiveIns...)

	soundIns, err := installCustomSounds(tree, moduleDir, destRoot, info)
	if err != nil {
		return nil, err
	}
	instructions = append(instructions, soundIns...)

	scriptIns, err := installScripts(tree, moduleDir, destRoot)
	if err != nil {
		return nil, err
	}
	instructions = append(instructions, scriptIns...)

	tweakIns, err := installTweaks(tree, moduleDir, destRoot)
	if err != nil {
		return nil, err
	}
	instructions = append(instructions, tweakIns...)

	instructions = append(instructions, installExtraFiles(tree, moduleDir, destRoot)...)

	instructions = append(instructions, layout.Mkdir(layout.REDmodModdedScriptsDir))

	return instructions, nil
}

var _ detect.Detector = Engine{}
