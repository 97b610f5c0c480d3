package redmod

import (
	"github.com/harrison/conductor/internal/filetree"
	"github.com/harrison/conductor/internal/layout"
	"github.com/harrison/conductor/internal/pathmatch"
)

// installExtraFiles relocates any file in the module root (or in a
// subdirectory that isn't one of the recognized subtype directories)
// verbatim under the module's destination. info.json itself and the
// recognized subtype trees are excluded since they have their own
// sub-validators.
func installExtraFiles(tree *filetree.Tree, moduleDir, destRoot string) []layout.Instruction {
	var instructions []layout.Instruction
	for _, f := range tree.FilesUnder(moduleDir, filetree.All) {
		rel := pathmatch.TrimPrefix(moduleDir, f)
		segs := pathmatch.Segments(rel)
		if len(segs) == 0 {
			continue
		}
		if len(segs) == 1 && segs[0] == layout.InfoJSONName {
			continue
		}
		if layout.REDmodSubtypeDirs[segs[0]] {
			continue
		}
		dest := pathmatch.Join(destRoot, rel)
		instructions = append(instructions, layout.Copy(f, dest))
	}
	return instructions
}
