package redmod

import (
	"github.com/harrison/conductor/internal/detect"
	"github.com/harrison/conductor/internal/filetree"
	"github.com/harrison/conductor/internal/layout"
	"github.com/harrison/conductor/internal/pathmatch"
)

// installTweaks implements the tweaks\ sub-validator: exactly one
// subdirectory of tweaks\ is permitted, and every tweak file must live
// inside it; anything loose in tweaks\ itself or spread across more than
// one subdirectory is a hard reject (see DESIGN.md for the Open
// Question this resolves).
func installTweaks(tree *filetree.Tree, moduleDir, destRoot string) ([]layout.Instruction, error) {
	tweaksDir := pathmatch.Join(moduleDir, layout.REDmodTweaksDir)
	files := tree.FilesUnder(tweaksDir, filetree.All)
	if len(files) == 0 {
		return nil, nil
	}

	subdirNames := tree.SubdirNamesIn(tweaksDir)
	if len(subdirNames) != 1 {
		return nil, detect.ValidationError("tweaks\\ must contain exactly one whitelisted subdirectory")
	}
	whitelisted := subdirNames[0]

	var instructions []layout.Instruction
	for _, f := range files {
		rel := pathmatch.TrimPrefix(tweaksDir, f)
		segs := pathmatch.Segments(rel)
		if len(segs) < 2 || segs[0] != whitelisted {
			return nil, detect.ValidationError("tweak file outside the whitelisted subdirectory: " + f)
		}
		dest := pathmatch.Join(destRoot, layout.REDmodTweaksDir, rel)
		instructions = append(instructions, layout.Copy(f, dest))
	}
	return instructions, nil
}
