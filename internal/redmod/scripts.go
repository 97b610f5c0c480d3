package redmod

import (
	"github.com/harrison/conductor/internal/detect"
	"github.com/harrison/conductor/internal/filetree"
	"github.com/harrison/conductor/internal/layout"
	"github.com/harrison/conductor/internal/pathmatch"
)

// installScripts implements the scripts\ sub-validator: every file must
// live inside a subdirectory of scripts\ (mirroring the r6\scripts\<mod>\
// layout), never loose directly in scripts\ itself. A file outside that
// whitelisted shape is a hard reject (see DESIGN.md for the Open
// Question this resolves).
func installScripts(tree *filetree.Tree, moduleDir, destRoot string) ([]layout.Instruction, error) {
	scriptsDir := pathmatch.Join(moduleDir, layout.REDmodScriptsDir)
	files := tree.FilesUnder(scriptsDir, filetree.All)
	if len(files) == 0 {
		return nil, nil
	}

	var instructions []layout.Instruction
	for _, f := range files {
		rel := pathmatch.TrimPrefix(scriptsDir, f)
		if len(pathmatch.Segments(rel)) < 2 {
			return nil, detect.ValidationError("script file outside the whitelisted subdirectory layout: " + f)
		}
		dest := pathmatch.Join(destRoot, layout.REDmodScriptsDir, rel)
		instructions = append(instructions, layout.Copy(f, dest))
	}
	return instructions, nil
}
