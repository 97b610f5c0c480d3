package redmod

import (
	"github.com/harrison/conductor/internal/detect"
	"github.com/harrison/conductor/internal/filetree"
	"github.com/harrison/conductor/internal/layout"
	"github.com/harrison/conductor/internal/pathmatch"
)

// installCustomSounds implements the customSounds\ sub-validator: presence
// of sound files must agree with what info.json declares. A mismatch
// either way is a hard reject.
func installCustomSounds(tree *filetree.Tree, moduleDir, destRoot string, info *Info) ([]layout.Instruction, error) {
	soundsDir := pathmatch.Join(moduleDir, layout.REDmodCustomSoundsDir)
	files := tree.FilesUnder(soundsDir, func(p string) bool {
		return pathmatch.ExtIn(p, layout.REDmodSoundExts...)
	})

	declaresPresent := info.DeclaresSoundsPresent()
	switch {
	case declaresPresent && len(files) == 0:
		return nil, detect.ValidationError("info.json declares custom sounds but none are present under " + soundsDir)
	case !declaresPresent && len(files) > 0:
		return nil, detect.ValidationError("customSounds files present under " + soundsDir + " but info.json does not declare them")
	}

	var instructions []layout.Instruction
	for _, f := range files {
		rel := pathmatch.TrimPrefix(soundsDir, f)
		dest := pathmatch.Join(destRoot, layout.REDmodCustomSoundsDir, rel)
		instructions = append(instructions, layout.Copy(f, dest))
	}
	return instructions, nil
}
