package redmod

import (
	"github.com/harrison/conductor/internal/detect"
	"github.com/harrison/conductor/internal/filetree"
	"github.com/harrison/conductor/internal/hostapi"
	"github.com/harrison/conductor/internal/layout"
	"github.com/harrison/conductor/internal/pathmatch"
)

func notifyWarning(ctx *detect.Context, title, message string) {
	if ctx == nil || ctx.UI == nil {
		return
	}
	ctx.UI.SendNotification(hostapi.Notification{
		Type:    hostapi.NotificationWarning,
		Title:   title,
		Message: message,
	})
}

// installArchives implements the archives\ sub-validator: copies
// recognized archive files, warning (non-fatally) about nested
// subdirectories or multiple .archive siblings.
func installArchives(ctx *detect.Context, tree *filetree.Tree, moduleDir, destRoot string) ([]layout.Instruction, error) {
	archivesDir := pathmatch.Join(moduleDir, layout.REDmodArchivesDir)
	files := tree.FilesUnder(archivesDir, func(p string) bool {
		return pathmatch.ExtIn(p, layout.REDmodArchiveExts...)
	})
	if len(files) == 0 {
		return nil, nil
	}

	nested := false
	archiveSiblingCount := 0
	for _, f := range files {
		if pathmatch.Dir(f) != archivesDir {
			nested = true
		}
		if pathmatch.ExtEq(f, layout.ArchiveExt) {
			archiveSiblingCount++
		}
	}
	if nested {
		notifyWarning(ctx, "REDmod", "archives appear in nested subdirectories under "+archivesDir)
	}
	if archiveSiblingCount > 1 {
		notifyWarning(ctx, "REDmod", "multiple .archive siblings present under "+archivesDir)
	}

	var instructions []layout.Instruction
	for _, f := range files {
		rel := pathmatch.TrimPrefix(archivesDir, f)
		dest := pathmatch.Join(destRoot, layout.REDmodArchivesDir, rel)
		instructions = append(instructions, layout.Copy(f, dest))
	}
	return instructions, nil
}
