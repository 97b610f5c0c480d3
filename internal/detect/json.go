package detect

import (
	"github.com/harrison/conductor/internal/filetree"
	"github.com/harrison/conductor/internal/layout"
	"github.com/harrison/conductor/internal/pathmatch"
)

func hasJSONExt(path string) bool { return pathmatch.ExtEq(path, layout.JSONExt) }

// JSON detects and installs the known-JSON layout: a fixed table of
// recognized config basenames, each with its own canonical destination,
// plus the special-cased options.json.
type JSON struct{}

func (JSON) ID() string { return "json" }

func (JSON) Detect(tree *filetree.Tree) bool {
	if tree.DirWithSomeUnder("", isInitLua) {
		return false
	}
	return len(tree.FilesUnder("", hasJSONExt)) > 0
}

func (j JSON) Layout(ctx *Context, tree *filetree.Tree) (layout.Instructions, error) {
	if !j.Detect(tree) {
		return layout.NoMatch(), nil
	}

	jsonFiles := tree.FilesUnder("", hasJSONExt)
	var instructions []layout.Instruction

	for _, f := range jsonFiles {
		base := pathmatch.Basename(f)
		if base == layout.OptionsJSONName {
			if !pathmatch.PrefixOf(layout.OptionsJSONPrefix, f) {
				return layout.Instructions{}, ValidationError("options.json must reside under " + layout.OptionsJSONPrefix)
			}
			instructions = append(instructions, layout.Copy(f, f))
			continue
		}
		dest, known := layout.KnownJSONPaths[base]
		if !known {
			return layout.Instructions{}, StructureError("unrecognized JSON file outside the known-paths table: " + f)
		}
		instructions = append(instructions, layout.Copy(f, dest))
	}

	for _, ext := range layout.RideAlongExts {
		for _, f := range tree.FilesUnder("", func(p string) bool { return pathmatch.ExtEq(p, ext) }) {
			instructions = append(instructions, layout.Copy(f, f))
		}
	}

	deduped, conflicts := layout.Dedup(instructions)
	if len(conflicts) > 0 {
		return layout.Instructions{}, ConflictError("JSON layout produced conflicting destinations: " + conflicts[0])
	}

	return layout.Instructions{Kind: layout.KindJSONCanon, Instructions: deduped}, nil
}

var _ Detector = JSON{}
