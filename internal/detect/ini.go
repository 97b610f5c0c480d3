package detect

import (
	"regexp"
	"strings"

	"github.com/harrison/conductor/internal/filetree"
	"github.com/harrison/conductor/internal/layout"
	"github.com/harrison/conductor/internal/pathmatch"
)

func hasIniExt(path string) bool { return pathmatch.ExtEq(path, layout.IniExt) }

// reshadeHeaderPattern matches a Reshade preset's first line: a section
// header or a comment.
var reshadeHeaderPattern = regexp.MustCompile(`^[\[#].+`)

// INI detects and installs the Reshade/normal-config INI layouts. The
// disk read that classifies Reshade vs normal happens only inside
// Layout, never inside Detect.
type INI struct{}

func (INI) ID() string { return "ini" }

func (INI) Detect(tree *filetree.Tree) bool {
	if tree.DirWithSomeUnder("", isInitLua) {
		return false
	}
	if tree.DirWithSomeUnder("", hasRedsExt) {
		return false
	}
	if tree.DirWithSomeIn(pathmatch.Dir(layout.GlobalINI), func(p string) bool {
		return p == layout.GlobalINI
	}) {
		return false
	}
	return len(tree.FilesUnder("", hasIniExt)) > 0
}

func (i INI) Layout(ctx *Context, tree *filetree.Tree) (layout.Instructions, error) {
	if !i.Detect(tree) {
		return layout.NoMatch(), nil
	}

	iniFiles := tree.FilesUnder("", hasIniExt)
	if len(iniFiles) == 0 {
		return layout.NoMatch(), nil
	}

	first := iniFiles[0]
	data, err := ctx.Files.ReadFile(pathmatch.Join(ctx.DestinationPath, first))
	if err != nil {
		return layout.Instructions{}, IOError("failed to read "+first, err)
	}

	isReshade := reshadeHeaderPattern.Match(headBytes(data))

	var instructions []layout.Instruction
	var kind layout.Kind
	if isReshade {
		kind = layout.KindINIReshade
		for _, f := range iniFiles {
			dest := pathmatch.Join(layout.PrefixReshade, pathmatch.Basename(f))
			instructions = append(instructions, layout.Copy(f, dest))
		}
		for _, f := range tree.FilesUnder("", underReshadeShadersDir) {
			instructions = append(instructions, layout.Copy(f, reshadeShaderDest(f)))
		}
	} else {
		kind = layout.KindINIIni
		for _, f := range iniFiles {
			dest := pathmatch.Join(layout.PrefixIniConfig, pathmatch.Basename(f))
			instructions = append(instructions, layout.Copy(f, dest))
		}
	}

	deduped, conflicts := layout.Dedup(instructions)
	if len(conflicts) > 0 {
		return layout.Instructions{}, ConflictError("INI layout produced conflicting destinations: " + conflicts[0])
	}

	return layout.Instructions{Kind: kind, Instructions: deduped}, nil
}

// underReshadeShadersDir reports whether path has a reshade-shaders
// directory anywhere among its ancestors, not just as a direct child of
// the archive root.
func underReshadeShadersDir(path string) bool {
	segs := pathmatch.Segments(path)
	for _, seg := range segs {
		if strings.EqualFold(seg, layout.ReshadeShadersDirName) {
			return true
		}
	}
	return false
}

// reshadeShaderDest rewrites a file found under a reshade-shaders
// directory (at any depth) onto its destination relative to that
// directory, preserving the subtree beneath it.
func reshadeShaderDest(path string) string {
	segs := pathmatch.Segments(path)
	for i, seg := range segs {
		if strings.EqualFold(seg, layout.ReshadeShadersDirName) {
			rel := pathmatch.Join(segs[i+1:]...)
			return pathmatch.Join(layout.PrefixReshade, layout.ReshadeShadersDirName, rel)
		}
	}
	return path
}

// headBytes returns up to the first line of data for the Reshade header check.
func headBytes(data []byte) []byte {
	for i, b := range data {
		if b == '\n' {
			if i > 0 && data[i-1] == '\r' {
				return data[:i-1]
			}
			return data[:i]
		}
	}
	return data
}

var _ Detector = INI{}
