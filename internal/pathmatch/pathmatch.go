// Package pathmatch provides pure predicates over a single relative path:
// extension/basename/prefix matching and normalization to the game's
// backslash path convention. Nothing here touches the filesystem.
package pathmatch

import (
	"os"
	"strings"
)

// Sep is the canonical separator used throughout the installer pipeline,
// regardless of the host OS.
const Sep = `\`

// Normalize rewrites path to backslash form, collapses repeated separators,
// and trims leading/trailing separators. An empty result denotes the tree root.
func Normalize(path string) string {
	p := strings.ReplaceAll(path, "/", Sep)
	for strings.Contains(p, Sep+Sep) {
		p = strings.ReplaceAll(p, Sep+Sep, Sep)
	}
	return strings.Trim(p, Sep)
}

// Segments splits a normalized path into its path components. The root
// path ("") yields an empty slice.
func Segments(path string) []string {
	path = Normalize(path)
	if path == "" {
		return nil
	}
	return strings.Split(path, Sep)
}

// Join joins path segments with the canonical separator, skipping empty
// segments so callers can freely join a possibly-empty directory with a name.
func Join(parts ...string) string {
	var kept []string
	for _, p := range parts {
		p = Normalize(p)
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, Sep)
}

// Dir returns the parent directory of path, or "" if path has no parent.
func Dir(path string) string {
	path = Normalize(path)
	idx := strings.LastIndex(path, Sep)
	if idx < 0 {
		return ""
	}
	return path[:idx]
}

// Basename returns the final path component.
func Basename(path string) string {
	path = Normalize(path)
	idx := strings.LastIndex(path, Sep)
	if idx < 0 {
		return path
	}
	return path[idx+1:]
}

// Ext returns the extension of path's basename, including the leading dot,
// lower-cased for predictable comparisons. Returns "" when there is none.
func Ext(path string) string {
	base := Basename(path)
	idx := strings.LastIndex(base, ".")
	if idx <= 0 {
		return ""
	}
	return strings.ToLower(base[idx:])
}

// ExtEq reports whether path's extension equals ext (case-insensitive;
// ext may be given with or without a leading dot).
func ExtEq(path, ext string) bool {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return Ext(path) == strings.ToLower(ext)
}

// ExtIn reports whether path's extension is a member of exts.
func ExtIn(path string, exts ...string) bool {
	for _, e := range exts {
		if ExtEq(path, e) {
			return true
		}
	}
	return false
}

// BasenameEq reports whether path's basename equals name, case-insensitively.
func BasenameEq(path, name string) bool {
	return strings.EqualFold(Basename(path), name)
}

// BasenameIn reports whether path's basename is a member of names
// (case-insensitively).
func BasenameIn(path string, names ...string) bool {
	for _, n := range names {
		if BasenameEq(path, n) {
			return true
		}
	}
	return false
}

// PrefixOf reports whether path lies at or under prefix: path equals
// prefix, or path begins with prefix + Sep. An empty prefix denotes the
// tree root and is always a prefix of every path.
func PrefixOf(prefix, path string) bool {
	prefix = Normalize(prefix)
	path = Normalize(path)
	if prefix == "" {
		return true
	}
	if path == prefix {
		return true
	}
	return strings.HasPrefix(path, prefix+Sep)
}

// TrimPrefix removes prefix (and its trailing separator) from path. The
// caller should confirm PrefixOf(prefix, path) first; if prefix is not
// actually a prefix, path is returned unchanged.
func TrimPrefix(prefix, path string) string {
	prefix = Normalize(prefix)
	path = Normalize(path)
	if !PrefixOf(prefix, path) {
		return path
	}
	if prefix == "" {
		return path
	}
	rest := strings.TrimPrefix(path, prefix)
	return strings.TrimPrefix(rest, Sep)
}

// PathInSet reports whether path (after normalization) is a member of set,
// whose keys are expected to already be normalized.
func PathInSet(path string, set map[string]bool) bool {
	return set[Normalize(path)]
}

// IsDirMarker reports whether path denotes a directory placeholder entry
// (a path ending in the separator) rather than a real file.
func IsDirMarker(path string) bool {
	return strings.HasSuffix(path, "/") || strings.HasSuffix(path, Sep)
}

// ToOSPath converts a normalized backslash path to the host OS's own
// separator. Every other function in this package works in the game's
// canonical path space; this is the one conversion needed at the boundary
// where a joined game path is handed to a real filesystem call.
func ToOSPath(path string) string {
	return strings.ReplaceAll(Normalize(path), Sep, string(os.PathSeparator))
}
