package filetree

import (
	"sort"

	"github.com/harrison/conductor/internal/pathmatch"
)

// Filter decides whether a full file path should be included in a query
// result. Filters receive the full, normalized path (directory + basename).
type Filter func(path string) bool

// All is a Filter that matches every file.
func All(string) bool { return true }

// node is one directory in the trie. files holds the basenames of files
// that live directly in this directory; dirs maps a child directory's
// basename to its node.
type node struct {
	files map[string]bool
	dirs  map[string]*node
}

func newNode() *node {
	return &node{files: map[string]bool{}, dirs: map[string]*node{}}
}

// Tree is an immutable, read-only index over a set of relative file paths.
type Tree struct {
	root  *node
	paths []string // original normalized input, sorted
}

// FromPaths builds a Tree from an unordered list of relative paths. Paths
// ending in a separator are treated as directory markers: they create the
// directory node but contribute no file entry.
func FromPaths(paths []string) *Tree {
	t := &Tree{root: newNode()}
	seen := map[string]bool{}
	for _, raw := range paths {
		isDir := pathmatch.IsDirMarker(raw)
		p := pathmatch.Normalize(raw)
		if p == "" {
			continue
		}
		if !seen[p] {
			seen[p] = true
			t.paths = append(t.paths, p)
		}
		segs := pathmatch.Segments(p)
		cur := t.root
		for i, seg := range segs {
			last := i == len(segs)-1
			if last && !isDir {
				cur.files[seg] = true
				break
			}
			child, ok := cur.dirs[seg]
			if !ok {
				child = newNode()
				cur.dirs[seg] = child
			}
			cur = child
		}
	}
	sort.Strings(t.paths)
	return t
}

// dirNode navigates to the node for dir, returning nil if no such
// directory was created by the input paths. The root ("") always resolves.
func (t *Tree) dirNode(dir string) *node {
	cur := t.root
	for _, seg := range pathmatch.Segments(dir) {
		child, ok := cur.dirs[seg]
		if !ok {
			return nil
		}
		cur = child
	}
	return cur
}

// DirInTree reports whether dir exists as a directory node, even if it
// holds no files directly.
func (t *Tree) DirInTree(dir string) bool {
	return t.dirNode(dir) != nil
}

// FilesIn returns files directly inside dir that satisfy filter, as full
// paths. Order is alphabetical, which is deterministic for a given input.
func (t *Tree) FilesIn(dir string, filter Filter) []string {
	n := t.dirNode(dir)
	if n == nil {
		return nil
	}
	var out []string
	for name := range n.files {
		full := pathmatch.Join(dir, name)
		if filter == nil || filter(full) {
			out = append(out, full)
		}
	}
	sort.Strings(out)
	return out
}

// FilesUnder returns every file transitively under dir (including dir
// itself) that satisfies filter. Directory markers are never returned.
func (t *Tree) FilesUnder(dir string, filter Filter) []string {
	n := t.dirNode(dir)
	if n == nil {
		return nil
	}
	var out []string
	var walk func(path string, nd *node)
	walk = func(path string, nd *node) {
		for name := range nd.files {
			full := pathmatch.Join(path, name)
			if filter == nil || filter(full) {
				out = append(out, full)
			}
		}
		for name, child := range nd.dirs {
			walk(pathmatch.Join(path, name), child)
		}
	}
	walk(dir, n)
	sort.Strings(out)
	return out
}

// SubdirsIn returns the full paths of dir's immediate child directories.
func (t *Tree) SubdirsIn(dir string) []string {
	n := t.dirNode(dir)
	if n == nil {
		return nil
	}
	var out []string
	for name := range n.dirs {
		out = append(out, pathmatch.Join(dir, name))
	}
	sort.Strings(out)
	return out
}

// SubdirNamesIn returns the basenames of dir's immediate child directories.
func (t *Tree) SubdirNamesIn(dir string) []string {
	n := t.dirNode(dir)
	if n == nil {
		return nil
	}
	var out []string
	for name := range n.dirs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// FindDirectSubdirsWithSome returns dir's immediate child directories that
// themselves directly contain at least one file matching pred.
func (t *Tree) FindDirectSubdirsWithSome(dir string, pred Filter) []string {
	n := t.dirNode(dir)
	if n == nil {
		return nil
	}
	var out []string
	for name, child := range n.dirs {
		full := pathmatch.Join(dir, name)
		if dirHasDirectMatch(full, child, pred) {
			out = append(out, full)
		}
	}
	sort.Strings(out)
	return out
}

// FindAllSubdirsWithSome returns every descendant directory of root
// (at any depth, not including root itself) that directly contains at
// least one file matching pred.
func (t *Tree) FindAllSubdirsWithSome(root string, pred Filter) []string {
	n := t.dirNode(root)
	if n == nil {
		return nil
	}
	var out []string
	var walk func(path string, nd *node)
	walk = func(path string, nd *node) {
		for name, child := range nd.dirs {
			full := pathmatch.Join(path, name)
			if dirHasDirectMatch(full, child, pred) {
				out = append(out, full)
			}
			walk(full, child)
		}
	}
	walk(root, n)
	sort.Strings(out)
	return out
}

// DirWithSomeIn reports whether dir directly contains a file matching pred.
func (t *Tree) DirWithSomeIn(dir string, pred Filter) bool {
	n := t.dirNode(dir)
	if n == nil {
		return false
	}
	return dirHasDirectMatch(dir, n, pred)
}

// DirWithSomeUnder reports whether dir transitively contains a file
// matching pred.
func (t *Tree) DirWithSomeUnder(dir string, pred Filter) bool {
	n := t.dirNode(dir)
	if n == nil {
		return false
	}
	var found bool
	var walk func(path string, nd *node)
	walk = func(path string, nd *node) {
		if found {
			return
		}
		if dirHasDirectMatch(path, nd, pred) {
			found = true
			return
		}
		for name, child := range nd.dirs {
			walk(pathmatch.Join(path, name), child)
			if found {
				return
			}
		}
	}
	walk(dir, n)
	return found
}

// SourcePaths returns every file path the tree was built from, sorted.
func (t *Tree) SourcePaths() []string {
	out := make([]string, len(t.paths))
	copy(out, t.paths)
	return out
}

func dirHasDirectMatch(dirPath string, n *node, pred Filter) bool {
	for name := range n.files {
		full := pathmatch.Join(dirPath, name)
		if pred == nil || pred(full) {
			return true
		}
	}
	return false
}
