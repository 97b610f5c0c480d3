// Package filetree provides a read-only, in-memory view over a flat list of
// relative file paths, built once per install call.
//
// # Purpose
//
// Layout detectors never walk an archive's paths directly: they query a
// Tree. This keeps every detector's shape-matching logic declarative and
// keeps the expensive part (building the directory index) to a single pass
// over the input.
//
// # Construction
//
// FromPaths builds a Tree from an unordered slice of backslash-or-slash
// paths. Every path is normalized via pathmatch.Normalize. Directory nodes
// are created on demand for every ancestor of every file; the tree root
// (FILETREE_ROOT, the empty path) always exists, even for an empty input.
//
// # Query surface
//
//   - DirInTree reports whether a directory node exists.
//   - FilesIn / FilesUnder list files directly in, or transitively under, a directory.
//   - SubdirsIn / SubdirNamesIn list one-level child directories.
//   - FindDirectSubdirsWithSome / FindAllSubdirsWithSome locate directories
//     containing at least one matching file, at one level or any depth.
//   - DirWithSomeIn / DirWithSomeUnder are existence-only shortcuts over the above.
//   - SourcePaths flattens the tree back to the original file list.
//
// All queries are read-only and run in time proportional to the size of
// the subtree examined.
package filetree
