package filetree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *Tree {
	return FromPaths([]string{
		`bin\x64\plugins\cyber_engine_tweaks\mods\MyMod\init.lua`,
		`bin\x64\plugins\cyber_engine_tweaks\mods\MyMod\data.lua`,
		`r6\scripts\Foo.reds`,
		`archive\pc\mod\Foo.archive`,
		`readme.txt`,
	})
}

func TestFromPaths_RootAlwaysExists(t *testing.T) {
	tree := FromPaths(nil)
	assert.True(t, tree.DirInTree(""))
	assert.Empty(t, tree.SourcePaths())
}

func TestDirInTree(t *testing.T) {
	tree := sample()
	assert.True(t, tree.DirInTree(`bin\x64\plugins\cyber_engine_tweaks\mods`))
	assert.True(t, tree.DirInTree(`bin\x64\plugins\cyber_engine_tweaks\mods\MyMod`))
	assert.False(t, tree.DirInTree(`does\not\exist`))
}

func TestFilesIn(t *testing.T) {
	tree := sample()
	files := tree.FilesIn("", All)
	assert.Equal(t, []string{`readme.txt`}, files)

	modFiles := tree.FilesIn(`bin\x64\plugins\cyber_engine_tweaks\mods\MyMod`, All)
	assert.Equal(t, []string{
		`bin\x64\plugins\cyber_engine_tweaks\mods\MyMod\data.lua`,
		`bin\x64\plugins\cyber_engine_tweaks\mods\MyMod\init.lua`,
	}, modFiles)
}

func TestFilesUnder(t *testing.T) {
	tree := sample()
	all := tree.FilesUnder("", All)
	require.Len(t, all, 5)
}

func TestSubdirsAndNames(t *testing.T) {
	tree := sample()
	names := tree.SubdirNamesIn("")
	assert.ElementsMatch(t, []string{"bin", "r6", "archive"}, names)

	subdirs := tree.SubdirsIn(`bin\x64\plugins\cyber_engine_tweaks\mods`)
	assert.Equal(t, []string{`bin\x64\plugins\cyber_engine_tweaks\mods\MyMod`}, subdirs)
}

func TestFindDirectSubdirsWithSome(t *testing.T) {
	tree := sample()
	hasLua := func(p string) bool { return p[len(p)-4:] == ".lua" }
	dirs := tree.FindDirectSubdirsWithSome(`bin\x64\plugins\cyber_engine_tweaks\mods`, hasLua)
	assert.Equal(t, []string{`bin\x64\plugins\cyber_engine_tweaks\mods\MyMod`}, dirs)

	none := tree.FindDirectSubdirsWithSome(`bin\x64\plugins\cyber_engine_tweaks\mods`, func(string) bool { return false })
	assert.Empty(t, none)
}

func TestFindAllSubdirsWithSome(t *testing.T) {
	tree := sample()
	hasArchive := func(p string) bool { return p[len(p)-8:] == ".archive" }
	dirs := tree.FindAllSubdirsWithSome("", hasArchive)
	assert.Equal(t, []string{`archive\pc\mod`}, dirs)
}

func TestDirWithSome(t *testing.T) {
	tree := sample()
	assert.True(t, tree.DirWithSomeIn(`r6\scripts`, func(p string) bool { return p == `r6\scripts\Foo.reds` }))
	assert.False(t, tree.DirWithSomeIn(`r6`, All))
	assert.True(t, tree.DirWithSomeUnder(`r6`, All))
}

func TestSourcePaths(t *testing.T) {
	tree := sample()
	assert.Len(t, tree.SourcePaths(), 5)
}

func TestDirectoryMarkerCreatesNodeOnly(t *testing.T) {
	tree := FromPaths([]string{`empty\dir\`})
	assert.True(t, tree.DirInTree(`empty\dir`))
	assert.Empty(t, tree.FilesIn(`empty\dir`, All))
}
