package multitype

import (
	"testing"

	"github.com/harrison/conductor/internal/detect"
	"github.com/harrison/conductor/internal/filetree"
	"github.com/harrison/conductor/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiType_CETPlusRedscriptCoexist(t *testing.T) {
	tree := filetree.FromPaths([]string{
		`bin\x64\plugins\cyber_engine_tweaks\mods\MyMod\init.lua`,
		`r6\scripts\MyMod\script.reds`,
	})

	m := New()
	require.True(t, m.Detect(tree))

	ctx := &detect.Context{DestinationPath: `staging`}
	result, err := m.Layout(ctx, tree)
	require.NoError(t, err)
	assert.Equal(t, layout.KindMultiType, result.Kind)

	dests := map[string]bool{}
	for _, in := range result.Instructions {
		dests[in.Destination] = true
	}
	assert.True(t, dests[`bin\x64\plugins\cyber_engine_tweaks\mods\MyMod\init.lua`])
	assert.True(t, dests[`r6\scripts\MyMod\script.reds`])
}

func TestMultiType_CETWithBundledArchiveDoesNotClaim(t *testing.T) {
	tree := filetree.FromPaths([]string{
		`bin\x64\plugins\cyber_engine_tweaks\mods\MyMod\init.lua`,
		`archive\pc\mod\mymod.archive`,
	})

	m := New()
	assert.False(t, m.Detect(tree), "a CET mod's own bundled archive\\pc\\mod\\ payload should not also count as a distinct ArchiveOnly claim")

	result, err := m.Layout(&detect.Context{}, tree)
	require.NoError(t, err)
	assert.True(t, result.IsNoMatch())
}

func TestMultiType_CETWithArchiveElsewhereDoesClaim(t *testing.T) {
	tree := filetree.FromPaths([]string{
		`bin\x64\plugins\cyber_engine_tweaks\mods\MyMod\init.lua`,
		`loose\stray.archive`,
	})

	m := New()
	assert.True(t, m.Detect(tree), "an archive outside the canonical archive\\pc\\mod\\ prefix is a genuinely distinct payload")
}

func TestMultiType_SingleSubtypeDoesNotClaim(t *testing.T) {
	tree := filetree.FromPaths([]string{
		`bin\x64\plugins\cyber_engine_tweaks\mods\MyMod\init.lua`,
	})

	m := New()
	assert.False(t, m.Detect(tree))

	result, err := m.Layout(&detect.Context{}, tree)
	require.NoError(t, err)
	assert.True(t, result.IsNoMatch())
}

func TestMultiType_RedmodParticipatesOnlyViaCanon(t *testing.T) {
	tree := filetree.FromPaths([]string{
		`bin\x64\plugins\cyber_engine_tweaks\mods\MyMod\init.lua`,
		`mods\MyMod\info.json`,
		`mods\MyMod\archives\a.archive`,
	})

	m := New()
	require.True(t, m.Detect(tree))

	ctx := &detect.Context{
		DestinationPath: `staging`,
		Files: fakeFileReader{
			`staging\mods\MyMod\info.json`: []byte(`{"name":"MyMod","version":{"v":"1.0"}}`),
		},
	}
	result, err := m.Layout(ctx, tree)
	require.NoError(t, err)
	assert.Equal(t, layout.KindMultiType, result.Kind)

	dests := map[string]bool{}
	for _, in := range result.Instructions {
		dests[in.Destination] = true
	}
	assert.True(t, dests[`bin\x64\plugins\cyber_engine_tweaks\mods\MyMod\init.lua`])
	assert.True(t, dests[`mods\MyMod\info.json`])
	assert.True(t, dests[`mods\MyMod\archives\a.archive`])
}

type fakeFileReader map[string][]byte

func (f fakeFileReader) ReadFile(path string) ([]byte, error) {
	return f[path], nil
}
