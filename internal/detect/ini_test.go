package detect

import (
	"errors"
	"testing"

	"github.com/harrison/conductor/internal/filetree"
	"github.com/harrison/conductor/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFileReader map[string][]byte

func (f fakeFileReader) ReadFile(path string) ([]byte, error) {
	if data, ok := f[path]; ok {
		return data, nil
	}
	return nil, errors.New("not found: " + path)
}

func TestINI_ReshadeDetection(t *testing.T) {
	tree := filetree.FromPaths([]string{`ReshadePreset.ini`})
	ctx := &Context{
		DestinationPath: `staging`,
		Files:           fakeFileReader{`staging\ReshadePreset.ini`: []byte("[GENERAL]\nFoo=1\n")},
	}

	i := INI{}
	require.True(t, i.Detect(tree))
	result, err := i.Layout(ctx, tree)
	require.NoError(t, err)
	assert.Equal(t, layout.KindINIReshade, result.Kind)
	assert.Equal(t, `bin\x64\ReshadePreset.ini`, result.Instructions[0].Destination)
}

func TestINI_NormalConfig(t *testing.T) {
	tree := filetree.FromPaths([]string{`MyMod.ini`})
	ctx := &Context{
		DestinationPath: `staging`,
		Files:           fakeFileReader{`staging\MyMod.ini`: []byte("EnableThing=true\n")},
	}

	i := INI{}
	result, err := i.Layout(ctx, tree)
	require.NoError(t, err)
	assert.Equal(t, layout.KindINIIni, result.Kind)
	assert.Equal(t, `engine\config\platform\pc\MyMod.ini`, result.Instructions[0].Destination)
}

func TestINI_ReshadeCopiesTopLevelShadersDir(t *testing.T) {
	tree := filetree.FromPaths([]string{
		`ReshadePreset.ini`,
		`reshade-shaders\Shaders\Effect.fx`,
	})
	ctx := &Context{
		DestinationPath: `staging`,
		Files:           fakeFileReader{`staging\ReshadePreset.ini`: []byte("[GENERAL]\nFoo=1\n")},
	}

	i := INI{}
	result, err := i.Layout(ctx, tree)
	require.NoError(t, err)
	assert.Equal(t, layout.KindINIReshade, result.Kind)

	dests := map[string]bool{}
	for _, in := range result.Instructions {
		dests[in.Destination] = true
	}
	assert.True(t, dests[`bin\x64\reshade-shaders\Shaders\Effect.fx`])
}

func TestINI_ReshadeCopiesNestedShadersDir(t *testing.T) {
	tree := filetree.FromPaths([]string{
		`ReshadePreset.ini`,
		`MyPreset\reshade-shaders\Shaders\Effect.fx`,
	})
	ctx := &Context{
		DestinationPath: `staging`,
		Files:           fakeFileReader{`staging\ReshadePreset.ini`: []byte("[GENERAL]\nFoo=1\n")},
	}

	i := INI{}
	result, err := i.Layout(ctx, tree)
	require.NoError(t, err)
	assert.Equal(t, layout.KindINIReshade, result.Kind)

	dests := map[string]bool{}
	for _, in := range result.Instructions {
		dests[in.Destination] = true
	}
	assert.True(t, dests[`bin\x64\reshade-shaders\Shaders\Effect.fx`],
		"a reshade-shaders directory nested under another folder must still be copied")
}

func TestINI_RejectsWhenGlobalINIPresent(t *testing.T) {
	tree := filetree.FromPaths([]string{layout.GlobalINI, `MyMod.ini`})
	i := INI{}
	assert.False(t, i.Detect(tree))
}

func TestINI_RejectsWhenCETMarkersPresent(t *testing.T) {
	tree := filetree.FromPaths([]string{
		`bin\x64\plugins\cyber_engine_tweaks\mods\MyMod\init.lua`,
		`MyMod.ini`,
	})
	i := INI{}
	assert.False(t, i.Detect(tree))
}
