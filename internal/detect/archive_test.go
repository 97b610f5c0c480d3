package detect

import (
	"testing"

	"github.com/harrison/conductor/internal/filetree"
	"github.com/harrison/conductor/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveOnly_WrongSubdir(t *testing.T) {
	tree := filetree.FromPaths([]string{`something\Foo.archive`, `readme.txt`})

	a := ArchiveOnly{}
	require.True(t, a.Detect(tree))

	ctx := &Context{UI: noopUI{}}
	result, err := a.Layout(ctx, tree)
	require.NoError(t, err)
	assert.Equal(t, layout.KindArchiveOther, result.Kind)

	var dest string
	for _, in := range result.Instructions {
		if in.Source == `something\Foo.archive` {
			dest = in.Destination
		}
	}
	assert.Equal(t, `archive\pc\mod\Foo.archive`, dest)
}

func TestArchiveOnly_Canon(t *testing.T) {
	tree := filetree.FromPaths([]string{`archive\pc\mod\Foo.archive`})
	a := ArchiveOnly{}
	result, err := a.Layout(&Context{}, tree)
	require.NoError(t, err)
	assert.Equal(t, layout.KindArchiveCanon, result.Kind)
	require.Len(t, result.Instructions, 1)
	assert.Equal(t, `archive\pc\mod\Foo.archive`, result.Instructions[0].Destination)
}

func TestArchiveOnly_Heritage(t *testing.T) {
	tree := filetree.FromPaths([]string{`archive\pc\patch\Foo.archive`})
	a := ArchiveOnly{}
	result, err := a.Layout(&Context{}, tree)
	require.NoError(t, err)
	assert.Equal(t, layout.KindArchiveHeritage, result.Kind)
	assert.Equal(t, `archive\pc\mod\Foo.archive`, result.Instructions[0].Destination)
}

func TestArchiveOnly_XLSibling(t *testing.T) {
	tree := filetree.FromPaths([]string{`archive\pc\mod\Foo.archive`, `archive\pc\mod\Foo.xl`})
	a := ArchiveOnly{}
	result, err := a.Layout(&Context{}, tree)
	require.NoError(t, err)
	assert.Equal(t, layout.KindArchiveXL, result.Kind)
}
