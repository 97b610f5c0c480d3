package detect

import (
	"testing"

	"github.com/harrison/conductor/internal/filetree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON_MisplacedOptionsRejectsAtLayout(t *testing.T) {
	tree := filetree.FromPaths([]string{`random\options.json`})

	j := JSON{}
	require.True(t, j.Detect(tree), "testSupported must return true: JSON detector claims the tree")

	_, err := j.Layout(&Context{}, tree)
	require.Error(t, err)
	var ierr *InstallError
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, ValidationErrorKind, ierr.Kind)
	assert.Contains(t, err.Error(), "options.json")
}

func TestJSON_KnownBasenameRelocates(t *testing.T) {
	tree := filetree.FromPaths([]string{`anywhere\giweights.json`})
	j := JSON{}
	result, err := j.Layout(&Context{}, tree)
	require.NoError(t, err)
	require.Len(t, result.Instructions, 1)
	assert.Equal(t, `engine\config\giweights.json`, result.Instructions[0].Destination)
}

func TestJSON_UnknownBasenameRejects(t *testing.T) {
	tree := filetree.FromPaths([]string{`anywhere\custom.json`})
	j := JSON{}
	_, err := j.Layout(&Context{}, tree)
	require.Error(t, err)
}
