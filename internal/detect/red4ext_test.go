package detect

import (
	"testing"

	"github.com/harrison/conductor/internal/filetree"
	"github.com/stretchr/testify/assert"
)

func TestRed4Ext_ForbiddenDLLRejectsDetection(t *testing.T) {
	tree := filetree.FromPaths([]string{`red4ext\plugins\Bad\clrcompression.dll`})
	r := Red4Ext{}
	assert.False(t, r.Detect(tree), "Red4Ext must return NoMatch (not supported) when a forbidden DLL is present")
}

func TestRed4Ext_Canon(t *testing.T) {
	tree := filetree.FromPaths([]string{`red4ext\plugins\MyMod\MyMod.dll`})
	r := Red4Ext{}
	assert.True(t, r.Detect(tree))
	result, err := r.Layout(&Context{}, tree)
	assert.NoError(t, err)
	assert.Len(t, result.Instructions, 1)
}
