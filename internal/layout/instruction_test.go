package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedup_KeepsFirstAndFlagsConflicts(t *testing.T) {
	ins := []Instruction{
		Copy(`a.reds`, `r6\scripts\Mod\a.reds`),
		Copy(`a.reds`, `r6\scripts\Mod\a.reds`), // exact duplicate, not a conflict
		Copy(`b.reds`, `r6\scripts\Mod\a.reds`), // same destination, different source
	}
	deduped, conflicts := Dedup(ins)
	assert.Len(t, deduped, 1)
	assert.Equal(t, []string{`r6\scripts\Mod\a.reds`}, conflicts)
}

func TestRemapDestination(t *testing.T) {
	in := Copy(`X.archive`, `archive\pc\mod\X.archive`)
	out := RemapDestination(in, PrefixArchiveMod, `mods\X_autoconverted\archives`)
	assert.Equal(t, `mods\X_autoconverted\archives\X.archive`, out.Destination)
}

func TestAllUnderPrefix(t *testing.T) {
	ins := []Instruction{
		Copy(`a.reds`, `r6\scripts\Mod\a.reds`),
		Copy(`b.archive`, `archive\pc\mod\b.archive`),
	}
	assert.True(t, AllUnderPrefix(ins, PrefixRedscript, PrefixArchiveMod))
	assert.False(t, AllUnderPrefix(ins, PrefixRedscript))
}

func TestIsNonOverridableDLL(t *testing.T) {
	assert.True(t, IsNonOverridableDLL("clrcompression.dll"))
	assert.True(t, IsNonOverridableDLL("CoreCLR.dll"))
	assert.False(t, IsNonOverridableDLL("MyMod.dll"))
}
