package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpand_AlwaysIncludesInput(t *testing.T) {
	assert.Equal(t, []string{"introuvable"}, Expand("introuvable"))

	got := Expand("lissage")
	assert.Equal(t, "lissage", got[0])
	assert.Contains(t, got, "lisage")
}

func TestExpand_Symmetric(t *testing.T) {
	// For every table-defined pair: b in Expand(a) implies a in Expand(b).
	for canonical, variants := range correctionTable {
		for _, v := range variants {
			assert.Contains(t, Expand(canonical), v)
			assert.Contains(t, Expand(v), canonical)
		}
	}
}

func TestExpand_TypoResolvesToCanonical(t *testing.T) {
	assert.Contains(t, Expand("lisage"), "lissage")
	assert.Contains(t, Expand("shampoo"), "shampoing")
	assert.Contains(t, Expand("keratin"), "keratine")
}

func TestExpand_DeterministicOrder(t *testing.T) {
	assert.Equal(t, Expand("lissage"), Expand("lissage"))
}
