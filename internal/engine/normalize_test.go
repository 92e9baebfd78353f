package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_LowercasesAndTrims(t *testing.T) {
	assert.Equal(t, "kit lissage bresilien", Normalize("  Kit LISSAGE Brésilien  "))
}

func TestNormalize_StripsDiacritics(t *testing.T) {
	assert.Equal(t, "keratine", Normalize("Kératine"))
	assert.Equal(t, "creme hydratante", Normalize("Crème Hydratante"))
	assert.Equal(t, "protection thermique", Normalize("Protéction Thermique"))
}

func TestNormalize_ReplacesPunctuation(t *testing.T) {
	assert.Equal(t, "shampoing anti chute", Normalize("Shampoing (anti-chute)!"))
	assert.Equal(t, "soin 2 en 1", Normalize("Soin 2-en-1"))
}

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", Normalize("a \t b \n  c"))
}

func TestNormalize_Empty(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   ---   "))
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Kit Lissage Brésilien",
		"Kératine & Protéine!!",
		"  SHAMPOOING   réparateur  ",
		"",
		"déjà-vu 100% pur",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalize must be idempotent for %q", in)
	}
}
