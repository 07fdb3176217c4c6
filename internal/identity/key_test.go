package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceID_Deterministic(t *testing.T) {
	a := SourceID("tx_sos", "0805123456")
	b := SourceID("tx_sos", "0805123456")
	assert.Equal(t, a, b)
	assert.Len(t, a, 16)
	assert.Regexp(t, "^[0-9a-f]{16}$", a)
}

func TestSourceID_DiffersBySource(t *testing.T) {
	assert.NotEqual(t, SourceID("tx_sos", "12345"), SourceID("ga_sos", "12345"))
}

func TestSourceID_DiffersByParts(t *testing.T) {
	assert.NotEqual(t, SourceID("fmcsa", "111"), SourceID("fmcsa", "222"))
	assert.NotEqual(t, SourceID("fmcsa", "a", "b"), SourceID("fmcsa", "ab"))
}

func TestNaturalKey_PrefersExplicit(t *testing.T) {
	assert.Equal(t, "DOT-998877", NaturalKey("DOT-998877", "ACME TRUCKING LLC"))
}

func TestNaturalKey_FallsBackToName(t *testing.T) {
	assert.Equal(t, "ACME TRUCKING LLC", NaturalKey("", "  ACME TRUCKING LLC "))
	assert.Equal(t, "ACME TRUCKING LLC", NaturalKey("   ", "ACME TRUCKING LLC"))
}
