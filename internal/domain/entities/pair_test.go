package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairKeySymmetric(t *testing.T) {
	assert.Equal(t, PairKey("MID1", "TID1"), PairKey("TID1", "MID1"))
	assert.Equal(t, "MID1|TID1", PairKey("TID1", "MID1"))
}

func TestPairKeyDistinguishesPairs(t *testing.T) {
	assert.NotEqual(t, PairKey("MID1", "TID1"), PairKey("MID1", "TID2"))
	assert.NotEqual(t, PairKey("MID1", "TID1"), PairKey("MID2", "TID1"))
}

func TestPairKeyEqualHalves(t *testing.T) {
	assert.Equal(t, "A|A", PairKey("A", "A"))
}

func TestPairKeyEscapesDelimiter(t *testing.T) {
	assert.NotEqual(t, PairKey("A|B", "C"), PairKey("A", "B|C"))
	assert.NotEqual(t, PairKey(`A\`, "B"), PairKey("A", `\B`))

	// Escaping does not break order independence.
	assert.Equal(t, PairKey("A|B", "C"), PairKey("C", "A|B"))
}
