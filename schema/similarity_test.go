package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarityIdentical(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("clientid", "clientid"))
	assert.Equal(t, 1.0, Similarity("", ""))
}

func TestSimilaritySymmetric(t *testing.T) {
	pairs := [][2]string{
		{"clientid", "clientname"},
		{"priority", "prioritylevel"},
		{"skills", "skillset"},
		{"", "workerid"},
	}
	for _, p := range pairs {
		assert.Equal(t, Similarity(p[0], p[1]), Similarity(p[1], p[0]), "Similarity(%q,%q)", p[0], p[1])
	}
}

func TestSimilarityBounds(t *testing.T) {
	pairs := [][2]string{
		{"abc", "xyz"},
		{"clientid", "maxconcurrent"},
		{"a", ""},
	}
	for _, p := range pairs {
		s := Similarity(p[0], p[1])
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
}

func TestSimilarityKnownDistances(t *testing.T) {
	// One substitution out of four runes.
	assert.InDelta(t, 0.75, Similarity("abcd", "abxd"), 1e-9)
	// Completely disjoint strings of equal length.
	assert.InDelta(t, 0.0, Similarity("aaaa", "bbbb"), 1e-9)
}

func TestSimilarityAfterNormalization(t *testing.T) {
	// The mapper's canonical case: "ClientID" vs "client_id" collapse to
	// the same normalized token.
	a := Normalize("ClientID")
	b := Normalize("client_id")
	assert.Greater(t, Similarity(a, b), 0.5)
	assert.Equal(t, 1.0, Similarity(a, b))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "clientid", Normalize("Client Id"))
	assert.Equal(t, "clientid", Normalize("CLIENT-ID"))
	assert.Equal(t, "clientid", Normalize("client_id"))
	assert.Equal(t, "prioritelevel", Normalize("Priorité Level"))
	assert.Equal(t, "", Normalize("  _- "))
}
