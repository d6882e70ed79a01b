package pathexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath_DottedAndIndexed(t *testing.T) {
	p, rest, err := ParsePath("foo.bar[2].baz")
	require.NoError(t, err)
	assert.Equal(t, "", rest)
	require.Len(t, p, 4)
	assert.Equal(t, Step{Kind: StepKey, Key: "foo"}, p[0])
	assert.Equal(t, Step{Kind: StepKey, Key: "bar"}, p[1])
	assert.Equal(t, Step{Kind: StepIndex, Index: 2}, p[2])
	assert.Equal(t, Step{Kind: StepKey, Key: "baz"}, p[3])
}

func TestParsePath_LeadingIndex(t *testing.T) {
	p, rest, err := ParsePath("[0].name")
	require.NoError(t, err)
	assert.Equal(t, "", rest)
	require.Len(t, p, 2)
	assert.Equal(t, StepIndex, p[0].Kind)
	assert.Equal(t, 0, p[0].Index)
}

func TestParsePath_QuotedSegment(t *testing.T) {
	p, rest, err := ParsePath(`"a.b".c`)
	require.NoError(t, err)
	assert.Equal(t, "", rest)
	require.Len(t, p, 2)
	assert.Equal(t, "a.b", p[0].Key)
	assert.Equal(t, "c", p[1].Key)
}

// TestParsePath_Greedy is the "path parser is greedy" testable property
// (spec §8): parsing stops at the first byte that doesn't extend the path,
// and the remainder is returned rather than erroring.
func TestParsePath_Greedy(t *testing.T) {
	p, rest, err := ParsePath("foo==bar")
	require.NoError(t, err)
	require.Len(t, p, 1)
	assert.Equal(t, "foo", p[0].Key)
	assert.Equal(t, "==bar", rest)
}

// TestParsePath_RoundTrip is the "path round-trip" testable property: for
// a path built only of plain identifiers and indices, String() followed by
// ParsePath reproduces the same steps.
func TestParsePath_RoundTrip(t *testing.T) {
	original := "a.b[3].c[12]"
	p, rest, err := ParsePath(original)
	require.NoError(t, err)
	require.Equal(t, "", rest)

	reparsed, rest2, err := ParsePath(p.String())
	require.NoError(t, err)
	assert.Equal(t, "", rest2)
	assert.Equal(t, p, reparsed)
}

func TestParsePath_EmptyInputIsError(t *testing.T) {
	_, _, err := ParsePath("")
	assert.Error(t, err)
}
