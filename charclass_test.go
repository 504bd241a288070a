package peg

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharClassContains(t *testing.T) {
	c := NewCharClass([2]rune{'a', 'z'}, [2]rune{'0', '9'}, [2]rune{'_', '_'})

	for _, r := range []rune{'a', 'm', 'z', '0', '5', '9', '_'} {
		assert.True(t, c.Contains(r), "expected %q in class", r)
	}
	for _, r := range []rune{'A', ' ', '-', '`', ':'} {
		assert.False(t, c.Contains(r), "expected %q not in class", r)
	}
}

func TestCharClassMergesOverlappingAndAdjacentRanges(t *testing.T) {
	c := NewCharClass([2]rune{'a', 'c'}, [2]rune{'d', 'f'}, [2]rune{'b', 'e'})
	require.Equal(t, [][2]rune{{'a', 'f'}}, c.Ranges())
}

func TestCharClassSinglePointRange(t *testing.T) {
	c := NewCharClass([2]rune{'x', 'x'})
	assert.True(t, c.Contains('x'))
	assert.False(t, c.Contains('y'))
}

// Construction order must not affect the merged internal representation:
// two classes built from the same ranges in different orders are the same
// value, down to the unexported range slice.
func TestCharClassCanonicalizesRegardlessOfConstructionOrder(t *testing.T) {
	a := NewCharClass([2]rune{'a', 'c'}, [2]rune{'d', 'f'}, [2]rune{'0', '9'})
	b := NewCharClass([2]rune{'0', '9'}, [2]rune{'d', 'f'}, [2]rune{'a', 'c'})

	if diff := cmp.Diff(a, b, cmp.AllowUnexported(CharClass{}, charRange{})); diff != "" {
		t.Errorf("class mismatch (-want +got):\n%s", diff)
	}
}
