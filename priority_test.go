package priority

import (
	"fmt"
	"hash/maphash"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestOrdering(t *testing.T) {
	assert.True(t, UserInteractive > UserInitiated)
	assert.True(t, UserInitiated > Utility)
	assert.True(t, Utility > Background)
	assert.True(t, Background > Unknown)
}

// All is most urgent first, so index order is the urgency ranking.
func TestOrdering_AllPairs(t *testing.T) {
	all := All()
	for i, a := range all {
		for j, b := range all {
			name := fmt.Sprintf("%s vs %s", a, b)
			switch {
			case i < j:
				assert.True(t, a > b, name)
				assert.False(t, a < b, name)
				assert.Equal(t, 1, Compare(a, b), name)
				assert.True(t, a.AtLeast(b), name)
				assert.False(t, b.AtLeast(a), name)
			case i > j:
				assert.True(t, a < b, name)
				assert.Equal(t, -1, Compare(a, b), name)
				assert.False(t, a.AtLeast(b), name)
			default:
				assert.Equal(t, 0, Compare(a, b), name)
				assert.True(t, a.AtLeast(b), name)
			}
		}
	}
}

func TestUnknownIsNotBackground(t *testing.T) {
	assert.NotEqual(t, Background, Unknown)
	assert.NotEqual(t, Background.String(), Unknown.String())
	assert.False(t, Unknown.AtLeast(Background))
}

func TestZeroValueIsUnknown(t *testing.T) {
	var p Priority
	assert.Equal(t, Unknown, p)
}

func TestEquality(t *testing.T) {
	assert.True(t, Utility == Utility)
	assert.False(t, Utility == Background)

	all := All()
	for _, a := range all {
		assert.Equal(t, a, a, "reflexive")
		for _, b := range all {
			assert.Equal(t, a == b, b == a, "symmetric for %s, %s", a, b)
			for _, c := range all {
				if a == b && b == c {
					assert.Equal(t, a, c, "transitive for %s, %s, %s", a, b, c)
				}
			}
		}
	}
}

func TestHashConsistentWithEquality(t *testing.T) {
	seed := maphash.MakeSeed()
	for _, a := range All() {
		for _, b := range All() {
			if a == b {
				assert.Equal(t, maphash.Comparable(seed, a), maphash.Comparable(seed, b))
			}
		}
	}
}

func TestMapKey(t *testing.T) {
	counts := make(map[Priority]int)
	for _, p := range []Priority{Utility, Background, Utility, UserInitiated, Utility} {
		counts[p]++
	}

	assert.Len(t, counts, 3)
	assert.Equal(t, 3, counts[Utility])
	assert.Equal(t, 1, counts[Background])
	assert.Equal(t, 1, counts[UserInitiated])
	assert.Zero(t, counts[UserInteractive])
}

func TestCopyEqualsOriginal(t *testing.T) {
	for _, p := range All() {
		c := p
		assert.Equal(t, p, c)
		assert.True(t, c == p)
	}
}

func TestHighestAsync(t *testing.T) {
	assert.Equal(t, UserInitiated, HighestAsync())
	assert.NotEqual(t, UserInteractive, HighestAsync())
	for i := 0; i < 10; i++ {
		assert.Equal(t, UserInitiated, HighestAsync())
	}
}

func TestUnitTest(t *testing.T) {
	assert.Equal(t, UserInitiated, UnitTest())
}

func TestConstants_ConcurrentCallers(t *testing.T) {
	var g errgroup.Group
	for i := 0; i < 64; i++ {
		g.Go(func() error {
			if got := HighestAsync(); got != UserInitiated {
				return fmt.Errorf("HighestAsync() = %s", got)
			}
			if got := UnitTest(); got != UserInitiated {
				return fmt.Errorf("UnitTest() = %s", got)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestString(t *testing.T) {
	tests := []struct {
		priority Priority
		want     string
	}{
		{UserInteractive, "UserInteractive"},
		{UserInitiated, "UserInitiated"},
		{Utility, "Utility"},
		{Background, "Background"},
		{Unknown, "Unknown"},
		{Priority(42), "Priority(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.priority.String())
		})
	}
}

func TestString_Distinct(t *testing.T) {
	seen := make(map[string]Priority)
	for _, p := range All() {
		name := p.String()
		if prev, ok := seen[name]; ok {
			t.Errorf("%d and %d both render as %q", prev, p, name)
		}
		seen[name] = p
	}
	assert.Len(t, seen, len(All()))
}

func TestIsValid(t *testing.T) {
	for _, p := range All() {
		assert.True(t, p.IsValid(), p.String())
	}
	assert.False(t, Priority(UserInteractive+1).IsValid())
	assert.False(t, Priority(255).IsValid())
}

func TestAll(t *testing.T) {
	all := All()
	assert.Equal(t, []Priority{UserInteractive, UserInitiated, Utility, Background, Unknown}, all)

	// Callers get their own slice
	all[0] = Background
	assert.Equal(t, UserInteractive, All()[0])
}

func TestSortByCompare(t *testing.T) {
	ps := []Priority{Background, UserInteractive, Unknown, Utility, UserInitiated}
	slices.SortFunc(ps, Compare)
	assert.Equal(t, []Priority{Unknown, Background, Utility, UserInitiated, UserInteractive}, ps)

	slices.Reverse(ps)
	assert.Equal(t, All(), ps)
}
