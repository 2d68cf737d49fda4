package match

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrade(t *testing.T) {
	canonical := catDog(t)

	full := canonical.Clone()
	assert.Equal(t, Score{Correct: 2, Total: 2, Percent: 100}, Grade(canonical, full))

	assert.Equal(t, Score{Correct: 0, Total: 2, Percent: 0}, Grade(canonical, canonical.Unset()))

	swapped, err := NewWordMapping(Pair{"cat", "chien"}, Pair{"dog", "chat"})
	require.NoError(t, err)
	assert.Equal(t, 0, Grade(canonical, swapped).Percent)

	half := canonical.Unset()
	require.NoError(t, half.Set("dog", "chien"))
	assert.Equal(t, Score{Correct: 1, Total: 2, Percent: 50}, Grade(canonical, half))

	assert.Equal(t, Score{}, Grade(WordMapping{}, half))
}

func TestGradeRounding(t *testing.T) {
	var pairs []Pair
	for i := 0; i < 12; i++ {
		pairs = append(pairs, Pair{Source: fmt.Sprint("s", i), Target: fmt.Sprint("t", i)})
	}
	canonical, err := NewWordMapping(pairs...)
	require.NoError(t, err)

	for k := 0; k <= 12; k++ {
		answer := canonical.Unset()
		for i := 0; i < k; i++ {
			require.NoError(t, answer.Set(pairs[i].Source, pairs[i].Target))
		}
		want := map[int]int{0: 0, 1: 8, 2: 17, 3: 25, 4: 33, 5: 42, 6: 50, 7: 58, 8: 67, 9: 75, 10: 83, 11: 92, 12: 100}[k]
		assert.Equal(t, want, Grade(canonical, answer).Percent, "k=%d", k)
	}
}

func TestOutcomeHints(t *testing.T) {
	assert.NotEmpty(t, OutcomeRejectedSameType.Hint())
	assert.NotEmpty(t, OutcomeRejectedPaired.Hint())
	assert.Empty(t, OutcomeCommitted.Hint())
	assert.True(t, OutcomeRejectedPaired.Rejected())
	assert.False(t, OutcomeIgnored.Rejected())
}
