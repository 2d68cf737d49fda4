package match

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func TestWordMappingKeepsOrder(t *testing.T) {
	m, err := NewWordMapping(Pair{"zebra", "zèbre"}, Pair{"apple", "pomme"}, Pair{"mouse", "souris"})
	require.NoError(t, err)

	assert.Equal(t, []string{"zebra", "apple", "mouse"}, m.Keys())
	assert.Equal(t, `{"zebra":"zèbre","apple":"pomme","mouse":"souris"}`, mustJSON(t, m))

	tgt, ok, err := m.TargetAt(1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "pomme", tgt)
}

func TestWordMappingRejectsDuplicates(t *testing.T) {
	_, err := NewWordMapping(Pair{"cat", "chat"}, Pair{"cat", "chien"})
	assert.ErrorIs(t, err, ErrDuplicateWord)

	var m WordMapping
	err = json.Unmarshal([]byte(`{"cat":null,"cat":"chat"}`), &m)
	assert.ErrorIs(t, err, ErrDuplicateWord)
}

func TestWordMappingJSONRoundTripKeepsNulls(t *testing.T) {
	var m WordMapping
	require.NoError(t, json.Unmarshal([]byte(`{"b":"y","a":null}`), &m))

	assert.Equal(t, []string{"b", "a"}, m.Keys())
	_, ok := m.Get("a")
	assert.False(t, ok)
	assert.False(t, m.Complete())
	assert.Equal(t, `{"b":"y","a":null}`, mustJSON(t, m))
}

func TestWordMappingSetAndLookups(t *testing.T) {
	m, err := UnsetMapping("cat", "dog")
	require.NoError(t, err)

	assert.ErrorIs(t, m.Set("cow", "vache"), ErrUnknownWord)
	require.NoError(t, m.Set("dog", "chien"))
	assert.True(t, m.HasTarget("chien"))
	assert.False(t, m.HasTarget("chat"))

	_, err = m.SourceAt(2)
	assert.ErrorIs(t, err, ErrWordIndexOutOfBound)
	_, _, err = m.TargetAt(-1)
	assert.ErrorIs(t, err, ErrWordIndexOutOfBound)
}

func TestWordMappingCloneIsIndependent(t *testing.T) {
	m, err := UnsetMapping("cat")
	require.NoError(t, err)
	c := m.Clone()
	require.NoError(t, c.Set("cat", "chat"))

	_, ok := m.Get("cat")
	assert.False(t, ok)
	assert.False(t, m.Equal(c))
	assert.True(t, c.Unset().Equal(m))
}
