package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDSet(t *testing.T) {
	t.Run("NewIDSet deduplicates", func(t *testing.T) {
		s := NewIDSet("a", "b", "a")
		assert.Equal(t, 2, s.Len())
		assert.True(t, s.Has("a"))
		assert.True(t, s.Has("b"))
		assert.False(t, s.Has("c"))
	})

	t.Run("nil set is readable", func(t *testing.T) {
		var s IDSet
		assert.False(t, s.Has("a"))
		assert.Equal(t, 0, s.Len())
		assert.Empty(t, s.Sorted())
		assert.Equal(t, 0, s.Clone().Len())
	})

	t.Run("Intersect", func(t *testing.T) {
		a := NewIDSet("x", "y", "z")
		b := NewIDSet("y", "z", "w")

		assert.Equal(t, []string{"y", "z"}, a.Intersect(b).Sorted())
		assert.Equal(t, []string{"y", "z"}, b.Intersect(a).Sorted())
		assert.Equal(t, 0, a.Intersect(NewIDSet()).Len())
	})

	t.Run("Union", func(t *testing.T) {
		a := NewIDSet("x")
		b := NewIDSet("y")

		assert.Equal(t, []string{"x", "y"}, a.Union(b).Sorted())
	})

	t.Run("Equal", func(t *testing.T) {
		assert.True(t, NewIDSet("a", "b").Equal(NewIDSet("b", "a")))
		assert.False(t, NewIDSet("a").Equal(NewIDSet("a", "b")))
		assert.False(t, NewIDSet("a").Equal(NewIDSet("b")))
		assert.True(t, NewIDSet().Equal(IDSet{}))
	})

	t.Run("Clone is independent", func(t *testing.T) {
		a := NewIDSet("x")
		b := a.Clone()
		b.Add("y")

		assert.Equal(t, 1, a.Len())
		assert.Equal(t, 2, b.Len())
	})

	t.Run("Sorted never returns nil", func(t *testing.T) {
		assert.NotNil(t, NewIDSet().Sorted())
	})
}

func TestIDSetJSON(t *testing.T) {
	t.Run("marshals as sorted array", func(t *testing.T) {
		data, err := json.Marshal(NewIDSet("c", "a", "b"))
		require.NoError(t, err)
		assert.JSONEq(t, `["a","b","c"]`, string(data))
	})

	t.Run("empty set marshals as empty array", func(t *testing.T) {
		data, err := json.Marshal(NewIDSet())
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(data))
	})

	t.Run("unmarshals from array", func(t *testing.T) {
		var s IDSet
		require.NoError(t, json.Unmarshal([]byte(`["a","b"]`), &s))
		assert.True(t, s.Equal(NewIDSet("a", "b")))
	})
}
