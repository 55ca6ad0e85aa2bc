package tagstr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuickCheck(t *testing.T) {
	chunks := Lit("a ", "b")
	loose := &LooseChunks{Items: []any{"a ", "b"}, Raw: []any{"a ", "b"}}

	assert.True(t, QuickCheck(chunks, 2))
	assert.True(t, QuickCheck(loose, 2))
	assert.False(t, QuickCheck(chunks, 3), "argument count must match chunk count")
	assert.False(t, QuickCheck((*Chunks)(nil), 0))
	assert.False(t, QuickCheck("not a sequence", 1))
	assert.False(t, QuickCheck(nil, 0))
	assert.False(t, QuickCheck(&LooseChunks{Items: []any{"a"}, Raw: []any{}}, 1),
		"raw must parallel the cooked sequence")
}

func TestStrictCheck(t *testing.T) {
	assert.True(t, StrictCheck(Lit("a"), 1))
	assert.True(t, StrictCheck(&LooseChunks{Items: []any{"a"}, Raw: []any{"a"}}, 1))
	assert.False(t, StrictCheck(&LooseChunks{Items: []any{42}, Raw: []any{"a"}}, 1))
	assert.False(t, StrictCheck(&LooseChunks{Items: []any{"a"}, Raw: []any{nil}}, 1))
	assert.False(t, StrictCheck("text but not a sequence", 1))
}

func TestFromLoose(t *testing.T) {
	t.Run("valid sequence", func(t *testing.T) {
		chunks, err := FromLoose(&LooseChunks{
			Items: []any{"a ", "b"},
			Raw:   []any{"a ", "b"},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"a ", "b"}, chunks.Cooked)
		assert.Equal(t, []string{"a ", "b"}, chunks.Raw)
		assert.False(t, chunks.CacheEligible())
	})

	t.Run("nil", func(t *testing.T) {
		_, err := FromLoose(nil)
		assert.True(t, IsInvalidInput(err))
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := FromLoose(&LooseChunks{Items: []any{"a", "b"}, Raw: []any{"a"}})
		assert.True(t, IsInvalidInput(err))
	})

	t.Run("non-text element", func(t *testing.T) {
		_, err := FromLoose(&LooseChunks{Items: []any{"a", 7}, Raw: []any{"a", "7"}})
		assert.True(t, IsInvalidInput(err))
		assert.Contains(t, err.Error(), ErrMsgNonTextElement)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := FromLoose(&LooseChunks{})
		assert.True(t, IsInvalidInput(err))
	})
}
