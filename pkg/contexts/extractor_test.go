/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: extractor_test.go
Description: Tests for context extraction. Covers span enumeration, exclusion of
whole-sentence spans, length policy bounds, boundary marker placement, and
cross-sentence accumulation of contexts for repeated substrings.
*/

package contexts_test

import (
	"testing"

	"github.com/kleascm/slg-learner/pkg/contexts"
	"github.com/kleascm/slg-learner/pkg/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sentence(index int, tokens ...string) interfaces.Sentence {
	return interfaces.Sentence{Index: index, Tokens: tokens}
}

// TestExtractEnumeratesSpans tests full span enumeration on one sentence
func TestExtractEnumeratesSpans(t *testing.T) {
	extractor := contexts.NewExtractor(interfaces.LengthPolicy{MinLength: 1}, nil)
	set, err := extractor.Extract([]interfaces.Sentence{sentence(0, "a", "b", "c")})
	require.NoError(t, err)

	// Proper spans of "a b c": a, b, c, a b, b c. The whole sentence is
	// never a span.
	require.Equal(t, 5, set.Size())
	for _, literal := range []string{"a", "b", "c", "a b", "b c"} {
		assert.Contains(t, set.Entries, literal)
	}
	assert.NotContains(t, set.Entries, "a b c")
}

// TestExtractContexts tests the recorded context of an internal span
func TestExtractContexts(t *testing.T) {
	extractor := contexts.NewExtractor(interfaces.LengthPolicy{MinLength: 1}, nil)
	set, err := extractor.Extract([]interfaces.Sentence{sentence(0, "the", "dog", "runs")})
	require.NoError(t, err)

	dog := set.Entries["dog"]
	require.NotNil(t, dog)
	require.Len(t, dog.Contexts, 1)

	want := interfaces.NewContext([]string{"the"}, []string{"runs"})
	_, ok := dog.Contexts[want]
	assert.True(t, ok)

	// Edge spans carry bare boundary markers
	the := set.Entries["the"]
	require.NotNil(t, the)
	_, ok = the.Contexts[interfaces.NewContext(nil, []string{"dog", "runs"})]
	assert.True(t, ok)
}

// TestExtractSharedContext tests that the same slot in two sentences
// produces an identical context value
func TestExtractSharedContext(t *testing.T) {
	extractor := contexts.NewExtractor(interfaces.LengthPolicy{MinLength: 1}, nil)
	set, err := extractor.Extract([]interfaces.Sentence{
		sentence(0, "the", "dog", "runs"),
		sentence(1, "the", "cat", "runs"),
	})
	require.NoError(t, err)

	shared := interfaces.NewContext([]string{"the"}, []string{"runs"})
	_, dogHas := set.Entries["dog"].Contexts[shared]
	_, catHas := set.Entries["cat"].Contexts[shared]
	assert.True(t, dogHas)
	assert.True(t, catHas)
}

// TestExtractRepeatedSubstring tests that every occurrence of a literal
// accumulates into one entry
func TestExtractRepeatedSubstring(t *testing.T) {
	extractor := contexts.NewExtractor(interfaces.LengthPolicy{MinLength: 1}, nil)
	set, err := extractor.Extract([]interfaces.Sentence{sentence(0, "a", "b", "a")})
	require.NoError(t, err)

	a := set.Entries["a"]
	require.NotNil(t, a)
	// Two occurrences with distinct contexts
	assert.Len(t, a.Contexts, 2)
}

// TestExtractLengthBounds tests min and max length filtering
func TestExtractLengthBounds(t *testing.T) {
	tokens := []interfaces.Sentence{sentence(0, "a", "b", "c", "d")}

	// Only spans of exactly two tokens
	extractor := contexts.NewExtractor(interfaces.LengthPolicy{MinLength: 2, MaxLength: 2}, nil)
	set, err := extractor.Extract(tokens)
	require.NoError(t, err)

	require.Equal(t, 3, set.Size())
	for _, literal := range []string{"a b", "b c", "c d"} {
		assert.Contains(t, set.Entries, literal)
	}
}

// TestExtractShortSentences tests sentences below the minimum length
func TestExtractShortSentences(t *testing.T) {
	extractor := contexts.NewExtractor(interfaces.LengthPolicy{MinLength: 1}, nil)

	// A one-token sentence has no proper span at all
	set, err := extractor.Extract([]interfaces.Sentence{sentence(0, "a")})
	require.NoError(t, err)
	assert.Equal(t, 0, set.Size())

	// Below min-length sentences contribute nothing
	extractor = contexts.NewExtractor(interfaces.LengthPolicy{MinLength: 3}, nil)
	set, err = extractor.Extract([]interfaces.Sentence{sentence(0, "a", "b", "c")})
	require.NoError(t, err)
	assert.Equal(t, 0, set.Size())
}

// TestExtractEmptyInput tests zero sentences
func TestExtractEmptyInput(t *testing.T) {
	extractor := contexts.NewExtractor(interfaces.LengthPolicy{MinLength: 1}, nil)
	set, err := extractor.Extract(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, set.Size())
}
