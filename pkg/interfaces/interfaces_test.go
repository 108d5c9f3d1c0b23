/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: interfaces_test.go
Description: Tests for the shared learner types. Covers context construction with
boundary markers, context-set deduplication, length policy validation, run
configuration validation, and the error taxonomy sentinels.
*/

package interfaces_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/kleascm/slg-learner/pkg/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewContext tests boundary marker placement in contexts
func TestNewContext(t *testing.T) {
	// Internal occurrence: both fragments non-empty
	ctx := interfaces.NewContext([]string{"the"}, []string{"runs", "fast"})
	assert.Equal(t, interfaces.BoundaryStart+" the", ctx.Left)
	assert.Equal(t, "runs fast "+interfaces.BoundaryEnd, ctx.Right)

	// Sentence-initial occurrence: left fragment is just the marker
	ctx = interfaces.NewContext(nil, []string{"runs"})
	assert.Equal(t, interfaces.BoundaryStart, ctx.Left)
	assert.Equal(t, "runs "+interfaces.BoundaryEnd, ctx.Right)

	// Sentence-final occurrence: right fragment is just the marker
	ctx = interfaces.NewContext([]string{"the", "dog"}, nil)
	assert.Equal(t, interfaces.BoundaryStart+" the dog", ctx.Left)
	assert.Equal(t, interfaces.BoundaryEnd, ctx.Right)
}

// TestContextBoundaryDistinction tests that an edge context differs from
// an internal context over the same tokens
func TestContextBoundaryDistinction(t *testing.T) {
	edge := interfaces.NewContext(nil, []string{"runs"})
	internal := interfaces.NewContext([]string{""}, []string{"runs"})
	assert.NotEqual(t, edge, internal)

	// Comparable: identical fragments compare equal and collapse as map keys
	again := interfaces.NewContext(nil, []string{"runs"})
	assert.Equal(t, edge, again)
	seen := map[interfaces.Context]struct{}{edge: {}, again: {}}
	assert.Len(t, seen, 1)
}

// TestContextString tests the rendered hole form
func TestContextString(t *testing.T) {
	ctx := interfaces.NewContext([]string{"the"}, []string{"runs"})
	assert.Equal(t, interfaces.BoundaryStart+" the _ runs "+interfaces.BoundaryEnd, ctx.String())
}

// TestSentenceText tests the canonical sentence form
func TestSentenceText(t *testing.T) {
	s := interfaces.Sentence{Tokens: []string{"the", "dog", "runs"}}
	assert.Equal(t, "the dog runs", s.Text())
	assert.Equal(t, 3, s.Len())
}

// TestContextSetDeduplication tests that occurrences of the same literal
// share one entry and duplicate contexts collapse
func TestContextSetDeduplication(t *testing.T) {
	set := interfaces.NewContextSet()
	ctxA := interfaces.NewContext([]string{"the"}, []string{"runs"})
	ctxB := interfaces.NewContext([]string{"a"}, []string{"sleeps"})

	set.Add([]string{"dog"}, ctxA)
	set.Add([]string{"dog"}, ctxA) // duplicate occurrence
	set.Add([]string{"dog"}, ctxB)
	set.Add([]string{"cat"}, ctxA)

	require.Equal(t, 2, set.Size())

	dog := set.Entries["dog"]
	require.NotNil(t, dog)
	assert.Equal(t, "dog", dog.Literal)
	assert.Len(t, dog.Contexts, 2)

	cat := set.Entries["cat"]
	require.NotNil(t, cat)
	assert.Len(t, cat.Contexts, 1)
}

// TestContextSetCopiesTokens tests that entries do not alias caller slices
func TestContextSetCopiesTokens(t *testing.T) {
	set := interfaces.NewContextSet()
	tokens := []string{"the", "dog"}
	set.Add(tokens, interfaces.NewContext(nil, nil))

	tokens[0] = "mutated"
	assert.Equal(t, []string{"the", "dog"}, set.Entries["the dog"].Tokens)
}

// TestLengthPolicyValidate tests length policy bounds
func TestLengthPolicyValidate(t *testing.T) {
	tests := []struct {
		name   string
		policy interfaces.LengthPolicy
		ok     bool
	}{
		{"defaults", interfaces.LengthPolicy{MinLength: 1, MaxLength: 0}, true},
		{"bounded", interfaces.LengthPolicy{MinLength: 2, MaxLength: 5}, true},
		{"zero min", interfaces.LengthPolicy{MinLength: 0, MaxLength: 3}, false},
		{"negative min", interfaces.LengthPolicy{MinLength: -1, MaxLength: 0}, false},
		{"negative max", interfaces.LengthPolicy{MinLength: 1, MaxLength: -2}, false},
		{"min above max", interfaces.LengthPolicy{MinLength: 4, MaxLength: 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.ErrorIs(t, err, interfaces.ErrConfiguration)
			}
		})
	}
}

// TestLearnerConfigValidate tests full run configuration validation
func TestLearnerConfigValidate(t *testing.T) {
	valid := func() *interfaces.LearnerConfig {
		return &interfaces.LearnerConfig{
			InputPath:    "corpus.txt",
			OutputDir:    "./out",
			Granularity:  interfaces.GranularityWord,
			Segmentation: interfaces.SegmentationSentence,
			Lengths:      interfaces.LengthPolicy{MinLength: 1},
		}
	}

	assert.NoError(t, valid().Validate())

	// Granularity auto must be resolved before a pipeline is built
	config := valid()
	config.Granularity = interfaces.GranularityAuto
	assert.ErrorIs(t, config.Validate(), interfaces.ErrConfiguration)

	config = valid()
	config.Granularity = "syllable"
	assert.ErrorIs(t, config.Validate(), interfaces.ErrConfiguration)

	config = valid()
	config.Segmentation = "paragraph"
	assert.ErrorIs(t, config.Validate(), interfaces.ErrConfiguration)

	config = valid()
	config.Lengths.MinLength = 0
	assert.ErrorIs(t, config.Validate(), interfaces.ErrConfiguration)

	config = valid()
	config.OutputDir = ""
	assert.ErrorIs(t, config.Validate(), interfaces.ErrConfiguration)

	// Print mode does not need an output directory
	config = valid()
	config.OutputDir = ""
	config.PrintOnly = true
	assert.NoError(t, config.Validate())
}

// TestErrorTaxonomy tests sentinel classification through wrapping
func TestErrorTaxonomy(t *testing.T) {
	input := interfaces.WrapInput("corpus is empty")
	assert.ErrorIs(t, input, interfaces.ErrInput)
	assert.NotErrorIs(t, input, interfaces.ErrConfiguration)
	assert.Contains(t, input.Error(), "corpus is empty")

	config := interfaces.WrapConfiguration("bad granularity")
	assert.ErrorIs(t, config, interfaces.ErrConfiguration)
	assert.NotErrorIs(t, config, interfaces.ErrInput)

	// Classification survives another layer of wrapping
	wrapped := fmt.Errorf("loading corpus: %w", input)
	assert.True(t, errors.Is(wrapped, interfaces.ErrInput))
}
