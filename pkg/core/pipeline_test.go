/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: pipeline_test.go
Description: End-to-end tests for the learning pipeline. Covers the full
stage sequence on file corpora and injected sentences, the minimal-pair and
singleton scenarios, degenerate result flagging, input and configuration
errors, and cancellation.
*/

package core_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kleascm/slg-learner/pkg/core"
	"github.com/kleascm/slg-learner/pkg/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testConfig returns a valid print-mode configuration for word/line corpora
func testConfig() *interfaces.LearnerConfig {
	return &interfaces.LearnerConfig{
		InputPath:    "unused",
		Granularity:  interfaces.GranularityWord,
		Segmentation: interfaces.SegmentationLine,
		Lengths:      interfaces.LengthPolicy{MinLength: 1},
		PrintOnly:    true,
	}
}

// wordSentences tokenizes the given texts at word granularity
func wordSentences(texts ...string) []interfaces.Sentence {
	var sentences []interfaces.Sentence
	for i, text := range texts {
		sentences = append(sentences, interfaces.Sentence{Index: i, Tokens: strings.Fields(text)})
	}
	return sentences
}

// TestPipelineMinimalPair tests the canonical substitutable corpus: two
// sentences differing in one slot put the differing tokens in one class
func TestPipelineMinimalPair(t *testing.T) {
	pipeline, err := core.NewPipelineFromSentences(testConfig(), wordSentences("the dog runs", "the cat runs"), nil)
	require.NoError(t, err)

	result, err := pipeline.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.SentenceCount)
	assert.False(t, result.Degenerate)
	assert.Greater(t, result.Edges, 0)
	assert.True(t, result.Graph.HasEdge("cat", "dog"))
	assert.Equal(t, result.Partition.ClassOf("cat"), result.Partition.ClassOf("dog"))
	assert.NotEqual(t, result.Partition.ClassOf("the"), result.Partition.ClassOf("dog"))
	assert.NotEmpty(t, result.RunID)
	assert.Len(t, result.Grammar.Fragments, result.Classes)
}

// TestPipelineSingletons tests a corpus in which nothing shares a
// context: every class is a singleton and the result is degenerate
func TestPipelineSingletons(t *testing.T) {
	pipeline, err := core.NewPipelineFromSentences(testConfig(), wordSentences("a b c"), nil)
	require.NoError(t, err)

	result, err := pipeline.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, result.Degenerate)
	assert.Equal(t, 0, result.Edges)
	assert.Equal(t, result.Substrings, result.Classes)
	assert.Equal(t, 0, result.ProductiveClasses)
	assert.Equal(t, 1, result.LargestClassSize())
}

// TestPipelineSingleToken tests the smallest possible corpus: one
// one-token sentence yields no spans at all
func TestPipelineSingleToken(t *testing.T) {
	pipeline, err := core.NewPipelineFromSentences(testConfig(), wordSentences("hello"), nil)
	require.NoError(t, err)

	result, err := pipeline.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, result.Degenerate)
	assert.Equal(t, 0, result.Substrings)
	assert.Equal(t, 0, result.Classes)
	assert.Equal(t, 0, result.LargestClassSize())
}

// TestPipelineFromFile tests the full pipeline including corpus loading
func TestPipelineFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt")
	require.NoError(t, os.WriteFile(path, []byte("the dog runs\nthe cat runs\n"), 0644))

	config := testConfig()
	config.InputPath = path

	pipeline, err := core.NewPipeline(config, nil)
	require.NoError(t, err)

	result, err := pipeline.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.SentenceCount)
	assert.Equal(t, result.Partition.ClassOf("cat"), result.Partition.ClassOf("dog"))
	require.Len(t, result.Sentences, 2)
	assert.Equal(t, path, result.Sentences[0].Source)
}

// TestPipelineMissingCorpus tests the input error classification
func TestPipelineMissingCorpus(t *testing.T) {
	config := testConfig()
	config.InputPath = filepath.Join(t.TempDir(), "missing.txt")

	pipeline, err := core.NewPipeline(config, nil)
	require.NoError(t, err)

	_, err = pipeline.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, interfaces.ErrInput)
}

// TestPipelineInvalidConfig tests that configuration errors surface
// before any corpus work
func TestPipelineInvalidConfig(t *testing.T) {
	config := testConfig()
	config.Lengths.MinLength = 0

	_, err := core.NewPipeline(config, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, interfaces.ErrConfiguration)

	config = testConfig()
	config.Granularity = "syllable"
	_, err = core.NewPipeline(config, nil)
	assert.ErrorIs(t, err, interfaces.ErrConfiguration)
}

// TestPipelineCancellation tests that a cancelled context aborts the run
func TestPipelineCancellation(t *testing.T) {
	pipeline, err := core.NewPipelineFromSentences(testConfig(), wordSentences("the dog runs"), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = pipeline.Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestPipelineCharGranularity tests a toy grammar at character
// granularity
func TestPipelineCharGranularity(t *testing.T) {
	config := testConfig()
	config.Granularity = interfaces.GranularityChar

	var sentences []interfaces.Sentence
	for i, text := range []string{"abcba", "abbcbba"} {
		var tokens []string
		for _, r := range text {
			tokens = append(tokens, string(r))
		}
		sentences = append(sentences, interfaces.Sentence{Index: i, Tokens: tokens})
	}

	pipeline, err := core.NewPipelineFromSentences(config, sentences, nil)
	require.NoError(t, err)

	result, err := pipeline.Run(context.Background())
	require.NoError(t, err)

	assert.False(t, result.Degenerate)
	// "bcb" and "bbcbb" both occur between a and a
	assert.Equal(t, result.Partition.ClassOf("b c b"), result.Partition.ClassOf("b b c b b"))
}
