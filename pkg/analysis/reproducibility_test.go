/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: reproducibility_test.go
Description: Tests for the determinism harness. Covers agreement of repeated
runs on word and character corpora and error propagation from failing runs.
*/

package analysis_test

import (
	"context"
	"strings"
	"testing"

	"github.com/kleascm/slg-learner/pkg/analysis"
	"github.com/kleascm/slg-learner/pkg/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func harnessConfig() *interfaces.LearnerConfig {
	return &interfaces.LearnerConfig{
		InputPath:    "unused",
		Granularity:  interfaces.GranularityWord,
		Segmentation: interfaces.SegmentationLine,
		Lengths:      interfaces.LengthPolicy{MinLength: 1},
		PrintOnly:    true,
	}
}

// TestVerifyReproducible tests that repeated runs on the same corpus
// are reported identical
func TestVerifyReproducible(t *testing.T) {
	var sentences []interfaces.Sentence
	for i, text := range []string{"the dog runs", "the cat runs", "the dog sleeps"} {
		sentences = append(sentences, interfaces.Sentence{Index: i, Tokens: strings.Fields(text)})
	}

	harness := analysis.NewReproducibilityHarness(harnessConfig(), nil)
	result, err := harness.Verify(context.Background(), sentences)
	require.NoError(t, err)

	assert.True(t, result.Reproducible)
	assert.Equal(t, 2, result.Runs)
	assert.Empty(t, result.Mismatches)
}

// TestVerifyCharCorpus tests determinism on a character-granularity toy
// grammar
func TestVerifyCharCorpus(t *testing.T) {
	config := harnessConfig()
	config.Granularity = interfaces.GranularityChar

	var sentences []interfaces.Sentence
	for i, text := range []string{"abcba", "abbcbba", "aacaa"} {
		var tokens []string
		for _, r := range text {
			tokens = append(tokens, string(r))
		}
		sentences = append(sentences, interfaces.Sentence{Index: i, Tokens: tokens})
	}

	harness := analysis.NewReproducibilityHarness(config, nil)
	result, err := harness.Verify(context.Background(), sentences)
	require.NoError(t, err)
	assert.True(t, result.Reproducible)
}

// TestVerifyPropagatesRunFailure tests that a failing pipeline run
// surfaces as an error, not a mismatch
func TestVerifyPropagatesRunFailure(t *testing.T) {
	harness := analysis.NewReproducibilityHarness(harnessConfig(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := harness.Verify(ctx, []interfaces.Sentence{{Index: 0, Tokens: []string{"a", "b"}}})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
