/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report_test.go
Description: Tests for the textual report writers and the HTML summary
generator. Covers file naming, graph and grammar report contents, the
degenerate warning, and print mode.
*/

package reporting_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kleascm/slg-learner/pkg/core"
	"github.com/kleascm/slg-learner/pkg/interfaces"
	"github.com/kleascm/slg-learner/pkg/reporting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runPipeline produces a result for reporting tests
func runPipeline(t *testing.T, texts ...string) *core.Result {
	t.Helper()

	var sentences []interfaces.Sentence
	for i, text := range texts {
		sentences = append(sentences, interfaces.Sentence{Index: i, Tokens: strings.Fields(text)})
	}

	config := &interfaces.LearnerConfig{
		InputPath:    "unused",
		Granularity:  interfaces.GranularityWord,
		Segmentation: interfaces.SegmentationLine,
		Lengths:      interfaces.LengthPolicy{MinLength: 1},
		PrintOnly:    true,
	}
	pipeline, err := core.NewPipelineFromSentences(config, sentences, nil)
	require.NoError(t, err)

	result, err := pipeline.Run(context.Background())
	require.NoError(t, err)
	return result
}

// TestReporterWritesFiles tests report file creation and naming
func TestReporterWritesFiles(t *testing.T) {
	result := runPipeline(t, "the dog runs", "the cat runs")
	dir := t.TempDir()

	reporter := reporting.NewReporter(dir, false, nil)
	paths, err := reporter.Write(result)
	require.NoError(t, err)

	require.Len(t, paths, 2)
	assert.Contains(t, filepath.Base(paths[0]), "SLG_Learner_GRAPH_")
	assert.Contains(t, filepath.Base(paths[1]), "SLG_Learner_CFG_")
	for _, path := range paths {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

// TestGraphReportContents tests vertices and edges in the graph report
func TestGraphReportContents(t *testing.T) {
	result := runPipeline(t, "the dog runs", "the cat runs")
	dir := t.TempDir()

	reporter := reporting.NewReporter(dir, false, nil)
	paths, err := reporter.Write(result)
	require.NoError(t, err)

	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	report := string(data)

	assert.Contains(t, report, result.RunID)
	assert.Contains(t, report, "dog")
	assert.Contains(t, report, "cat")
	assert.Contains(t, report, "via")
	assert.NotContains(t, report, "WARNING")
}

// TestGrammarReportContents tests classes and rules in the grammar report
func TestGrammarReportContents(t *testing.T) {
	result := runPipeline(t, "the dog runs", "the cat runs", "the dog sleeps")
	dir := t.TempDir()

	reporter := reporting.NewReporter(dir, false, nil)
	paths, err := reporter.Write(result)
	require.NoError(t, err)

	data, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	report := string(data)

	assert.Contains(t, report, "Congruence Classes")
	assert.Contains(t, report, "Alphabet")
	assert.Contains(t, report, "Starting Nodes")
	assert.Contains(t, report, "productive")

	// Unit rule for the animal class
	animalClass := result.Partition.ClassOf("dog")
	assert.Contains(t, report, animalClass+" --> dog")
	assert.Contains(t, report, animalClass+" --> cat")

	// Binary rule for the tail class
	tailClass := result.Partition.ClassOf("dog runs")
	verbClass := result.Partition.ClassOf("runs")
	assert.Contains(t, report, tailClass+" --> "+animalClass+" + "+verbClass)
}

// TestDegenerateWarning tests the degenerate banner in the graph report
func TestDegenerateWarning(t *testing.T) {
	result := runPipeline(t, "a b c")
	require.True(t, result.Degenerate)

	reporter := reporting.NewReporter(t.TempDir(), false, nil)
	paths, err := reporter.Write(result)
	require.NoError(t, err)

	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "WARNING")
}

// TestPrintMode tests that print mode writes no files
func TestPrintMode(t *testing.T) {
	result := runPipeline(t, "the dog runs", "the cat runs")
	dir := t.TempDir()

	reporter := reporting.NewReporter(dir, true, nil)
	paths, err := reporter.Write(result)
	require.NoError(t, err)
	assert.Empty(t, paths)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// TestSummaryGeneration tests the HTML summary
func TestSummaryGeneration(t *testing.T) {
	result := runPipeline(t, "the dog runs", "the cat runs")
	dir := t.TempDir()

	generator, err := reporting.NewSummaryGenerator(dir, nil)
	require.NoError(t, err)

	path, err := generator.Generate(result)
	require.NoError(t, err)
	assert.Contains(t, filepath.Base(path), "slg_summary_")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	page := string(data)
	assert.Contains(t, page, "<html")
	assert.Contains(t, page, result.RunID)
	assert.Contains(t, page, "dog")
}
