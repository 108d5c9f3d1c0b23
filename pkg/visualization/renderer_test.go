/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: renderer_test.go
Description: Tests for the HTML graph renderer. Covers artifact creation, the
embedded JSON payload with class assignments, and the page path helper.
*/

package visualization_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kleascm/slg-learner/pkg/classes"
	"github.com/kleascm/slg-learner/pkg/graph"
	"github.com/kleascm/slg-learner/pkg/interfaces"
	"github.com/kleascm/slg-learner/pkg/visualization"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildArtifacts produces a small graph and partition for rendering
func buildArtifacts(t *testing.T) (*graph.Graph, *classes.Partition) {
	t.Helper()
	set := interfaces.NewContextSet()
	shared := interfaces.NewContext([]string{"the"}, []string{"runs"})
	set.Add([]string{"dog"}, shared)
	set.Add([]string{"cat"}, shared)
	set.Add([]string{"the"}, interfaces.NewContext(nil, []string{"dog", "runs"}))

	g := graph.NewBuilder(nil).Build(set, interfaces.RunInfo{RunID: "render-test"})
	return g, classes.NewResolver(nil).Resolve(g)
}

// TestRenderArtifacts tests JSON and HTML output
func TestRenderArtifacts(t *testing.T) {
	g, partition := buildArtifacts(t)
	dir := t.TempDir()

	renderer, err := visualization.NewHTMLRenderer(g, partition, nil)
	require.NoError(t, err)

	paths, err := renderer.Render(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	assert.True(t, strings.HasSuffix(paths[0], ".json"))
	assert.True(t, strings.HasSuffix(paths[1], ".html"))

	// The JSON payload carries the graph document and the class
	// assignment used for node coloring
	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)

	var doc struct {
		Graph struct {
			Nodes []struct {
				ID string `json:"id"`
			} `json:"nodes"`
			Links []json.RawMessage `json:"links"`
		} `json:"graph"`
		Classes map[string]string `json:"classes"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Len(t, doc.Graph.Nodes, 3)
	assert.Len(t, doc.Graph.Links, 1)
	assert.Equal(t, doc.Classes["cat"], doc.Classes["dog"])
	assert.NotEqual(t, doc.Classes["the"], doc.Classes["dog"])

	// The page embeds the payload and identifies the run
	page, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.Contains(t, string(page), "render-test")
	assert.Contains(t, string(page), "d3")
}

// TestHTMLPath tests that the helper matches the rendered page path
func TestHTMLPath(t *testing.T) {
	g, partition := buildArtifacts(t)
	dir := t.TempDir()

	renderer, err := visualization.NewHTMLRenderer(g, partition, nil)
	require.NoError(t, err)

	paths, err := renderer.Render(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, renderer.HTMLPath(dir), paths[1])
	assert.Equal(t, filepath.Dir(paths[1]), dir)
}
