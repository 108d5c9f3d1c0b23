/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: renderer.go
Description: Substitution graph visualization for the SLG Learner. Renders the
graph as a self-contained HTML page with a force-directed layout, nodes labeled
by substring and colored by congruence class, edges labeled by shared context.
The core pipeline depends only on the Renderer interface, never on a toolkit.
*/

package visualization

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/kleascm/slg-learner/pkg/classes"
	"github.com/kleascm/slg-learner/pkg/graph"
	"github.com/kleascm/slg-learner/pkg/interfaces"
	"github.com/sirupsen/logrus"
)

// HTMLRenderer implements interfaces.Renderer
// Writes the graph JSON payload and an HTML page embedding it
type HTMLRenderer struct {
	graph     *graph.Graph
	partition *classes.Partition
	logger    *logrus.Logger
	templates *template.Template
}

// compile-time interface check
var _ interfaces.Renderer = (*HTMLRenderer)(nil)

// NewHTMLRenderer creates a renderer for the given graph and partition
func NewHTMLRenderer(g *graph.Graph, partition *classes.Partition, logger *logrus.Logger) (*HTMLRenderer, error) {
	if logger == nil {
		logger = logrus.New()
	}
	tmpl, err := template.New("graph").Parse(graphPageTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse graph template: %w", err)
	}
	return &HTMLRenderer{
		graph:     g,
		partition: partition,
		logger:    logger,
		templates: tmpl,
	}, nil
}

// payload is the JSON document embedded into the page: the graph document
// plus the class assignment used for node coloring
type payload struct {
	Graph   *graph.Graph      `json:"graph"`
	Classes map[string]string `json:"classes"` // substring -> class ID
}

// Render writes the JSON and HTML artifacts into outputDir and returns
// their paths
func (r *HTMLRenderer) Render(_ context.Context, outputDir string) ([]string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	assignment := make(map[string]string, r.graph.NodeCount())
	for _, id := range r.graph.NodeIDs() {
		assignment[id] = r.partition.ClassOf(id)
	}

	data, err := json.Marshal(payload{Graph: r.graph, Classes: assignment})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal graph payload: %w", err)
	}

	stamp := r.graph.Meta().GeneratedAt.Format("15_04_05")
	jsonPath := filepath.Join(outputDir, fmt.Sprintf("slg_graph_%s.json", stamp))
	if err := os.WriteFile(jsonPath, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write graph JSON: %w", err)
	}

	htmlPath := filepath.Join(outputDir, fmt.Sprintf("slg_graph_%s.html", stamp))
	file, err := os.Create(htmlPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create graph page: %w", err)
	}
	defer file.Close()

	page := struct {
		RunID   string
		Payload template.JS
	}{
		RunID:   r.graph.Meta().RunID,
		Payload: template.JS(data),
	}
	if err := r.templates.Execute(file, page); err != nil {
		return nil, fmt.Errorf("failed to render graph page: %w", err)
	}

	r.logger.WithFields(logrus.Fields{
		"nodes": r.graph.NodeCount(),
		"edges": r.graph.EdgeCount(),
		"path":  htmlPath,
	}).Info("Visualization rendered")

	return []string{jsonPath, htmlPath}, nil
}

// HTMLPath returns the page path Render would produce inside outputDir
func (r *HTMLRenderer) HTMLPath(outputDir string) string {
	stamp := r.graph.Meta().GeneratedAt.Format("15_04_05")
	return filepath.Join(outputDir, fmt.Sprintf("slg_graph_%s.html", stamp))
}
