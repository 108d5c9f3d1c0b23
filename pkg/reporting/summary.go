/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: summary.go
Description: HTML summary report generator for the SLG Learner. Renders run
statistics and per-class tables into a self-contained page in the output
directory.
*/

package reporting

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/kleascm/slg-learner/pkg/core"
	"github.com/kleascm/slg-learner/pkg/grammar"
	"github.com/sirupsen/logrus"
)

// SummaryGenerator creates HTML summary reports
type SummaryGenerator struct {
	outputDir string
	logger    *logrus.Logger
	templates *template.Template
}

// SummaryData contains all data for summary generation
type SummaryData struct {
	Title       string             `json:"title"`
	RunID       string             `json:"run_id"`
	GeneratedAt time.Time          `json:"generated_at"`
	Result      *core.Result       `json:"result"`
	Fragments   []grammar.Fragment `json:"fragments"`
}

// NewSummaryGenerator creates a summary generator for the output directory
func NewSummaryGenerator(outputDir string, logger *logrus.Logger) (*SummaryGenerator, error) {
	if logger == nil {
		logger = logrus.New()
	}
	tmpl, err := template.New("summary").Parse(summaryTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse summary template: %w", err)
	}
	return &SummaryGenerator{
		outputDir: outputDir,
		logger:    logger,
		templates: tmpl,
	}, nil
}

// Generate writes the HTML summary and returns its path
func (g *SummaryGenerator) Generate(result *core.Result) (string, error) {
	if err := os.MkdirAll(g.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	data := &SummaryData{
		Title:       "Substitutable Grammar Induction",
		RunID:       result.RunID,
		GeneratedAt: time.Now(),
		Result:      result,
		Fragments:   result.Grammar.Fragments,
	}

	path := filepath.Join(g.outputDir, fmt.Sprintf("slg_summary_%s.html", result.StartedAt.Format("15_04_05")))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create summary file: %w", err)
	}
	defer file.Close()

	if err := g.templates.Execute(file, data); err != nil {
		return "", fmt.Errorf("failed to render summary: %w", err)
	}

	g.logger.WithFields(logrus.Fields{
		"run_id": result.RunID,
		"path":   path,
	}).Info("Report summary generated")

	return path, nil
}
