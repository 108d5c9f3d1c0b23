/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report.go
Description: Textual report writers for the SLG Learner. Produces the substitution
graph report and the induced grammar report, either as timestamped files in the
output directory or streamed to stdout in print mode.
*/

package reporting

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kleascm/slg-learner/pkg/core"
	"github.com/sirupsen/logrus"
)

// Reporter writes the textual run reports
type Reporter struct {
	outputDir string
	printOnly bool
	stdout    io.Writer
	logger    *logrus.Logger
}

// NewReporter creates a reporter. With printOnly set, reports go to
// stdout instead of files.
func NewReporter(outputDir string, printOnly bool, logger *logrus.Logger) *Reporter {
	if logger == nil {
		logger = logrus.New()
	}
	return &Reporter{
		outputDir: outputDir,
		printOnly: printOnly,
		stdout:    os.Stdout,
		logger:    logger,
	}
}

// Write emits the graph and grammar reports and returns the paths of any
// files written
func (r *Reporter) Write(result *core.Result) ([]string, error) {
	var paths []string

	graphPath, err := r.writeReport("GRAPH", result, r.renderGraphReport)
	if err != nil {
		return nil, err
	}
	if graphPath != "" {
		paths = append(paths, graphPath)
	}

	cfgPath, err := r.writeReport("CFG", result, r.renderGrammarReport)
	if err != nil {
		return nil, err
	}
	if cfgPath != "" {
		paths = append(paths, cfgPath)
	}

	r.logger.WithFields(logrus.Fields{
		"run_id": result.RunID,
		"files":  len(paths),
	}).Info("Reports written")

	return paths, nil
}

// writeReport renders one report section to stdout or a timestamped file
func (r *Reporter) writeReport(kind string, result *core.Result, render func(io.Writer, *core.Result)) (string, error) {
	if r.printOnly {
		render(r.stdout, result)
		return "", nil
	}

	if err := os.MkdirAll(r.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	timestamp := result.StartedAt.Format("15_04_05")
	path := filepath.Join(r.outputDir, fmt.Sprintf("SLG_Learner_%s_%s.txt", kind, timestamp))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	render(file, result)
	return path, nil
}

// renderGraphReport writes the substitution graph report: vertices,
// edges, and the contexts shared by more than one substring
func (r *Reporter) renderGraphReport(w io.Writer, result *core.Result) {
	fmt.Fprintf(w, "#  Substitution Graph (run %s)  #\n\n", result.RunID)

	fmt.Fprintf(w, "Vertices: %d\n\n", result.Graph.NodeCount())
	for _, id := range result.Graph.NodeIDs() {
		fmt.Fprintf(w, "  %s\n", id)
	}

	fmt.Fprintf(w, "\nEdges: %d\n\n", result.Graph.EdgeCount())
	for _, edge := range result.Graph.Edges() {
		fmt.Fprintf(w, "  (%s) <-> (%s)  via  %s\n", edge.Source, edge.Target, edge.SharedContext)
	}

	if result.Degenerate {
		fmt.Fprintf(w, "\nWARNING: no contexts are shared by any two substrings; every class is a singleton.\n")
	}

	fmt.Fprintf(w, "\nSentences: %d   Substrings: %d   Distinct contexts: %d\n",
		result.SentenceCount, result.Substrings, result.DistinctContexts)
}

// renderGrammarReport writes the congruence classes, their induced
// fragments, and the CFG export
func (r *Reporter) renderGrammarReport(w io.Writer, result *core.Result) {
	fmt.Fprintf(w, "#  Induced Grammar (run %s)  #\n", result.RunID)

	fmt.Fprintf(w, "\n[+] Congruence Classes [+]\n\n")
	for _, fragment := range result.Grammar.Fragments {
		status := "productive"
		if !fragment.Productive {
			status = "insufficiently attested"
		}
		fmt.Fprintf(w, "%s  {%s}  (%s)\n", fragment.ClassID, strings.Join(fragment.Members, ", "), status)
		for _, production := range fragment.Productions {
			fmt.Fprintf(w, "    %s\n", production.String())
		}
	}

	cfg := result.Grammar.CFG
	fmt.Fprintf(w, "\n[+] Alphabet [+]\n\n")
	for _, literal := range cfg.Alphabet {
		fmt.Fprintf(w, "  %s\n", literal)
	}

	fmt.Fprintf(w, "\n[+] Non-Terminal Nodes [+]\n\n")
	for _, nt := range cfg.NonTerminals {
		fmt.Fprintf(w, "  %s\n", nt)
	}

	fmt.Fprintf(w, "\n[+] Starting Nodes [+]\n\n")
	for _, start := range cfg.Starts {
		fmt.Fprintf(w, "  %s\n", start)
	}

	fmt.Fprintf(w, "\n[+] Rules [+]\n\n")
	for _, nt := range cfg.NonTerminals {
		for _, terminal := range cfg.UnitRules[nt] {
			fmt.Fprintf(w, "  %s --> %s\n", nt, terminal)
		}
		for _, rule := range cfg.SplitRules[nt] {
			fmt.Fprintf(w, "  %s --> %s + %s\n", nt, rule.Left, rule.Right)
		}
	}

	fmt.Fprintf(w, "\nGenerated at %s in %s\n", time.Now().Format(time.RFC3339), result.Duration)
}
