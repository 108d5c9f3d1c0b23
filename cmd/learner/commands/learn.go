/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: learn.go
Description: Learn command implementation for the SLG Learner. Handles the main
induction pipeline with comprehensive configuration, report generation, and
optional graph visualization.
*/

package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kleascm/slg-learner/pkg/analysis"
	"github.com/kleascm/slg-learner/pkg/core"
	"github.com/kleascm/slg-learner/pkg/interfaces"
	"github.com/kleascm/slg-learner/pkg/reporting"
	"github.com/kleascm/slg-learner/pkg/utils"
	"github.com/kleascm/slg-learner/pkg/visualization"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunLearn executes the main induction pipeline
func RunLearn(cmd *cobra.Command, args []string) error {
	fmt.Println("📖 SLG Learner - Starting Induction Run")
	fmt.Println("========================================")
	fmt.Println()

	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Setup the file-backed logger for the run
	learnerLogger, err := SetupLearnerLogger()
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer learnerLogger.Close()
	logger := learnerLogger.GetLogger()

	// Create learner configuration, resolving granularity "auto" from a
	// corpus sample before the pipeline sees it
	config := createLearnerConfig()
	if err := resolveAutoFormat(config, logger); err != nil {
		return err
	}

	// Create pipeline; configuration problems surface here, before any
	// corpus work begins
	pipeline, err := core.NewPipeline(config, logger)
	if err != nil {
		return err
	}

	// Set up signal handling so an interrupt aborts the run cleanly
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n🛑 Received shutdown signal, aborting run...")
		cancel()
	}()

	// Run the pipeline
	result, err := pipeline.Run(ctx)
	if err != nil {
		return err
	}
	learnerLogger.LogClasses(result.Classes, result.ProductiveClasses, result.LargestClassSize(), nil)

	// Write textual reports
	reporter := reporting.NewReporter(config.OutputDir, config.PrintOnly, logger)
	paths, err := reporter.Write(result)
	if err != nil {
		return fmt.Errorf("failed to write reports: %w", err)
	}

	// Write the HTML summary and run JSON unless printing to stdout
	if !config.PrintOnly {
		summary, err := reporting.NewSummaryGenerator(config.OutputDir, logger)
		if err != nil {
			return err
		}
		summaryPath, err := summary.Generate(result)
		if err != nil {
			return fmt.Errorf("failed to generate summary: %w", err)
		}
		paths = append(paths, summaryPath)

		runPath, err := utils.WriteRunSummary(config.OutputDir, cmd.Root().Version, result)
		if err != nil {
			return fmt.Errorf("failed to write run summary: %w", err)
		}
		paths = append(paths, runPath)
	}

	// Optionally render the substitution graph
	if config.Visualize {
		rendered, err := renderGraph(ctx, config, result, logger)
		if err != nil {
			return err
		}
		paths = append(paths, rendered...)
	}

	// Optionally re-run the pipeline and check the result is deterministic
	if viper.GetBool("verify") {
		if err := verifyReproducibility(ctx, config, result, logger); err != nil {
			return err
		}
	}

	learnerLogger.LogRunSummary(result.SentenceCount, result.Substrings, result.Edges, result.Classes, nil)
	printFinalStats(result, paths)
	return nil
}

// verifyReproducibility runs the induction twice more on the loaded
// sentences and fails the command if the partitions diverge
func verifyReproducibility(ctx context.Context, config *interfaces.LearnerConfig, result *core.Result, logger *logrus.Logger) error {
	fmt.Println()
	fmt.Println("🔁 Verifying determinism...")

	harness := analysis.NewReproducibilityHarness(config, logger)
	verification, err := harness.Verify(ctx, result.Sentences)
	if err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}

	if !verification.Reproducible {
		fmt.Println("❌ Runs diverged:")
		for _, mismatch := range verification.Mismatches {
			fmt.Printf("  %s\n", mismatch)
		}
		return fmt.Errorf("induction is not deterministic: %d mismatches", len(verification.Mismatches))
	}

	fmt.Printf("✅ %d runs produced identical partitions (%s)\n", verification.Runs, verification.Duration)
	return nil
}

// renderGraph renders the substitution graph, capturing a PNG unless
// lite mode is active
func renderGraph(ctx context.Context, config *interfaces.LearnerConfig, result *core.Result, logger *logrus.Logger) ([]string, error) {
	html, err := visualization.NewHTMLRenderer(result.Graph, result.Partition, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	var renderer interfaces.Renderer = html
	if !config.Lite {
		renderer = visualization.NewScreenshotRenderer(html, logger)
	}

	paths, err := renderer.Render(ctx, config.OutputDir)
	if err != nil {
		return paths, fmt.Errorf("failed to render graph: %w", err)
	}
	return paths, nil
}

// printFinalStats prints the run summary to the console
func printFinalStats(result *core.Result, paths []string) {
	fmt.Println()
	fmt.Println("📊 Induction Results")
	fmt.Println("====================")
	fmt.Printf("Run ID:             %s\n", result.RunID)
	fmt.Printf("Sentences:          %d\n", result.SentenceCount)
	fmt.Printf("Distinct substrings: %d\n", result.Substrings)
	fmt.Printf("Distinct contexts:  %d\n", result.DistinctContexts)
	fmt.Printf("Graph edges:        %d\n", result.Edges)
	fmt.Printf("Congruence classes: %d (%d productive)\n", result.Classes, result.ProductiveClasses)
	fmt.Printf("Duration:           %s\n", result.Duration)

	if result.Degenerate {
		fmt.Println()
		fmt.Println("⚠️  Degenerate result: no two substrings share a context.")
		fmt.Println("   The grammar contains only singleton, unproductive classes.")
	}

	if len(paths) > 0 {
		fmt.Println()
		fmt.Println("Artifacts:")
		for _, path := range paths {
			fmt.Printf("  %s\n", path)
		}
	}

	fmt.Println()
	fmt.Println("✨ Induction run completed!")
}
