/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Main command-line interface for the SLG Learner. Provides comprehensive
command-line options, configuration management, and beautiful user interface for
controlling grammar induction runs with advanced logging capabilities.
*/

package main

import (
	"fmt"
	"os"

	"github.com/kleascm/slg-learner/cmd/learner/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Configuration
	configFile string
	logLevel   string
	jsonLogs   bool

	// Corpus configuration
	inputPath    string
	outputDir    string
	granularity  string
	segmentation string

	// Length policy configuration
	minLength int
	maxLength int

	// Visualization configuration
	visualize bool
	lite      bool

	// Output configuration
	printOnly bool
	verify    bool

	// Logging configuration
	logDir      string
	logFormat   string
	logMaxFiles int
	logMaxSize  int64
	logCompress bool
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "slg-learner",
		Short: "SLG Learner - Substitutable context-free grammar induction",
		Long: `SLG Learner induces a substitutable context-free grammar fragment from a body
of natural-language sentences. It extracts the distributional contexts of every
substring, connects substrings that share a context into a substitution graph,
partitions the graph into congruence classes, and derives grammar production
fragments from the resulting classes.`,
		Version: "1.0.0",
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Use JSON log format")

	// Add logging-specific flags
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "./logs", "Log output directory")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "custom", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().IntVar(&logMaxFiles, "log-max-files", 10, "Maximum number of log files to keep")
	rootCmd.PersistentFlags().Int64Var(&logMaxSize, "log-max-size", 100*1024*1024, "Maximum log file size in bytes")
	rootCmd.PersistentFlags().BoolVar(&logCompress, "log-compress", false, "Compress rotated log files")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("json_logs", rootCmd.PersistentFlags().Lookup("json-logs"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_max_files", rootCmd.PersistentFlags().Lookup("log-max-files"))
	viper.BindPFlag("log_max_size", rootCmd.PersistentFlags().Lookup("log-max-size"))
	viper.BindPFlag("log_compress", rootCmd.PersistentFlags().Lookup("log-compress"))

	// Add learn command
	learnCmd := &cobra.Command{
		Use:   "learn",
		Short: "Induce a grammar from a corpus",
		Long: `Run the full induction pipeline on a corpus: load and tokenize the sentences,
extract substring contexts, build the substitution graph, resolve congruence
classes, and induce the grammar. Reports are written to the output directory
(or stdout with --print), and the graph can optionally be rendered.`,
		RunE: commands.RunLearn,
	}

	// Add learn command flags
	learnCmd.Flags().StringVar(&inputPath, "input", "", "Corpus file or directory (required)")
	learnCmd.Flags().StringVar(&outputDir, "output", "./slg_output", "Directory for induction output")
	learnCmd.Flags().StringVar(&granularity, "granularity", "word", "Tokenization granularity (word, char, auto)")
	learnCmd.Flags().StringVar(&segmentation, "segment", "sentence", "Sentence segmentation (line, sentence)")
	learnCmd.Flags().IntVar(&minLength, "min-length", 1, "Minimum substring length in tokens")
	learnCmd.Flags().IntVar(&maxLength, "max-length", 0, "Maximum substring length in tokens (0 = sentence length minus one)")
	learnCmd.Flags().BoolVar(&visualize, "visualize", false, "Render the substitution graph")
	learnCmd.Flags().BoolVar(&lite, "lite", false, "Skip browser-based PNG capture (HTML/JSON only)")
	learnCmd.Flags().BoolVar(&printOnly, "print", false, "Send reports to stdout instead of files")
	learnCmd.Flags().BoolVar(&verify, "verify", false, "Re-run the pipeline and verify the result is deterministic")
	learnCmd.MarkFlagRequired("input")

	// Bind learn flags to viper
	viper.BindPFlag("input", learnCmd.Flags().Lookup("input"))
	viper.BindPFlag("output", learnCmd.Flags().Lookup("output"))
	viper.BindPFlag("granularity", learnCmd.Flags().Lookup("granularity"))
	viper.BindPFlag("segment", learnCmd.Flags().Lookup("segment"))
	viper.BindPFlag("min_length", learnCmd.Flags().Lookup("min-length"))
	viper.BindPFlag("max_length", learnCmd.Flags().Lookup("max-length"))
	viper.BindPFlag("visualize", learnCmd.Flags().Lookup("visualize"))
	viper.BindPFlag("lite", learnCmd.Flags().Lookup("lite"))
	viper.BindPFlag("print", learnCmd.Flags().Lookup("print"))
	viper.BindPFlag("verify", learnCmd.Flags().Lookup("verify"))

	// Add demo command
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in demonstration corpora",
		Long: `Run the pipeline on the built-in toy corpora (a character-level palindrome
grammar and a small English word corpus) and print the results. Useful for a
quick look at what the learner produces without preparing input files.`,
		RunE: commands.RunDemo,
	}
	demoCmd.Flags().BoolVar(&visualize, "visualize", false, "Render the substitution graphs")
	demoCmd.Flags().BoolVar(&lite, "lite", false, "Skip browser-based PNG capture (HTML/JSON only)")
	demoCmd.Flags().StringVar(&outputDir, "output", "./slg_output", "Directory for rendered graphs")
	viper.BindPFlag("demo_visualize", demoCmd.Flags().Lookup("visualize"))
	viper.BindPFlag("demo_lite", demoCmd.Flags().Lookup("lite"))
	viper.BindPFlag("demo_output", demoCmd.Flags().Lookup("output"))

	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(demoCmd)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
