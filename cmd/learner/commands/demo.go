/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: demo.go
Description: Demo command implementation for the SLG Learner. Runs the pipeline on
two built-in corpora (a character-level palindrome grammar and a small English word
corpus) and prints the resulting classes and grammars to the console.
*/

package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/kleascm/slg-learner/pkg/core"
	"github.com/kleascm/slg-learner/pkg/interfaces"
	"github.com/kleascm/slg-learner/pkg/reporting"
	"github.com/kleascm/slg-learner/pkg/visualization"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// demoCorpus is one built-in demonstration corpus
type demoCorpus struct {
	name        string
	granularity interfaces.Granularity
	sentences   []string
}

// The two corpora mirror the classic demonstration inputs for the
// substitutable-language learner: character-level palindromes around a
// center marker, and a tiny English fragment where "cat" and "dog"
// (and "quickly"/"slowly") are substitutable.
var demoCorpora = []demoCorpus{
	{
		name:        "Toy Palindromes",
		granularity: interfaces.GranularityChar,
		sentences:   []string{"abbcbba", "abcba", "aacaa", "aaacaaa", "bbbcbbb"},
	},
	{
		name:        "English Fragment",
		granularity: interfaces.GranularityWord,
		sentences: []string{
			"the dog ran",
			"the cat ran",
			"the cat quickly walked",
			"the cat slowly walked",
		},
	},
}

// RunDemo executes the pipeline on the built-in corpora
func RunDemo(cmd *cobra.Command, args []string) error {
	fmt.Println("🎓 SLG Learner - Demonstration Corpora")
	fmt.Println("======================================")

	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	logger := logrus.StandardLogger()

	ctx := context.Background()
	for _, demo := range demoCorpora {
		fmt.Println()
		fmt.Printf("═══ %s ═══\n\n", demo.name)

		config := &interfaces.LearnerConfig{
			OutputDir:    viper.GetString("demo_output"),
			Granularity:  demo.granularity,
			Segmentation: interfaces.SegmentationLine,
			Lengths:      interfaces.LengthPolicy{MinLength: 1},
			Visualize:    viper.GetBool("demo_visualize"),
			Lite:         viper.GetBool("demo_lite"),
			PrintOnly:    true,
		}

		sentences := make([]interfaces.Sentence, 0, len(demo.sentences))
		for i, raw := range demo.sentences {
			tokens := tokenizeDemo(raw, demo.granularity)
			sentences = append(sentences, interfaces.Sentence{
				Index:  i,
				Tokens: tokens,
				Source: "builtin",
			})
		}

		pipeline, err := core.NewPipelineFromSentences(config, sentences, logger)
		if err != nil {
			return err
		}
		result, err := pipeline.Run(ctx)
		if err != nil {
			return err
		}

		reporter := reporting.NewReporter(config.OutputDir, true, logger)
		if _, err := reporter.Write(result); err != nil {
			return fmt.Errorf("failed to write reports: %w", err)
		}

		if config.Visualize {
			html, err := visualization.NewHTMLRenderer(result.Graph, result.Partition, logger)
			if err != nil {
				return err
			}
			var renderer interfaces.Renderer = html
			if !config.Lite {
				renderer = visualization.NewScreenshotRenderer(html, logger)
			}
			paths, err := renderer.Render(ctx, config.OutputDir)
			if err != nil {
				return fmt.Errorf("failed to render graph: %w", err)
			}
			for _, path := range paths {
				fmt.Printf("  rendered %s\n", path)
			}
		}
	}

	fmt.Println()
	fmt.Println("✨ Demonstration completed!")
	return nil
}

// tokenizeDemo tokenizes one built-in sentence
func tokenizeDemo(raw string, granularity interfaces.Granularity) []string {
	if granularity == interfaces.GranularityChar {
		tokens := make([]string, 0, len(raw))
		for _, r := range raw {
			tokens = append(tokens, string(r))
		}
		return tokens
	}
	return strings.Fields(raw)
}
