/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: reproducibility.go
Description: Reproducibility harness for the SLG Learner. Re-runs the induction
pipeline on the same corpus and verifies that class assignments and grammar
fragments are identical across runs, confirming the learner's determinism
guarantee.
*/

package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/kleascm/slg-learner/pkg/core"
	"github.com/kleascm/slg-learner/pkg/interfaces"
	"github.com/sirupsen/logrus"
)

// ReproducibilityResult contains the outcome of a determinism check
type ReproducibilityResult struct {
	Reproducible bool          `json:"reproducible"` // Whether both runs agree
	Runs         int           `json:"runs"`         // Number of runs compared
	Duration     time.Duration `json:"duration"`     // Total verification time
	Mismatches   []string      `json:"mismatches"`   // Human-readable differences
}

// ReproducibilityHarness re-runs the pipeline and compares results
type ReproducibilityHarness struct {
	config *interfaces.LearnerConfig
	logger *logrus.Logger
}

// NewReproducibilityHarness creates a harness for the given run
// configuration
func NewReproducibilityHarness(config *interfaces.LearnerConfig, logger *logrus.Logger) *ReproducibilityHarness {
	if logger == nil {
		logger = logrus.New()
	}
	return &ReproducibilityHarness{config: config, logger: logger}
}

// Verify runs the pipeline twice on the same sentences and compares the
// class partitions and induced fragments. Identical corpora with
// identical configuration must yield identical results.
func (h *ReproducibilityHarness) Verify(ctx context.Context, sentences []interfaces.Sentence) (*ReproducibilityResult, error) {
	start := time.Now()

	first, err := h.runOnce(ctx, sentences)
	if err != nil {
		return nil, fmt.Errorf("first verification run failed: %w", err)
	}
	second, err := h.runOnce(ctx, sentences)
	if err != nil {
		return nil, fmt.Errorf("second verification run failed: %w", err)
	}

	result := &ReproducibilityResult{
		Runs:     2,
		Duration: time.Since(start),
	}
	result.Mismatches = comparePartitions(first, second)
	result.Reproducible = len(result.Mismatches) == 0

	if result.Reproducible {
		h.logger.WithFields(logrus.Fields{
			"classes":  first.Classes,
			"duration": result.Duration,
		}).Info("Determinism verified")
	} else {
		h.logger.WithFields(logrus.Fields{
			"mismatches": len(result.Mismatches),
		}).Error("Determinism violation detected")
	}

	return result, nil
}

// runOnce executes one pipeline run on a private copy of the sentences
func (h *ReproducibilityHarness) runOnce(ctx context.Context, sentences []interfaces.Sentence) (*core.Result, error) {
	copied := append([]interfaces.Sentence(nil), sentences...)
	pipeline, err := core.NewPipelineFromSentences(h.config, copied, h.logger)
	if err != nil {
		return nil, err
	}
	return pipeline.Run(ctx)
}

// comparePartitions reports every difference between two run results
func comparePartitions(a, b *core.Result) []string {
	var mismatches []string

	if a.Classes != b.Classes {
		mismatches = append(mismatches, fmt.Sprintf("class count differs: %d vs %d", a.Classes, b.Classes))
		return mismatches
	}

	for i := range a.Partition.Classes {
		ca, cb := a.Partition.Classes[i], b.Partition.Classes[i]
		if ca.ID != cb.ID || ca.Representative != cb.Representative {
			mismatches = append(mismatches, fmt.Sprintf("class %d identity differs: %s(%s) vs %s(%s)",
				i, ca.ID, ca.Representative, cb.ID, cb.Representative))
			continue
		}
		if len(ca.Members) != len(cb.Members) {
			mismatches = append(mismatches, fmt.Sprintf("class %s size differs: %d vs %d", ca.ID, len(ca.Members), len(cb.Members)))
			continue
		}
		for j := range ca.Members {
			if ca.Members[j] != cb.Members[j] {
				mismatches = append(mismatches, fmt.Sprintf("class %s member %d differs: %s vs %s",
					ca.ID, j, ca.Members[j], cb.Members[j]))
			}
		}
	}

	if len(a.Grammar.Fragments) != len(b.Grammar.Fragments) {
		mismatches = append(mismatches, fmt.Sprintf("fragment count differs: %d vs %d",
			len(a.Grammar.Fragments), len(b.Grammar.Fragments)))
		return mismatches
	}
	for i := range a.Grammar.Fragments {
		fa, fb := a.Grammar.Fragments[i], b.Grammar.Fragments[i]
		if fa.ClassID != fb.ClassID || fa.Productive != fb.Productive || len(fa.Productions) != len(fb.Productions) {
			mismatches = append(mismatches, fmt.Sprintf("fragment %s differs between runs", fa.ClassID))
		}
	}

	return mismatches
}
