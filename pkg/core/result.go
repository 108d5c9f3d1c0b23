/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: result.go
Description: Run result types for the SLG Learner pipeline. Bundles the final
artifacts (graph, partition, grammar) with the summary statistics reported at
the end of a learning run.
*/

package core

import (
	"time"

	"github.com/kleascm/slg-learner/pkg/classes"
	"github.com/kleascm/slg-learner/pkg/grammar"
	"github.com/kleascm/slg-learner/pkg/graph"
	"github.com/kleascm/slg-learner/pkg/interfaces"
)

// Result is the complete outcome of one learning run
type Result struct {
	RunID     string        `json:"run_id"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`

	// Summary statistics
	SentenceCount     int  `json:"sentences"`
	Substrings        int  `json:"substrings"`
	DistinctContexts  int  `json:"distinct_contexts"`
	Edges             int  `json:"edges"`
	Classes           int  `json:"classes"`
	ProductiveClasses int  `json:"productive_classes"`
	Degenerate        bool `json:"degenerate"` // Graph has no edges

	// Artifacts (not serialized with the summary)
	Sentences []interfaces.Sentence `json:"-"`
	Graph     *graph.Graph          `json:"-"`
	Partition *classes.Partition    `json:"-"`
	Grammar   *grammar.Grammar      `json:"-"`
}

// LargestClassSize returns the member count of the largest congruence
// class, or zero for an empty partition
func (r *Result) LargestClassSize() int {
	largest := 0
	for _, class := range r.Partition.Classes {
		if class.Size() > largest {
			largest = class.Size()
		}
	}
	return largest
}
