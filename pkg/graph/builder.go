/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: builder.go
Description: Substitution graph construction for the SLG Learner. Builds an
inverted index from contexts to the substrings exhibiting them, then emits a
pairwise edge for every context shared by two or more substrings. Avoids the
naive quadratic pairwise context-set intersection.
*/

package graph

import (
	"sort"
	"time"

	"github.com/kleascm/slg-learner/pkg/interfaces"
	"github.com/sirupsen/logrus"
)

// Builder constructs a substitution graph from a ContextSet
type Builder struct {
	logger *logrus.Logger
}

// NewBuilder creates a graph builder
func NewBuilder(logger *logrus.Logger) *Builder {
	if logger == nil {
		logger = logrus.New()
	}
	return &Builder{logger: logger}
}

// Build returns the substitution graph for the given context set.
// Substrings with an empty context set are omitted entirely; they form
// no class and appear in no grammar fragment. The result is fully
// deterministic: nodes, edges, and edge labels depend only on the input.
func (b *Builder) Build(set *interfaces.ContextSet, run interfaces.RunInfo) *Graph {
	g := newGraph(Meta{
		RunID:       run.RunID,
		GeneratedAt: time.Now(),
	})

	// Sorted literals keep node insertion and index construction stable
	literals := make([]string, 0, len(set.Entries))
	for literal := range set.Entries {
		literals = append(literals, literal)
	}
	sort.Strings(literals)

	// Inverted index: context -> substrings exhibiting it, in sorted order
	index := make(map[interfaces.Context][]string)
	for _, literal := range literals {
		entry := set.Entries[literal]
		if len(entry.Contexts) == 0 {
			continue
		}
		g.addNode(&Node{
			ID:           entry.Literal,
			Label:        entry.Literal,
			Tokens:       entry.Tokens,
			ContextCount: len(entry.Contexts),
		})
		for ctx := range entry.Contexts {
			index[ctx] = append(index[ctx], literal)
		}
	}

	// Visit contexts in a stable order so edge labels and weights are
	// reproducible across runs
	shared := make([]interfaces.Context, 0, len(index))
	for ctx, members := range index {
		if len(members) > 1 {
			shared = append(shared, ctx)
		}
	}
	sort.Slice(shared, func(i, j int) bool {
		if shared[i].Left != shared[j].Left {
			return shared[i].Left < shared[j].Left
		}
		return shared[i].Right < shared[j].Right
	})

	type pair struct{ a, b string }
	seen := make(map[pair]int) // pair -> index into g.edges
	for _, ctx := range shared {
		members := index[ctx]
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				p := pair{members[i], members[j]}
				if at, exists := seen[p]; exists {
					g.edges[at].Weight++
					continue
				}
				seen[p] = len(g.edges)
				g.addEdge(Edge{
					Source:        p.a,
					Target:        p.b,
					SharedContext: ctx.String(),
					Weight:        1,
				})
			}
		}
	}

	b.logger.WithFields(logrus.Fields{
		"nodes":           g.NodeCount(),
		"edges":           g.EdgeCount(),
		"shared_contexts": len(shared),
	}).Info("Substitution graph built")

	g.meta.Stats = Stats{TotalNodes: g.NodeCount(), TotalEdges: g.EdgeCount()}
	return g
}
