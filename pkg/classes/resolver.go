/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: resolver.go
Description: Congruence class resolution for the SLG Learner. Computes the
connected components of the substitution graph with a union-find pass over its
edges and canonicalizes each component into a deterministic congruence class.
*/

package classes

import (
	"fmt"
	"sort"

	"github.com/kleascm/slg-learner/pkg/graph"
	"github.com/sirupsen/logrus"
)

// CongruenceClass is a maximal set of mutually substitutable substrings:
// a connected component of the substitution graph
type CongruenceClass struct {
	ID             string   `json:"id"`             // Stable identifier (C1, C2, ...)
	Representative string   `json:"representative"` // Lexicographically smallest member
	Members        []string `json:"members"`        // Sorted member literals
}

// Size returns the number of members in the class
func (c CongruenceClass) Size() int { return len(c.Members) }

// Partition is the complete, disjoint assignment of graph nodes to
// congruence classes
type Partition struct {
	Classes  []CongruenceClass
	byMember map[string]string // literal -> class ID
}

// ClassOf returns the class ID for a substring, or "" when the substring
// is not a graph node
func (p *Partition) ClassOf(literal string) string {
	return p.byMember[literal]
}

// Class returns the class with the given ID, or nil
func (p *Partition) Class(id string) *CongruenceClass {
	for i := range p.Classes {
		if p.Classes[i].ID == id {
			return &p.Classes[i]
		}
	}
	return nil
}

// Resolver computes congruence classes from a substitution graph
type Resolver struct {
	logger *logrus.Logger
}

// NewResolver creates a class resolver
func NewResolver(logger *logrus.Logger) *Resolver {
	if logger == nil {
		logger = logrus.New()
	}
	return &Resolver{logger: logger}
}

// Resolve partitions the graph's node set into congruence classes.
// Two substrings land in the same class iff a chain of context-sharing
// edges links them. The result is deterministic and independent of edge
// processing order: members are sorted, the representative is the
// lexicographically smallest member, and class IDs are assigned over
// representatives in sorted order.
func (r *Resolver) Resolve(g *graph.Graph) *Partition {
	nodeIDs := g.NodeIDs()
	uf := newUnionFind(nodeIDs)
	for _, edge := range g.Edges() {
		uf.union(edge.Source, edge.Target)
	}

	groups := make(map[string][]string)
	for _, id := range nodeIDs {
		root := uf.find(id)
		groups[root] = append(groups[root], id)
	}

	partition := &Partition{byMember: make(map[string]string, len(nodeIDs))}
	for _, members := range groups {
		sort.Strings(members)
		partition.Classes = append(partition.Classes, CongruenceClass{
			Representative: members[0],
			Members:        members,
		})
	}
	sort.Slice(partition.Classes, func(i, j int) bool {
		return partition.Classes[i].Representative < partition.Classes[j].Representative
	})
	for i := range partition.Classes {
		partition.Classes[i].ID = fmt.Sprintf("C%d", i+1)
		for _, member := range partition.Classes[i].Members {
			partition.byMember[member] = partition.Classes[i].ID
		}
	}

	r.logger.WithFields(logrus.Fields{
		"nodes":   len(nodeIDs),
		"classes": len(partition.Classes),
	}).Info("Congruence classes resolved")

	return partition
}
