/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: graph.go
Description: Substitution graph model for the SLG Learner. Nodes are distinct
substrings, undirected edges connect substrings that share at least one context.
Carries run metadata and exports a D3-friendly JSON document for visualization.
*/

package graph

import (
	"encoding/json"
	"sort"
	"time"
)

// Node represents one distinct substring in the substitution graph
type Node struct {
	ID           string   `json:"id"`    // Literal token content (canonical form)
	Label        string   `json:"label"` // Display label
	Tokens       []string `json:"-"`
	ContextCount int      `json:"context_count"` // Distinct contexts observed
}

// Edge denotes direct context-sharing between two substrings.
// Adjacency is binary; Weight only records how many contexts are shared,
// for visualization emphasis.
type Edge struct {
	Source        string `json:"source"`
	Target        string `json:"target"`
	SharedContext string `json:"label"` // One witnessing context, rendered
	Weight        int    `json:"value"` // Number of shared contexts
}

// Stats provides graph statistics
type Stats struct {
	TotalNodes int `json:"total_nodes"`
	TotalEdges int `json:"total_edges"`
}

// Meta contains metadata about the graph
type Meta struct {
	RunID       string            `json:"run_id"`
	GeneratedAt time.Time         `json:"generated_at"`
	Stats       Stats             `json:"stats"`
	Config      map[string]string `json:"config,omitempty"`
}

// Graph is the undirected substitution graph, immutable after Build
type Graph struct {
	nodes     map[string]*Node
	adjacency map[string]map[string]struct{}
	edges     []Edge
	meta      Meta
}

// newGraph creates an empty graph
func newGraph(meta Meta) *Graph {
	return &Graph{
		nodes:     make(map[string]*Node),
		adjacency: make(map[string]map[string]struct{}),
		meta:      meta,
	}
}

// addNode inserts a node if not already present
func (g *Graph) addNode(node *Node) {
	if _, exists := g.nodes[node.ID]; exists {
		return
	}
	g.nodes[node.ID] = node
	g.adjacency[node.ID] = make(map[string]struct{})
}

// addEdge records an undirected edge between two existing nodes.
// Self-loops are ignored.
func (g *Graph) addEdge(edge Edge) {
	if edge.Source == edge.Target {
		return
	}
	g.adjacency[edge.Source][edge.Target] = struct{}{}
	g.adjacency[edge.Target][edge.Source] = struct{}{}
	g.edges = append(g.edges, edge)
}

// Node returns the node with the given ID, or nil
func (g *Graph) Node(id string) *Node {
	return g.nodes[id]
}

// NodeIDs returns all node IDs in lexicographic order
func (g *Graph) NodeIDs() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Edges returns the edge list
func (g *Graph) Edges() []Edge {
	return g.edges
}

// HasEdge reports whether two substrings directly share a context
func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.adjacency[a][b]
	return ok
}

// Neighbors returns the IDs adjacent to a node, sorted
func (g *Graph) Neighbors(id string) []string {
	neighbors := make([]string, 0, len(g.adjacency[id]))
	for n := range g.adjacency[id] {
		neighbors = append(neighbors, n)
	}
	sort.Strings(neighbors)
	return neighbors
}

// NodeCount returns the number of nodes
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Meta returns the graph metadata
func (g *Graph) Meta() Meta { return g.meta }

// document is the JSON shape consumed by the D3 renderer
type document struct {
	Nodes []Node `json:"nodes"`
	Links []Edge `json:"links"`
	Meta  Meta   `json:"meta"`
}

// MarshalJSON exports the graph as a D3-friendly document with nodes in
// lexicographic order
func (g *Graph) MarshalJSON() ([]byte, error) {
	doc := document{
		Nodes: make([]Node, 0, len(g.nodes)),
		Links: g.edges,
		Meta:  g.meta,
	}
	for _, id := range g.NodeIDs() {
		doc.Nodes = append(doc.Nodes, *g.nodes[id])
	}
	if doc.Links == nil {
		doc.Links = []Edge{}
	}
	return json.Marshal(doc)
}
