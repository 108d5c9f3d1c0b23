/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: unionfind.go
Description: Disjoint-set structure used by the congruence class resolver.
Implements union by size with path compression over string keys, giving
near-linear connected-component computation without recursive traversal.
*/

package classes

// unionFind is a disjoint-set forest keyed by substring literal
type unionFind struct {
	parent map[string]string
	size   map[string]int
}

// newUnionFind creates a forest containing the given elements, each in
// its own singleton set
func newUnionFind(elements []string) *unionFind {
	uf := &unionFind{
		parent: make(map[string]string, len(elements)),
		size:   make(map[string]int, len(elements)),
	}
	for _, e := range elements {
		uf.parent[e] = e
		uf.size[e] = 1
	}
	return uf
}

// find returns the set representative for x, compressing the path
func (uf *unionFind) find(x string) string {
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for uf.parent[x] != root {
		uf.parent[x], x = root, uf.parent[x]
	}
	return root
}

// union merges the sets containing a and b
func (uf *unionFind) union(a, b string) {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return
	}
	if uf.size[ra] < uf.size[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	uf.size[ra] += uf.size[rb]
}
