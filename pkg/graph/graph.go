// Package graph builds the raw dependency graph consumed by the layout
// stages. It has two entry points: FromSource extracts resources and
// cross-references out of Terraform-style text, and FromPrebuilt accepts a
// node/edge list an upstream generator has already resolved.
//
// Edge direction convention: an edge points from the depended-upon resource
// to the dependent one (referenced → referencer), i.e. it follows the
// data/control dependency rather than the textual reference.
package graph

import (
	"github.com/google/uuid"
)

// edgeNamespace seeds the deterministic UUIDv5 edge ids, so identical input
// always yields identical edge identifiers.
var edgeNamespace = uuid.MustParse("9e336f1c-6b6a-4cf3-9b3a-52b0f3d0e7a1")

// EdgeID derives the stable id for the ordered pair source→target.
func EdgeID(source, target string) string {
	return uuid.NewSHA1(edgeNamespace, []byte(source+"->"+target)).String()
}

// Node is one resource in the graph. ID is the identity key
// "resourceType.resourceName" in source-text mode, or whatever id the
// upstream generator supplied in pre-built mode.
type Node struct {
	ID       string
	Type     string
	Name     string
	ParentID string // containment, not dependency
	Level    int    // assigned by the layout stage
}

// Edge is a directed dependency between two nodes.
type Edge struct {
	ID     string
	Source string
	Target string
	Label  string
}

// Graph is a set of nodes unique by id plus a set of edges whose endpoints
// all exist. It is rebuilt from scratch for every input.
type Graph struct {
	Nodes []*Node
	Edges []*Edge

	// SkippedBlocks counts declarations the parser had to discard
	// (source-text mode only). Advisory.
	SkippedBlocks int

	byID  map[string]*Node
	edges map[[2]string]bool
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		byID:  make(map[string]*Node),
		edges: make(map[[2]string]bool),
	}
}

// AddNode inserts a node unless its id is already taken; the first node
// with a given id wins. Reports whether the node was inserted.
func (g *Graph) AddNode(n *Node) bool {
	if _, exists := g.byID[n.ID]; exists {
		return false
	}
	g.byID[n.ID] = n
	g.Nodes = append(g.Nodes, n)
	return true
}

// AddEdge inserts a directed edge. Self-edges, duplicate ordered pairs, and
// edges with a missing endpoint are rejected. Reports whether the edge was
// inserted.
func (g *Graph) AddEdge(source, target, label string) bool {
	if source == target {
		return false
	}
	if _, found := g.byID[source]; !found {
		return false
	}
	if _, found := g.byID[target]; !found {
		return false
	}
	key := [2]string{source, target}
	if g.edges[key] {
		return false
	}
	g.edges[key] = true
	g.Edges = append(g.Edges, &Edge{
		ID:     EdgeID(source, target),
		Source: source,
		Target: target,
		Label:  label,
	})
	return true
}

// Node returns the node with the given id, or nil.
func (g *Graph) Node(id string) *Node {
	return g.byID[id]
}

// HasEdge reports whether the ordered pair source→target exists.
func (g *Graph) HasEdge(source, target string) bool {
	return g.edges[[2]string{source, target}]
}

// Dependencies returns the ids of the nodes the given node depends on — the
// sources of its incoming edges — in edge insertion order.
func (g *Graph) Dependencies(id string) []string {
	var deps []string
	for _, e := range g.Edges {
		if e.Target == id {
			deps = append(deps, e.Source)
		}
	}
	return deps
}

// NodesOfType returns all nodes with the given resource type, in insertion
// order.
func (g *Graph) NodesOfType(resourceType string) []*Node {
	var out []*Node
	for _, n := range g.Nodes {
		if n.Type == resourceType {
			out = append(out, n)
		}
	}
	return out
}

// Children returns all nodes whose ParentID equals the given id, in
// insertion order.
func (g *Graph) Children(id string) []*Node {
	var out []*Node
	for _, n := range g.Nodes {
		if n.ParentID == id {
			out = append(out, n)
		}
	}
	return out
}
