package graph

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"sigs.k8s.io/yaml"

	"github.com/HMetcalfeW/terracarta/pkg/parser"
)

// FromSource parses Terraform-style source text and builds the raw,
// pre-filter dependency graph. Malformed blocks are skipped by the parser;
// references to undeclared resources are silently dropped. Empty input
// yields an empty graph, never an error.
func FromSource(src string) *Graph {
	logger := log.WithField("func", "graph.FromSource")

	res := parser.Parse(src)
	g := New()
	g.SkippedBlocks = res.Skipped

	// First pass: register every declared identity so reference resolution
	// and parent detection can see resources declared later in the text.
	declared := make(map[parser.Identity]bool, len(res.Blocks))
	for _, b := range res.Blocks {
		declared[b.Identity()] = true
	}

	bodies := make(map[string]string, len(res.Blocks))
	for _, b := range res.Blocks {
		id := b.Identity().String()
		node := &Node{ID: id, Type: b.Type, Name: b.Name}
		if !g.AddNode(node) {
			logger.WithField("id", id).Debug("Duplicate declaration, first block wins")
			continue
		}
		bodies[id] = b.Body

		if parentID, found := parser.ParentFor(b.Body); found && parentID != id && declared[identityFromKey(parentID)] {
			node.ParentID = parentID
			logger.WithFields(log.Fields{
				"id":     id,
				"parent": parentID,
			}).Debug("Detected containment parent")
		}
	}

	// Second pass: one edge per resolved reference, pointing from the
	// referenced resource to the referencer.
	for _, n := range g.Nodes {
		self := parser.Identity{Type: n.Type, Name: n.Name}
		for _, ref := range parser.ExtractReferences(bodies[n.ID], self, declared) {
			if g.AddEdge(ref.Identity().String(), n.ID, ref.Attribute) {
				logger.WithFields(log.Fields{
					"source": ref.Identity().String(),
					"target": n.ID,
					"attr":   ref.Attribute,
				}).Debug("Added reference edge")
			}
		}
	}

	addImplicitEdges(g, bodies)

	logger.WithFields(log.Fields{
		"nodes":   len(g.Nodes),
		"edges":   len(g.Edges),
		"skipped": g.SkippedBlocks,
	}).Info("Built graph from source text")
	return g
}

// identityFromKey splits a "type.name" key back into an Identity. Keys with
// no dot come back with an empty name and will not match any declaration.
func identityFromKey(key string) parser.Identity {
	for i := 0; i < len(key); i++ {
		if key[i] == '.' {
			return parser.Identity{Type: key[:i], Name: key[i+1:]}
		}
	}
	return parser.Identity{Type: key}
}

// prebuiltGraph mirrors the node/edge JSON an upstream generator emits when
// it has already resolved the graph and only layout is needed.
type prebuiltGraph struct {
	Nodes []prebuiltNode `json:"nodes"`
	Edges []prebuiltEdge `json:"edges"`
}

type prebuiltNode struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Label  string `json:"label"`
	Parent string `json:"parent,omitempty"`
}

type prebuiltEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Label  string `json:"label,omitempty"`
}

// FromPrebuilt decodes a pre-built graph document (JSON or YAML — JSON is a
// subset of YAML, so one decode path serves both) and loads it as-is.
// Edges whose endpoints are unknown are dropped with a one-line diagnostic;
// so are duplicate node ids and parent pointers to unknown nodes. The only
// error condition is an undecodable document.
func FromPrebuilt(data []byte) (*Graph, error) {
	logger := log.WithField("func", "graph.FromPrebuilt")

	var pre prebuiltGraph
	if err := yaml.Unmarshal(data, &pre); err != nil {
		return nil, fmt.Errorf("failed to decode pre-built graph: %w", err)
	}

	g := New()
	for _, pn := range pre.Nodes {
		if pn.ID == "" {
			logger.Warn("Dropping node with empty id")
			continue
		}
		name := pn.Label
		if name == "" {
			name = pn.ID
		}
		node := &Node{ID: pn.ID, Type: pn.Type, Name: name, ParentID: pn.Parent}
		if !g.AddNode(node) {
			logger.WithField("id", pn.ID).Warn("Dropping duplicate node id")
		}
	}

	// Parent pointers must reference known nodes.
	for _, n := range g.Nodes {
		if n.ParentID != "" && g.Node(n.ParentID) == nil {
			logger.WithFields(log.Fields{
				"id":     n.ID,
				"parent": n.ParentID,
			}).Warn("Clearing parent pointer to unknown node")
			n.ParentID = ""
		}
	}

	for _, pe := range pre.Edges {
		if g.Node(pe.Source) == nil || g.Node(pe.Target) == nil {
			logger.WithFields(log.Fields{
				"source": pe.Source,
				"target": pe.Target,
			}).Warn("Dropping edge with unknown endpoint")
			continue
		}
		g.AddEdge(pe.Source, pe.Target, pe.Label)
	}

	logger.WithFields(log.Fields{
		"nodes": len(g.Nodes),
		"edges": len(g.Edges),
	}).Info("Loaded pre-built graph")
	return g, nil
}
