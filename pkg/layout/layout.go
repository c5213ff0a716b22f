// Package layout turns a filtered dependency graph into final 2-D
// coordinates and per-node/per-edge visual styling: topological levels on
// the horizontal axis, category swim lanes on the vertical axis, and
// container resources rendered as bounding boxes around their children.
package layout

import (
	log "github.com/sirupsen/logrus"

	"github.com/HMetcalfeW/terracarta/pkg/catalog"
	"github.com/HMetcalfeW/terracarta/pkg/graph"
)

// Config holds the spacing constants used by the finalizer.
type Config struct {
	LevelSpacing     float64 // horizontal distance per dependency level
	NodeSpacing      float64 // vertical gap between nodes in a lane
	LaneGap          float64 // vertical gap between category lanes
	MarginX          float64
	MarginY          float64
	ContainerPadding float64 // inset around a container's children
	ContainerHeader  float64 // room for the container's own label
	ChildGap         float64 // vertical gap between stacked children
}

// DefaultConfig returns the spacing used when the caller has no opinion.
func DefaultConfig() Config {
	return Config{
		LevelSpacing:     260,
		NodeSpacing:      48,
		LaneGap:          96,
		MarginX:          80,
		MarginY:          80,
		ContainerPadding: 32,
		ContainerHeader:  48,
		ChildGap:         24,
	}
}

// Position is an absolute coordinate, except for nested nodes where it is
// relative to the parent container's origin.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NodeData is the per-node display payload handed to the rendering widget.
type NodeData struct {
	ResourceType string `json:"resourceType"`
	ResourceName string `json:"resourceName"`
	Category     string `json:"category"`
	Icon         string `json:"icon"`
	Color        string `json:"color"`
	BgColor      string `json:"bgColor"`
	BorderColor  string `json:"borderColor"`
	IsContainer  bool   `json:"isContainer"`
}

// NodeStyle carries the rendered node dimensions.
type NodeStyle struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Node is a fully positioned, styled node record.
type Node struct {
	ID       string    `json:"id"`
	Position Position  `json:"position"`
	Data     NodeData  `json:"data"`
	ParentID string    `json:"parentId,omitempty"`
	Style    NodeStyle `json:"style"`
}

// EdgeStyle carries the rendered edge stroke.
type EdgeStyle struct {
	Stroke      string  `json:"stroke"`
	StrokeWidth float64 `json:"strokeWidth"`
}

// Edge is a fully styled edge record.
type Edge struct {
	ID     string    `json:"id"`
	Source string    `json:"source"`
	Target string    `json:"target"`
	Style  EdgeStyle `json:"style"`
	Label  string    `json:"label,omitempty"`
}

// Graph is the engine's final output, consumed by the rendering boundary.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// finalizer carries the per-run state of one Finalize call.
type finalizer struct {
	g       *graph.Graph
	cfg     Config
	out     *Graph
	sizes   map[string]NodeStyle
	emitted map[string]bool
}

// Finalize converts a leveled, filtered graph into absolute coordinates and
// resolved styles. Nodes are grouped into category lanes in catalog.LaneOrder;
// within a lane they keep discovery order and take their x offset from their
// dependency level. Containers with children become bounding nodes whose
// children carry container-relative coordinates. The input graph is not
// modified.
func Finalize(g *graph.Graph, cfg Config) *Graph {
	logger := log.WithField("func", "layout.Finalize")

	f := &finalizer{
		g:   g,
		cfg: cfg,
		out: &Graph{
			Nodes: make([]Node, 0, len(g.Nodes)),
			Edges: make([]Edge, 0, len(g.Edges)),
		},
		sizes:   measure(g, cfg),
		emitted: make(map[string]bool, len(g.Nodes)),
	}

	// Lane assembly: nested children are positioned when their container is
	// emitted; everything else flows through the lanes.
	laneTop := cfg.MarginY
	for _, cat := range catalog.LaneOrder {
		cursor := laneTop
		placed := 0
		for _, n := range g.Nodes {
			if f.nested(n) || f.emitted[n.ID] {
				continue
			}
			profile := catalog.Lookup(n.Type)
			if profile.Category != cat {
				continue
			}
			size := f.sizes[n.ID]
			f.emit(n, profile, Position{
				X: cfg.MarginX + float64(n.Level)*cfg.LevelSpacing,
				Y: cursor,
			}, false)
			cursor += size.Height + cfg.NodeSpacing
			placed++
		}
		if placed > 0 {
			laneTop = cursor - cfg.NodeSpacing + cfg.LaneGap
		}
	}

	// Safety net: a parent-pointer cycle in pre-built input can leave nodes
	// that are "nested" under each other and never reached. Emit them as
	// ordinary top-level nodes below the lanes.
	cursor := laneTop
	for _, n := range g.Nodes {
		if f.emitted[n.ID] {
			continue
		}
		log.WithFields(log.Fields{
			"func": "layout.Finalize",
			"id":   n.ID,
		}).Warn("Node unreachable through containment, placing at top level")
		f.emit(n, catalog.Lookup(n.Type), Position{
			X: cfg.MarginX + float64(n.Level)*cfg.LevelSpacing,
			Y: cursor,
		}, false)
		cursor += f.sizes[n.ID].Height + cfg.NodeSpacing
	}

	for _, e := range g.Edges {
		f.out.Edges = append(f.out.Edges, styleEdge(g, e))
	}

	logger.WithFields(log.Fields{
		"nodes": len(f.out.Nodes),
		"edges": len(f.out.Edges),
	}).Info("Layout finalized")
	return f.out
}

// nested reports whether a node is placed inside its parent rather than in
// a lane: its parent must exist and be a container type. A parent pointer
// to an ordinary node is a containment hint the layout cannot honor, so the
// child flows through the lanes like any other node.
func (f *finalizer) nested(n *graph.Node) bool {
	if n.ParentID == "" {
		return false
	}
	parent := f.g.Node(n.ParentID)
	return parent != nil && catalog.Lookup(parent.Type).IsContainer
}

// emit appends one positioned node and, when it is a container with
// children, stacks those children below the container header with
// parent-relative coordinates. Parents always precede their children in the
// output so the rendering boundary can resolve relative positions in one
// pass.
func (f *finalizer) emit(n *graph.Node, profile catalog.TypeProfile, pos Position, asChild bool) {
	if f.emitted[n.ID] {
		return
	}
	f.emitted[n.ID] = true

	children := f.g.Children(n.ID)
	isContainer := profile.IsContainer && len(children) > 0

	parentID := ""
	if asChild {
		parentID = n.ParentID
	}

	f.out.Nodes = append(f.out.Nodes, Node{
		ID:       n.ID,
		Position: pos,
		Data: NodeData{
			ResourceType: n.Type,
			ResourceName: n.Name,
			Category:     string(profile.Category),
			Icon:         profile.Icon,
			Color:        profile.Color,
			BgColor:      profile.BgColor,
			BorderColor:  profile.BorderColor,
			IsContainer:  isContainer,
		},
		ParentID: parentID,
		Style:    f.sizes[n.ID],
	})

	if !isContainer {
		return
	}

	childY := f.cfg.ContainerHeader
	for _, child := range children {
		if f.emitted[child.ID] {
			continue
		}
		f.emit(child, catalog.Lookup(child.Type), Position{
			X: f.cfg.ContainerPadding,
			Y: childY,
		}, true)
		childY += f.sizes[child.ID].Height + f.cfg.ChildGap
	}
}

// measure computes the rendered size of every node. Ordinary nodes take
// their profile size; a container with children grows to wrap a vertical
// stack of its (recursively measured) children; a container without
// children shrinks to ordinary node dimensions. A parent-pointer cycle in
// pre-built input is broken by treating the revisited node as a leaf.
func measure(g *graph.Graph, cfg Config) map[string]NodeStyle {
	sizes := make(map[string]NodeStyle, len(g.Nodes))

	var sizeOf func(n *graph.Node, visiting map[string]bool) NodeStyle
	sizeOf = func(n *graph.Node, visiting map[string]bool) NodeStyle {
		if s, done := sizes[n.ID]; done {
			return s
		}
		profile := catalog.Lookup(n.Type)

		children := g.Children(n.ID)
		if !profile.IsContainer || len(children) == 0 || visiting[n.ID] {
			s := NodeStyle{Width: float64(profile.Width), Height: float64(profile.Height)}
			if profile.IsContainer {
				s = NodeStyle{
					Width:  float64(catalog.DefaultNodeWidth),
					Height: float64(catalog.DefaultNodeHeight),
				}
			}
			sizes[n.ID] = s
			return s
		}

		visiting[n.ID] = true
		width := float64(catalog.DefaultNodeWidth)
		height := cfg.ContainerHeader
		for _, child := range children {
			cs := sizeOf(child, visiting)
			if cs.Width > width {
				width = cs.Width
			}
			height += cs.Height + cfg.ChildGap
		}
		delete(visiting, n.ID)

		s := NodeStyle{
			Width:  width + 2*cfg.ContainerPadding,
			Height: height - cfg.ChildGap + cfg.ContainerPadding,
		}
		sizes[n.ID] = s
		return s
	}

	for _, n := range g.Nodes {
		sizeOf(n, make(map[string]bool))
	}
	return sizes
}

// styleEdge resolves an edge's stroke from the higher-priority endpoint
// category: network > security > storage/database > compute > default.
// Network and security relationships get the heavier stroke.
func styleEdge(g *graph.Graph, e *graph.Edge) Edge {
	srcCat := catalog.Lookup(g.Node(e.Source).Type).Category
	tgtCat := catalog.Lookup(g.Node(e.Target).Type).Category
	dominant := catalog.DominantCategory(srcCat, tgtCat)

	width := 1.5
	if dominant == catalog.CategoryNetwork || dominant == catalog.CategorySecurity {
		width = 2
	}

	return Edge{
		ID:     e.ID,
		Source: e.Source,
		Target: e.Target,
		Style: EdgeStyle{
			Stroke:      catalog.StrokeColor(dominant),
			StrokeWidth: width,
		},
		Label: e.Label,
	}
}
