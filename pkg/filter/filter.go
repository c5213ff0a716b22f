// Package filter implements the visibility stage: it removes catalog-hidden
// noise resources (generated credentials, random-value helpers, log groups)
// plus any caller-requested exclusions, and then drops every edge touching a
// removed node so the graph handed to leveling never dangles.
package filter

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/HMetcalfeW/terracarta/pkg/catalog"
	"github.com/HMetcalfeW/terracarta/pkg/graph"
)

// Apply returns a new graph containing only nodes whose resource type is
// visible in the catalog and not listed in excludeTypes (case-insensitive)
// or excludeNames (exact match). Edges with either endpoint removed are
// dropped, and parent pointers into removed nodes are cleared — a
// dependency chain through a hidden node is dropped, not bridged.
func Apply(g *graph.Graph, excludeTypes, excludeNames []string) *graph.Graph {
	logger := log.WithFields(log.Fields{
		"func":         "filter.Apply",
		"input":        len(g.Nodes),
		"excludeTypes": len(excludeTypes),
		"excludeNames": len(excludeNames),
	})
	logger.Debug("Applying visibility filter")

	typeSet := make(map[string]bool, len(excludeTypes))
	for _, t := range excludeTypes {
		typeSet[strings.ToLower(t)] = true
	}
	nameSet := make(map[string]bool, len(excludeNames))
	for _, n := range excludeNames {
		nameSet[n] = true
	}

	out := graph.New()
	out.SkippedBlocks = g.SkippedBlocks

	for _, n := range g.Nodes {
		switch {
		case !catalog.Lookup(n.Type).Visible:
			log.WithFields(log.Fields{
				"func":   "filter.Apply",
				"id":     n.ID,
				"reason": "catalog",
			}).Debug("Excluded resource")
		case typeSet[strings.ToLower(n.Type)]:
			log.WithFields(log.Fields{
				"func":   "filter.Apply",
				"id":     n.ID,
				"reason": "type",
			}).Debug("Excluded resource")
		case nameSet[n.Name]:
			log.WithFields(log.Fields{
				"func":   "filter.Apply",
				"id":     n.ID,
				"reason": "name",
			}).Debug("Excluded resource")
		default:
			copied := *n
			out.AddNode(&copied)
		}
	}

	for _, n := range out.Nodes {
		if n.ParentID != "" && out.Node(n.ParentID) == nil {
			n.ParentID = ""
		}
	}

	dropped := 0
	for _, e := range g.Edges {
		if out.Node(e.Source) == nil || out.Node(e.Target) == nil {
			dropped++
			continue
		}
		out.AddEdge(e.Source, e.Target, e.Label)
	}

	logger.WithFields(log.Fields{
		"excluded":     len(g.Nodes) - len(out.Nodes),
		"remaining":    len(out.Nodes),
		"edgesDropped": dropped,
	}).Debug("Filter complete")

	return out
}
