package export

import (
	"fmt"
	"strings"

	"github.com/HMetcalfeW/terracarta/pkg/layout"
)

// GenerateDOT produces a DOT graph from the positioned graph. Nodes are
// filled with their category background color; edges carry their label and
// resolved stroke color.
//
// Example:
//
//	"aws_vpc.main" -> "aws_instance.web" [label="id"];
func GenerateDOT(g *layout.Graph) string {
	var sb strings.Builder
	sb.WriteString("digraph G {\n")
	sb.WriteString("  rankdir=\"LR\";\n")
	sb.WriteString("  node [shape=box, style=filled];\n\n")

	for _, n := range g.Nodes {
		sb.WriteString(fmt.Sprintf(
			"  \"%s\" [label=\"%s\\n%s\", fillcolor=\"%s\", color=\"%s\"];\n",
			n.ID, n.Data.ResourceType, n.Data.ResourceName, n.Data.BgColor, n.Data.BorderColor,
		))
	}
	sb.WriteString("\n")

	for _, e := range g.Edges {
		if e.Label != "" {
			sb.WriteString(fmt.Sprintf(
				"  \"%s\" -> \"%s\" [label=\"%s\", color=\"%s\"];\n",
				e.Source, e.Target, e.Label, e.Style.Stroke,
			))
			continue
		}
		sb.WriteString(fmt.Sprintf(
			"  \"%s\" -> \"%s\" [color=\"%s\"];\n",
			e.Source, e.Target, e.Style.Stroke,
		))
	}
	sb.WriteString("}\n")
	return sb.String()
}
