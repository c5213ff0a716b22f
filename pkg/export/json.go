// Package export serializes a positioned graph for consumers outside the
// rendering widget: indented JSON for pipelines, DOT and Mermaid for quick
// inspection, and PNG/SVG via the GraphViz dot binary.
package export

import (
	"encoding/json"

	"github.com/HMetcalfeW/terracarta/pkg/layout"
)

// GenerateJSON produces an indented JSON string of the positioned graph,
// suitable for consumption by jq, custom visualizers, or CI pipelines.
// Node and edge order is deterministic, so identical input yields
// byte-identical output.
func GenerateJSON(g *layout.Graph) string {
	data, _ := json.MarshalIndent(g, "", "  ")
	return string(data)
}
