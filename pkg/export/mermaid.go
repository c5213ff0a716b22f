package export

import (
	"fmt"
	"strings"

	"github.com/HMetcalfeW/terracarta/pkg/layout"
)

// sanitizeMermaidID replaces characters that are invalid in Mermaid node
// identifiers (/, -, .) with underscores.
func sanitizeMermaidID(id string) string {
	r := strings.NewReplacer("/", "_", "-", "_", ".", "_")
	return r.Replace(id)
}

// GenerateMermaid produces a Mermaid flowchart (left-to-right) from the
// positioned graph. Each node uses a sanitized ID with the original
// "type.name" shown as a label in square brackets. Edge labels show the
// referenced attribute or implicit relationship.
func GenerateMermaid(g *layout.Graph) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for _, e := range g.Edges {
		srcID := sanitizeMermaidID(e.Source)
		tgtID := sanitizeMermaidID(e.Target)
		if e.Label != "" {
			sb.WriteString(fmt.Sprintf(
				"    %s[\"%s\"] --> |%s| %s[\"%s\"]\n",
				srcID, e.Source, e.Label, tgtID, e.Target,
			))
			continue
		}
		sb.WriteString(fmt.Sprintf(
			"    %s[\"%s\"] --> %s[\"%s\"]\n",
			srcID, e.Source, tgtID, e.Target,
		))
	}
	return sb.String()
}
