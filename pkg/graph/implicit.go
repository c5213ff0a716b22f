package graph

import (
	"strings"

	log "github.com/sirupsen/logrus"
)

// addImplicitEdges adds relationship edges that commonly exist in a real
// deployment but are not spelled out as references in the text, so the
// rendered diagram shows logical groupings instead of floating nodes:
//
//   - a single VPC "contains" every subnet
//   - a single VPC has internet gateways "attached"
//   - security groups "protect" instances that carry no explicit
//     security-group reference of their own
//
// AddEdge deduplicates, so an implicit edge never shadows an explicit one.
func addImplicitEdges(g *Graph, bodies map[string]string) {
	logger := log.WithField("func", "graph.addImplicitEdges")

	vpcs := g.NodesOfType("aws_vpc")
	subnets := g.NodesOfType("aws_subnet")
	igws := g.NodesOfType("aws_internet_gateway")
	securityGroups := g.NodesOfType("aws_security_group")
	instances := append(g.NodesOfType("aws_instance"), g.NodesOfType("aws_ec2_instance")...)

	added := 0

	// Only unambiguous with exactly one VPC.
	if len(vpcs) == 1 {
		vpc := vpcs[0]
		for _, subnet := range subnets {
			if g.AddEdge(vpc.ID, subnet.ID, "contains") {
				added++
			}
		}
		for _, igw := range igws {
			if g.AddEdge(vpc.ID, igw.ID, "attached") {
				added++
			}
		}
	}

	for _, sg := range securityGroups {
		for _, inst := range instances {
			if strings.Contains(bodies[inst.ID], "aws_security_group.") {
				continue
			}
			if g.AddEdge(sg.ID, inst.ID, "protects") {
				added++
			}
		}
	}

	if added > 0 {
		logger.WithField("count", added).Debug("Added implicit edges")
	}
}
