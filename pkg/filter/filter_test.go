package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HMetcalfeW/terracarta/pkg/filter"
	"github.com/HMetcalfeW/terracarta/pkg/graph"
)

func TestApply_HidesCatalogNoise(t *testing.T) {
	g := graph.New()
	g.AddNode(&graph.Node{ID: "random_password.db", Type: "random_password", Name: "db"})
	g.AddNode(&graph.Node{ID: "aws_db_instance.main", Type: "aws_db_instance", Name: "main"})
	g.AddEdge("random_password.db", "aws_db_instance.main", "result")

	out := filter.Apply(g, nil, nil)

	require.Len(t, out.Nodes, 1)
	assert.Equal(t, "aws_db_instance.main", out.Nodes[0].ID)
	assert.Empty(t, out.Edges, "edges into hidden nodes are dropped, not bridged")
}

func TestApply_ChainThroughHiddenNodeIsDropped(t *testing.T) {
	g := graph.New()
	g.AddNode(&graph.Node{ID: "aws_kms_key.main", Type: "aws_kms_key", Name: "main"})
	g.AddNode(&graph.Node{ID: "tls_private_key.ca", Type: "tls_private_key", Name: "ca"})
	g.AddNode(&graph.Node{ID: "aws_instance.web", Type: "aws_instance", Name: "web"})
	g.AddEdge("aws_kms_key.main", "tls_private_key.ca", "")
	g.AddEdge("tls_private_key.ca", "aws_instance.web", "")

	out := filter.Apply(g, nil, nil)

	assert.Len(t, out.Nodes, 2)
	assert.Empty(t, out.Edges)
	assert.False(t, out.HasEdge("aws_kms_key.main", "aws_instance.web"))
}

func TestApply_ExcludeTypesCaseInsensitive(t *testing.T) {
	g := graph.New()
	g.AddNode(&graph.Node{ID: "aws_instance.web", Type: "aws_instance", Name: "web"})
	g.AddNode(&graph.Node{ID: "aws_vpc.main", Type: "aws_vpc", Name: "main"})

	out := filter.Apply(g, []string{"AWS_Instance"}, nil)

	require.Len(t, out.Nodes, 1)
	assert.Equal(t, "aws_vpc.main", out.Nodes[0].ID)
}

func TestApply_ExcludeNamesExactMatch(t *testing.T) {
	g := graph.New()
	g.AddNode(&graph.Node{ID: "aws_instance.web", Type: "aws_instance", Name: "web"})
	g.AddNode(&graph.Node{ID: "aws_instance.webserver", Type: "aws_instance", Name: "webserver"})

	out := filter.Apply(g, nil, []string{"web"})

	require.Len(t, out.Nodes, 1)
	assert.Equal(t, "aws_instance.webserver", out.Nodes[0].ID)
}

func TestApply_ClearsOrphanedParent(t *testing.T) {
	g := graph.New()
	g.AddNode(&graph.Node{ID: "aws_vpc.main", Type: "aws_vpc", Name: "main"})
	g.AddNode(&graph.Node{ID: "aws_instance.web", Type: "aws_instance", Name: "web", ParentID: "aws_vpc.main"})

	out := filter.Apply(g, []string{"aws_vpc"}, nil)

	require.Len(t, out.Nodes, 1)
	assert.Equal(t, "", out.Nodes[0].ParentID)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	g := graph.New()
	g.AddNode(&graph.Node{ID: "aws_vpc.main", Type: "aws_vpc", Name: "main"})
	g.AddNode(&graph.Node{ID: "aws_instance.web", Type: "aws_instance", Name: "web", ParentID: "aws_vpc.main"})
	g.SkippedBlocks = 3

	out := filter.Apply(g, []string{"aws_vpc"}, nil)
	out.Nodes[0].Name = "mutated"

	assert.Equal(t, "web", g.Node("aws_instance.web").Name)
	assert.Equal(t, "aws_vpc.main", g.Node("aws_instance.web").ParentID)
	assert.Equal(t, 3, out.SkippedBlocks, "advisory skip count is carried through")
}

func TestApply_NoExclusionsKeepsEverything(t *testing.T) {
	g := graph.New()
	g.AddNode(&graph.Node{ID: "aws_vpc.main", Type: "aws_vpc", Name: "main"})
	g.AddNode(&graph.Node{ID: "aws_instance.web", Type: "aws_instance", Name: "web"})
	g.AddEdge("aws_vpc.main", "aws_instance.web", "id")

	out := filter.Apply(g, nil, nil)

	assert.Len(t, out.Nodes, 2)
	assert.Len(t, out.Edges, 1)
}
