// Package engine composes the pipeline stages into a pure function from one
// input (source text or a pre-built graph document) to one positioned
// graph: build → filter → level assignment → layout. Each invocation is
// independent and shares nothing but the read-only catalog, so concurrent
// calls on different inputs need no locking.
package engine

import (
	"github.com/HMetcalfeW/terracarta/pkg/filter"
	"github.com/HMetcalfeW/terracarta/pkg/graph"
	"github.com/HMetcalfeW/terracarta/pkg/layout"
)

// Options tunes one engine invocation.
type Options struct {
	// ExcludeTypes and ExcludeNames hide additional resources on top of the
	// catalog's own noise list.
	ExcludeTypes []string
	ExcludeNames []string

	// Layout overrides the spacing constants.
	Layout layout.Config
}

// DefaultOptions returns the options used when the caller has no opinion.
func DefaultOptions() Options {
	return Options{Layout: layout.DefaultConfig()}
}

// FromSource runs the full pipeline on Terraform-style source text. It
// never fails: malformed input degrades to whatever complete blocks the
// parser could salvage, and empty input yields an empty positioned graph.
func FromSource(src string, opts Options) *layout.Graph {
	return run(graph.FromSource(src), opts)
}

// FromPrebuilt runs the pipeline on a pre-built node/edge document (JSON or
// YAML), skipping extraction. The only error condition is a document that
// cannot be decoded at all; dangling edges and parents inside a decodable
// document are dropped with diagnostics, never returned as errors.
func FromPrebuilt(data []byte, opts Options) (*layout.Graph, error) {
	g, err := graph.FromPrebuilt(data)
	if err != nil {
		return nil, err
	}
	return run(g, opts), nil
}

func run(g *graph.Graph, opts Options) *layout.Graph {
	visible := filter.Apply(g, opts.ExcludeTypes, opts.ExcludeNames)
	layout.AssignLevels(visible)
	return layout.Finalize(visible, opts.Layout)
}
