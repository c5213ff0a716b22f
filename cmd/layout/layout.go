// Package layout implements the layout subcommand: it reads either
// Terraform-style source text or a pre-built graph document, runs the
// extraction and layout engine, and writes the positioned graph in the
// requested format.
package layout

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/HMetcalfeW/terracarta/pkg/engine"
	"github.com/HMetcalfeW/terracarta/pkg/export"
	"github.com/HMetcalfeW/terracarta/pkg/layout"
)

// LayoutCmd represents the layout subcommand.
var LayoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Extract a resource graph and compute a positioned layout",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.WithFields(log.Fields{
			"func": "layout",
			"args": args,
		})

		inputPath := viper.GetString("input")
		format := viper.GetString("format")
		outputPath := viper.GetString("output")

		if inputPath == "" {
			return fmt.Errorf("no input file provided; please specify --input")
		}

		absPath, err := filepath.Abs(inputPath)
		if err != nil {
			return fmt.Errorf("failed to get absolute path: %w", err)
		}
		data, err := os.ReadFile(absPath)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}

		opts := engine.DefaultOptions()
		opts.ExcludeTypes = viper.GetStringSlice("exclude-type")
		opts.ExcludeNames = viper.GetStringSlice("exclude-name")

		var positioned *layout.Graph
		if isPrebuilt(absPath) {
			positioned, err = engine.FromPrebuilt(data, opts)
			if err != nil {
				return fmt.Errorf("failed to load pre-built graph: %w", err)
			}
		} else {
			positioned = engine.FromSource(string(data), opts)
		}

		logger.WithFields(log.Fields{
			"nodes":  len(positioned.Nodes),
			"edges":  len(positioned.Edges),
			"format": format,
		}).Info("Computed layout")

		var out []byte
		switch format {
		case "json", "":
			out = []byte(export.GenerateJSON(positioned))
		case "dot":
			out = []byte(export.GenerateDOT(positioned))
		case "mermaid":
			out = []byte(export.GenerateMermaid(positioned))
		case "png", "svg":
			if outputPath == "" {
				return fmt.Errorf("binary format %q requires --output", format)
			}
			out, err = export.RenderImage(positioned, format)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("unsupported format %q (json, dot, mermaid, png, svg)", format)
		}

		if outputPath != "" {
			if err := os.WriteFile(outputPath, out, 0o644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			logger.WithField("path", outputPath).Info("Wrote output file")
			return nil
		}

		cmd.Println(string(out))
		return nil
	},
}

// isPrebuilt decides the builder mode from the input file extension:
// graph documents come in as .json/.yaml/.yml, anything else is treated
// as source text.
func isPrebuilt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func init() {
	const funcName = "layout.init"
	log.WithField("func", funcName).Debug("initializing terracarta subcommand layout")

	LayoutCmd.Flags().StringP("input", "i", "", "Path to Terraform source text or a pre-built graph (.json/.yaml)")
	LayoutCmd.Flags().StringP("format", "f", "json", "Output format: json, dot, mermaid, png, svg")
	LayoutCmd.Flags().StringP("output", "o", "", "Output file path (stdout if omitted; required for png/svg)")
	LayoutCmd.Flags().StringSlice("exclude-type", nil, "Resource types to exclude from the graph")
	LayoutCmd.Flags().StringSlice("exclude-name", nil, "Resource names to exclude from the graph")

	for _, flag := range []string{"input", "format", "output", "exclude-type", "exclude-name"} {
		if err := viper.BindPFlag(flag, LayoutCmd.Flags().Lookup(flag)); err != nil {
			log.WithError(err).Fatalf("failed to bind the flag `%s`", flag)
		}
	}
}
