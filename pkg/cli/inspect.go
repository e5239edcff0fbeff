package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/schemacanvas/schemacanvas/pkg/sdl"
)

// NewInspectCmd builds the `inspect` command: a colored summary of the
// parsed document.
func NewInspectCmd() *cobra.Command {
	var schemaFile string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print a summary of the parsed schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(schemaFile)
			if err != nil {
				return fmt.Errorf("read schema: %w", err)
			}
			doc, err := sdl.Parse(string(data))
			if err != nil {
				return fmt.Errorf("parse schema: %w", err)
			}
			printSummary(cmd.OutOrStdout(), doc)
			return nil
		},
	}

	cmd.Flags().StringVar(&schemaFile, "schema", "prisma/schema.prisma", "Schema path")
	return cmd
}

func printSummary(w io.Writer, doc *sdl.Document) {
	heading := color.New(color.FgCyan, color.Bold)
	dim := color.New(color.Faint)

	if doc.Datasource.Provider != "" {
		heading.Fprintln(w, "datasource")
		fmt.Fprintf(w, "  provider: %s\n", doc.Datasource.Provider)
		if doc.Datasource.URL != "" {
			fmt.Fprintf(w, "  url: %s\n", doc.Datasource.URL)
		}
	}
	if doc.Generator.Provider != "" {
		heading.Fprintln(w, "generator")
		fmt.Fprintf(w, "  provider: %s\n", doc.Generator.Provider)
		if len(doc.Generator.PreviewFeatures) > 0 {
			fmt.Fprintf(w, "  previewFeatures: %s\n", strings.Join(doc.Generator.PreviewFeatures, ", "))
		}
	}

	for _, m := range doc.Models {
		heading.Fprintf(w, "model %s\n", m.Name)
		for _, f := range m.Fields {
			marker := ""
			if f.IsList {
				marker = "[]"
			}
			if !f.IsRequired {
				marker += "?"
			}
			line := fmt.Sprintf("  %s %s%s", f.Name, f.Type, marker)
			if !sdl.IsScalarType(f.Type) {
				line += dim.Sprint("  (reference)")
			}
			fmt.Fprintln(w, line)
		}
	}
	for _, e := range doc.Enums {
		heading.Fprintf(w, "enum %s\n", e.Name)
		fmt.Fprintf(w, "  %s\n", strings.Join(e.Values, ", "))
	}
}
