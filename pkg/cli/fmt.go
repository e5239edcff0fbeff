package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/schemacanvas/schemacanvas/pkg/sdl"
)

// NewFmtCmd builds the `fmt` command: parse a schema file and rewrite it in
// the generator's canonical form.
func NewFmtCmd() *cobra.Command {
	var (
		schemaFile string
		write      bool
		check      bool
	)

	cmd := &cobra.Command{
		Use:   "fmt",
		Short: "Canonicalize a schema file",
		Long: `Parse a schema file and regenerate it in canonical form.

Examples:
  schemacanvas fmt                      # print the canonical text
  schemacanvas fmt --write              # rewrite the file in place
  schemacanvas fmt --check              # exit nonzero when not canonical
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(schemaFile)
			if err != nil {
				return fmt.Errorf("read schema: %w", err)
			}
			doc, err := sdl.Parse(string(data))
			if err != nil {
				return fmt.Errorf("parse schema: %w", err)
			}
			canonical := sdl.Generate(doc)

			switch {
			case check:
				if canonical != string(data) {
					color.Yellow("✗ %s is not canonical", schemaFile)
					os.Exit(1)
				}
				color.Green("✓ %s is canonical", schemaFile)
			case write:
				if err := os.WriteFile(schemaFile, []byte(canonical), 0644); err != nil {
					return fmt.Errorf("write schema: %w", err)
				}
				color.Green("✓ Rewrote %s", schemaFile)
			default:
				cmd.Print(canonical)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&schemaFile, "schema", "prisma/schema.prisma", "Schema path")
	cmd.Flags().BoolVar(&write, "write", false, "Rewrite the file in place")
	cmd.Flags().BoolVar(&check, "check", false, "Only check whether the file is canonical")
	return cmd
}
