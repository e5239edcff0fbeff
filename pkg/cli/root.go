package cli

import (
	"github.com/spf13/cobra"
)

func version() string {
	return "v0.3.0"
}

// NewVersionCmd builds the `version` command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(version())
		},
	}
}

// NewRootCmd builds the top-level `schemacanvas` command.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "schemacanvas",
		Short: "schemacanvas — schema editing, formatting and sync",
		Long: `schemacanvas converts between schema definition text and the structured
document the visual editor works on.

Examples:

  schemacanvas fmt --schema prisma/schema.prisma --write
  schemacanvas inspect --schema prisma/schema.prisma
  schemacanvas serve --listen :8080
  schemacanvas pull
  schemacanvas push
`,
	}
	root.AddCommand(NewFmtCmd())
	root.AddCommand(NewInspectCmd())
	root.AddCommand(NewServeCmd())
	root.AddCommand(NewPullCmd())
	root.AddCommand(NewPushCmd())
	root.AddCommand(NewVersionCmd())
	return root
}
