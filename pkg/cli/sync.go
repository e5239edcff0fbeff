package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/schemacanvas/schemacanvas/internal/store"
	"github.com/schemacanvas/schemacanvas/pkg/config"
)

// NewPullCmd builds the `pull` command: fetch the document from the remote
// endpoint into the local schema file.
func NewPullCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Fetch the schema from the remote endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			remote := store.NewHTTPStore(cfg.Endpoint)
			local := store.NewFileStore(cfg.SchemaPath)

			text, err := remote.Load(cmd.Context())
			if err != nil {
				return err
			}
			if err := local.Save(cmd.Context(), text); err != nil {
				return err
			}
			color.Green("✓ Pulled schema into %s", cfg.SchemaPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "Project file (default schemacanvas.yaml)")
	return cmd
}

// NewPushCmd builds the `push` command: upload the local schema file to the
// remote endpoint.
func NewPushCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Upload the local schema to the remote endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			remote := store.NewHTTPStore(cfg.Endpoint)
			local := store.NewFileStore(cfg.SchemaPath)

			text, err := local.Load(cmd.Context())
			if err != nil {
				return err
			}
			if err := remote.Save(cmd.Context(), text); err != nil {
				return err
			}
			color.Green("✓ Pushed %s to %s", cfg.SchemaPath, cfg.Endpoint)
			return nil
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "Project file (default schemacanvas.yaml)")
	return cmd
}
