package cli

import (
	"fmt"
	"net/http"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/schemacanvas/schemacanvas/internal/server"
	"github.com/schemacanvas/schemacanvas/internal/store"
	"github.com/schemacanvas/schemacanvas/pkg/config"
)

// NewServeCmd builds the `serve` command: run the /schema endpoint over a
// file store, or over Postgres when DATABASE_URL is set.
func NewServeCmd() *cobra.Command {
	var (
		configFile string
		listen     string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the schema document over HTTP",
		Long: `Run the /schema endpoint the visual editor loads from and saves to.

The document is backed by the local schema file, or by Postgres when
DATABASE_URL is set in the environment or a .env file.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			if listen != "" {
				cfg.ListenAddr = listen
			}

			var s store.Store
			if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
				db, err := store.Connect(dsn)
				if err != nil {
					return fmt.Errorf("open db: %w", err)
				}
				defer db.Close()
				pg := store.NewPostgresStore(db)
				if err := pg.EnsureTable(cmd.Context()); err != nil {
					return err
				}
				s = pg
				color.Cyan("Serving schema from Postgres on %s", cfg.ListenAddr)
			} else {
				s = store.NewFileStore(cfg.SchemaPath)
				color.Cyan("Serving %s on %s", cfg.SchemaPath, cfg.ListenAddr)
			}

			mux := http.NewServeMux()
			server.RegisterRoutes(mux, s)
			return http.ListenAndServe(cfg.ListenAddr, mux)
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "Project file (default schemacanvas.yaml)")
	cmd.Flags().StringVar(&listen, "listen", "", "Listen address override")
	return cmd
}
