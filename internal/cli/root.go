// Package cli implements the folio command line: the HTTP server plus a
// couple of commands for inspecting tenant content from a terminal.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/tenant"
	"github.com/Zachkp/folio/internal/timeline"
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Multi-tenant CV content server",
	Long: `folio serves CV content (experiences, studies, projects) for one or more
tenants, together with a precomputed timeline layout.

Run "folio serve" to start the API.`,
	SilenceUsage: true,
}

// clock is replaced in tests.
var clock timeline.Clock = timeline.SystemClock

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openTenants(cfg config.Config) (*tenant.Store, error) {
	store, err := tenant.Open(cfg.TenantsFile, cfg.DefaultTenant)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenants: %w", err)
	}
	return store, nil
}
