package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/config"
)

var tenantsCmd = &cobra.Command{
	Use:   "tenants",
	Short: "List configured tenants",
	RunE:  runTenants,
}

func init() {
	rootCmd.AddCommand(tenantsCmd)
}

func runTenants(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	tenants, err := openTenants(cfg)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDOMAIN\t")
	for _, s := range tenants.List() {
		marker := ""
		if s.ID == tenants.DefaultID() {
			marker = " (default)"
		}
		fmt.Fprintf(w, "%s%s\t%s\t%s\t\n", s.ID, marker, s.Name, s.Domain)
	}
	return w.Flush()
}
