package cli

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/render"
	"github.com/Zachkp/folio/internal/timeline"
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Print a tenant's timeline",
	Long: `Lay out a tenant's experiences, studies and projects and print the result.

Examples:
  folio timeline                   # Default tenant, drawn for the terminal
  folio timeline --tenant acme     # Another tenant
  folio timeline --json            # The layout the API serves`,
	RunE: runTimeline,
}

var (
	timelineTenant string
	timelineJSON   bool
	timelineHeight int
	timelineWidth  int
)

func init() {
	rootCmd.AddCommand(timelineCmd)
	timelineCmd.Flags().StringVarP(&timelineTenant, "tenant", "t", "", "Tenant id (unknown ids use the default tenant)")
	timelineCmd.Flags().BoolVar(&timelineJSON, "json", false, "Print the layout as JSON")
	timelineCmd.Flags().IntVar(&timelineHeight, "height", 0, "Track height in pixels (default TIMELINE_HEIGHT)")
	timelineCmd.Flags().IntVarP(&timelineWidth, "width", "w", 0, "Output width in columns (default terminal width)")
}

func runTimeline(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	tenants, err := openTenants(cfg)
	if err != nil {
		return err
	}

	height := cfg.TrackHeight
	if timelineHeight > 0 {
		height = timelineHeight
	}

	tl := timeline.New(clock)
	t := tenants.Get(timelineTenant)
	layout := tl.Layout(t.TimelineEntries(tl.Now()), height)

	out := cmd.OutOrStdout()
	if timelineJSON {
		data, err := sonic.Marshal(layout)
		if err != nil {
			return fmt.Errorf("failed to encode layout: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	width := timelineWidth
	if width <= 0 {
		width = render.DefaultWidth
		if f, ok := out.(*os.File); ok {
			width = render.TerminalWidth(f)
		}
	}
	fmt.Fprintf(out, "%s (%s)\n", t.Profile.FullName(), t.ID)
	return render.Timeline(out, tl, layout, width)
}
