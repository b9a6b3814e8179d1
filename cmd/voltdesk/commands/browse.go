package commands

import (
	"github.com/spf13/cobra"

	"github.com/marshallshelly/voltdesk/cmd/voltdesk/tui"
)

// browseCmd launches the interactive catalog browser
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog tree interactively",
	Long: `Browse the catalog tree interactively.

The tree loads lazily: expanding a node fetches its children on first
use and serves repeats from the session cache. Color leaves with no
part offer quick-create in place.

Keys:
  ↑/↓        move
  enter      expand/collapse, open part detail, or quick-create
  e          rename the selected category, style, or type
  d          delete the selected part
  r          refresh the selected node
  R          reload everything
  q          quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStore()
		if err != nil {
			return err
		}
		return tui.RunBrowseUI(s)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
