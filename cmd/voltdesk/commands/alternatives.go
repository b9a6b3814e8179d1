package commands

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/marshallshelly/voltdesk/cmd/voltdesk/output"
	"github.com/marshallshelly/voltdesk/pkg/api"
)

var (
	// Alternative flags
	altRelationship string
	altPreferred    bool
	altNotes        string
)

// altCmd groups the alternative part link subcommands
var altCmd = &cobra.Command{
	Use:   "alternatives",
	Short: "Manage alternative part links",
	Long: `Manage alternative part links. A link is undirected: adding an
alternative to one part makes each part appear in the other's list.
Relationships are substitute, upgrade, or compatible.

Subcommands:
  list   - List a part's alternatives
  add    - Link two parts
  update - Change a link's relationship, preference, or notes
  remove - Remove a link`,
}

var altListCmd = &cobra.Command{
	Use:   "list PART_ID",
	Short: "List a part's alternatives",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		partID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid part id %q", args[0])
		}

		s, err := newStore()
		if err != nil {
			return err
		}
		views, err := s.Alternatives(cmd.Context(), partID)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(views)
		}
		if len(views) == 0 {
			output.Info("No alternatives linked")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "LINK\tPART\tNAME\tBRAND\tRELATIONSHIP\tPREFERRED\tNOTES")
		for _, v := range views {
			preferred := ""
			if v.Preferred {
				preferred = "★"
			}
			_, _ = fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\t%s\n",
				v.LinkID, v.OtherPartID, v.OtherName, v.OtherBrandName,
				v.Relationship, preferred, v.Notes)
		}
		return w.Flush()
	},
}

var altAddCmd = &cobra.Command{
	Use:   "add PART_ID OTHER_PART_ID",
	Short: "Link two parts as alternatives",
	Long: `Link two parts as alternatives. The link is undirected; the pair can
only be linked once, in either direction.

Examples:
  voltdesk alternatives add 512 890 --relationship substitute --preferred
  voltdesk alternatives add 512 891 --relationship upgrade --notes "20A rated"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		partID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid part id %q", args[0])
		}
		otherID, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid part id %q", args[1])
		}

		s, err := newStore()
		if err != nil {
			return err
		}

		body := api.AlternativeCreate{
			AlternativePartID: otherID,
			Relationship:      altRelationship,
		}
		if altPreferred {
			body.Preference = 1
		}
		if altNotes != "" {
			body.Notes = &altNotes
		}

		row, err := s.LinkAlternative(cmd.Context(), partID, body)
		if err != nil {
			if api.IsConflict(err) {
				output.Error("Cannot link: %v", err)
				return nil
			}
			return err
		}
		output.Success("Linked %s ↔ %s (%s)", row.PartName, row.AlternativeName, row.Relationship)
		return nil
	},
}

var altUpdateCmd = &cobra.Command{
	Use:   "update PART_ID LINK_ID",
	Short: "Change a link's relationship, preference, or notes",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		partID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid part id %q", args[0])
		}
		linkID, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid link id %q", args[1])
		}

		body := api.AlternativeUpdate{}
		if cmd.Flags().Changed("relationship") {
			body.Relationship = &altRelationship
		}
		if cmd.Flags().Changed("preferred") {
			pref := 0
			if altPreferred {
				pref = 1
			}
			body.Preference = &pref
		}
		if cmd.Flags().Changed("notes") {
			body.Notes = &altNotes
		}
		if body.Relationship == nil && body.Preference == nil && body.Notes == nil {
			return fmt.Errorf("nothing to update: pass --relationship, --preferred, or --notes")
		}

		s, err := newStore()
		if err != nil {
			return err
		}
		row, err := s.SaveAlternative(cmd.Context(), partID, linkID, body)
		if err != nil {
			return err
		}
		output.Success("Updated link %d (%s)", row.ID, row.Relationship)
		return nil
	},
}

var altRemoveCmd = &cobra.Command{
	Use:   "remove PART_ID LINK_ID",
	Short: "Remove an alternative link",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		partID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid part id %q", args[0])
		}
		linkID, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid link id %q", args[1])
		}

		s, err := newStore()
		if err != nil {
			return err
		}
		if err := s.UnlinkAlternative(cmd.Context(), partID, linkID); err != nil {
			return err
		}
		output.Success("Removed link %d", linkID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(altCmd)
	altCmd.AddCommand(altListCmd, altAddCmd, altUpdateCmd, altRemoveCmd)

	altAddCmd.Flags().StringVar(&altRelationship, "relationship", api.RelationshipSubstitute,
		"Relationship: substitute, upgrade, or compatible")
	altAddCmd.Flags().BoolVar(&altPreferred, "preferred", false, "Mark as the preferred alternative")
	altAddCmd.Flags().StringVar(&altNotes, "notes", "", "Notes on the link")

	altUpdateCmd.Flags().StringVar(&altRelationship, "relationship", "", "New relationship")
	altUpdateCmd.Flags().BoolVar(&altPreferred, "preferred", false, "Preferred flag")
	altUpdateCmd.Flags().StringVar(&altNotes, "notes", "", "New notes")
}
