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
	// Color flags
	colorName      string
	colorHex       string
	colorSortOrder int
)

// colorsCmd groups the color master list subcommands
var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "Manage the color master list",
	Long: `Manage the global color master list. Colors are shared across the
whole catalog; making a color valid for a specific type happens in the
tree (or with "voltdesk link color").

Subcommands:
  list   - List colors
  add    - Create a color
  update - Update a color's name or hex code
  delete - Delete a color`,
}

var colorsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List colors",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStore()
		if err != nil {
			return err
		}
		colors, err := s.Colors(cmd.Context())
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(colors)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "ID\tNAME\tHEX\tPARTS\tSTATUS")
		for _, c := range colors {
			hex := ""
			if c.HexCode != nil {
				hex = *c.HexCode
			}
			_, _ = fmt.Fprintf(w, "%d\t%s %s\t%s\t%d\t%s\n",
				c.ID, output.Swatch(hex), c.Name, hex, c.PartCount, output.ActiveIcon(c.IsActive))
		}
		return w.Flush()
	},
}

var colorsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a color",
	Long: `Create a global color.

Examples:
  voltdesk colors add --name White --hex "#FFFFFF"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStore()
		if err != nil {
			return err
		}

		body := api.ColorCreate{Name: colorName, SortOrder: colorSortOrder}
		if colorHex != "" {
			body.HexCode = &colorHex
		}

		c, err := s.AddColor(cmd.Context(), body)
		if err != nil {
			return err
		}
		output.Success("Created color %d: %s", c.ID, c.Name)
		return nil
	},
}

var colorsUpdateCmd = &cobra.Command{
	Use:   "update COLOR_ID",
	Short: "Update a color's name or hex code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid color id %q", args[0])
		}

		body := api.ColorUpdate{}
		if cmd.Flags().Changed("name") {
			body.Name = &colorName
		}
		if cmd.Flags().Changed("hex") {
			body.HexCode = &colorHex
		}
		if cmd.Flags().Changed("sort-order") {
			body.SortOrder = &colorSortOrder
		}
		if body.Name == nil && body.HexCode == nil && body.SortOrder == nil {
			return fmt.Errorf("nothing to update: pass --name, --hex, or --sort-order")
		}

		s, err := newStore()
		if err != nil {
			return err
		}
		c, err := s.SaveColor(cmd.Context(), id, body)
		if err != nil {
			return err
		}
		output.Success("Updated color %d: %s", c.ID, c.Name)
		return nil
	},
}

var colorsDeleteCmd = &cobra.Command{
	Use:   "delete COLOR_ID",
	Short: "Delete a color",
	Long: `Delete a color. The backend rejects the delete while type links or
parts still reference it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid color id %q", args[0])
		}

		s, err := newStore()
		if err != nil {
			return err
		}
		if err := s.DeleteColor(cmd.Context(), id); err != nil {
			if api.IsConflict(err) {
				output.Error("Cannot delete: %v", err)
				return nil
			}
			return err
		}
		output.Success("Deleted color %d", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(colorsCmd)
	colorsCmd.AddCommand(colorsListCmd, colorsAddCmd, colorsUpdateCmd, colorsDeleteCmd)

	colorsAddCmd.Flags().StringVar(&colorName, "name", "", "Color name (required)")
	colorsAddCmd.Flags().StringVar(&colorHex, "hex", "", "Hex code, e.g. #FFFFFF")
	colorsAddCmd.Flags().IntVar(&colorSortOrder, "sort-order", 0, "Sort position")
	_ = colorsAddCmd.MarkFlagRequired("name")

	colorsUpdateCmd.Flags().StringVar(&colorName, "name", "", "New color name")
	colorsUpdateCmd.Flags().StringVar(&colorHex, "hex", "", "New hex code")
	colorsUpdateCmd.Flags().IntVar(&colorSortOrder, "sort-order", 0, "New sort position")
}
