package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/marshallshelly/voltdesk/cmd/voltdesk/output"
	"github.com/marshallshelly/voltdesk/pkg/api"
	"github.com/marshallshelly/voltdesk/pkg/catalog"
)

var quickCreateBrandID int

// quickCreateCmd creates a part from a (type, brand, color) coordinate
var quickCreateCmd = &cobra.Command{
	Use:   "quick-create TYPE_ID COLOR_ID",
	Short: "Create a part from a tree coordinate",
	Long: `Create a part directly from a (type, brand, color) coordinate. The
backend derives the part's name, code, and hierarchy placement; nothing
else is entered. The color must already be linked to the type.

Branded quick-created parts start without a manufacturer part number;
fill it in later ("voltdesk parts pending" lists them).

Examples:
  voltdesk quick-create 42 7              # General part, type 42, color 7
  voltdesk quick-create 42 7 --brand 3    # branded part`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		typeID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid type id %q", args[0])
		}
		colorID, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid color id %q", args[1])
		}

		s, err := newStore()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		// Resolve ancestry so the invalidation set can reach the
		// style's count badges.
		ty, err := s.ScanForType(ctx, typeID)
		if err != nil {
			return fmt.Errorf("resolve type %d: %w", typeID, err)
		}
		st, err := s.ScanForStyle(ctx, ty.StyleID)
		if err != nil {
			return fmt.Errorf("resolve style %d: %w", ty.StyleID, err)
		}

		brand := catalog.BrandNode(st.CategoryID, ty.StyleID, typeID, quickCreateBrandID)
		leaf := catalog.ColorLeaf(brand, colorID, 0)

		part, err := s.QuickCreate(ctx, leaf)
		if err != nil {
			if errors.Is(err, catalog.ErrColorNotLinked) {
				output.Error("Color %d is not linked to type %s; link it first", colorID, ty.Name)
				return nil
			}
			if api.IsConflict(err) {
				output.Error("%v", err)
				return nil
			}
			return err
		}

		output.Success("Created part %d: %s", part.ID, part.Name)
		if part.PartType == "specific" && part.ManufacturerPartNumber == nil {
			output.Warning("Manufacturer part number pending")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(quickCreateCmd)
	quickCreateCmd.Flags().IntVar(&quickCreateBrandID, "brand", catalog.GeneralBrand,
		"Brand id (omit for a General part)")
}
