package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/marshallshelly/voltdesk/cmd/voltdesk/output"
	"github.com/marshallshelly/voltdesk/pkg/api"
	"github.com/marshallshelly/voltdesk/pkg/catalog"
)

// linkCmd groups the type link-table subcommands. Links are what make a
// color valid, or a brand available, for a given type.
var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Link colors and brands to types",
	Long: `Link colors and brands to types.

A part can only exist for a (type, brand, color) coordinate once the
color is linked to the type and the brand is enabled for it.

Subcommands:
  color        - Link colors to a type
  brand        - Enable a brand (or General) for a type
  unlink-color - Remove a type-color link
  unlink-brand - Disable a brand for a type`,
}

var linkColorCmd = &cobra.Command{
	Use:   "color TYPE_ID COLOR_ID...",
	Short: "Link colors to a type",
	Long: `Link one or more colors to a type in a single call. Colors already
linked are skipped.

Examples:
  voltdesk link color 42 3 7 12`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		typeID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid type id %q", args[0])
		}
		colorIDs := make([]int, 0, len(args)-1)
		for _, raw := range args[1:] {
			id, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("invalid color id %q", raw)
			}
			colorIDs = append(colorIDs, id)
		}

		s, err := newStore()
		if err != nil {
			return err
		}
		ty, err := s.ScanForType(cmd.Context(), typeID)
		if err != nil {
			return err
		}
		links, err := s.LinkColors(cmd.Context(), ty.StyleID, typeID, colorIDs)
		if err != nil {
			return err
		}
		output.Success("Linked %d color(s) to type %s", len(links), ty.Name)
		return nil
	},
}

var linkBrandCmd = &cobra.Command{
	Use:   "brand TYPE_ID [BRAND_ID]",
	Short: "Enable a brand for a type",
	Long: `Enable a brand for a type. Omit BRAND_ID (or pass 0) to enable the
General slot for unbranded commodity parts.

Examples:
  voltdesk link brand 42 7     # enable brand 7
  voltdesk link brand 42       # enable the General slot`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		typeID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid type id %q", args[0])
		}
		brandID := catalog.GeneralBrand
		if len(args) == 2 {
			brandID, err = strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid brand id %q", args[1])
			}
		}

		s, err := newStore()
		if err != nil {
			return err
		}
		link, err := s.LinkBrand(cmd.Context(), typeID, brandID)
		if err != nil {
			if api.IsConflict(err) {
				output.Error("Cannot link: %v", err)
				return nil
			}
			return err
		}
		output.Success("Enabled %s for type %d", link.BrandName, typeID)
		return nil
	},
}

var unlinkColorCmd = &cobra.Command{
	Use:   "unlink-color TYPE_ID COLOR_ID",
	Short: "Remove a type-color link",
	Long: `Remove a type-color link. Rejected while a part exists for the
(type, color) pair; delete or move the part first.`,
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
		ty, err := s.ScanForType(cmd.Context(), typeID)
		if err != nil {
			return err
		}
		if err := s.UnlinkColor(cmd.Context(), ty.StyleID, typeID, colorID); err != nil {
			if api.IsConflict(err) {
				output.Error("Cannot unlink: %v", err)
				return nil
			}
			return err
		}
		output.Success("Unlinked color %d from type %s", colorID, ty.Name)
		return nil
	},
}

var unlinkBrandCmd = &cobra.Command{
	Use:   "unlink-brand TYPE_ID [BRAND_ID]",
	Short: "Disable a brand for a type",
	Long: `Disable a brand for a type. Omit BRAND_ID to disable the General
slot. Rejected while parts still reference the (type, brand) pair.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		typeID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid type id %q", args[0])
		}
		brandID := catalog.GeneralBrand
		if len(args) == 2 {
			brandID, err = strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid brand id %q", args[1])
			}
		}

		s, err := newStore()
		if err != nil {
			return err
		}
		if err := s.UnlinkBrand(cmd.Context(), typeID, brandID); err != nil {
			if api.IsConflict(err) {
				output.Error("Cannot unlink: %v", err)
				return nil
			}
			return err
		}
		output.Success("Disabled brand slot %d for type %d", brandID, typeID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(linkCmd)
	linkCmd.AddCommand(linkColorCmd, linkBrandCmd, unlinkColorCmd, unlinkBrandCmd)
}
