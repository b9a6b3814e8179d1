package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/marshallshelly/voltdesk/cmd/voltdesk/output"
	"github.com/marshallshelly/voltdesk/pkg/api"
)

var (
	// Catalog flags
	catalogName        string
	catalogDescription string
	catalogSortOrder   int
	catalogParentID    int
)

// catalogCmd groups the hierarchy management subcommands
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the catalog hierarchy",
	Long: `Manage the catalog hierarchy: categories, styles, and types.

Subcommands:
  categories - List top-level categories
  styles     - List styles under a category
  types      - List types under a style
  add        - Create a category, style, or type
  rename     - Rename a category, style, or type
  activate   - Toggle a node's active flag
  delete     - Delete a hierarchy node`,
}

var catalogCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List top-level categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStore()
		if err != nil {
			return err
		}
		cats, err := s.Categories(cmd.Context())
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(cats)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "ID\tNAME\tSTYLES\tPARTS\tSTATUS")
		for _, c := range cats {
			_, _ = fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%s\n",
				c.ID, c.Name, c.StyleCount, c.PartCount, output.ActiveIcon(c.IsActive))
		}
		return w.Flush()
	},
}

var catalogStylesCmd = &cobra.Command{
	Use:   "styles CATEGORY_ID",
	Short: "List styles under a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		categoryID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid category id %q", args[0])
		}
		s, err := newStore()
		if err != nil {
			return err
		}
		styles, err := s.Styles(cmd.Context(), categoryID)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(styles)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "ID\tNAME\tTYPES\tPARTS\tSTATUS")
		for _, st := range styles {
			_, _ = fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%s\n",
				st.ID, st.Name, st.TypeCount, st.PartCount, output.ActiveIcon(st.IsActive))
		}
		return w.Flush()
	},
}

var catalogTypesCmd = &cobra.Command{
	Use:   "types STYLE_ID",
	Short: "List types under a style",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		styleID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid style id %q", args[0])
		}
		s, err := newStore()
		if err != nil {
			return err
		}
		types, err := s.Types(cmd.Context(), styleID)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(types)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "ID\tNAME\tCOLORS\tPARTS\tSTATUS")
		for _, ty := range types {
			_, _ = fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%s\n",
				ty.ID, ty.Name, ty.ColorCount, ty.PartCount, output.ActiveIcon(ty.IsActive))
		}
		return w.Flush()
	},
}

var catalogAddCmd = &cobra.Command{
	Use:   "add {category|style|type}",
	Short: "Create a hierarchy node",
	Long: `Create a category, style, or type.

Examples:
  voltdesk catalog add category --name "Wiring Devices"
  voltdesk catalog add style --parent 3 --name "Decora"
  voltdesk catalog add type --parent 12 --name "Single Pole Switch"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStore()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		var desc *string
		if catalogDescription != "" {
			desc = &catalogDescription
		}

		switch args[0] {
		case "category":
			cat, err := s.AddCategory(ctx, api.CategoryCreate{
				Name:        catalogName,
				Description: desc,
				SortOrder:   catalogSortOrder,
			})
			if err != nil {
				return err
			}
			output.Success("Created category %d: %s", cat.ID, cat.Name)

		case "style":
			if catalogParentID <= 0 {
				return fmt.Errorf("--parent CATEGORY_ID is required for styles")
			}
			st, err := s.AddStyle(ctx, api.StyleCreate{
				CategoryID:  catalogParentID,
				Name:        catalogName,
				Description: desc,
				SortOrder:   catalogSortOrder,
			})
			if err != nil {
				return err
			}
			output.Success("Created style %d: %s", st.ID, st.Name)

		case "type":
			if catalogParentID <= 0 {
				return fmt.Errorf("--parent STYLE_ID is required for types")
			}
			// The style's category is needed for cache bookkeeping; the
			// scan resolves it when the CLI caller has no tree context.
			st, err := s.ScanForStyle(ctx, catalogParentID)
			if err != nil {
				return fmt.Errorf("resolve parent style %d: %w", catalogParentID, err)
			}
			ty, err := s.AddType(ctx, st.CategoryID, api.TypeCreate{
				StyleID:     catalogParentID,
				Name:        catalogName,
				Description: desc,
				SortOrder:   catalogSortOrder,
			})
			if err != nil {
				return err
			}
			output.Success("Created type %d: %s", ty.ID, ty.Name)

		default:
			return fmt.Errorf("unknown node kind %q (want category, style, or type)", args[0])
		}
		return nil
	},
}

var catalogRenameCmd = &cobra.Command{
	Use:   "rename {category|style|type} ID NEW_NAME",
	Short: "Rename a hierarchy node",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid id %q", args[1])
		}
		name := args[2]

		s, err := newStore()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		switch args[0] {
		case "category":
			cat, err := s.SaveCategory(ctx, id, api.CategoryUpdate{Name: &name})
			if err != nil {
				return err
			}
			output.Success("Renamed category %d to %s", cat.ID, cat.Name)

		case "style":
			st, err := s.ScanForStyle(ctx, id)
			if err != nil {
				return err
			}
			st, err = s.SaveStyle(ctx, st.CategoryID, id, api.StyleUpdate{Name: &name})
			if err != nil {
				return err
			}
			output.Success("Renamed style %d to %s", st.ID, st.Name)

		case "type":
			ty, err := s.ScanForType(ctx, id)
			if err != nil {
				return err
			}
			parent, err := s.ScanForStyle(ctx, ty.StyleID)
			if err != nil {
				return err
			}
			ty, err = s.SaveType(ctx, parent.CategoryID, ty.StyleID, id, api.TypeUpdate{Name: &name})
			if err != nil {
				return err
			}
			output.Success("Renamed type %d to %s", ty.ID, ty.Name)

		default:
			return fmt.Errorf("unknown node kind %q", args[0])
		}
		return nil
	},
}

var catalogActivateCmd = &cobra.Command{
	Use:   "activate {category|style|type} ID {on|off}",
	Short: "Toggle a node's active flag",
	Long: `Toggle a node's active flag without touching its other fields.
Deactivated nodes stay visible in the tree, rendered dimmed.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid id %q", args[1])
		}
		var active bool
		switch args[2] {
		case "on":
			active = true
		case "off":
			active = false
		default:
			return fmt.Errorf("state must be on or off, got %q", args[2])
		}

		s, err := newStore()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		switch args[0] {
		case "category":
			if _, err := s.SetCategoryActive(ctx, id, active); err != nil {
				return err
			}
		case "style":
			st, err := s.ScanForStyle(ctx, id)
			if err != nil {
				return err
			}
			if _, err := s.SetStyleActive(ctx, st.CategoryID, id, active); err != nil {
				return err
			}
		case "type":
			ty, err := s.ScanForType(ctx, id)
			if err != nil {
				return err
			}
			if _, err := s.SetTypeActive(ctx, ty.StyleID, id, active); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown node kind %q", args[0])
		}

		output.Success("Set %s %d active=%v", args[0], id, active)
		return nil
	},
}

var catalogDeleteCmd = &cobra.Command{
	Use:   "delete {category|style|type} ID",
	Short: "Delete a hierarchy node",
	Long: `Delete a category, style, or type. The backend rejects the delete
while children or parts still exist underneath; nothing is cascaded.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid id %q", args[1])
		}

		s, err := newStore()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		switch args[0] {
		case "category":
			err = s.DeleteCategory(ctx, id)
		case "style":
			var st api.Style
			st, err = s.ScanForStyle(ctx, id)
			if err == nil {
				err = s.DeleteStyle(ctx, st.CategoryID, id)
			}
		case "type":
			var ty api.Type
			ty, err = s.ScanForType(ctx, id)
			if err == nil {
				var parent api.Style
				parent, err = s.ScanForStyle(ctx, ty.StyleID)
				if err == nil {
					err = s.DeleteType(ctx, parent.CategoryID, ty.StyleID, id)
				}
			}
		default:
			return fmt.Errorf("unknown node kind %q", args[0])
		}
		if err != nil {
			if api.IsConflict(err) {
				output.Error("Cannot delete: %v", err)
				return nil
			}
			return err
		}

		output.Success("Deleted %s %d", args[0], id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(
		catalogCategoriesCmd,
		catalogStylesCmd,
		catalogTypesCmd,
		catalogAddCmd,
		catalogRenameCmd,
		catalogActivateCmd,
		catalogDeleteCmd,
	)

	catalogAddCmd.Flags().StringVar(&catalogName, "name", "", "Node name (required)")
	catalogAddCmd.Flags().StringVar(&catalogDescription, "description", "", "Optional description")
	catalogAddCmd.Flags().IntVar(&catalogSortOrder, "sort-order", 0, "Sort position within the parent")
	catalogAddCmd.Flags().IntVar(&catalogParentID, "parent", 0, "Parent id (category id for styles, style id for types)")
	_ = catalogAddCmd.MarkFlagRequired("name")
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
