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
	// Brand flags
	brandName    string
	brandWebsite string
	brandNotes   string
)

// brandsCmd groups the brand master list subcommands
var brandsCmd = &cobra.Command{
	Use:   "brands",
	Short: "Manage the brand master list",
	Long: `Manage the global brand master list. Brands are shared across the
whole catalog; enabling a brand for a specific type happens in the
tree (or with "voltdesk link brand").

Subcommands:
  list      - List brands
  add       - Create a brand
  rename    - Rename a brand
  delete    - Delete a brand
  suppliers - List the suppliers that carry a brand`,
}

var brandsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List brands",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStore()
		if err != nil {
			return err
		}
		brands, err := s.Brands(cmd.Context())
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(brands)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "ID\tNAME\tPARTS\tSUPPLIERS\tSTATUS")
		for _, b := range brands {
			_, _ = fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%s\n",
				b.ID, b.Name, b.PartCount, b.SupplierCount, output.ActiveIcon(b.IsActive))
		}
		return w.Flush()
	},
}

var brandsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a brand",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStore()
		if err != nil {
			return err
		}

		body := api.BrandCreate{Name: brandName}
		if brandWebsite != "" {
			body.Website = &brandWebsite
		}
		if brandNotes != "" {
			body.Notes = &brandNotes
		}

		b, err := s.AddBrand(cmd.Context(), body)
		if err != nil {
			return err
		}
		output.Success("Created brand %d: %s", b.ID, b.Name)
		return nil
	},
}

var brandsRenameCmd = &cobra.Command{
	Use:   "rename BRAND_ID NEW_NAME",
	Short: "Rename a brand",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid brand id %q", args[0])
		}
		name := args[1]

		s, err := newStore()
		if err != nil {
			return err
		}
		b, err := s.SaveBrand(cmd.Context(), id, api.BrandUpdate{Name: &name})
		if err != nil {
			return err
		}
		output.Success("Renamed brand %d to %s", b.ID, b.Name)
		return nil
	},
}

var brandsDeleteCmd = &cobra.Command{
	Use:   "delete BRAND_ID",
	Short: "Delete a brand",
	Long: `Delete a brand. The backend rejects the delete while parts still
reference the brand.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid brand id %q", args[0])
		}

		s, err := newStore()
		if err != nil {
			return err
		}
		if err := s.DeleteBrand(cmd.Context(), id); err != nil {
			if api.IsConflict(err) {
				output.Error("Cannot delete: %v", err)
				return nil
			}
			return err
		}
		output.Success("Deleted brand %d", id)
		return nil
	},
}

var brandsSuppliersCmd = &cobra.Command{
	Use:   "suppliers BRAND_ID",
	Short: "List the suppliers that carry a brand",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid brand id %q", args[0])
		}

		s, err := newStore()
		if err != nil {
			return err
		}
		links, err := s.BrandSuppliers(cmd.Context(), id)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(links)
		}
		if len(links) == 0 {
			output.Info("No suppliers carry this brand")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "SUPPLIER\tACCOUNT\tSTATUS")
		for _, l := range links {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n",
				strOrDash(l.SupplierName), strOrDash(l.AccountNumber), output.ActiveIcon(l.IsActive))
		}
		return w.Flush()
	},
}

// suppliersCmd is the read-only supplier listing; supplier management
// forms live in a different tool.
var suppliersCmd = &cobra.Command{
	Use:   "suppliers",
	Short: "List suppliers",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStore()
		if err != nil {
			return err
		}
		suppliers, err := s.Suppliers(cmd.Context())
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(suppliers)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "ID\tNAME\tCONTACT\tPHONE\tSTATUS")
		for _, sup := range suppliers {
			_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
				sup.ID, sup.Name, strOrDash(sup.ContactName), strOrDash(sup.Phone),
				output.ActiveIcon(sup.IsActive))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(brandsCmd, suppliersCmd)
	brandsCmd.AddCommand(brandsListCmd, brandsAddCmd, brandsRenameCmd, brandsDeleteCmd, brandsSuppliersCmd)

	brandsAddCmd.Flags().StringVar(&brandName, "name", "", "Brand name (required)")
	brandsAddCmd.Flags().StringVar(&brandWebsite, "website", "", "Brand website")
	brandsAddCmd.Flags().StringVar(&brandNotes, "notes", "", "Notes")
	_ = brandsAddCmd.MarkFlagRequired("name")
}
