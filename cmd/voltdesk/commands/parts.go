package commands

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/marshallshelly/voltdesk/cmd/voltdesk/output"
	"github.com/marshallshelly/voltdesk/pkg/api"
	"github.com/marshallshelly/voltdesk/pkg/catalog"
)

var (
	// Parts flags
	partsSearch     string
	partsType       string
	partsBrandID    int
	partsDeprecated bool
	partsPage       int
	partsPageSize   int
	partsCost       string
	partsMarkup     string
	partsReason     string
)

// partsCmd groups the part-level subcommands
var partsCmd = &cobra.Command{
	Use:   "parts",
	Short: "Search, inspect, and maintain catalog parts",
	Long: `Search, inspect, and maintain catalog parts.

Subcommands:
  list      - Search the part catalog
  show      - Show one part's full detail
  pricing   - Set a part's cost and markup
  deprecate - Mark a part deprecated
  pending   - List branded parts missing their manufacturer number`,
}

var partsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Search the part catalog",
	Long: `Search the part catalog with filters and pagination.

Examples:
  voltdesk parts list --search outlet
  voltdesk parts list --part-type specific --brand 7
  voltdesk parts list --deprecated --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStore()
		if err != nil {
			return err
		}

		params := api.PartSearchParams{
			Search:   partsSearch,
			PartType: partsType,
			SortBy:   "name",
			SortDir:  "asc",
			Page:     partsPage,
			PageSize: partsPageSize,
		}
		if partsBrandID > 0 {
			params.BrandID = &partsBrandID
		}
		if cmd.Flags().Changed("deprecated") {
			params.IsDeprecated = &partsDeprecated
		}

		page, err := s.Search(cmd.Context(), params)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(page)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "ID\tCODE\tNAME\tTYPE\tBRAND\tCOLOR\tSELL\tSTATUS")
		for _, p := range page.Items {
			status := "active"
			if p.IsDeprecated {
				status = "deprecated"
			}
			sell := ""
			if price, ok := catalog.SellPriceOf(p); ok {
				sell = price.StringFixed(2)
			}
			_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				p.ID, strOrDash(p.Code), p.Name, p.PartType,
				strOrDash(p.BrandName), strOrDash(p.ColorName),
				sell, output.StatusIcon(status))
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Printf("\nPage %d of %d (%d parts)\n", page.Page, page.TotalPages, page.Total)
		return nil
	},
}

var partsShowCmd = &cobra.Command{
	Use:   "show PART_ID",
	Short: "Show one part's full detail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid part id %q", args[0])
		}
		s, err := newStore()
		if err != nil {
			return err
		}
		part, err := s.Part(cmd.Context(), id)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(part)
		}

		output.Section(part.Name)
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintf(w, "Code\t%s\n", strOrDash(part.Code))
		_, _ = fmt.Fprintf(w, "Kind\t%s\n", part.PartType)
		_, _ = fmt.Fprintf(w, "Category\t%s\n", strOrDash(part.CategoryName))
		_, _ = fmt.Fprintf(w, "Style\t%s\n", strOrDash(part.StyleName))
		_, _ = fmt.Fprintf(w, "Type\t%s\n", strOrDash(part.TypeName))
		_, _ = fmt.Fprintf(w, "Brand\t%s\n", strOrDash(part.BrandName))
		_, _ = fmt.Fprintf(w, "Color\t%s\n", strOrDash(part.ColorName))
		_, _ = fmt.Fprintf(w, "MPN\t%s\n", strOrDash(part.ManufacturerPartNumber))
		_, _ = fmt.Fprintf(w, "Unit\t%s\n", part.UnitOfMeasure)
		_, _ = fmt.Fprintf(w, "Stock\t%d\n", part.TotalStock)
		if part.CompanyCostPrice != nil {
			_, _ = fmt.Fprintf(w, "Cost\t%s\n", part.CompanyCostPrice.StringFixed(2))
		}
		if part.CompanyMarkupPercent != nil {
			_, _ = fmt.Fprintf(w, "Markup\t%s%%\n", part.CompanyMarkupPercent.String())
		}
		if sell, ok := catalog.SellPriceOf(part); ok {
			_, _ = fmt.Fprintf(w, "Sell\t%s\n", sell.StringFixed(2))
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if part.IsDeprecated {
			output.Warning("Deprecated: %s", strOrDash(part.DeprecationReason))
		}
		if part.PartType == "specific" && part.ManufacturerPartNumber == nil {
			output.Warning("Manufacturer part number still pending")
		}
		return nil
	},
}

var partsPricingCmd = &cobra.Command{
	Use:   "pricing PART_ID",
	Short: "Set a part's cost and markup",
	Long: `Set a part's cost and markup percent. The sell price is derived by
the backend (cost plus markup) and is never set directly.

Examples:
  voltdesk parts pricing 512 --cost 4.25 --markup 35`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid part id %q", args[0])
		}
		cost, err := decimal.NewFromString(partsCost)
		if err != nil {
			return fmt.Errorf("invalid --cost %q", partsCost)
		}
		markup, err := decimal.NewFromString(partsMarkup)
		if err != nil {
			return fmt.Errorf("invalid --markup %q", partsMarkup)
		}

		s, err := newStore()
		if err != nil {
			return err
		}
		part, err := s.SavePricing(cmd.Context(), id, cost, markup)
		if err != nil {
			return err
		}

		sell := ""
		if price, ok := catalog.SellPriceOf(part); ok {
			sell = price.StringFixed(2)
		}
		output.Success("Priced %s: cost %s, markup %s%%, sell %s",
			part.Name, cost.StringFixed(2), markup.String(), sell)
		return nil
	},
}

var partsDeprecateCmd = &cobra.Command{
	Use:   "deprecate PART_ID",
	Short: "Mark a part deprecated",
	Long: `Mark a part deprecated instead of deleting it. Deprecated parts stay
in the tree, rendered dimmed, and keep their history.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid part id %q", args[0])
		}
		s, err := newStore()
		if err != nil {
			return err
		}

		deprecated := true
		body := api.PartUpdate{IsDeprecated: &deprecated}
		if partsReason != "" {
			body.DeprecationReason = &partsReason
		}
		part, err := s.SavePart(cmd.Context(), id, body)
		if err != nil {
			return err
		}
		output.Success("Deprecated %s", part.Name)
		return nil
	},
}

var partsPendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List branded parts missing their manufacturer number",
	Long: `List branded parts whose manufacturer part number has not been filled
in yet. Quick-created branded parts start in this state.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStore()
		if err != nil {
			return err
		}
		page, err := s.PendingPartNumbers(cmd.Context(), partsPage, partsPageSize)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(page)
		}
		if len(page.Items) == 0 {
			output.Info("No pending part numbers")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "ID\tNAME\tBRAND\tTYPE")
		for _, p := range page.Items {
			_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
				p.ID, p.Name, strOrDash(p.BrandName), strOrDash(p.TypeName))
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Printf("\n%d part(s) awaiting a manufacturer number\n", page.Total)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(partsCmd)
	partsCmd.AddCommand(partsListCmd, partsShowCmd, partsPricingCmd, partsDeprecateCmd, partsPendingCmd)

	partsListCmd.Flags().StringVar(&partsSearch, "search", "", "Name or code search term")
	partsListCmd.Flags().StringVar(&partsType, "part-type", "", "Filter by part kind (general or specific)")
	partsListCmd.Flags().IntVar(&partsBrandID, "brand", 0, "Filter by brand id")
	partsListCmd.Flags().BoolVar(&partsDeprecated, "deprecated", false, "Filter by deprecation state")
	partsListCmd.Flags().IntVar(&partsPage, "page", 1, "Page number")
	partsListCmd.Flags().IntVar(&partsPageSize, "page-size", 20, "Results per page")

	partsPendingCmd.Flags().IntVar(&partsPage, "page", 1, "Page number")
	partsPendingCmd.Flags().IntVar(&partsPageSize, "page-size", 20, "Results per page")

	partsPricingCmd.Flags().StringVar(&partsCost, "cost", "", "Company cost price (required)")
	partsPricingCmd.Flags().StringVar(&partsMarkup, "markup", "", "Markup percent (required)")
	_ = partsPricingCmd.MarkFlagRequired("cost")
	_ = partsPricingCmd.MarkFlagRequired("markup")

	partsDeprecateCmd.Flags().StringVar(&partsReason, "reason", "", "Why the part is deprecated")
}

func strOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
