package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cmdbkit/cmdbrecon-core/internal/category"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories [category]",
	Short: "List categories or show one category's matching setup",
	Long: `List the built-in asset categories, or show how a single category is
matched: its strategy cascade, strong identifier fields, required
fields, and validated values.

Example:
  cmdbrecon categories virtualization`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		for _, name := range category.Names() {
			d, _ := category.Get(name)
			fmt.Printf("  %-20s %s\n", name, d.DisplayName)
		}
		return nil
	}

	d, err := category.Get(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Available categories:")
		for _, name := range category.Names() {
			fmt.Fprintf(os.Stderr, "  %s\n", name)
		}
		os.Exit(2)
	}

	fmt.Printf("%s: %s\n", d.Name, d.DisplayName)
	fmt.Printf("Strategies: %s\n", strings.Join(d.Strategies, ", "))
	fmt.Printf("Organization scoped: %v\n", d.OrgScoped)
	fmt.Println()

	if len(d.IdentifierFields) > 0 {
		fmt.Println("Strong identifiers:")
		for _, pair := range d.IdentifierFields {
			fmt.Printf("  %s -> %s\n", pair.Source, pair.Target)
		}
		fmt.Println()
	}

	if len(d.RequiredFields) > 0 {
		fmt.Printf("Required fields: %s\n", strings.Join(d.RequiredFields, ", "))
	}
	if d.ValidValueField != "" {
		fmt.Printf("Validated field: %s\n", d.ValidValueField)
		fmt.Printf("  allowed: %s\n", strings.Join(d.ValidValues, ", "))
	}
	if d.AttributeField != "" {
		fmt.Printf("Statistics breakdown: %s (%s)\n", d.Dimension, d.AttributeField)
	}

	return nil
}
